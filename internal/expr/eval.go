package expr

import (
	arberrors "github.com/tangzhangming/arbor/internal/errors"
)

// Evaluator 表达式求值器，实现 Visitor
//
// 深度优先、从左到右地把表达式树归约为一个数值。首个错误即中止，
// 不产生部分结果。求值是确定的：同一棵树两次求值结果相同。
// 一个 Evaluator 实例同一时刻只能用于一次遍历。
type Evaluator struct {
	result Value
	err    error
}

// NewEvaluator 创建求值器
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate 求值整棵表达式树
func (ev *Evaluator) Evaluate(root Expression) (Value, error) {
	ev.result = Value{}
	ev.err = nil
	v := ev.eval(root)
	if ev.err != nil {
		return Value{}, ev.err
	}
	return v, nil
}

// eval 通过 Accept 分派并取回子表达式的结果
func (ev *Evaluator) eval(e Expression) Value {
	if ev.err != nil {
		return Value{}
	}
	e.Accept(ev)
	return ev.result
}

func (ev *Evaluator) VisitInteger(e *Integer) { ev.result = IntValue(e.Value) }
func (ev *Evaluator) VisitFloat(e *Float)     { ev.result = FloatValue(e.Value) }

// VisitNegative 取负，保持操作数的整数/浮点类别
func (ev *Evaluator) VisitNegative(e *Negative) {
	v := ev.eval(e.Operand)
	if ev.err != nil {
		return
	}
	if v.IsInt() {
		ev.result = IntValue(-v.AsInt())
		return
	}
	ev.result = FloatValue(-v.AsFloat())
}

func (ev *Evaluator) VisitAdd(e *Add) {
	ev.arith(e.Left, e.Right,
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })
}

func (ev *Evaluator) VisitSubtract(e *Subtract) {
	ev.arith(e.Left, e.Right,
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
}

func (ev *Evaluator) VisitMultiply(e *Multiply) {
	ev.arith(e.Left, e.Right,
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
}

// VisitDivide 除法总是以浮点进行，整数相除也可能得到小数
// 除数为零时返回 DivisionByZeroError，错误中带上出错节点的中缀表示
func (ev *Evaluator) VisitDivide(e *Divide) {
	a := ev.eval(e.Left)
	b := ev.eval(e.Right)
	if ev.err != nil {
		return
	}
	if b.AsFloat() == 0 {
		ev.err = &arberrors.DivisionByZeroError{Expr: PrintExpression(e)}
		return
	}
	ev.result = FloatValue(a.AsFloat() / b.AsFloat())
}

// arith 二元算术
// 快速路径：两个整数操作数保持整数；任一操作数为浮点时提升为浮点
func (ev *Evaluator) arith(left, right Expression, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) {
	a := ev.eval(left)
	b := ev.eval(right)
	if ev.err != nil {
		return
	}
	if a.IsInt() && b.IsInt() {
		ev.result = IntValue(intOp(a.AsInt(), b.AsInt()))
		return
	}
	ev.result = FloatValue(floatOp(a.AsFloat(), b.AsFloat()))
}

// Evaluate 求值的包级入口
func Evaluate(root Expression) (Value, error) {
	return NewEvaluator().Evaluate(root)
}
