// Package expr 实现算术表达式树
//
// 表达式变体 {Integer, Float, Negative, Add, Subtract, Multiply,
// Divide} 构成封闭集合，中缀打印和数值求值都以 Visitor 双分派实现，
// 节点本身不携带任何操作逻辑。表达式树构造完成后只读。
package expr

import (
	"math"
	"strconv"

	arberrors "github.com/tangzhangming/arbor/internal/errors"
)

// Visitor 表达式访问者接口，每个变体对应一个处理方法
type Visitor interface {
	VisitInteger(e *Integer)
	VisitFloat(e *Float)
	VisitNegative(e *Negative)
	VisitAdd(e *Add)
	VisitSubtract(e *Subtract)
	VisitMultiply(e *Multiply)
	VisitDivide(e *Divide)
}

// Expression 表达式节点接口
type Expression interface {
	// Accept 将自身分派给访问者中对应变体的处理方法
	Accept(v Visitor)
	// String 返回调试用的变体标签（叶子带值，如 "Integer(42)"）
	String() string
}

// ============================================================================
// 字面量
// ============================================================================

// Integer 整数字面量
type Integer struct {
	Value int64
}

// NewInteger 创建整数字面量
func NewInteger(value int64) *Integer {
	return &Integer{Value: value}
}

func (e *Integer) Accept(v Visitor) { v.VisitInteger(e) }
func (e *Integer) String() string   { return "Integer(" + strconv.FormatInt(e.Value, 10) + ")" }

// Float 浮点数字面量
type Float struct {
	Value float64
}

// NewFloat 创建浮点数字面量
// 值必须是有限数，NaN 和 ±Inf 返回 ConstructionError
func NewFloat(value float64) (*Float, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, arberrors.NewConstructionError(arberrors.T0002,
			"float value must be finite, got "+strconv.FormatFloat(value, 'g', -1, 64))
	}
	return &Float{Value: value}, nil
}

func (e *Float) Accept(v Visitor) { v.VisitFloat(e) }
func (e *Float) String() string   { return "Float(" + formatFloat(e.Value) + ")" }

// ============================================================================
// 一元节点
// ============================================================================

// Negative 取负节点
type Negative struct {
	Operand Expression
}

// NewNegative 创建取负节点
func NewNegative(operand Expression) *Negative {
	return &Negative{Operand: operand}
}

func (e *Negative) Accept(v Visitor) { v.VisitNegative(e) }
func (e *Negative) String() string   { return "Negative" }

// ============================================================================
// 二元节点
// ============================================================================

// Add 加法节点
type Add struct {
	Left  Expression
	Right Expression
}

// NewAdd 创建加法节点
func NewAdd(left, right Expression) *Add {
	return &Add{Left: left, Right: right}
}

func (e *Add) Accept(v Visitor) { v.VisitAdd(e) }
func (e *Add) String() string   { return "Add" }

// Subtract 减法节点
type Subtract struct {
	Left  Expression
	Right Expression
}

// NewSubtract 创建减法节点
func NewSubtract(left, right Expression) *Subtract {
	return &Subtract{Left: left, Right: right}
}

func (e *Subtract) Accept(v Visitor) { v.VisitSubtract(e) }
func (e *Subtract) String() string   { return "Subtract" }

// Multiply 乘法节点
type Multiply struct {
	Left  Expression
	Right Expression
}

// NewMultiply 创建乘法节点
func NewMultiply(left, right Expression) *Multiply {
	return &Multiply{Left: left, Right: right}
}

func (e *Multiply) Accept(v Visitor) { v.VisitMultiply(e) }
func (e *Multiply) String() string   { return "Multiply" }

// Divide 除法节点
type Divide struct {
	Left  Expression
	Right Expression
}

// NewDivide 创建除法节点
func NewDivide(left, right Expression) *Divide {
	return &Divide{Left: left, Right: right}
}

func (e *Divide) Accept(v Visitor) { v.VisitDivide(e) }
func (e *Divide) String() string   { return "Divide" }

// isBinary 判断节点是否是二元运算变体
func isBinary(e Expression) bool {
	switch e.(type) {
	case *Add, *Subtract, *Multiply, *Divide:
		return true
	default:
		return false
	}
}
