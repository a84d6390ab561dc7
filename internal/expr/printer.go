package expr

import (
	"strconv"
	"strings"
)

// 中缀符号
const (
	symbolAdd      = " + "
	symbolSubtract = " - "
	symbolMultiply = " * "
	symbolDivide   = " / "
	symbolNegative = "-"
)

// Printer 中缀表达式打印器，实现 Visitor
//
// 只加保持原树分组所必需的括号：二元子表达式总是括号包裹，
// 根节点自身从不包裹。一个 Printer 实例同一时刻只能用于一次遍历。
type Printer struct {
	buf strings.Builder
}

// NewPrinter 创建打印器
func NewPrinter() *Printer {
	return &Printer{}
}

// Print 渲染表达式并返回中缀文本
func (p *Printer) Print(root Expression) string {
	p.buf.Reset()
	root.Accept(p)
	return p.buf.String()
}

func (p *Printer) VisitInteger(e *Integer) {
	p.buf.WriteString(strconv.FormatInt(e.Value, 10))
}

func (p *Printer) VisitFloat(e *Float) {
	p.buf.WriteString(formatFloat(e.Value))
}

// VisitNegative 渲染 "-x"
// x 是二元节点时括号包裹，避免 -(2 + 3) 与 -2 + 3 的歧义；
// 嵌套的 Negative 不加括号（--3 是合法输出）
func (p *Printer) VisitNegative(e *Negative) {
	p.buf.WriteString(symbolNegative)
	p.operand(e.Operand)
}

func (p *Printer) VisitAdd(e *Add)           { p.binary(e.Left, symbolAdd, e.Right) }
func (p *Printer) VisitSubtract(e *Subtract) { p.binary(e.Left, symbolSubtract, e.Right) }
func (p *Printer) VisitMultiply(e *Multiply) { p.binary(e.Left, symbolMultiply, e.Right) }
func (p *Printer) VisitDivide(e *Divide)     { p.binary(e.Left, symbolDivide, e.Right) }

// binary 渲染二元节点
func (p *Printer) binary(left Expression, symbol string, right Expression) {
	p.operand(left)
	p.buf.WriteString(symbol)
	p.operand(right)
}

// operand 渲染子表达式，二元子节点总是括号包裹
func (p *Printer) operand(e Expression) {
	if isBinary(e) {
		p.buf.WriteByte('(')
		e.Accept(p)
		p.buf.WriteByte(')')
		return
	}
	e.Accept(p)
}

// PrintExpression 渲染表达式的包级入口
func PrintExpression(root Expression) string {
	return NewPrinter().Print(root)
}
