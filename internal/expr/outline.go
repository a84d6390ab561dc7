package expr

import (
	"github.com/tangzhangming/arbor/internal/tree"
)

// Outliner 把表达式树转换为通用树，实现 Visitor
//
// 转换结果用于结构化打印：叶子的标签带值（"Integer(42)"、
// "Float(5.0)"），内部节点的标签是变体名（"Add"、"Negative"）。
// 转换后的树与 render 包的任意风格组合使用。
type Outliner struct {
	result tree.NodeOrLeaf
}

// NewOutliner 创建转换器
func NewOutliner() *Outliner {
	return &Outliner{}
}

// Outline 转换整棵表达式树
func (o *Outliner) Outline(root Expression) tree.NodeOrLeaf {
	root.Accept(o)
	return o.result
}

func (o *Outliner) VisitInteger(e *Integer) { o.result = tree.NewLeaf(e.String()) }
func (o *Outliner) VisitFloat(e *Float)     { o.result = tree.NewLeaf(e.String()) }

func (o *Outliner) VisitNegative(e *Negative) { o.result = o.node(e.String(), e.Operand) }
func (o *Outliner) VisitAdd(e *Add)           { o.result = o.node(e.String(), e.Left, e.Right) }
func (o *Outliner) VisitSubtract(e *Subtract) { o.result = o.node(e.String(), e.Left, e.Right) }
func (o *Outliner) VisitMultiply(e *Multiply) { o.result = o.node(e.String(), e.Left, e.Right) }
func (o *Outliner) VisitDivide(e *Divide)     { o.result = o.node(e.String(), e.Left, e.Right) }

// node 转换操作数并组装为通用树内部节点
// 操作数至少一个，MustNode 不会失败
func (o *Outliner) node(name string, operands ...Expression) *tree.Node {
	kids := make([]tree.NodeOrLeaf, len(operands))
	for i, op := range operands {
		op.Accept(o)
		kids[i] = o.result
	}
	return tree.MustNode(name, kids...)
}

// Outline 转换的包级入口
func Outline(root Expression) tree.NodeOrLeaf {
	return NewOutliner().Outline(root)
}
