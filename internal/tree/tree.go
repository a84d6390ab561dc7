// Package tree 实现通用的带名字的有序树
//
// 两个节点变体（Node / Leaf）构成封闭集合，所有操作通过 Visitor
// 双分派实现，节点本身不携带任何操作逻辑。树构造完成后只读，
// 多个访问者可以安全地并发遍历同一棵树。
package tree

import (
	"strconv"
	"strings"

	arberrors "github.com/tangzhangming/arbor/internal/errors"
)

// Visitor 访问者接口，每个节点变体对应一个处理方法
type Visitor interface {
	VisitLeaf(l *Leaf)
	VisitNode(n *Node)
}

// NodeOrLeaf 树元素接口
type NodeOrLeaf interface {
	// Accept 将自身分派给访问者中对应变体的处理方法
	Accept(v Visitor)
	// Name 返回元素名称
	Name() string
}

// Leaf 叶子节点，没有子节点
type Leaf struct {
	name string
}

// NewLeaf 创建叶子节点
func NewLeaf(name string) *Leaf {
	return &Leaf{name: name}
}

func (l *Leaf) Accept(v Visitor) { v.VisitLeaf(l) }
func (l *Leaf) Name() string     { return l.name }
func (l *Leaf) String() string   { return l.name }

// Node 内部节点，持有至少一个有序子元素
// 子元素被节点独占，不允许共享子树或形成环
type Node struct {
	name     string
	children []NodeOrLeaf
}

// NewNode 创建内部节点
// 内部节点表示一个容器，没有内容的容器没有意义，子节点列表为空时
// 返回 ConstructionError，应当改用 Leaf
func NewNode(name string, children ...NodeOrLeaf) (*Node, error) {
	if len(children) == 0 {
		return nil, arberrors.NewConstructionError(arberrors.T0001,
			"at least one child is required for node "+strconv.Quote(name))
	}
	kids := make([]NodeOrLeaf, len(children))
	for i, child := range children {
		if child == nil {
			return nil, arberrors.NewConstructionError(arberrors.T0003,
				"child "+strconv.Itoa(i)+" of node "+strconv.Quote(name)+" is nil")
		}
		kids[i] = child
	}
	return &Node{name: name, children: kids}, nil
}

func (n *Node) Accept(v Visitor) { v.VisitNode(n) }
func (n *Node) Name() string     { return n.name }

// Children 返回遍历用的子元素序列，顺序与构造时一致
// 调用方不得修改返回的切片
func (n *Node) Children() []NodeOrLeaf { return n.children }

func (n *Node) String() string {
	var names []string
	for _, c := range n.children {
		names = append(names, c.Name())
	}
	return n.name + "(" + strings.Join(names, ", ") + ")"
}
