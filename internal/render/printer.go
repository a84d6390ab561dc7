// Package render 将通用树渲染为文本结构图
package render

import (
	"strings"

	"github.com/tangzhangming/arbor/internal/tree"
)

// Printer 树结构打印器，实现 tree.Visitor
//
// 深度优先先序遍历，每个元素输出一行。树状图风格下每一行的前缀
// 由各祖先层从左到右拼成：祖先是其父节点的最后一个子元素时为空白，
// 否则为竖线（根节点不参与前缀）。
// 一个 Printer 实例同一时刻只能用于一次遍历。
type Printer struct {
	opts   *Options
	buf    strings.Builder
	prefix string // 当前元素的祖先层前缀
	depth  int    // 当前元素深度，根为 0
	last   bool   // 当前元素是否是其父节点的最后一个子元素
}

// NewPrinter 创建打印器
func NewPrinter(opts *Options) *Printer {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Printer{opts: opts}
}

// Print 渲染整棵树并返回文本，各行以换行符连接，末尾无换行
func (p *Printer) Print(root tree.NodeOrLeaf) string {
	p.buf.Reset()
	p.prefix = ""
	p.depth = 0
	p.last = true
	root.Accept(p)
	return p.buf.String()
}

// VisitLeaf 输出叶子行
func (p *Printer) VisitLeaf(l *tree.Leaf) {
	if p.opts.Style != StyleTree {
		p.writePlain(l.Name())
		return
	}
	p.writeGlyph(l.Name(), prefixMiddleLeaf, prefixLastLeaf)
}

// VisitNode 输出内部节点行，然后按存储顺序访问子元素
func (p *Printer) VisitNode(n *tree.Node) {
	if p.opts.Style != StyleTree {
		p.writePlain(n.Name())
		p.descendPlain(n)
		return
	}
	p.writeGlyph(n.Name(), prefixMiddleBranch, prefixLastBranch)
	p.descendGlyph(n)
}

// writeGlyph 输出一行：祖先前缀 + 自身连接符 + 名称
// 根节点没有祖先前缀，连接符固定为根符号
func (p *Printer) writeGlyph(name, middle, last string) {
	if p.depth == 0 {
		p.buf.WriteString(prefixRoot)
		p.buf.WriteString(name)
		return
	}
	p.buf.WriteByte('\n')
	p.buf.WriteString(p.prefix)
	if p.last {
		p.buf.WriteString(last)
	} else {
		p.buf.WriteString(middle)
	}
	p.buf.WriteString(name)
}

// descendGlyph 访问子元素，并为它们追加当前节点贡献的前缀段
func (p *Printer) descendGlyph(n *tree.Node) {
	parentPrefix := p.prefix
	ext := ""
	if p.depth > 0 {
		if p.last {
			ext = prefixGap
		} else {
			ext = prefixContinuation
		}
	}
	children := n.Children()
	p.depth++
	for i, child := range children {
		p.prefix = parentPrefix + ext
		p.last = i == len(children)-1
		child.Accept(p)
	}
	p.depth--
	p.prefix = parentPrefix
}

// writePlain 输出 Indent/Bullet 风格的一行
func (p *Printer) writePlain(name string) {
	if p.buf.Len() > 0 {
		p.buf.WriteByte('\n')
	}
	p.buf.WriteString(strings.Repeat(p.opts.Indent, p.depth))
	if p.opts.Style == StyleBullet {
		p.buf.WriteString(p.opts.Bullet)
	}
	p.buf.WriteString(name)
}

// descendPlain 访问子元素并递增层级
func (p *Printer) descendPlain(n *tree.Node) {
	p.depth++
	for _, child := range n.Children() {
		child.Accept(p)
	}
	p.depth--
}

// PrintTree 以默认选项（树状图风格）渲染整棵树
func PrintTree(root tree.NodeOrLeaf) string {
	return NewPrinter(nil).Print(root)
}
