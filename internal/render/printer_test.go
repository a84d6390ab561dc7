package render

import (
	"strings"
	"testing"

	"github.com/tangzhangming/arbor/internal/tree"
)

// scene 构造文档中的机器人场景示例树
func scene() *tree.Node {
	return tree.MustNode("Scene",
		tree.MustNode("Robot",
			tree.MustNode("Flange",
				tree.MustNode("Gripper",
					tree.NewLeaf("Object"))),
			tree.NewLeaf("Camera")),
		tree.MustNode("Table",
			tree.NewLeaf("Box")))
}

func TestPrintTreeScene(t *testing.T) {
	expected := " ╿ Scene\n" +
		" ├─┮ Robot\n" +
		" │ ├─┮ Flange\n" +
		" │ │ └─┮ Gripper\n" +
		" │ │   └─╼ Object\n" +
		" │ └─╼ Camera\n" +
		" └─┮ Table\n" +
		"   └─╼ Box"

	if got := PrintTree(scene()); got != expected {
		t.Errorf("tree output mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestPrintTreeRootLeaf(t *testing.T) {
	if got, want := PrintTree(tree.NewLeaf("Object")), " ╿ Object"; got != want {
		t.Errorf("root leaf mismatch: got %q, want %q", got, want)
	}
}

func TestPrintTreeSingleChildChain(t *testing.T) {
	root := tree.MustNode("a", tree.MustNode("b", tree.NewLeaf("c")))

	expected := " ╿ a\n" +
		" └─┮ b\n" +
		"   └─╼ c"
	if got := PrintTree(root); got != expected {
		t.Errorf("chain output mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestPrintTreeLineCount(t *testing.T) {
	tests := []struct {
		name  string
		root  tree.NodeOrLeaf
		count int // 节点 + 叶子总数
	}{
		{"leaf", tree.NewLeaf("x"), 1},
		{"flat", tree.MustNode("r", tree.NewLeaf("a"), tree.NewLeaf("b"), tree.NewLeaf("c")), 4},
		{"scene", scene(), 8},
	}

	for _, tt := range tests {
		lines := strings.Split(PrintTree(tt.root), "\n")
		if len(lines) != tt.count {
			t.Errorf("%s: expected %d lines, got %d", tt.name, tt.count, len(lines))
		}
	}
}

func TestPrintIndentStyle(t *testing.T) {
	expected := "Scene\n" +
		"  Robot\n" +
		"    Flange\n" +
		"      Gripper\n" +
		"        Object\n" +
		"    Camera\n" +
		"  Table\n" +
		"    Box"

	p := NewPrinter(&Options{Style: StyleIndent, Indent: "  "})
	if got := p.Print(scene()); got != expected {
		t.Errorf("indent output mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestPrintBulletStyle(t *testing.T) {
	expected := "* r\n" +
		"  * a\n" +
		"    * b\n" +
		"  * c"

	root := tree.MustNode("r", tree.MustNode("a", tree.NewLeaf("b")), tree.NewLeaf("c"))
	p := NewPrinter(&Options{Style: StyleBullet, Indent: "  ", Bullet: "* "})
	if got := p.Print(root); got != expected {
		t.Errorf("bullet output mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestPrinterReuse(t *testing.T) {
	// 同一个打印器串行复用，结果一致
	p := NewPrinter(nil)
	first := p.Print(scene())
	second := p.Print(scene())
	if first != second {
		t.Errorf("reused printer output mismatch:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input string
		style Style
		ok    bool
	}{
		{"tree", StyleTree, true},
		{"indent", StyleIndent, true},
		{"bullet", StyleBullet, true},
		{"folder", StyleTree, false},
		{"", StyleTree, false},
	}

	for _, tt := range tests {
		style, ok := ParseStyle(tt.input)
		if ok != tt.ok || style != tt.style {
			t.Errorf("ParseStyle(%q) = (%v, %v), want (%v, %v)", tt.input, style, ok, tt.style, tt.ok)
		}
	}
}

func TestStyleString(t *testing.T) {
	for _, s := range []Style{StyleTree, StyleIndent, StyleBullet} {
		if parsed, ok := ParseStyle(s.String()); !ok || parsed != s {
			t.Errorf("style %d does not round-trip through %q", s, s.String())
		}
	}
}
