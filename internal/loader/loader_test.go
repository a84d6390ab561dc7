package loader

import (
	"errors"
	"strings"
	"testing"

	arberrors "github.com/tangzhangming/arbor/internal/errors"
	"github.com/tangzhangming/arbor/internal/expr"
	"github.com/tangzhangming/arbor/internal/render"
)

func TestLoadTrees(t *testing.T) {
	input := `
name: Scene
children:
  - name: Robot
    children:
      - name: Flange
        children:
          - name: Gripper
            children:
              - name: Object
      - name: Camera
  - name: Table
    children:
      - name: Box
`

	roots, err := LoadTrees(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("expected 1 tree, got %d", len(roots))
	}

	expected := " ╿ Scene\n" +
		" ├─┮ Robot\n" +
		" │ ├─┮ Flange\n" +
		" │ │ └─┮ Gripper\n" +
		" │ │   └─╼ Object\n" +
		" │ └─╼ Camera\n" +
		" └─┮ Table\n" +
		"   └─╼ Box"
	if got := render.PrintTree(roots[0]); got != expected {
		t.Errorf("loaded tree mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestLoadTreesMultiDocument(t *testing.T) {
	input := "name: a\n---\nname: b\nchildren:\n  - name: c\n"

	roots, err := LoadTrees(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected 2 trees, got %d", len(roots))
	}
	if roots[0].Name() != "a" || roots[1].Name() != "b" {
		t.Errorf("root names mismatch: got %s, %s", roots[0].Name(), roots[1].Name())
	}
}

func TestLoadTreesEmptyChildren(t *testing.T) {
	// 显式的空 children 列表是没有内容的内部节点，构造失败
	input := "name: X\nchildren: []\n"

	_, err := LoadTrees(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for empty children, got nil")
	}

	var cerr *arberrors.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %T", err)
	}
	if cerr.Code != arberrors.T0001 {
		t.Errorf("expected code %s, got %s", arberrors.T0001, cerr.Code)
	}
}

func TestLoadTreesCollectsAllErrors(t *testing.T) {
	// 多文档流中的构造错误逐文档收集
	input := "name: a\nchildren: []\n---\nname: ok\n---\nname: b\nchildren: []\n"

	_, err := LoadTrees(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "document 0") || !strings.Contains(msg, "document 2") {
		t.Errorf("expected errors for documents 0 and 2, got %q", msg)
	}
}

func TestLoadExpressions(t *testing.T) {
	input := `
op: add
left: { int: 2 }
right:
  op: divide
  left:
    op: multiply
    left: { float: 5.0 }
    right:
      op: negative
      operand: { int: 3 }
  right: { float: 10.0 }
`

	exprs, err := LoadExpressions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("expected 1 expression, got %d", len(exprs))
	}

	if got, want := expr.PrintExpression(exprs[0]), "2 + ((5.0 * -3) / 10.0)"; got != want {
		t.Errorf("infix mismatch: got %q, want %q", got, want)
	}

	v, err := expr.Evaluate(exprs[0])
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if !v.IsFloat() || v.AsFloat() != 0.5 {
		t.Errorf("expected 0.5, got %s", v)
	}
}

func TestLoadExpressionsSubtract(t *testing.T) {
	input := "op: subtract\nleft: { int: 5 }\nright: { int: 3 }\n"

	exprs, err := LoadExpressions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := expr.PrintExpression(exprs[0]), "5 - 3"; got != want {
		t.Errorf("infix mismatch: got %q, want %q", got, want)
	}
}

func TestLoadExpressionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown op", "op: modulo\nleft: { int: 1 }\nright: { int: 2 }\n"},
		{"missing operand", "op: negative\n"},
		{"missing kind", "left: { int: 1 }\n"},
		{"non-finite float", "float: .nan\n"},
	}

	for _, tt := range tests {
		_, err := LoadExpressions(strings.NewReader(tt.input))
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestLoadExpressionsNonFiniteIsConstructionError(t *testing.T) {
	_, err := LoadExpressions(strings.NewReader("float: .inf\n"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var cerr *arberrors.ConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstructionError, got %T", err)
	}
	if cerr.Code != arberrors.T0002 {
		t.Errorf("expected code %s, got %s", arberrors.T0002, cerr.Code)
	}
}

func TestLoadTreeFileMissing(t *testing.T) {
	if _, err := LoadTreeFile("testdata/does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
