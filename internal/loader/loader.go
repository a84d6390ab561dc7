// Package loader 从 YAML 文档构造树
//
// 文档只是节点构造器的另一种写法，不涉及表达式文本解析。
// 一个文件可以包含多个 YAML 文档，构造错误逐文档收集后一并返回。
//
// 通用树文档：
//
//	name: Scene
//	children:
//	  - name: Robot
//	    children:
//	      - name: Camera
//	  - name: Table
//
// 没有 children 键的映射是叶子；显式的空 children 列表是非法的
// 内部节点，构造时报错。
//
// 表达式文档：
//
//	op: add
//	left: { int: 2 }
//	right:
//	  op: negative
//	  operand: { float: 3.5 }
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/tangzhangming/arbor/internal/expr"
	"github.com/tangzhangming/arbor/internal/tree"
)

// treeDoc 通用树文档节点
type treeDoc struct {
	Name     string     `yaml:"name"`
	Children *[]treeDoc `yaml:"children"`
}

// exprDoc 表达式文档节点
type exprDoc struct {
	Int     *int64   `yaml:"int"`
	Float   *float64 `yaml:"float"`
	Op      string   `yaml:"op"`
	Operand *exprDoc `yaml:"operand"`
	Left    *exprDoc `yaml:"left"`
	Right   *exprDoc `yaml:"right"`
}

// LoadTrees 从多文档 YAML 流加载通用树
func LoadTrees(r io.Reader) ([]tree.NodeOrLeaf, error) {
	dec := yaml.NewDecoder(r)
	var roots []tree.NodeOrLeaf
	var errs error
	for i := 0; ; i++ {
		var doc treeDoc
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode document %d: %w", i, err)
		}
		root, err := buildTree(&doc)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("document %d: %w", i, err))
			continue
		}
		roots = append(roots, root)
	}
	if errs != nil {
		return nil, errs
	}
	return roots, nil
}

// LoadTreeFile 从文件加载通用树
func LoadTreeFile(path string) ([]tree.NodeOrLeaf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tree file: %w", err)
	}
	defer f.Close()
	return LoadTrees(f)
}

// buildTree 自底向上调用构造器
func buildTree(d *treeDoc) (tree.NodeOrLeaf, error) {
	if d.Children == nil {
		return tree.NewLeaf(d.Name), nil
	}
	kids := make([]tree.NodeOrLeaf, 0, len(*d.Children))
	for i := range *d.Children {
		kid, err := buildTree(&(*d.Children)[i])
		if err != nil {
			return nil, err
		}
		kids = append(kids, kid)
	}
	return tree.NewNode(d.Name, kids...)
}

// LoadExpressions 从多文档 YAML 流加载表达式树
func LoadExpressions(r io.Reader) ([]expr.Expression, error) {
	dec := yaml.NewDecoder(r)
	var roots []expr.Expression
	var errs error
	for i := 0; ; i++ {
		var doc exprDoc
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode document %d: %w", i, err)
		}
		root, err := buildExpr(&doc)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("document %d: %w", i, err))
			continue
		}
		roots = append(roots, root)
	}
	if errs != nil {
		return nil, errs
	}
	return roots, nil
}

// LoadExpressionFile 从文件加载表达式树
func LoadExpressionFile(path string) ([]expr.Expression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open expression file: %w", err)
	}
	defer f.Close()
	return LoadExpressions(f)
}

// buildExpr 自底向上调用构造器
func buildExpr(d *exprDoc) (expr.Expression, error) {
	if d == nil {
		return nil, fmt.Errorf("missing operand")
	}
	if d.Int != nil {
		return expr.NewInteger(*d.Int), nil
	}
	if d.Float != nil {
		return expr.NewFloat(*d.Float)
	}

	switch d.Op {
	case "negative":
		operand, err := buildExpr(d.Operand)
		if err != nil {
			return nil, fmt.Errorf("negative: %w", err)
		}
		return expr.NewNegative(operand), nil
	case "add", "subtract", "multiply", "divide":
		left, err := buildExpr(d.Left)
		if err != nil {
			return nil, fmt.Errorf("%s: left: %w", d.Op, err)
		}
		right, err := buildExpr(d.Right)
		if err != nil {
			return nil, fmt.Errorf("%s: right: %w", d.Op, err)
		}
		switch d.Op {
		case "add":
			return expr.NewAdd(left, right), nil
		case "subtract":
			return expr.NewSubtract(left, right), nil
		case "multiply":
			return expr.NewMultiply(left, right), nil
		default:
			return expr.NewDivide(left, right), nil
		}
	case "":
		return nil, fmt.Errorf("expression document needs one of int, float or op")
	default:
		return nil, fmt.Errorf("unknown operator %q", d.Op)
	}
}
