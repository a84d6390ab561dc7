package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/arbor/internal/expr"
	"github.com/tangzhangming/arbor/internal/render"
	"github.com/tangzhangming/arbor/internal/tree"
)

// newDemoCmd 构造 demo 子命令：打印内置示例，不需要输入文件
func newDemoCmd() *cobra.Command {
	m := Msg()

	return &cobra.Command{
		Use:   "demo",
		Short: m.CmdDemo,
		Args:  cobra.NoArgs,
		Run:   runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) {
	m := Msg()

	// 机器人场景：结构化打印示例
	scene := tree.MustNode("Scene",
		tree.MustNode("Robot",
			tree.MustNode("Flange",
				tree.MustNode("Gripper",
					tree.NewLeaf("Object"))),
			tree.NewLeaf("Camera")),
		tree.MustNode("Table",
			tree.NewLeaf("Box")))

	fmt.Println(m.DemoTreeTitle)
	fmt.Println(render.PrintTree(scene))
	fmt.Println()

	// 2 + ((5.0 * -3) / 10.0)：表达式打印与求值示例
	sample := expr.NewAdd(
		expr.NewInteger(2),
		expr.NewDivide(
			expr.NewMultiply(
				expr.MustFloat(5.0),
				expr.NewNegative(expr.NewInteger(3))),
			expr.MustFloat(10.0)))

	fmt.Println(m.DemoExprTitle)
	fmt.Println(render.NewPrinter(&render.Options{Style: render.StyleBullet, Indent: "  ", Bullet: "* "}).Print(expr.Outline(sample)))
	fmt.Println()

	infix := expr.PrintExpression(sample)
	value, err := expr.Evaluate(sample)
	if err != nil {
		fmt.Fprintf(os.Stderr, m.ErrEval+"\n", infix, err)
		return
	}
	fmt.Printf("%s = %s\n", infix, value)
}
