package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tangzhangming/arbor/internal/expr"
	"github.com/tangzhangming/arbor/internal/loader"
	"github.com/tangzhangming/arbor/internal/render"
)

// newEvalCmd 构造 eval 子命令：加载表达式文档，打印中缀形式并求值
func newEvalCmd() *cobra.Command {
	m := Msg()

	cmd := &cobra.Command{
		Use:   "eval <file.yaml>",
		Short: m.CmdEval,
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	cmd.Flags().String("style", "", m.OptStyle)
	cmd.Flags().Bool("outline", false, m.OptOutline)
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	showOutline, _ := cmd.Flags().GetBool("outline")

	start := time.Now()
	exprs, err := loader.LoadExpressionFile(args[0])
	if err != nil {
		return fmt.Errorf(Msg().ErrLoad, args[0], err)
	}
	logger.Info("expressions loaded",
		zap.String("file", args[0]),
		zap.Int("count", len(exprs)),
		zap.Duration("elapsed", time.Since(start)))

	failed := false
	printer := render.NewPrinter(opts)
	for i, e := range exprs {
		if i > 0 {
			fmt.Println()
		}
		if showOutline {
			fmt.Println(printer.Print(expr.Outline(e)))
		}
		infix := expr.PrintExpression(e)
		value, err := expr.Evaluate(e)
		if err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, Msg().ErrEval+"\n", infix, err)
			continue
		}
		fmt.Printf("%s = %s\n", infix, value)
	}
	if failed {
		return errors.New(Msg().ErrEvalFailed)
	}
	return nil
}
