package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tangzhangming/arbor/internal/loader"
	"github.com/tangzhangming/arbor/internal/render"
)

// newPrintCmd 构造 print 子命令：加载通用树文档并渲染
func newPrintCmd() *cobra.Command {
	m := Msg()

	cmd := &cobra.Command{
		Use:   "print <file.yaml>",
		Short: m.CmdPrint,
		Args:  cobra.ExactArgs(1),
		RunE:  runPrint,
	}
	cmd.Flags().String("style", "", m.OptStyle)
	return cmd
}

func runPrint(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	roots, err := loader.LoadTreeFile(args[0])
	if err != nil {
		return fmt.Errorf(Msg().ErrLoad, args[0], err)
	}
	logger.Info("trees loaded",
		zap.String("file", args[0]),
		zap.Int("count", len(roots)),
		zap.Duration("elapsed", time.Since(start)))

	printer := render.NewPrinter(opts)
	for i, root := range roots {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(printer.Print(root))
	}
	return nil
}
