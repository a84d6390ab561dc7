// Package main is the entry point for the arbor CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tangzhangming/arbor/internal/config"
	"github.com/tangzhangming/arbor/internal/render"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// 全局日志，--verbose 时替换为 zap 开发模式日志
var logger = zap.NewNop()

func main() {
	// cobra 解析参数之前就需要消息文本，先从参数和环境预判语言
	InitLanguage(langFromArgs(os.Args[1:]))

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd 构造根命令及全部子命令
func newRootCmd() *cobra.Command {
	m := Msg()

	root := &cobra.Command{
		Use:           "arbor",
		Short:         m.RootShort,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.Version = version + " (commit=" + commit + ", built=" + date + ")"
	root.SetVersionTemplate("arbor version {{.Version}}\n")

	root.PersistentFlags().String("lang", "", m.OptLang)
	root.PersistentFlags().Bool("verbose", false, m.OptVerbose)
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = l
		}
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	}

	root.AddCommand(newPrintCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newInitCmd())
	return root
}

// langFromArgs 预扫描 --lang 参数
func langFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--lang" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--lang="):
			return strings.TrimPrefix(arg, "--lang=")
		}
	}
	return ""
}

// renderOptions 合并配置文件和 --style 参数得到渲染选项
// 优先级: --style > 当前目录 arbor.toml > 默认值
func renderOptions(cmd *cobra.Command) (*render.Options, error) {
	opts := render.DefaultOptions()
	if cfg, err := config.LoadConfig(config.ConfigFileName); err == nil {
		opts = cfg.Options()
		logger.Info("config loaded", zap.String("file", config.ConfigFileName))
	}
	if s, _ := cmd.Flags().GetString("style"); s != "" {
		style, ok := render.ParseStyle(s)
		if !ok {
			return nil, fmt.Errorf(Msg().ErrUnknownStyle, s)
		}
		opts.Style = style
	}
	return opts, nil
}
