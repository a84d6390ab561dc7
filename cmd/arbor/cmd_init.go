package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/arbor/internal/config"
)

// newInitCmd 构造 init 子命令：在当前目录生成默认配置文件
func newInitCmd() *cobra.Command {
	m := Msg()

	return &cobra.Command{
		Use:   "init",
		Short: m.CmdInit,
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	m := Msg()

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf(m.ErrGetWorkDir, err)
	}

	// 检查是否已存在配置文件
	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf(m.ErrConfigExists, config.ConfigFileName)
	}

	fmt.Printf(m.InitCreating+"\n", config.ConfigFileName)
	if err := config.GenerateDefault().Save(configPath); err != nil {
		return fmt.Errorf(m.ErrCreateConfig, err)
	}

	fmt.Println()
	fmt.Println(m.InitSuccess)
	return nil
}
