// Package config 实现 arbor.toml 配置文件
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tangzhangming/arbor/internal/render"
)

// 常量定义
const (
	ConfigFileName = "arbor.toml" // 配置文件名
)

// Config 项目配置
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// Style 默认渲染风格（tree / indent / bullet）
	Style string `toml:"style"`

	// Indent Indent/Bullet 风格每层的缩进
	Indent string `toml:"indent"`

	// Bullet Bullet 风格的项目符号
	Bullet string `toml:"bullet"`
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save 保存配置到文件
func (c *Config) Save(path string) error {
	// 生成带注释的配置文件内容
	content := generateConfigWithComments(c)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateConfigWithComments 生成带注释的配置文件内容
func generateConfigWithComments(c *Config) string {
	var sb strings.Builder

	sb.WriteString("[render]\n")
	sb.WriteString("# 默认渲染风格（tree / indent / bullet）\n")
	sb.WriteString(fmt.Sprintf("style = %q\n\n", c.Render.Style))
	sb.WriteString("# indent / bullet 风格每层的缩进\n")
	sb.WriteString(fmt.Sprintf("indent = %q\n\n", c.Render.Indent))
	sb.WriteString("# bullet 风格的项目符号\n")
	sb.WriteString(fmt.Sprintf("bullet = %q\n", c.Render.Bullet))

	return sb.String()
}

// GenerateDefault 生成默认配置
func GenerateDefault() *Config {
	opts := render.DefaultOptions()
	return &Config{
		Render: RenderConfig{
			Style:  opts.Style.String(),
			Indent: opts.Indent,
			Bullet: opts.Bullet,
		},
	}
}

// Options 把配置转换为渲染选项
// 无法识别的风格名称回退到默认风格
func (c *Config) Options() *render.Options {
	opts := render.DefaultOptions()
	if style, ok := render.ParseStyle(c.Render.Style); ok {
		opts.Style = style
	}
	if c.Render.Indent != "" {
		opts.Indent = c.Render.Indent
	}
	if c.Render.Bullet != "" {
		opts.Bullet = c.Render.Bullet
	}
	return opts
}
