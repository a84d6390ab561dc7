package main

import (
	"os"
	"runtime"
	"strings"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// Messages 消息结构
type Messages struct {
	// 命令描述
	RootShort string
	CmdPrint  string
	CmdEval   string
	CmdDemo   string
	CmdInit   string

	// 选项
	OptStyle   string
	OptOutline string
	OptLang    string
	OptVerbose string

	// 错误信息
	ErrLoad         string
	ErrEval         string
	ErrEvalFailed   string
	ErrUnknownStyle string
	ErrGetWorkDir   string
	ErrConfigExists string
	ErrCreateConfig string

	// 成功信息
	InitCreating string
	InitSuccess  string

	// 示例标题
	DemoTreeTitle string
	DemoExprTitle string
}

// 英文消息
var messagesEN = Messages{
	RootShort: "Render and evaluate trees built from named nodes and arithmetic expressions",
	CmdPrint:  "Render generic tree documents",
	CmdEval:   "Evaluate expression documents",
	CmdDemo:   "Print the built-in example tree and expression",
	CmdInit:   "Generate a default arbor.toml in the current directory",

	OptStyle:   "Render style: tree, indent or bullet",
	OptOutline: "Also print the structural outline of each expression",
	OptLang:    "Set language (en/zh)",
	OptVerbose: "Verbose output",

	ErrLoad:         "failed to load %s: %v",
	ErrEval:         "error evaluating %s: %v",
	ErrEvalFailed:   "one or more expressions failed to evaluate",
	ErrUnknownStyle: "unknown render style %q (expected tree, indent or bullet)",
	ErrGetWorkDir:   "failed to get working directory: %v",
	ErrConfigExists: "%s already exists",
	ErrCreateConfig: "failed to create config file: %v",

	InitCreating: "Creating %s",
	InitSuccess:  "✓ Done. Adjust the render style in arbor.toml, then run: arbor demo",

	DemoTreeTitle: "=== Tree ===",
	DemoExprTitle: "=== Expression ===",
}

// 中文消息
var messagesZH = Messages{
	RootShort: "渲染并求值由命名节点和算术表达式构成的树",
	CmdPrint:  "渲染通用树文档",
	CmdEval:   "求值表达式文档",
	CmdDemo:   "打印内置示例树和示例表达式",
	CmdInit:   "在当前目录生成默认 arbor.toml",

	OptStyle:   "渲染风格：tree、indent 或 bullet",
	OptOutline: "同时打印每个表达式的结构图",
	OptLang:    "设置语言 (en/zh)",
	OptVerbose: "详细输出",

	ErrLoad:         "加载 %s 失败: %v",
	ErrEval:         "求值 %s 出错: %v",
	ErrEvalFailed:   "部分表达式求值失败",
	ErrUnknownStyle: "未知渲染风格 %q（应为 tree、indent 或 bullet）",
	ErrGetWorkDir:   "获取工作目录失败: %v",
	ErrConfigExists: "%s 已存在",
	ErrCreateConfig: "创建配置文件失败: %v",

	InitCreating: "正在创建 %s",
	InitSuccess:  "✓ 完成。可在 arbor.toml 中调整渲染风格，然后运行: arbor demo",

	DemoTreeTitle: "=== 树 ===",
	DemoExprTitle: "=== 表达式 ===",
}

// 当前消息
var msg = messagesEN

// 当前语言
var currentLang = LangEnglish

// InitLanguage 初始化语言设置
// 优先级: 命令行参数 > 环境变量 ARBOR_LANG > 操作系统语言 > 默认英文
func InitLanguage(langOverride string) {
	// 1. 命令行参数优先
	if langOverride != "" {
		setLanguage(langOverride)
		return
	}

	// 2. 检查环境变量
	if envLang := os.Getenv("ARBOR_LANG"); envLang != "" {
		setLanguage(envLang)
		return
	}

	// 3. 检测操作系统语言
	if detectChineseOS() {
		setLanguage("zh")
		return
	}

	// 4. 默认英文
	setLanguage("en")
}

// setLanguage 设置语言
func setLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "zh", "zh-cn", "zh-tw", "zh-hk", "chinese":
		currentLang = LangChinese
		msg = messagesZH
	default:
		currentLang = LangEnglish
		msg = messagesEN
	}
}

// detectChineseOS 检测操作系统是否为中文环境
func detectChineseOS() bool {
	// Windows 使用 API 检测
	if runtime.GOOS == "windows" && detectWindowsChinese() {
		return true
	}

	// Unix/Linux/Mac: 检查环境变量
	langVars := []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}
	for _, v := range langVars {
		if val := os.Getenv(v); val != "" {
			lower := strings.ToLower(val)
			if strings.Contains(lower, "zh") ||
				strings.Contains(lower, "chinese") {
				return true
			}
		}
	}

	return false
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	return currentLang
}

// Msg 获取当前消息对象
func Msg() *Messages {
	return &msg
}
