//go:build windows

package main

import (
	"syscall"
)

var (
	kernel32                     = syscall.NewLazyDLL("kernel32.dll")
	procGetUserDefaultUILanguage = kernel32.NewProc("GetUserDefaultUILanguage")
)

// detectWindowsChinese 使用 Windows API 检测是否为中文系统
func detectWindowsChinese() bool {
	// 调用 GetUserDefaultUILanguage 获取用户界面语言
	// 返回值是 LANGID (Language Identifier)
	ret, _, _ := procGetUserDefaultUILanguage.Call()
	langID := uint16(ret)

	// 提取主语言 ID (低 10 位)，中文是 0x04
	// 简体中文: 0x0804 (zh-CN)
	// 繁体中文: 0x0404 (zh-TW), 0x0C04 (zh-HK), 0x1404 (zh-MO)
	return langID&0x3FF == 0x04
}
