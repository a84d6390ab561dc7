//go:build !windows

package main

// detectWindowsChinese 非 Windows 平台通过环境变量判断，见 detectChineseOS
func detectWindowsChinese() bool {
	return false
}
