//go:build !windows

package i18n

// detectSystemChinese 非 Windows 系统只依赖 locale 环境变量
func detectSystemChinese() bool { return false }
