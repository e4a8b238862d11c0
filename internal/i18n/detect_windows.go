//go:build windows

package i18n

import (
	"strings"

	"golang.org/x/sys/windows"
)

// detectSystemChinese 使用 Windows API 检测界面语言
func detectSystemChinese() bool {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err != nil || len(langs) == 0 {
		return false
	}
	return strings.HasPrefix(strings.ToLower(langs[0]), "zh")
}
