package i18n

import (
	"os"
	"strings"
)

// EnvLanguage 指定消息语言的环境变量
const EnvLanguage = "TRACY_LANG"

// InitLanguage 初始化语言设置
// 优先级: 命令行参数 > 配置文件 > 环境变量 TRACY_LANG > 操作系统语言 > 默认英文
func InitLanguage(flagLang, configLang string) {
	for _, lang := range []string{flagLang, configLang, os.Getenv(EnvLanguage)} {
		if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
			SetLanguageFromString(lang)
			return
		}
	}

	if detectChineseOS() {
		SetLanguage(LangChinese)
		return
	}
	SetLanguage(LangEnglish)
}

// detectChineseOS 检测操作系统是否为中文环境
func detectChineseOS() bool {
	if detectSystemChinese() {
		return true
	}

	// 检查 locale 环境变量
	for _, v := range []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"} {
		if val := strings.ToLower(os.Getenv(v)); val != "" {
			return strings.HasPrefix(val, "zh") || strings.Contains(val, "chinese")
		}
	}
	return false
}
