// Package errors 提供 tracy 编译器前端的错误分类
package errors

import "github.com/tangzhangming/tracy/internal/i18n"

// ============================================================================
// 错误级别
// ============================================================================

// Level 错误级别
type Level int

const (
	LevelError   Level = iota // 错误
	LevelWarning              // 警告
	LevelNote                 // 提示
	LevelBug                  // 编译器内部缺陷
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	case LevelBug:
		return "bug"
	default:
		return "unknown"
	}
}

// ============================================================================
// 错误码
// ============================================================================

// 内部缺陷错误码 (B 开头)，出现即说明编译器本身有问题
const (
	B0001 = "B0001" // 展开时遇到无法识别的探针类型
	B0002 = "B0002" // 索引重复分配
)

// 用户输入错误码 (E 开头)
const (
	E0001 = "E0001" // 无法识别的 provider
)

// 警告码 (W 开头)
const (
	W0001 = "W0001" // 使用了已废弃的标识符
)

// 配置错误码 (C 开头)
const (
	C0001 = "C0001" // 配置文件无法读取
	C0002 = "C0002" // 配置项取值非法
)

// ErrorInfo 错误码信息
type ErrorInfo struct {
	Code      string // 错误码
	Level     Level  // 错误级别
	MessageID string // i18n 消息 ID
	Category  string // 错误分类
}

var errorInfos = map[string]ErrorInfo{
	B0001: {B0001, LevelBug, i18n.BugUnknownProbeType, "attachpoint"},
	B0002: {B0002, LevelBug, i18n.BugIndexReassigned, "attachpoint"},

	E0001: {E0001, LevelError, i18n.ErrUnknownProvider, "attachpoint"},

	W0001: {W0001, LevelWarning, i18n.WarnDeprecatedName, "identifier"},

	C0001: {C0001, LevelError, i18n.ConfigReadFailed, "config"},
	C0002: {C0002, LevelError, i18n.ConfigInvalidValue, "config"},
}

// GetErrorInfo 获取错误码信息
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, ok := errorInfos[code]
	return info, ok
}

// IsBugCode 检查是否为内部缺陷错误码
func IsBugCode(code string) bool {
	info, ok := errorInfos[code]
	return ok && info.Level == LevelBug
}
