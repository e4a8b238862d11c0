package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/tangzhangming/tracy/internal/i18n"
	"github.com/tangzhangming/tracy/internal/location"
)

// CompileError 面向用户的编译诊断
type CompileError struct {
	Code    string        // 错误码
	Level   Level         // 错误级别
	Message string        // 主消息
	Pos     location.Span // 源代码位置
	Notes   []string      // 附加说明
}

// Error 实现 error 接口
func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos.Start, e.Level, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Level, e.Message)
}

// NewCompile 使用错误码对应的级别和 i18n 消息创建用户诊断
func NewCompile(code string, pos location.Span, args ...interface{}) *CompileError {
	e := &CompileError{Code: code, Level: LevelError, Message: code, Pos: pos}
	if info, ok := GetErrorInfo(code); ok {
		e.Level = info.Level
		e.Message = i18n.T(info.MessageID, args...)
	}
	return e
}

// InternalError 编译器内部一致性错误
//
// 与用户错误分开：它意味着编译器自身存在缺陷，编译必须中止，
// 不允许被调用方静默忽略或替换为默认值。
type InternalError struct {
	Code    string
	Message string
	Pos     location.Span
}

// NewInternal 使用 i18n 消息创建内部错误
func NewInternal(code string, pos location.Span, args ...interface{}) *InternalError {
	msg := code
	if info, ok := GetErrorInfo(code); ok {
		msg = i18n.T(info.MessageID, args...)
	}
	return &InternalError{Code: code, Message: msg, Pos: pos}
}

// Error 实现 error 接口
func (e *InternalError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: internal error [%s]: %s", e.Pos.Start, e.Code, e.Message)
	}
	return fmt.Sprintf("internal error [%s]: %s", e.Code, e.Message)
}

// IsBug 内部错误总是编译器缺陷
func (e *InternalError) IsBug() bool { return true }

// IsInternal 检查错误链中是否包含 InternalError
func IsInternal(err error) bool {
	var ie *InternalError
	return stderrors.As(err, &ie)
}

// AsInternal 从错误链中取出 InternalError
func AsInternal(err error) (*InternalError, bool) {
	var ie *InternalError
	if stderrors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
