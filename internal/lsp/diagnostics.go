package lsp

import (
	stderrors "errors"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/multierr"

	"github.com/tangzhangming/tracy/internal/errors"
)

// severityOf 错误级别到诊断严重程度
func severityOf(level errors.Level) protocol.DiagnosticSeverity {
	switch level {
	case errors.LevelWarning:
		return protocol.DiagnosticSeverityWarning
	case errors.LevelNote:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

// ToDiagnostics 将错误转换为诊断信息
//
// multierr 合并的错误逐个展开；内部错误映射为 Error 级别并保留错误码。
func ToDiagnostics(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}

	var diagnostics []protocol.Diagnostic
	for _, e := range multierr.Errors(err) {
		diagnostics = append(diagnostics, toDiagnostic(e))
	}
	return diagnostics
}

func toDiagnostic(err error) protocol.Diagnostic {
	var ce *errors.CompileError
	if stderrors.As(err, &ce) {
		msg := ce.Message
		if len(ce.Notes) > 0 {
			msg += "\n" + strings.Join(ce.Notes, "\n")
		}
		return protocol.Diagnostic{
			Range:    ToRange(ce.Pos),
			Severity: severityOf(ce.Level),
			Code:     ce.Code,
			Source:   Source,
			Message:  msg,
		}
	}

	if ie, ok := errors.AsInternal(err); ok {
		return protocol.Diagnostic{
			Range:    ToRange(ie.Pos),
			Severity: protocol.DiagnosticSeverityError,
			Code:     ie.Code,
			Source:   Source,
			Message:  ie.Message,
		}
	}

	return protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   Source,
		Message:  err.Error(),
	}
}

// ErrorCodeToDiagnostic 将错误码转换为诊断信息
func ErrorCodeToDiagnostic(code, message string, line, col int) protocol.Diagnostic {
	level := errors.LevelError
	if info, ok := errors.GetErrorInfo(code); ok {
		level = info.Level
	}

	start := protocol.Position{Line: zeroBased(line), Character: zeroBased(col)}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: start},
		Severity: severityOf(level),
		Code:     code,
		Source:   Source,
		Message:  message,
	}
}

// zeroBased 1 起始的行列号转为 0 起始，缺失的位置记为 0
func zeroBased(n int) uint32 {
	if n < 1 {
		return 0
	}
	return uint32(n - 1)
}

// PublishDiagnostics 构造 textDocument/publishDiagnostics 通知参数
func PublishDiagnostics(path string, version uint32, err error) protocol.PublishDiagnosticsParams {
	diagnostics := ToDiagnostics(err)
	if diagnostics == nil {
		// 空列表用于清除客户端上已有的诊断
		diagnostics = []protocol.Diagnostic{}
	}
	return protocol.PublishDiagnosticsParams{
		URI:         DocumentURI(path),
		Version:     version,
		Diagnostics: diagnostics,
	}
}
