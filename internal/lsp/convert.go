// Package lsp 把 tracy 的诊断和 AST 转换为 LSP 消息
package lsp

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/tangzhangming/tracy/internal/location"
)

// Source 诊断来源
const Source = "tracy"

// DocumentURI 将文件路径转换为文档 URI
func DocumentURI(path string) protocol.DocumentURI {
	return protocol.DocumentURI(uri.File(path))
}

// PathFromURI 将文档 URI 转换为文件路径
func PathFromURI(docURI protocol.DocumentURI) string {
	u, err := uri.Parse(string(docURI))
	if err != nil {
		return string(docURI)
	}
	return u.Filename()
}

// ToPosition 将源代码位置转换为 LSP 位置（LSP 行列号从 0 开始）
func ToPosition(p location.Position) protocol.Position {
	if !p.IsValid() {
		return protocol.Position{}
	}
	col := p.Column - 1
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: uint32(p.Line - 1), Character: uint32(col)}
}

// ToRange 将 Span 转换为 LSP 范围
func ToRange(s location.Span) protocol.Range {
	start := ToPosition(s.Start)
	end := start
	if s.End.IsValid() {
		end = ToPosition(s.End)
	}
	return protocol.Range{Start: start, End: end}
}
