// Package location 描述源代码中的位置信息
//
// 每个 AST 节点都携带一个 Span，供诊断信息定位使用。
package location

import "fmt"

// Position 表示源代码中的位置
type Position struct {
	Filename string // 文件名
	Line     int    // 行号 (从1开始)
	Column   int    // 列号 (从1开始)
}

// String 返回位置的字符串表示，格式为 "filename:line:column"
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid 检查位置是否有效
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span 表示源代码中的一个范围（开始到结束）
type Span struct {
	Start Position // 开始位置
	End   Position // 结束位置
}

// NewSpan 创建新的 Span
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// At 创建位于单行内的 Span
func At(filename string, line, column, length int) Span {
	start := Position{Filename: filename, Line: line, Column: column}
	end := start
	end.Column += length
	return Span{Start: start, End: end}
}

// IsValid 检查范围是否有效
func (s Span) IsValid() bool {
	return s.Start.IsValid()
}

// Length 返回 Span 的长度（仅在同一行有效）
func (s Span) Length() int {
	if s.Start.Line == s.End.Line {
		return s.End.Column - s.Start.Column
	}
	return 1 // 多行时返回 1
}

// String 返回 Span 的字符串表示
func (s Span) String() string {
	if !s.IsValid() {
		return "<unknown>"
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s:%d:%d-%d", s.Start.Filename, s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.Start.Filename, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
