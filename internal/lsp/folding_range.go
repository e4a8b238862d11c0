package lsp

import (
	"github.com/tangzhangming/tracy/internal/ast"
)

// FoldingRangeKind 折叠范围类型
type FoldingRangeKind string

const (
	FoldingRangeKindRegion FoldingRangeKind = "region"
)

// FoldingRange 折叠范围
type FoldingRange struct {
	StartLine uint32            `json:"startLine"`
	EndLine   uint32            `json:"endLine"`
	Kind      *FoldingRangeKind `json:"kind,omitempty"`
}

// FoldingRanges 收集跨越多行的语句块、探针和子程序
func FoldingRanges(prog *ast.Program) []FoldingRange {
	ranges := []FoldingRange{}
	if prog == nil {
		return ranges
	}

	kind := FoldingRangeKindRegion
	ast.Inspect(prog, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.Probe, *ast.Subprog, *ast.Block, *ast.Config:
		default:
			return true
		}

		loc := n.Loc()
		if !loc.IsValid() || loc.End.Line <= loc.Start.Line {
			return true
		}
		ranges = append(ranges, FoldingRange{
			StartLine: uint32(loc.Start.Line - 1),
			EndLine:   uint32(loc.End.Line - 1),
			Kind:      &kind,
		})
		return true
	})
	return ranges
}
