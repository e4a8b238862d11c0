package lsp

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"

	"github.com/tangzhangming/tracy/internal/ast"
	"github.com/tangzhangming/tracy/internal/errors"
	"github.com/tangzhangming/tracy/internal/location"
	"github.com/tangzhangming/tracy/internal/types"
)

// ============================================================================
// 位置转换
// ============================================================================

func TestToRange(t *testing.T) {
	r := ToRange(location.At("a.bt", 3, 5, 4))
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 4},
		End:   protocol.Position{Line: 2, Character: 8},
	}, r)

	assert.Equal(t, protocol.Range{}, ToRange(location.Span{}))
}

func TestDocumentURI(t *testing.T) {
	path := filepath.Join(string(filepath.Separator), "tmp", "trace.bt")
	docURI := DocumentURI(path)
	assert.Equal(t, protocol.DocumentURI("file:///tmp/trace.bt"), docURI)
	assert.Equal(t, path, PathFromURI(docURI))
}

// ============================================================================
// 诊断
// ============================================================================

func TestToDiagnostics(t *testing.T) {
	pos := location.At("a.bt", 2, 1, 6)
	err := multierr.Combine(
		&errors.CompileError{Code: errors.W0001, Level: errors.LevelWarning, Message: "old name", Pos: pos, Notes: []string{"use kstack"}},
		errors.NewInternal(errors.B0001, pos, "bogus"),
		stderrors.New("resolver failed"),
	)

	diagnostics := ToDiagnostics(err)
	require.Len(t, diagnostics, 3)

	assert.Equal(t, protocol.DiagnosticSeverityWarning, diagnostics[0].Severity)
	assert.Equal(t, errors.W0001, diagnostics[0].Code)
	assert.Equal(t, "old name\nuse kstack", diagnostics[0].Message)
	assert.Equal(t, uint32(1), diagnostics[0].Range.Start.Line)

	assert.Equal(t, protocol.DiagnosticSeverityError, diagnostics[1].Severity)
	assert.Equal(t, errors.B0001, diagnostics[1].Code)
	assert.Contains(t, diagnostics[1].Message, "bogus")

	assert.Equal(t, "resolver failed", diagnostics[2].Message)
	assert.Equal(t, Source, diagnostics[2].Source)

	assert.Nil(t, ToDiagnostics(nil))
}

func TestErrorCodeToDiagnostic(t *testing.T) {
	d := ErrorCodeToDiagnostic(errors.W0001, "deprecated", 4, 2)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, d.Severity)
	assert.Equal(t, protocol.Position{Line: 3, Character: 1}, d.Range.Start)

	d = ErrorCodeToDiagnostic("X9999", "unknown", 1, 1)
	assert.Equal(t, protocol.DiagnosticSeverityError, d.Severity)
}

func TestErrorCodeToDiagnosticMissingPosition(t *testing.T) {
	tests := []struct {
		line, col int
		expected  protocol.Position
	}{
		{0, 0, protocol.Position{}},
		{0, 5, protocol.Position{Character: 4}},
		{3, 0, protocol.Position{Line: 2}},
		{-1, -1, protocol.Position{}},
	}

	for _, tt := range tests {
		d := ErrorCodeToDiagnostic(errors.E0001, "unknown probe type", tt.line, tt.col)
		assert.Equal(t, tt.expected, d.Range.Start, "line %d col %d", tt.line, tt.col)
	}
}

func TestPublishDiagnostics(t *testing.T) {
	params := PublishDiagnostics("/tmp/trace.bt", 3, nil)
	assert.Equal(t, protocol.DocumentURI("file:///tmp/trace.bt"), params.URI)
	assert.Equal(t, uint32(3), params.Version)
	assert.NotNil(t, params.Diagnostics)
	assert.Empty(t, params.Diagnostics)
}

// ============================================================================
// 符号与折叠
// ============================================================================

func buildProgram() *ast.Program {
	a := ast.NewArena(0)
	loc := func(line int) location.Span { return location.At("t.bt", line, 1, 1) }

	cfg := a.NewConfig([]*ast.AssignConfigVarStatement{
		a.NewAssignConfigVarStatement("max_map_keys", a.NewInteger(16, false, loc(1)), loc(1)),
	}, loc(1))

	fn := a.NewSubprog("half", types.CreateUInt64(),
		[]*ast.SubprogArg{a.NewSubprogArg("$n", types.CreateUInt64(), loc(2))}, nil, loc(2))

	body := a.NewBlock([]ast.Statement{
		a.NewAssignMapStatement(a.NewMap("@reads", loc(5)), a.NewInteger(1, false, loc(5)), loc(5)),
		a.NewAssignMapStatement(a.NewMap("@reads", loc(6)), a.NewInteger(2, false, loc(6)), loc(6)),
	}, location.NewSpan(location.Position{Line: 4, Column: 20}, location.Position{Line: 7, Column: 1}))
	ap := a.NewAttachPointWith("kprobe:vfs_read", false,
		ast.AttachPointFields{Provider: "kprobe", Func: "vfs_read"}, loc(4))
	probe := a.NewProbe([]*ast.AttachPoint{ap}, nil, body,
		location.NewSpan(location.Position{Line: 4, Column: 1}, location.Position{Line: 7, Column: 1}))

	return a.NewProgram("", cfg, []*ast.Subprog{fn}, []*ast.Probe{probe}, loc(1))
}

func TestDocumentSymbols(t *testing.T) {
	symbols := DocumentSymbols(buildProgram())
	require.Len(t, symbols, 4)

	assert.Equal(t, "config", symbols[0].Name)
	require.Len(t, symbols[0].Children, 1)
	assert.Equal(t, "16", symbols[0].Children[0].Detail)

	assert.Equal(t, "half", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[1].Kind)
	require.Len(t, symbols[1].Children, 1)
	assert.Equal(t, "$n", symbols[1].Children[0].Name)

	assert.Equal(t, "kprobe:vfs_read", symbols[2].Name)
	assert.Equal(t, protocol.SymbolKindEvent, symbols[2].Kind)
	assert.Equal(t, "struct kprobe:vfs_read_args", symbols[2].Detail)
	require.Len(t, symbols[2].Children, 1)
	assert.Equal(t, "kprobe", symbols[2].Children[0].Detail)

	// 同名 map 只出现一次，位置取第一次出现
	assert.Equal(t, "@reads", symbols[3].Name)
	assert.Equal(t, uint32(4), symbols[3].Range.Start.Line)

	assert.Empty(t, DocumentSymbols(nil))
}

func TestFoldingRanges(t *testing.T) {
	ranges := FoldingRanges(buildProgram())
	require.Len(t, ranges, 2)
	for _, r := range ranges {
		assert.Equal(t, uint32(3), r.StartLine)
		assert.Equal(t, uint32(6), r.EndLine)
		require.NotNil(t, r.Kind)
		assert.Equal(t, FoldingRangeKindRegion, *r.Kind)
	}
}
