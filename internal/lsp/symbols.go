package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/tangzhangming/tracy/internal/ast"
)

// DocumentSymbols 获取程序的文档符号列表
//
// 顺序为 config、子程序、探针，最后是程序中出现的全部 map。
func DocumentSymbols(prog *ast.Program) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	if prog == nil {
		return symbols
	}

	if prog.Config != nil {
		symbols = append(symbols, configToSymbol(prog.Config))
	}
	for _, fn := range prog.Functions {
		symbols = append(symbols, subprogToSymbol(fn))
	}
	for _, probe := range prog.Probes {
		symbols = append(symbols, probeToSymbol(probe))
	}
	return append(symbols, mapSymbols(prog)...)
}

func configToSymbol(c *ast.Config) protocol.DocumentSymbol {
	symbol := protocol.DocumentSymbol{
		Name:           "config",
		Kind:           protocol.SymbolKindNamespace,
		Range:          ToRange(c.Loc()),
		SelectionRange: ToRange(c.Loc()),
	}
	for _, stmt := range c.Stmts {
		symbol.Children = append(symbol.Children, protocol.DocumentSymbol{
			Name:           stmt.ConfigVar,
			Detail:         stmt.Expr.String(),
			Kind:           protocol.SymbolKindProperty,
			Range:          ToRange(stmt.Loc()),
			SelectionRange: ToRange(stmt.Loc()),
		})
	}
	return symbol
}

func subprogToSymbol(fn *ast.Subprog) protocol.DocumentSymbol {
	symbol := protocol.DocumentSymbol{
		Name:           fn.Name(),
		Detail:         fn.String(),
		Kind:           protocol.SymbolKindFunction,
		Range:          ToRange(fn.Loc()),
		SelectionRange: ToRange(fn.Loc()),
	}
	for _, arg := range fn.Args {
		symbol.Children = append(symbol.Children, protocol.DocumentSymbol{
			Name:           arg.Name(),
			Detail:         arg.Type.String(),
			Kind:           protocol.SymbolKindVariable,
			Range:          ToRange(arg.Loc()),
			SelectionRange: ToRange(arg.Loc()),
		})
	}
	return symbol
}

func probeToSymbol(probe *ast.Probe) protocol.DocumentSymbol {
	symbol := protocol.DocumentSymbol{
		Name:           probe.Name(),
		Detail:         probe.ArgsTypename(),
		Kind:           protocol.SymbolKindEvent,
		Range:          ToRange(probe.Loc()),
		SelectionRange: ToRange(probe.Loc()),
	}
	for _, ap := range probe.AttachPoints {
		symbol.Children = append(symbol.Children, protocol.DocumentSymbol{
			Name:           ap.Name(),
			Detail:         ap.ProbeType().String(),
			Kind:           protocol.SymbolKindEvent,
			Range:          ToRange(ap.Loc()),
			SelectionRange: ToRange(ap.Loc()),
		})
	}
	return symbol
}

// mapSymbols 每个 map 取第一次出现的位置
func mapSymbols(prog *ast.Program) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	seen := make(map[string]bool)

	ast.Inspect(prog, func(n ast.Node) bool {
		m, ok := n.(*ast.Map)
		if !ok || seen[m.Ident] {
			return true
		}
		seen[m.Ident] = true
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           m.Ident,
			Kind:           protocol.SymbolKindVariable,
			Range:          ToRange(m.Loc()),
			SelectionRange: ToRange(m.Loc()),
		})
		return true
	})
	return symbols
}
