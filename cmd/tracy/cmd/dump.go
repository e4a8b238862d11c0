package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"go.lsp.dev/protocol"

	"github.com/tangzhangming/tracy/internal/ast"
	"github.com/tangzhangming/tracy/internal/errors"
	"github.com/tangzhangming/tracy/internal/i18n"
	"github.com/tangzhangming/tracy/internal/lsp"
)

// dumpOptions dump 子命令参数
type dumpOptions struct {
	templateFlags
	symbols bool
	file    string
}

// documentJSON 文档级输出：符号、折叠范围和诊断
type documentJSON struct {
	URI           protocol.DocumentURI      `json:"uri"`
	Symbols       []protocol.DocumentSymbol `json:"symbols"`
	FoldingRanges []lsp.FoldingRange        `json:"foldingRanges"`
	Diagnostics   []protocol.Diagnostic     `json:"diagnostics"`
}

func newDumpCmd(o *options) *cobra.Command {
	d := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump <provider> <match>...",
		Short: i18n.T(i18n.CmdDumpShort),
		Long: `Builds a program from an attach point template, expands it against the
given matches and prints the resulting tree.

With --symbols the document symbols, folding ranges and diagnostics of the
program are printed as JSON instead. User errors are reported as
diagnostics, internal errors still fail the command.

Examples:
  tracy dump kprobe vfs_read vfs_write
  tracy dump usdt /usr/bin/app:myprovider:myprobe --symbols`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, o, d, args[0], args[1:])
		},
	}

	d.register(cmd)
	cmd.Flags().BoolVar(&d.symbols, "symbols", false, "print document symbols as JSON")
	cmd.Flags().StringVar(&d.file, "file", "cmdline.bt", "document path reported with --symbols")
	return cmd
}

func runDump(cmd *cobra.Command, o *options, d *dumpOptions, provider string, matches []string) error {
	arena := o.newArena()
	defer arena.Free()

	if !d.symbols {
		prog, err := buildProgram(arena, &d.templateFlags, commandLine, provider, matches)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), ast.Sprint(prog))
		return err
	}

	path, err := filepath.Abs(d.file)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", d.file, err)
	}

	prog, err := buildProgram(arena, &d.templateFlags, path, provider, matches)
	if errors.IsInternal(err) {
		return err
	}
	return writeDocumentJSON(cmd.OutOrStdout(), path, prog, err)
}

func writeDocumentJSON(w io.Writer, path string, prog *ast.Program, err error) error {
	params := lsp.PublishDiagnostics(path, 0, err)
	doc := documentJSON{
		URI:           params.URI,
		Symbols:       lsp.DocumentSymbols(prog),
		FoldingRanges: lsp.FoldingRanges(prog),
		Diagnostics:   params.Diagnostics,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
