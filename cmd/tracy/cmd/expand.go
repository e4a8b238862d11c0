package cmd

import (
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/tangzhangming/tracy/internal/ast"
	"github.com/tangzhangming/tracy/internal/i18n"
)

// expandOptions expand 子命令参数
type expandOptions struct {
	templateFlags
	json bool
}

// attachPointJSON 展开结果的 JSON 形式
type attachPointJSON struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	ProbeType string `json:"probe_type"`
	Target    string `json:"target,omitempty"`
	NS        string `json:"ns,omitempty"`
	Func      string `json:"func,omitempty"`
}

func newExpandCmd(o *options) *cobra.Command {
	e := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand <provider> <match>...",
		Short: i18n.T(i18n.CmdExpandShort),
		Long: `Expands a wildcard attach point template into one attach point per
resolved match. Each match is decomposed according to the provider.

Examples:
  tracy expand kprobe vfs_read ext4:ext4_file_read_iter
  tracy expand usdt /usr/bin/app:myprovider:myprobe --json
  tracy expand uprobe /bin/bash:readline --target /bin/bash --func 'read*'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, o, e, args[0], args[1:])
		},
	}

	e.register(cmd)
	cmd.Flags().BoolVar(&e.json, "json", false, "print JSON")
	return cmd
}

func runExpand(cmd *cobra.Command, o *options, e *expandOptions, provider string, matches []string) error {
	arena := o.newArena()
	defer arena.Free()

	prog, err := buildProgram(arena, &e.templateFlags, commandLine, provider, matches)
	if err != nil {
		return err
	}

	aps := prog.Probes[0].AttachPoints
	if e.json {
		return writeAttachPointsJSON(cmd.OutOrStdout(), aps)
	}
	for _, ap := range aps {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", ap.Index(), ap.Name())
	}
	return nil
}

func writeAttachPointsJSON(w io.Writer, aps []*ast.AttachPoint) error {
	out := make([]attachPointJSON, 0, len(aps))
	for _, ap := range aps {
		out = append(out, attachPointJSON{
			Index:     ap.Index(),
			Name:      ap.Name(),
			Provider:  ap.Provider,
			ProbeType: ap.ProbeType().String(),
			Target:    ap.Target,
			NS:        ap.NS,
			Func:      ap.Func,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode attach points: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
