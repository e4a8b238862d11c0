package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/tracy/internal/i18n"
	"github.com/tangzhangming/tracy/internal/location"
)

func newNormalizeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <name>...",
		Short: i18n.T(i18n.CmdNormalizeShort),
		Long: `Prints the canonical form of builtin and function names. Deprecated
names produce a warning on stderr once per name.

Examples:
  tracy normalize stack sym pid`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arena := o.newArena()
			defer arena.Free()

			for i, name := range args {
				b := arena.NewBuiltin(name, location.At("<command line>", 1, i+1, len(name)))
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, b.Ident)
			}
			return nil
		},
	}
}
