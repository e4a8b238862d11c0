package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/tracy/internal/i18n"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T(i18n.CmdVersionShort),
		Args:  cobra.NoArgs,
		// 不需要加载配置
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tracy %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
