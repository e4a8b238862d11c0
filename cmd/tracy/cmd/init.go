package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/tracy/internal/config"
	"github.com/tangzhangming/tracy/internal/i18n"
)

// initOptions init 子命令参数
type initOptions struct {
	dir      string
	enumBits int
	language string
}

func newInitCmd(o *options) *cobra.Command {
	n := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: i18n.T(i18n.CmdInitShort),
		Long: `Writes a commented tracy.toml with the default settings.

Examples:
  tracy init
  tracy init --dir ./probes --enum-bits 32`,
		Args: cobra.NoArgs,
		// 目录中可能还没有合法的配置
		PersistentPreRunE: func(*cobra.Command, []string) error {
			i18n.InitLanguage(o.lang, "")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, n)
		},
	}

	cmd.Flags().StringVar(&n.dir, "dir", ".", "directory to create the config in")
	cmd.Flags().IntVar(&n.enumBits, "enum-bits", 0, "enum descriptor width (default 64)")
	cmd.Flags().StringVar(&n.language, "language", "", "message language written to the config")
	return cmd
}

func runInit(cmd *cobra.Command, n *initOptions) error {
	// 检查是否已存在配置文件
	path := filepath.Join(n.dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s", i18n.T(i18n.InitConfigExists, path))
	}

	// 生成默认配置并应用命令行参数
	cfg := config.Default()
	if n.enumBits != 0 {
		cfg.Compiler.EnumBits = n.enumBits
	}
	if n.language != "" {
		cfg.Log.Language = n.language
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), i18n.T(i18n.InitCreated, path))
	return nil
}
