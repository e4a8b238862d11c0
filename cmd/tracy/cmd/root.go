package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tangzhangming/tracy/internal/ast"
	"github.com/tangzhangming/tracy/internal/config"
	"github.com/tangzhangming/tracy/internal/errors"
	"github.com/tangzhangming/tracy/internal/i18n"
	"github.com/tangzhangming/tracy/internal/log"
)

// Version 版本号
const Version = "0.1.0"

// options 所有子命令共享的运行环境
type options struct {
	cfgFile string
	lang    string

	cfg    *config.Config
	logger *zap.Logger
}

// newArena 按配置创建本次调用使用的 Arena
func (o *options) newArena() *ast.Arena {
	return ast.NewArena(0,
		ast.WithLogger(o.logger),
		ast.WithNormalizer(ast.NewNormalizer(o.cfg.DeprecatedNames())),
	)
}

// load 加载配置、初始化语言和日志
func (o *options) load(cmd *cobra.Command) error {
	path := o.cfgFile
	if path == "" {
		path = config.FindConfigFile(".")
	}

	o.cfg = config.Default()
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}

	i18n.InitLanguage(o.lang, o.cfg.Log.Language)

	logger, err := o.newLogger(cmd)
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}

// newLogger 配置了日志文件时写入文件，否则写入命令的 stderr
func (o *options) newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if o.cfg.Log.Output != "" {
		return log.New(o.cfg.Log)
	}
	return log.NewWriter(o.cfg.Log, cmd.ErrOrStderr())
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "tracy",
		Short: i18n.T(i18n.CmdRootShort),
		Long: `tracy builds and inspects the attach point and type model of
tracing programs.

Commands:
  expand     - expand an attach point template against resolved matches
  dump       - print the expanded program tree or its document symbols
  type       - build the type descriptor of an identifier
  normalize  - rewrite deprecated builtin and function names
  init       - create a default tracy.toml
  version    - print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&o.lang, "lang", "", "message language (en/zh)")

	rootCmd.AddCommand(
		newExpandCmd(o),
		newDumpCmd(o),
		newTypeCmd(o),
		newNormalizeCmd(o),
		newInitCmd(o),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute 执行命令行
func Execute() error {
	// 帮助文本在构造命令时生成，需要先确定语言
	i18n.InitLanguage(langFromArgs(os.Args[1:]), "")
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		return err
	}
	return nil
}

// langFromArgs 从参数中提前取出 --lang
func langFromArgs(args []string) string {
	for i, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--lang="); ok {
			return v
		}
		if arg == "--lang" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// printError 输出命令失败的原因
//
// 编译诊断和内部错误自带级别前缀，其余错误补上 "error: "。
func printError(cmd *cobra.Command, err error) {
	var ce *errors.CompileError
	if stderrors.As(err, &ce) || errors.IsInternal(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
}
