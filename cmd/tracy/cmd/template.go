package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tangzhangming/tracy/internal/ast"
	"github.com/tangzhangming/tracy/internal/errors"
	"github.com/tangzhangming/tracy/internal/location"
)

// commandLine 命令行输入使用的文件名
const commandLine = "<command line>"

// templateFlags 附加点模板参数，expand 和 dump 共用
type templateFlags struct {
	target string
	ns     string
	fn     string
}

func (f *templateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.target, "target", "", "template target")
	cmd.Flags().StringVar(&f.ns, "ns", "", "template namespace")
	cmd.Flags().StringVar(&f.fn, "func", "*", "template function pattern")
}

// buildProgram 构造只含一个模板附加点的程序，并用给定的匹配串展开
//
// provider 无法识别时返回 E0001，此时不会构造任何节点。
// 展开失败时仍返回已构造的程序，附加点保持展开前的状态。
func buildProgram(arena *ast.Arena, f *templateFlags, file, provider string, matches []string) (*ast.Program, error) {
	loc := location.At(file, 1, 1, len(provider))

	name := ast.ExpandProviderName(provider)
	if ast.ProbeTypeOf(name) == ast.ProbeTypeInvalid {
		return nil, errors.NewCompile(errors.E0001, loc, provider)
	}

	fields := ast.AttachPointFields{
		Provider:  name,
		Target:    f.target,
		NS:        f.ns,
		Func:      f.fn,
		Expansion: ast.ExpansionFull,
	}
	tmpl := arena.NewAttachPointWith(provider+":"+f.fn, false, fields, loc)
	probe := arena.NewProbe([]*ast.AttachPoint{tmpl}, nil, arena.NewBlock(nil, loc), loc)
	prog := arena.NewProgram("", nil, nil, []*ast.Probe{probe}, loc)

	resolver := ast.ResolverFunc(func(*ast.AttachPoint) ([]string, error) {
		return matches, nil
	})
	if err := ast.ExpandProgram(arena, prog, resolver); err != nil {
		return prog, err
	}
	if err := prog.AssignIndices(); err != nil {
		return prog, err
	}
	return prog, nil
}
