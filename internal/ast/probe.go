package ast

import (
	"strings"

	"github.com/tangzhangming/tracy/internal/errors"
	"github.com/tangzhangming/tracy/internal/types"
)

// ============================================================================
// 探针与子程序
// ============================================================================

// Probe 若干附加点共享同一个守卫条件和动作块
type Probe struct {
	node
	AttachPoints []*AttachPoint
	Pred         *Predicate // 可为 nil
	Block        *Block

	index int
}

func (p *Probe) declNode() {}

// Index 返回探针索引，未分配时为 0
func (p *Probe) Index() int { return p.index }

// Name 按附加点顺序用逗号拼接各附加点的名字
func (p *Probe) Name() string {
	names := make([]string, 0, len(p.AttachPoints))
	for _, ap := range p.AttachPoints {
		names = append(names, ap.Name())
	}
	return strings.Join(names, ",")
}

// ArgsTypename 探针参数结构体的生成类型名
func (p *Probe) ArgsTypename() string {
	return "struct " + p.Name() + "_args"
}

// HasAPOfProbeType 是否有附加点属于类别 t
func (p *Probe) HasAPOfProbeType(t ProbeType) bool {
	for _, ap := range p.AttachPoints {
		if ap.ProbeType() == t {
			return true
		}
	}
	return false
}

func (p *Probe) String() string {
	out := p.Name()
	if p.Pred != nil {
		out += " " + p.Pred.String()
	}
	return out + " " + p.Block.String()
}

// SubprogArg 子程序参数
type SubprogArg struct {
	node
	Type types.SizedType
	name string
}

// Name 返回参数名
func (a *SubprogArg) Name() string { return a.name }

func (a *SubprogArg) String() string { return a.name + " : " + a.Type.String() }

// Subprog 用户定义的子程序，独立于探针
type Subprog struct {
	node
	Args       []*SubprogArg
	ReturnType types.SizedType
	Stmts      []Statement
	name       string
}

func (s *Subprog) declNode() {}

// Name 返回子程序名
func (s *Subprog) Name() string { return s.name }

func (s *Subprog) String() string {
	args := make([]string, 0, len(s.Args))
	for _, arg := range s.Args {
		args = append(args, arg.String())
	}
	return "fn " + s.name + "(" + strings.Join(args, ", ") + "): " + s.ReturnType.String()
}

// Program 编译单元的根节点
type Program struct {
	node
	CDefinitions string // 内联的 C 定义
	Config       *Config
	Functions    []*Subprog
	Probes       []*Probe

	indexed bool
}

func (p *Program) String() string {
	var parts []string
	if p.Config != nil {
		parts = append(parts, p.Config.String())
	}
	for _, fn := range p.Functions {
		parts = append(parts, fn.String())
	}
	for _, probe := range p.Probes {
		parts = append(parts, probe.String())
	}
	return strings.Join(parts, "\n")
}

// Declarations 按子程序、探针的顺序返回全部顶层声明
func (p *Program) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(p.Functions)+len(p.Probes))
	for _, fn := range p.Functions {
		decls = append(decls, fn)
	}
	for _, probe := range p.Probes {
		decls = append(decls, probe)
	}
	return decls
}

// AssignIndices 为探针和附加点分配索引
//
// 索引按声明顺序从 1 开始，附加点在整个程序内连续编号。
// 这是索引唯一的写入口，每个程序只能调用一次。
func (p *Program) AssignIndices() error {
	if p.indexed {
		return errors.NewInternal(errors.B0002, p.loc, "program")
	}
	p.indexed = true

	apIndex := 0
	for i, probe := range p.Probes {
		probe.index = i + 1
		for _, ap := range probe.AttachPoints {
			apIndex++
			ap.index = apIndex
		}
	}
	return nil
}
