package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer 以缩进树的形式输出 AST（-d ast 调试输出）
type Printer struct {
	out   io.Writer
	depth int
}

// NewPrinter 创建输出到 out 的 Printer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print 输出以 n 为根的整棵树
func (p *Printer) Print(n Node) {
	n.Accept(p)
}

// Sprint 把整棵树输出为字符串
func Sprint(n Node) string {
	var sb strings.Builder
	NewPrinter(&sb).Print(n)
	return sb.String()
}

func (p *Printer) line(text string) {
	fmt.Fprintf(p.out, "%s%s\n", strings.Repeat(" ", p.depth), text)
}

func (p *Printer) expr(e Expression, text string) {
	if t := e.Base().Type; !t.IsNone() {
		text += " :: [" + t.String() + "]"
	}
	p.line(text)
}

func (p *Printer) children(n Node) {
	p.depth++
	for _, child := range Children(n) {
		child.Accept(p)
	}
	p.depth--
}

func (p *Printer) VisitInteger(e *IntegerLiteral)     { p.expr(e, "int: "+strconv.FormatInt(e.N, 10)) }
func (p *Printer) VisitString(e *StringLiteral)       { p.expr(e, "string: "+e.Str) }
func (p *Printer) VisitStackMode(e *StackModeLiteral) { p.expr(e, "stack_mode: "+e.Mode) }
func (p *Printer) VisitBuiltin(e *Builtin)            { p.expr(e, "builtin: "+e.Ident) }
func (p *Printer) VisitIdentifier(e *Identifier)      { p.expr(e, "identifier: "+e.Ident) }
func (p *Printer) VisitVariable(e *Variable)          { p.expr(e, "variable: "+e.Ident) }

func (p *Printer) VisitPositionalParameter(e *PositionalParameter) {
	p.expr(e, "param: "+e.String())
}

func (p *Printer) VisitCall(e *Call) {
	p.expr(e, "call: "+e.Func)
	p.children(e)
}

func (p *Printer) VisitSizeof(e *Sizeof) {
	if e.Expr == nil {
		p.expr(e, "sizeof: "+e.ArgType.String())
		return
	}
	p.expr(e, "sizeof:")
	p.children(e)
}

func (p *Printer) VisitOffsetof(e *Offsetof) {
	field := strings.Join(e.Field, ".")
	if e.Expr == nil {
		p.expr(e, "offsetof: "+e.Record.String()+" "+field)
		return
	}
	p.expr(e, "offsetof: "+field)
	p.children(e)
}

func (p *Printer) VisitMap(e *Map) {
	p.expr(e, "map: "+e.Ident)
	p.children(e)
}

func (p *Printer) VisitBinop(e *Binop) {
	p.expr(e, e.OpString())
	p.children(e)
}

func (p *Printer) VisitUnop(e *Unop) {
	p.expr(e, e.OpString())
	p.children(e)
}

func (p *Printer) VisitTernary(e *Ternary) {
	p.expr(e, "?:")
	p.children(e)
}

func (p *Printer) VisitFieldAccess(e *FieldAccess) {
	p.expr(e, ".")
	p.children(e)
	p.depth++
	if e.Index >= 0 {
		p.line(strconv.Itoa(e.Index))
	} else {
		p.line(e.Field)
	}
	p.depth--
}

func (p *Printer) VisitArrayAccess(e *ArrayAccess) {
	p.expr(e, "[]")
	p.children(e)
}

func (p *Printer) VisitCast(e *Cast) {
	p.line("(" + e.Type.String() + ")")
	p.children(e)
}

func (p *Printer) VisitTuple(e *Tuple) {
	p.expr(e, "tuple:")
	p.children(e)
}

func (p *Printer) VisitExprStatement(s *ExprStatement) { p.children(s) }

func (p *Printer) VisitAssignMapStatement(s *AssignMapStatement) {
	p.line("=")
	p.children(s)
}

func (p *Printer) VisitAssignVarStatement(s *AssignVarStatement) {
	p.line("=")
	p.children(s)
}

func (p *Printer) VisitAssignConfigVarStatement(s *AssignConfigVarStatement) {
	p.line("=")
	p.depth++
	p.line("config var: " + s.ConfigVar)
	p.depth--
	p.children(s)
}

func (p *Printer) VisitVarDeclStatement(s *VarDeclStatement) {
	p.line("decl")
	p.children(s)
}

func (p *Printer) VisitBlock(s *Block) { p.children(s) }

func (p *Printer) VisitIf(s *If) {
	p.line("if")
	p.depth++
	s.Cond.Accept(p)
	p.line("then")
	p.children(s.IfBlock)
	if s.ElseBlock != nil {
		p.line("else")
		p.children(s.ElseBlock)
	}
	p.depth--
}

func (p *Printer) VisitUnroll(s *Unroll) {
	p.line("unroll")
	p.children(s)
}

func (p *Printer) VisitJump(s *Jump) {
	p.line(s.OpString())
	p.children(s)
}

func (p *Printer) VisitPredicate(pred *Predicate) {
	p.line("pred")
	p.children(pred)
}

func (p *Printer) VisitAttachPoint(ap *AttachPoint) { p.line(ap.Name()) }

func (p *Printer) VisitProbe(probe *Probe) {
	for _, ap := range probe.AttachPoints {
		ap.Accept(p)
	}
	p.depth++
	if probe.Pred != nil {
		probe.Pred.Accept(p)
	}
	probe.Block.Accept(p)
	p.depth--
}

func (p *Printer) VisitSubprogArg(a *SubprogArg) { p.line(a.Name() + ": " + a.Type.String()) }

func (p *Printer) VisitSubprog(s *Subprog) {
	p.line(s.Name() + ": " + s.ReturnType.String())
	p.depth++
	if len(s.Args) > 0 {
		p.line("args")
		p.depth++
		for _, arg := range s.Args {
			arg.Accept(p)
		}
		p.depth--
	}
	p.line("body")
	p.depth++
	for _, stmt := range s.Stmts {
		stmt.Accept(p)
	}
	p.depth -= 2
}

func (p *Printer) VisitConfig(c *Config) {
	p.line("config")
	p.children(c)
}

func (p *Printer) VisitProgram(prog *Program) {
	if prog.CDefinitions != "" {
		p.line(prog.CDefinitions)
	}
	p.line("Program")
	p.children(prog)
}
