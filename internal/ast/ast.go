package ast

import (
	"strconv"
	"strings"

	"github.com/tangzhangming/tracy/internal/location"
	"github.com/tangzhangming/tracy/internal/types"
)

// Location 节点的源代码位置
type Location = location.Span

// Node 是所有 AST 节点的基接口
type Node interface {
	Loc() Location    // 返回节点在源代码中的位置
	ID() NodeID       // 返回 Arena 分配的节点标识
	String() string   // 返回节点的字符串表示（用于调试）
	Accept(v Visitor) // 分派到 Visitor 对应的方法
}

// Expression 表示一个表达式节点
type Expression interface {
	Node
	Base() *ExprBase
	exprNode()
}

// Statement 表示一个语句节点
type Statement interface {
	Node
	stmtNode()
}

// Declaration 表示一个顶层声明节点（Probe 或 Subprog）
type Declaration interface {
	Node
	declNode()
}

// node 所有节点共享的位置与标识
type node struct {
	loc Location
	id  NodeID
}

func (n *node) Loc() Location { return n.loc }
func (n *node) ID() NodeID    { return n.id }

// ============================================================================
// 表达式节点
// ============================================================================

// ExprBase 所有表达式共享的字段
//
// 分类标志在构造时设置，后续阶段无需再检查具体类型。
// KeyForMap / Map / Var 是反向引用，与正向引用一起构成环；
// 它们指向同一 Arena 中的节点，不表示所有权。
type ExprBase struct {
	node
	Type types.SizedType

	IsLiteral  bool
	IsMap      bool
	IsVariable bool

	KeyForMap *Map      // 作为哪个 Map 的键
	Map       *Map      // 被赋值给哪个 Map
	Var       *Variable // 被赋值给哪个变量
}

func (e *ExprBase) Base() *ExprBase { return e }
func (e *ExprBase) exprNode()       {}

// IntegerLiteral 整数字面量
type IntegerLiteral struct {
	ExprBase
	N          int64
	IsNegative bool
}

func (e *IntegerLiteral) String() string { return strconv.FormatInt(e.N, 10) }

// StringLiteral 字符串字面量
type StringLiteral struct {
	ExprBase
	Str string
}

func (e *StringLiteral) String() string { return strconv.Quote(e.Str) }

// StackModeLiteral 栈格式字面量 (bpftrace, perf, raw)
type StackModeLiteral struct {
	ExprBase
	Mode string
}

func (e *StackModeLiteral) String() string { return e.Mode }

// Builtin 内建变量 (pid, comm, kstack ...)
type Builtin struct {
	ExprBase
	Ident string
}

func (e *Builtin) String() string { return e.Ident }

// IsArgument 是否为 argN 形式的内建参数
func (e *Builtin) IsArgument() bool {
	return strings.HasPrefix(e.Ident, "arg")
}

// Identifier 标识符（类型名、枚举值等）
type Identifier struct {
	ExprBase
	Ident string
}

func (e *Identifier) String() string { return e.Ident }

// PositionalParameterKind 位置参数类别
type PositionalParameterKind int

const (
	PositionalParam PositionalParameterKind = iota // $1, $2 ...
	PositionalCount                                // $#
)

// PositionalParameter 命令行位置参数
type PositionalParameter struct {
	ExprBase
	PType PositionalParameterKind
	N     int64
}

func (e *PositionalParameter) String() string {
	if e.PType == PositionalCount {
		return "$#"
	}
	return "$" + strconv.FormatInt(e.N, 10)
}

// Call 函数调用
type Call struct {
	ExprBase
	Func string
	Args []Expression
}

func (e *Call) String() string {
	return e.Func + "(" + joinExprs(e.Args, ", ") + ")"
}

// Sizeof sizeof(type) 或 sizeof(expr)
type Sizeof struct {
	ExprBase
	ArgType types.SizedType
	Expr    Expression // 为 nil 时使用 ArgType
}

func (e *Sizeof) String() string {
	if e.Expr != nil {
		return "sizeof(" + e.Expr.String() + ")"
	}
	return "sizeof(" + e.ArgType.String() + ")"
}

// Offsetof offsetof(record, field) 或 offsetof(expr, field)
type Offsetof struct {
	ExprBase
	Record types.SizedType
	Expr   Expression // 为 nil 时使用 Record
	Field  []string
}

func (e *Offsetof) String() string {
	target := e.Record.String()
	if e.Expr != nil {
		target = e.Expr.String()
	}
	return "offsetof(" + target + ", " + strings.Join(e.Field, ".") + ")"
}

// Map 映射 (@name 或 @name[key])
type Map struct {
	ExprBase
	Ident   string
	KeyExpr Expression // 可为 nil
}

func (e *Map) String() string {
	if e.KeyExpr != nil {
		return e.Ident + "[" + e.KeyExpr.String() + "]"
	}
	return e.Ident
}

// Variable 临时变量 ($name)
type Variable struct {
	ExprBase
	Ident string
}

func (e *Variable) String() string { return e.Ident }

// Binop 二元运算
type Binop struct {
	ExprBase
	Left  Expression
	Right Expression
	Op    Operator
}

func (e *Binop) String() string {
	return "(" + e.Left.String() + " " + e.OpString() + " " + e.Right.String() + ")"
}

// Unop 一元运算
type Unop struct {
	ExprBase
	Expr     Expression
	Op       Operator
	IsPostOp bool
}

func (e *Unop) String() string {
	if e.IsPostOp {
		return "(" + e.Expr.String() + e.Op.String() + ")"
	}
	return "(" + e.Op.String() + e.Expr.String() + ")"
}

// Ternary 三元条件
type Ternary struct {
	ExprBase
	Cond  Expression
	Left  Expression
	Right Expression
}

func (e *Ternary) String() string {
	return "(" + e.Cond.String() + " ? " + e.Left.String() + " : " + e.Right.String() + ")"
}

// FieldAccess 字段访问 (expr.field 或 tuple.N)
type FieldAccess struct {
	ExprBase
	Expr  Expression
	Field string
	Index int // 元组下标，按名访问时为 -1
}

func (e *FieldAccess) String() string {
	if e.Index >= 0 {
		return e.Expr.String() + "." + strconv.Itoa(e.Index)
	}
	return e.Expr.String() + "." + e.Field
}

// ArrayAccess 数组下标
type ArrayAccess struct {
	ExprBase
	Expr    Expression
	Indexpr Expression
}

func (e *ArrayAccess) String() string {
	return e.Expr.String() + "[" + e.Indexpr.String() + "]"
}

// Cast 类型转换，目标类型保存在 ExprBase.Type
type Cast struct {
	ExprBase
	Expr Expression
}

func (e *Cast) String() string {
	return "(" + e.Type.String() + ")" + e.Expr.String()
}

// Tuple 元组
type Tuple struct {
	ExprBase
	Elems []Expression
}

func (e *Tuple) String() string {
	return "(" + joinExprs(e.Elems, ", ") + ")"
}

// ============================================================================
// 语句节点
// ============================================================================

type stmtBase struct {
	node
}

func (s *stmtBase) stmtNode() {}

// ExprStatement 表达式语句
type ExprStatement struct {
	stmtBase
	Expr Expression
}

func (s *ExprStatement) String() string { return s.Expr.String() + ";" }

// AssignMapStatement @map[key] = expr
type AssignMapStatement struct {
	stmtBase
	Map  *Map
	Expr Expression
}

func (s *AssignMapStatement) String() string {
	return s.Map.String() + " = " + s.Expr.String() + ";"
}

// AssignVarStatement $var = expr 或 let $var = expr
type AssignVarStatement struct {
	stmtBase
	VarDecl *VarDeclStatement // 带声明的赋值，否则为 nil
	Var     *Variable
	Expr    Expression
}

func (s *AssignVarStatement) String() string {
	if s.VarDecl != nil {
		return "let " + s.Var.String() + " = " + s.Expr.String() + ";"
	}
	return s.Var.String() + " = " + s.Expr.String() + ";"
}

// AssignConfigVarStatement config 块内的 name = expr
type AssignConfigVarStatement struct {
	stmtBase
	ConfigVar string
	Expr      Expression
}

func (s *AssignConfigVarStatement) String() string {
	return s.ConfigVar + " = " + s.Expr.String() + ";"
}

// VarDeclStatement let $var [: type]
type VarDeclStatement struct {
	stmtBase
	Var     *Variable
	SetType bool // 是否显式声明了类型
}

func (s *VarDeclStatement) String() string {
	if s.SetType {
		return "let " + s.Var.String() + ": " + s.Var.Type.String() + ";"
	}
	return "let " + s.Var.String() + ";"
}

// Block 语句块
type Block struct {
	stmtBase
	Stmts []Statement
}

func (s *Block) String() string {
	var parts []string
	for _, stmt := range s.Stmts {
		parts = append(parts, stmt.String())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// If if / else
type If struct {
	stmtBase
	Cond      Expression
	IfBlock   *Block
	ElseBlock *Block // 可为 nil
}

func (s *If) String() string {
	out := "if (" + s.Cond.String() + ") " + s.IfBlock.String()
	if s.ElseBlock != nil {
		out += " else " + s.ElseBlock.String()
	}
	return out
}

// Unroll unroll(N) { ... }
type Unroll struct {
	stmtBase
	Expr  Expression
	Block *Block
}

func (s *Unroll) String() string {
	return "unroll (" + s.Expr.String() + ") " + s.Block.String()
}

// JumpType 跳转种类
type JumpType int

const (
	JumpReturn JumpType = iota
	JumpBreak
	JumpContinue
)

// Jump return / break / continue
type Jump struct {
	stmtBase
	Ident       JumpType
	ReturnValue Expression // 仅 return 可带值
}

func (s *Jump) String() string {
	if s.ReturnValue != nil {
		return s.OpString() + " " + s.ReturnValue.String() + ";"
	}
	return s.OpString() + ";"
}

// ============================================================================
// 其它节点
// ============================================================================

// Predicate 探针的守卫条件 /expr/
type Predicate struct {
	node
	Expr Expression
}

func (p *Predicate) String() string { return "/" + p.Expr.String() + "/" }

// Config config = { ... } 块
type Config struct {
	node
	Stmts []*AssignConfigVarStatement
}

func (c *Config) String() string {
	var parts []string
	for _, stmt := range c.Stmts {
		parts = append(parts, stmt.String())
	}
	return "config = { " + strings.Join(parts, " ") + " }"
}

// Lookup 查找配置项
func (c *Config) Lookup(name string) (Expression, bool) {
	for _, stmt := range c.Stmts {
		if stmt.ConfigVar == name {
			return stmt.Expr, true
		}
	}
	return nil, false
}

// ============================================================================
// 辅助函数
// ============================================================================

func joinExprs(exprs []Expression, sep string) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, sep)
}
