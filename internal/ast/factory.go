package ast

import (
	"github.com/tangzhangming/tracy/internal/types"
)

// ============================================================================
// AST 节点工厂函数
// ============================================================================
//
// 所有节点都通过 Arena 的工厂函数创建，工厂函数负责建立节点的构造不变量：
// - 字面量设置 IsLiteral，Map 设置 IsMap，Variable 设置 IsVariable
// - 带键的 Map 与键表达式互相引用
// - 赋值语句把被赋值的 Map / Variable 记录到右侧表达式上
// - Builtin 与 Call 的名字在这里完成废弃名改写
//
// 使用方式：
//   arena := NewArena(0)
//   key := arena.NewBuiltin("pid", loc)
//   m := arena.NewMapWithKey("@start", key, loc)
//
// ============================================================================

// ============================================================================
// 表达式节点工厂
// ============================================================================

// NewInteger 创建整数字面量节点
func (a *Arena) NewInteger(n int64, isNegative bool, loc Location) *IntegerLiteral {
	node := AllocType[IntegerLiteral](a)
	node.node = a.newBase(loc)
	node.N = n
	node.IsNegative = isNegative
	node.IsLiteral = true
	return node
}

// NewString 创建字符串字面量节点
func (a *Arena) NewString(str string, loc Location) *StringLiteral {
	node := AllocType[StringLiteral](a)
	node.node = a.newBase(loc)
	node.Str = str
	node.IsLiteral = true
	return node
}

// NewStackMode 创建栈格式字面量节点
func (a *Arena) NewStackMode(mode string, loc Location) *StackModeLiteral {
	node := AllocType[StackModeLiteral](a)
	node.node = a.newBase(loc)
	node.Mode = mode
	node.IsLiteral = true
	return node
}

// NewBuiltin 创建内建变量节点，名字经过废弃名改写
func (a *Arena) NewBuiltin(ident string, loc Location) *Builtin {
	node := AllocType[Builtin](a)
	node.node = a.newBase(loc)
	node.Ident = a.normalizer.normalize(ident, loc, a.logger)
	return node
}

// NewIdentifier 创建标识符节点
func (a *Arena) NewIdentifier(ident string, loc Location) *Identifier {
	node := AllocType[Identifier](a)
	node.node = a.newBase(loc)
	node.Ident = ident
	return node
}

// NewPositionalParameter 创建位置参数节点
func (a *Arena) NewPositionalParameter(ptype PositionalParameterKind, n int64, loc Location) *PositionalParameter {
	node := AllocType[PositionalParameter](a)
	node.node = a.newBase(loc)
	node.PType = ptype
	node.N = n
	node.IsLiteral = true
	return node
}

// NewCall 创建函数调用节点，函数名经过废弃名改写
func (a *Arena) NewCall(fn string, args []Expression, loc Location) *Call {
	node := AllocType[Call](a)
	node.node = a.newBase(loc)
	node.Func = a.normalizer.normalize(fn, loc, a.logger)
	node.Args = args
	return node
}

// NewSizeofType 创建 sizeof(type) 节点
func (a *Arena) NewSizeofType(argType types.SizedType, loc Location) *Sizeof {
	node := AllocType[Sizeof](a)
	node.node = a.newBase(loc)
	node.ArgType = argType
	return node
}

// NewSizeofExpr 创建 sizeof(expr) 节点
func (a *Arena) NewSizeofExpr(expr Expression, loc Location) *Sizeof {
	node := AllocType[Sizeof](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	return node
}

// NewOffsetofType 创建 offsetof(record, field) 节点
func (a *Arena) NewOffsetofType(record types.SizedType, field []string, loc Location) *Offsetof {
	node := AllocType[Offsetof](a)
	node.node = a.newBase(loc)
	node.Record = record
	node.Field = field
	return node
}

// NewOffsetofExpr 创建 offsetof(expr, field) 节点
func (a *Arena) NewOffsetofExpr(expr Expression, field []string, loc Location) *Offsetof {
	node := AllocType[Offsetof](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	node.Field = field
	return node
}

// NewMap 创建无键的 Map 节点
func (a *Arena) NewMap(ident string, loc Location) *Map {
	node := AllocType[Map](a)
	node.node = a.newBase(loc)
	node.Ident = ident
	node.IsMap = true
	return node
}

// NewMapWithKey 创建带键的 Map 节点，并建立键与 Map 的双向引用
func (a *Arena) NewMapWithKey(ident string, key Expression, loc Location) *Map {
	node := a.NewMap(ident, loc)
	node.KeyExpr = key
	key.Base().KeyForMap = node
	return node
}

// NewVariable 创建变量节点
func (a *Arena) NewVariable(ident string, loc Location) *Variable {
	node := AllocType[Variable](a)
	node.node = a.newBase(loc)
	node.Ident = ident
	node.IsVariable = true
	return node
}

// NewBinop 创建二元运算节点
func (a *Arena) NewBinop(left Expression, op Operator, right Expression, loc Location) *Binop {
	node := AllocType[Binop](a)
	node.node = a.newBase(loc)
	node.Left = left
	node.Op = op
	node.Right = right
	return node
}

// NewUnop 创建一元运算节点
func (a *Arena) NewUnop(op Operator, expr Expression, isPostOp bool, loc Location) *Unop {
	node := AllocType[Unop](a)
	node.node = a.newBase(loc)
	node.Op = op
	node.Expr = expr
	node.IsPostOp = isPostOp
	return node
}

// NewTernary 创建三元条件节点
func (a *Arena) NewTernary(cond, left, right Expression, loc Location) *Ternary {
	node := AllocType[Ternary](a)
	node.node = a.newBase(loc)
	node.Cond = cond
	node.Left = left
	node.Right = right
	return node
}

// NewFieldAccess 创建按名字段访问节点
func (a *Arena) NewFieldAccess(expr Expression, field string, loc Location) *FieldAccess {
	node := AllocType[FieldAccess](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	node.Field = field
	node.Index = -1
	return node
}

// NewTupleAccess 创建元组下标访问节点
func (a *Arena) NewTupleAccess(expr Expression, index int, loc Location) *FieldAccess {
	node := AllocType[FieldAccess](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	node.Index = index
	return node
}

// NewArrayAccess 创建数组下标节点
func (a *Arena) NewArrayAccess(expr, indexpr Expression, loc Location) *ArrayAccess {
	node := AllocType[ArrayAccess](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	node.Indexpr = indexpr
	return node
}

// NewCast 创建类型转换节点，目标类型写入表达式类型
func (a *Arena) NewCast(castType types.SizedType, expr Expression, loc Location) *Cast {
	node := AllocType[Cast](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	node.Type = castType
	return node
}

// NewTuple 创建元组节点
func (a *Arena) NewTuple(elems []Expression, loc Location) *Tuple {
	node := AllocType[Tuple](a)
	node.node = a.newBase(loc)
	node.Elems = elems
	return node
}

// ============================================================================
// 语句节点工厂
// ============================================================================

// NewExprStatement 创建表达式语句节点
func (a *Arena) NewExprStatement(expr Expression, loc Location) *ExprStatement {
	node := AllocType[ExprStatement](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	return node
}

// NewAssignMapStatement 创建 Map 赋值语句，右侧表达式记录被赋值的 Map
func (a *Arena) NewAssignMapStatement(m *Map, expr Expression, loc Location) *AssignMapStatement {
	node := AllocType[AssignMapStatement](a)
	node.node = a.newBase(loc)
	node.Map = m
	node.Expr = expr
	expr.Base().Map = m
	return node
}

// NewAssignVarStatement 创建变量赋值语句，右侧表达式记录被赋值的变量
func (a *Arena) NewAssignVarStatement(v *Variable, expr Expression, loc Location) *AssignVarStatement {
	node := AllocType[AssignVarStatement](a)
	node.node = a.newBase(loc)
	node.Var = v
	node.Expr = expr
	expr.Base().Var = v
	return node
}

// NewAssignVarDeclStatement 创建带声明的变量赋值语句 (let $x = expr)
func (a *Arena) NewAssignVarDeclStatement(decl *VarDeclStatement, expr Expression, loc Location) *AssignVarStatement {
	node := a.NewAssignVarStatement(decl.Var, expr, loc)
	node.VarDecl = decl
	return node
}

// NewAssignConfigVarStatement 创建配置项赋值语句
func (a *Arena) NewAssignConfigVarStatement(configVar string, expr Expression, loc Location) *AssignConfigVarStatement {
	node := AllocType[AssignConfigVarStatement](a)
	node.node = a.newBase(loc)
	node.ConfigVar = configVar
	node.Expr = expr
	return node
}

// NewVarDeclStatementTyped 创建显式类型的变量声明，变量类型设为 t
func (a *Arena) NewVarDeclStatementTyped(v *Variable, t types.SizedType, loc Location) *VarDeclStatement {
	node := AllocType[VarDeclStatement](a)
	node.node = a.newBase(loc)
	node.Var = v
	node.SetType = true
	v.Type = t
	return node
}

// NewVarDeclStatement 创建无类型的变量声明，变量类型明确标记为未确定
func (a *Arena) NewVarDeclStatement(v *Variable, loc Location) *VarDeclStatement {
	node := AllocType[VarDeclStatement](a)
	node.node = a.newBase(loc)
	node.Var = v
	v.Type = types.CreateNone()
	return node
}

// NewBlock 创建语句块节点
func (a *Arena) NewBlock(stmts []Statement, loc Location) *Block {
	node := AllocType[Block](a)
	node.node = a.newBase(loc)
	node.Stmts = stmts
	return node
}

// NewIf 创建 if 语句节点，elseBlock 可为 nil
func (a *Arena) NewIf(cond Expression, ifBlock, elseBlock *Block, loc Location) *If {
	node := AllocType[If](a)
	node.node = a.newBase(loc)
	node.Cond = cond
	node.IfBlock = ifBlock
	node.ElseBlock = elseBlock
	return node
}

// NewUnroll 创建 unroll 语句节点
func (a *Arena) NewUnroll(expr Expression, block *Block, loc Location) *Unroll {
	node := AllocType[Unroll](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	node.Block = block
	return node
}

// NewJump 创建跳转语句节点，returnValue 可为 nil
func (a *Arena) NewJump(ident JumpType, returnValue Expression, loc Location) *Jump {
	node := AllocType[Jump](a)
	node.node = a.newBase(loc)
	node.Ident = ident
	node.ReturnValue = returnValue
	return node
}

// ============================================================================
// 顶层节点工厂
// ============================================================================

// NewPredicate 创建守卫条件节点
func (a *Arena) NewPredicate(expr Expression, loc Location) *Predicate {
	node := AllocType[Predicate](a)
	node.node = a.newBase(loc)
	node.Expr = expr
	return node
}

// NewAttachPoint 创建附加点节点，分解字段由解析器随后填写
func (a *Arena) NewAttachPoint(rawInput string, ignoreInvalid bool, loc Location) *AttachPoint {
	node := AllocType[AttachPoint](a)
	node.node = a.newBase(loc)
	node.RawInput = rawInput
	node.IgnoreInvalid = ignoreInvalid
	return node
}

// NewAttachPointWith 创建字段已分解好的附加点节点
func (a *Arena) NewAttachPointWith(rawInput string, ignoreInvalid bool, fields AttachPointFields, loc Location) *AttachPoint {
	node := a.NewAttachPoint(rawInput, ignoreInvalid, loc)
	node.AttachPointFields = fields
	return node
}

// NewProbe 创建探针节点，pred 可为 nil
func (a *Arena) NewProbe(attachPoints []*AttachPoint, pred *Predicate, block *Block, loc Location) *Probe {
	node := AllocType[Probe](a)
	node.node = a.newBase(loc)
	node.AttachPoints = attachPoints
	node.Pred = pred
	node.Block = block
	return node
}

// NewSubprogArg 创建子程序参数节点
func (a *Arena) NewSubprogArg(name string, t types.SizedType, loc Location) *SubprogArg {
	node := AllocType[SubprogArg](a)
	node.node = a.newBase(loc)
	node.name = name
	node.Type = t
	return node
}

// NewSubprog 创建子程序节点
func (a *Arena) NewSubprog(name string, returnType types.SizedType, args []*SubprogArg, stmts []Statement, loc Location) *Subprog {
	node := AllocType[Subprog](a)
	node.node = a.newBase(loc)
	node.name = name
	node.ReturnType = returnType
	node.Args = args
	node.Stmts = stmts
	return node
}

// NewConfig 创建配置块节点
func (a *Arena) NewConfig(stmts []*AssignConfigVarStatement, loc Location) *Config {
	node := AllocType[Config](a)
	node.node = a.newBase(loc)
	node.Stmts = stmts
	return node
}

// NewProgram 创建程序根节点
func (a *Arena) NewProgram(cDefinitions string, config *Config, functions []*Subprog, probes []*Probe, loc Location) *Program {
	node := AllocType[Program](a)
	node.node = a.newBase(loc)
	node.CDefinitions = cDefinitions
	node.Config = config
	node.Functions = functions
	node.Probes = probes
	return node
}
