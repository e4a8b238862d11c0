package ast

// ============================================================================
// Visitor
// ============================================================================
//
// Visitor 为每个具体节点类型声明一个方法。新增节点类型时必须同时扩展
// 这个接口。

// Visitor AST 遍历接口
type Visitor interface {
	// 表达式
	VisitInteger(*IntegerLiteral)
	VisitString(*StringLiteral)
	VisitStackMode(*StackModeLiteral)
	VisitBuiltin(*Builtin)
	VisitIdentifier(*Identifier)
	VisitPositionalParameter(*PositionalParameter)
	VisitCall(*Call)
	VisitSizeof(*Sizeof)
	VisitOffsetof(*Offsetof)
	VisitMap(*Map)
	VisitVariable(*Variable)
	VisitBinop(*Binop)
	VisitUnop(*Unop)
	VisitTernary(*Ternary)
	VisitFieldAccess(*FieldAccess)
	VisitArrayAccess(*ArrayAccess)
	VisitCast(*Cast)
	VisitTuple(*Tuple)

	// 语句
	VisitExprStatement(*ExprStatement)
	VisitAssignMapStatement(*AssignMapStatement)
	VisitAssignVarStatement(*AssignVarStatement)
	VisitAssignConfigVarStatement(*AssignConfigVarStatement)
	VisitVarDeclStatement(*VarDeclStatement)
	VisitBlock(*Block)
	VisitIf(*If)
	VisitUnroll(*Unroll)
	VisitJump(*Jump)

	// 其它
	VisitPredicate(*Predicate)
	VisitAttachPoint(*AttachPoint)
	VisitProbe(*Probe)
	VisitSubprogArg(*SubprogArg)
	VisitSubprog(*Subprog)
	VisitConfig(*Config)
	VisitProgram(*Program)
}

func (e *IntegerLiteral) Accept(v Visitor)      { v.VisitInteger(e) }
func (e *StringLiteral) Accept(v Visitor)       { v.VisitString(e) }
func (e *StackModeLiteral) Accept(v Visitor)    { v.VisitStackMode(e) }
func (e *Builtin) Accept(v Visitor)             { v.VisitBuiltin(e) }
func (e *Identifier) Accept(v Visitor)          { v.VisitIdentifier(e) }
func (e *PositionalParameter) Accept(v Visitor) { v.VisitPositionalParameter(e) }
func (e *Call) Accept(v Visitor)                { v.VisitCall(e) }
func (e *Sizeof) Accept(v Visitor)              { v.VisitSizeof(e) }
func (e *Offsetof) Accept(v Visitor)            { v.VisitOffsetof(e) }
func (e *Map) Accept(v Visitor)                 { v.VisitMap(e) }
func (e *Variable) Accept(v Visitor)            { v.VisitVariable(e) }
func (e *Binop) Accept(v Visitor)               { v.VisitBinop(e) }
func (e *Unop) Accept(v Visitor)                { v.VisitUnop(e) }
func (e *Ternary) Accept(v Visitor)             { v.VisitTernary(e) }
func (e *FieldAccess) Accept(v Visitor)         { v.VisitFieldAccess(e) }
func (e *ArrayAccess) Accept(v Visitor)         { v.VisitArrayAccess(e) }
func (e *Cast) Accept(v Visitor)                { v.VisitCast(e) }
func (e *Tuple) Accept(v Visitor)               { v.VisitTuple(e) }

func (s *ExprStatement) Accept(v Visitor)            { v.VisitExprStatement(s) }
func (s *AssignMapStatement) Accept(v Visitor)       { v.VisitAssignMapStatement(s) }
func (s *AssignVarStatement) Accept(v Visitor)       { v.VisitAssignVarStatement(s) }
func (s *AssignConfigVarStatement) Accept(v Visitor) { v.VisitAssignConfigVarStatement(s) }
func (s *VarDeclStatement) Accept(v Visitor)         { v.VisitVarDeclStatement(s) }
func (s *Block) Accept(v Visitor)                    { v.VisitBlock(s) }
func (s *If) Accept(v Visitor)                       { v.VisitIf(s) }
func (s *Unroll) Accept(v Visitor)                   { v.VisitUnroll(s) }
func (s *Jump) Accept(v Visitor)                     { v.VisitJump(s) }

func (p *Predicate) Accept(v Visitor)    { v.VisitPredicate(p) }
func (ap *AttachPoint) Accept(v Visitor) { v.VisitAttachPoint(ap) }
func (p *Probe) Accept(v Visitor)        { v.VisitProbe(p) }
func (a *SubprogArg) Accept(v Visitor)   { v.VisitSubprogArg(a) }
func (s *Subprog) Accept(v Visitor)      { v.VisitSubprog(s) }
func (c *Config) Accept(v Visitor)       { v.VisitConfig(c) }
func (p *Program) Accept(v Visitor)      { v.VisitProgram(p) }

// ============================================================================
// 子节点与通用遍历
// ============================================================================

// Children 按源代码顺序返回 n 的直接子节点
//
// 反向引用（KeyForMap、Map、Var）不算子节点。
func Children(n Node) []Node {
	c := &childCollector{}
	n.Accept(c)
	return c.nodes
}

// Inspect 深度优先遍历，f 返回 false 时不再进入该节点的子节点
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range Children(n) {
		Inspect(child, f)
	}
}

type childCollector struct {
	nodes []Node
}

func (c *childCollector) add(nodes ...Node) {
	for _, n := range nodes {
		if n != nil && !isNilNode(n) {
			c.nodes = append(c.nodes, n)
		}
	}
}

func (c *childCollector) addExprs(exprs []Expression) {
	for _, e := range exprs {
		c.add(e)
	}
}

func (c *childCollector) addStmts(stmts []Statement) {
	for _, s := range stmts {
		c.add(s)
	}
}

func (c *childCollector) VisitInteger(*IntegerLiteral)                  {}
func (c *childCollector) VisitString(*StringLiteral)                    {}
func (c *childCollector) VisitStackMode(*StackModeLiteral)              {}
func (c *childCollector) VisitBuiltin(*Builtin)                         {}
func (c *childCollector) VisitIdentifier(*Identifier)                   {}
func (c *childCollector) VisitPositionalParameter(*PositionalParameter) {}
func (c *childCollector) VisitCall(e *Call)                             { c.addExprs(e.Args) }
func (c *childCollector) VisitSizeof(e *Sizeof)                         { c.add(e.Expr) }
func (c *childCollector) VisitOffsetof(e *Offsetof)                     { c.add(e.Expr) }
func (c *childCollector) VisitMap(e *Map)                               { c.add(e.KeyExpr) }
func (c *childCollector) VisitVariable(*Variable)                       {}
func (c *childCollector) VisitBinop(e *Binop)                           { c.add(e.Left, e.Right) }
func (c *childCollector) VisitUnop(e *Unop)                             { c.add(e.Expr) }
func (c *childCollector) VisitTernary(e *Ternary)                       { c.add(e.Cond, e.Left, e.Right) }
func (c *childCollector) VisitFieldAccess(e *FieldAccess)               { c.add(e.Expr) }
func (c *childCollector) VisitArrayAccess(e *ArrayAccess)               { c.add(e.Expr, e.Indexpr) }
func (c *childCollector) VisitCast(e *Cast)                             { c.add(e.Expr) }
func (c *childCollector) VisitTuple(e *Tuple)                           { c.addExprs(e.Elems) }

func (c *childCollector) VisitExprStatement(s *ExprStatement)           { c.add(s.Expr) }
func (c *childCollector) VisitAssignMapStatement(s *AssignMapStatement) { c.add(s.Map, s.Expr) }

func (c *childCollector) VisitAssignVarStatement(s *AssignVarStatement) {
	if s.VarDecl != nil {
		c.add(s.VarDecl)
	} else {
		c.add(s.Var)
	}
	c.add(s.Expr)
}

func (c *childCollector) VisitAssignConfigVarStatement(s *AssignConfigVarStatement) { c.add(s.Expr) }
func (c *childCollector) VisitVarDeclStatement(s *VarDeclStatement)                 { c.add(s.Var) }
func (c *childCollector) VisitBlock(s *Block)                                       { c.addStmts(s.Stmts) }
func (c *childCollector) VisitIf(s *If)                                             { c.add(s.Cond, s.IfBlock, s.ElseBlock) }
func (c *childCollector) VisitUnroll(s *Unroll)                                     { c.add(s.Expr, s.Block) }
func (c *childCollector) VisitJump(s *Jump)                                         { c.add(s.ReturnValue) }

func (c *childCollector) VisitPredicate(p *Predicate)   { c.add(p.Expr) }
func (c *childCollector) VisitAttachPoint(*AttachPoint) {}
func (c *childCollector) VisitSubprogArg(*SubprogArg)   {}

func (c *childCollector) VisitProbe(p *Probe) {
	for _, ap := range p.AttachPoints {
		c.add(ap)
	}
	c.add(p.Pred, p.Block)
}

func (c *childCollector) VisitSubprog(s *Subprog) {
	for _, arg := range s.Args {
		c.add(arg)
	}
	c.addStmts(s.Stmts)
}

func (c *childCollector) VisitConfig(cfg *Config) {
	for _, stmt := range cfg.Stmts {
		c.add(stmt)
	}
}

func (c *childCollector) VisitProgram(p *Program) {
	c.add(p.Config)
	for _, fn := range p.Functions {
		c.add(fn)
	}
	for _, probe := range p.Probes {
		c.add(probe)
	}
}

// isNilNode 过滤装进接口的 nil 指针（如 nil *Block）
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *Predicate:
		return v == nil
	case *Config:
		return v == nil
	case *VarDeclStatement:
		return v == nil
	case *Map:
		return v == nil
	case *Variable:
		return v == nil
	}
	return false
}
