package ast

import "fmt"

// Operator 运算符标签
type Operator int

const (
	OpInvalid Operator = iota
	OpAssign
	OpEQ
	OpNE
	OpLE
	OpGE
	OpLeft
	OpRight
	OpLT
	OpGT
	OpLAnd
	OpLOr
	OpPlus
	OpIncrement
	OpDecrement
	OpMinus
	OpMul
	OpDiv
	OpMod
	OpBAnd
	OpBOr
	OpBXor
	OpLNot
	OpBNot

	numOperators
)

var operatorNames = [numOperators]string{
	OpInvalid:   "",
	OpAssign:    "=",
	OpEQ:        "==",
	OpNE:        "!=",
	OpLE:        "<=",
	OpGE:        ">=",
	OpLeft:      "<<",
	OpRight:     ">>",
	OpLT:        "<",
	OpGT:        ">",
	OpLAnd:      "&&",
	OpLOr:       "||",
	OpPlus:      "+",
	OpIncrement: "++",
	OpDecrement: "--",
	OpMinus:     "-",
	OpMul:       "*",
	OpDiv:       "/",
	OpMod:       "%",
	OpBAnd:      "&",
	OpBOr:       "|",
	OpBXor:      "^",
	OpLNot:      "!",
	OpBNot:      "~",
}

// String 返回运算符的源代码写法
func (op Operator) String() string {
	if op >= 0 && op < numOperators {
		return operatorNames[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// IsBinary 是否可以作为二元运算符
func (op Operator) IsBinary() bool {
	switch op {
	case OpEQ, OpNE, OpLE, OpGE, OpLeft, OpRight, OpLT, OpGT, OpLAnd, OpLOr,
		OpPlus, OpMinus, OpMul, OpDiv, OpMod, OpBAnd, OpBOr, OpBXor:
		return true
	}
	return false
}

// IsUnary 是否可以作为一元运算符
func (op Operator) IsUnary() bool {
	switch op {
	case OpLNot, OpBNot, OpMinus, OpMul, OpIncrement, OpDecrement:
		return true
	}
	return false
}

// OpString 二元运算符的展示名，非二元运算符返回空串
func (e *Binop) OpString() string {
	if !e.Op.IsBinary() {
		return ""
	}
	return e.Op.String()
}

// OpString 一元运算符的展示名，非一元运算符返回空串
func (e *Unop) OpString() string {
	switch e.Op {
	case OpLNot, OpBNot, OpMinus:
		return e.Op.String()
	case OpMul:
		return "dereference"
	case OpIncrement, OpDecrement:
		if e.IsPostOp {
			return e.Op.String() + " (post)"
		}
		return e.Op.String() + " (pre)"
	}
	return ""
}

var jumpNames = [...]string{
	JumpReturn:   "return",
	JumpBreak:    "break",
	JumpContinue: "continue",
}

// OpString 跳转语句的关键字
func (s *Jump) OpString() string {
	if s.Ident >= 0 && int(s.Ident) < len(jumpNames) {
		return jumpNames[s.Ident]
	}
	return ""
}
