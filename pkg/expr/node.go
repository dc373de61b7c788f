package expr

import (
	"fmt"
	"math"
)

// ExprNode is the interface for all expression tree nodes.
// Nodes are immutable once constructed; every operation that rewrites a
// tree returns new nodes and leaves its input untouched.
type ExprNode interface {
	Compute(env Env) (float64, error)
	String() string
	LaTeX() string
	IsConstant() bool
	NodeCount() int
	Depth() int
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpLn UnaryOp = iota
	OpLd // log base 2
	OpExp
	OpSqrt
	OpCbrt
	OpSin
	OpAsin
	OpCos
	OpAcos
	OpTan
	OpAtan
	OpToRadians
	OpToDegrees
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpLog // Left = value, Right = base
)

// VarNode represents a free variable.
type VarNode struct {
	Name string
}

// ConstNode represents a finite real constant.
type ConstNode struct {
	Val float64
}

// UnaryNode applies a unary operation to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child ExprNode
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right ExprNode
}

// RootNode is the generalized nth root of a child expression, degree >= 2.
type RootNode struct {
	Child  ExprNode
	Degree int
}

// NewConst builds a constant leaf. Non-finite values are a caller
// contract violation.
func NewConst(v float64) *ConstNode {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("expr: non-finite constant %v", v))
	}
	return &ConstNode{Val: v}
}

// NewVar builds a variable leaf.
func NewVar(name string) *VarNode {
	return &VarNode{Name: name}
}

// Constructors assemble plain nodes and never simplify; callers run
// Simplify explicitly.

func Add(l, r ExprNode) ExprNode      { return &BinaryNode{Op: OpAdd, Left: l, Right: r} }
func Sub(l, r ExprNode) ExprNode      { return &BinaryNode{Op: OpSub, Left: l, Right: r} }
func Mul(l, r ExprNode) ExprNode      { return &BinaryNode{Op: OpMul, Left: l, Right: r} }
func Div(l, r ExprNode) ExprNode      { return &BinaryNode{Op: OpDiv, Left: l, Right: r} }
func Pow(base, exp ExprNode) ExprNode { return &BinaryNode{Op: OpPow, Left: base, Right: exp} }

// Log is the logarithm of value to an arbitrary base.
func Log(value, base ExprNode) ExprNode {
	return &BinaryNode{Op: OpLog, Left: value, Right: base}
}

// Neg negates via multiplication; Mul(-1, e) is the canonical negation form.
func Neg(e ExprNode) ExprNode { return &BinaryNode{Op: OpMul, Left: MinusOne, Right: e} }

func Ln(e ExprNode) ExprNode   { return &UnaryNode{Op: OpLn, Child: e} }
func Ld(e ExprNode) ExprNode   { return &UnaryNode{Op: OpLd, Child: e} }
func Exp(e ExprNode) ExprNode  { return &UnaryNode{Op: OpExp, Child: e} }
func Sqrt(e ExprNode) ExprNode { return &UnaryNode{Op: OpSqrt, Child: e} }
func Cbrt(e ExprNode) ExprNode { return &UnaryNode{Op: OpCbrt, Child: e} }
func Sin(e ExprNode) ExprNode  { return &UnaryNode{Op: OpSin, Child: e} }
func Asin(e ExprNode) ExprNode { return &UnaryNode{Op: OpAsin, Child: e} }
func Cos(e ExprNode) ExprNode  { return &UnaryNode{Op: OpCos, Child: e} }
func Acos(e ExprNode) ExprNode { return &UnaryNode{Op: OpAcos, Child: e} }
func Tan(e ExprNode) ExprNode  { return &UnaryNode{Op: OpTan, Child: e} }
func Atan(e ExprNode) ExprNode { return &UnaryNode{Op: OpAtan, Child: e} }

func ToRadians(e ExprNode) ExprNode { return &UnaryNode{Op: OpToRadians, Child: e} }
func ToDegrees(e ExprNode) ExprNode { return &UnaryNode{Op: OpToDegrees, Child: e} }

// NthRoot builds a generalized root node. Degrees below 2 are a caller
// contract violation.
func NthRoot(e ExprNode, degree int) ExprNode {
	if degree < 2 {
		panic(fmt.Sprintf("expr: nth root degree must be >= 2, got %d", degree))
	}
	return &RootNode{Child: e, Degree: degree}
}

// IsConstant reports whether every reachable leaf is a constant.

func (v *VarNode) IsConstant() bool   { return false }
func (c *ConstNode) IsConstant() bool { return true }
func (u *UnaryNode) IsConstant() bool { return u.Child.IsConstant() }
func (b *BinaryNode) IsConstant() bool {
	return b.Left.IsConstant() && b.Right.IsConstant()
}
func (r *RootNode) IsConstant() bool { return r.Child.IsConstant() }
