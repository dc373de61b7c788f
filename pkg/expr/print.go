package expr

import (
	"fmt"
	"math"
	"strconv"
)

var unaryOpNames = map[UnaryOp]string{
	OpLn:   "ln",
	OpLd:   "ld",
	OpExp:  "exp",
	OpSqrt: "sqrt",
	OpCbrt: "cbrt",
	OpSin:  "sin",
	OpAsin: "asin",
	OpCos:  "cos",
	OpAcos: "acos",
	OpTan:  "tan",
	OpAtan: "atan",
}

// precedence orders operators for parenthesization: 1 add/sub, 2 mul/div,
// 3 pow, 4 atoms and function forms. Angle conversions are display
// transparent, so they take their child's precedence.
func precedence(e ExprNode) int {
	switch n := e.(type) {
	case *BinaryNode:
		switch n.Op {
		case OpAdd, OpSub:
			return 1
		case OpMul, OpDiv:
			return 2
		case OpPow:
			return 3
		default:
			return 4
		}
	case *UnaryNode:
		if n.Op == OpToRadians || n.Op == OpToDegrees {
			return precedence(n.Child)
		}
		return 4
	default:
		return 4
	}
}

// wrap parenthesizes e when its precedence is below min.
func wrap(e ExprNode, min int) string {
	if precedence(e) < min {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// String methods

func (v *VarNode) String() string {
	return v.Name
}

// String prints integer-valued constants without a decimal point and the
// canonical transcendental constants by name.
func (c *ConstNode) String() string {
	switch c.Val {
	case math.Pi:
		return "π"
	case math.E:
		return "e"
	}
	if c.Val == math.Trunc(c.Val) && math.Abs(c.Val) < 1e15 {
		return strconv.FormatFloat(c.Val, 'f', 0, 64)
	}
	return strconv.FormatFloat(c.Val, 'g', -1, 64)
}

func (u *UnaryNode) String() string {
	// Angle conversions are transparent in display; they change the
	// evaluated value, not the symbolic shape.
	if u.Op == OpToRadians || u.Op == OpToDegrees {
		return u.Child.String()
	}
	return unaryOpNames[u.Op] + "(" + u.Child.String() + ")"
}

func (b *BinaryNode) String() string {
	switch b.Op {
	case OpAdd:
		return b.Left.String() + " + " + b.Right.String()
	case OpSub:
		return wrap(b.Left, 1) + " - " + wrap(b.Right, 2)
	case OpMul:
		if isConst(b.Left, -1) {
			return "-" + wrap(b.Right, 2)
		}
		if lc, ok := b.Left.(*ConstNode); ok {
			if _, isVar := b.Right.(*VarNode); isVar {
				// Coefficient prefix: 5x.
				return lc.String() + b.Right.String()
			}
		}
		if _, lv := b.Left.(*VarNode); lv {
			if _, rv := b.Right.(*VarNode); rv {
				// Juxtaposed variable factors: xy.
				return b.Left.String() + b.Right.String()
			}
		}
		return wrap(b.Left, 2) + " * " + wrap(b.Right, 2)
	case OpDiv:
		return wrap(b.Left, 2) + " / " + wrap(b.Right, 3)
	case OpPow:
		return wrap(b.Left, 4) + "^" + wrap(b.Right, 4)
	case OpLog:
		return "log(" + b.Left.String() + ", " + b.Right.String() + ")"
	default:
		panic("expr: unknown binary op")
	}
}

func (r *RootNode) String() string {
	return fmt.Sprintf("root(%s, %d)", r.Child.String(), r.Degree)
}
