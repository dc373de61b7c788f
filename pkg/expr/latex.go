package expr

import (
	"fmt"
	"math"
	"strconv"
)

// LaTeX methods

func (v *VarNode) LaTeX() string {
	return v.Name
}

func (c *ConstNode) LaTeX() string {
	switch c.Val {
	case math.Pi:
		return "\\pi"
	case math.E:
		return "e"
	}
	if c.Val == math.Trunc(c.Val) && math.Abs(c.Val) < 1e15 {
		return strconv.FormatFloat(c.Val, 'f', 0, 64)
	}
	return strconv.FormatFloat(c.Val, 'g', -1, 64)
}

func (u *UnaryNode) LaTeX() string {
	child := u.Child.LaTeX()
	switch u.Op {
	case OpLn:
		return fmt.Sprintf("\\ln{(%s)}", child)
	case OpLd:
		return fmt.Sprintf("\\log_{2}{(%s)}", child)
	case OpExp:
		return fmt.Sprintf("e^{%s}", child)
	case OpSqrt:
		return fmt.Sprintf("\\sqrt{%s}", child)
	case OpCbrt:
		return fmt.Sprintf("\\sqrt[3]{%s}", child)
	case OpSin:
		return fmt.Sprintf("\\sin{(%s)}", child)
	case OpAsin:
		return fmt.Sprintf("\\arcsin{(%s)}", child)
	case OpCos:
		return fmt.Sprintf("\\cos{(%s)}", child)
	case OpAcos:
		return fmt.Sprintf("\\arccos{(%s)}", child)
	case OpTan:
		return fmt.Sprintf("\\tan{(%s)}", child)
	case OpAtan:
		return fmt.Sprintf("\\arctan{(%s)}", child)
	case OpToRadians, OpToDegrees:
		return child
	default:
		return child
	}
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("{%s} + {%s}", left, right)
	case OpSub:
		return fmt.Sprintf("{%s} - {%s}", left, right)
	case OpMul:
		return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", left, right)
	case OpPow:
		return fmt.Sprintf("{%s}^{%s}", left, right)
	case OpLog:
		return fmt.Sprintf("\\log_{%s}{(%s)}", right, left)
	default:
		return ""
	}
}

func (r *RootNode) LaTeX() string {
	return fmt.Sprintf("\\sqrt[%d]{%s}", r.Degree, r.Child.LaTeX())
}
