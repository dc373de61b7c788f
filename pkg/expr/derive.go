package expr

// Differentiate returns the derivative of node with respect to the named
// variable, already simplified. Differentiation is total over the node
// model; it never fails for a structurally valid tree.
func Differentiate(node ExprNode, wrt string) ExprNode {
	return Simplify(derive(node, wrt))
}

// derive builds the raw, unsimplified derivative.
func derive(node ExprNode, wrt string) ExprNode {
	switch n := node.(type) {
	case *ConstNode:
		return Zero
	case *VarNode:
		if n.Name == wrt {
			return One
		}
		return Zero
	case *UnaryNode:
		return deriveUnary(n, wrt)
	case *BinaryNode:
		return deriveBinary(n, wrt)
	case *RootNode:
		u := n.Child
		du := derive(u, wrt)
		root := NthRoot(u, n.Degree)
		return Div(du, Mul(constOf(float64(n.Degree)),
			Mul(root, Pow(NthRoot(u, n.Degree), constOf(float64(n.Degree-1))))))
	default:
		panic("expr: unknown node kind")
	}
}

func deriveUnary(n *UnaryNode, wrt string) ExprNode {
	u := n.Child
	du := derive(u, wrt)

	switch n.Op {
	case OpLn:
		return Div(du, u)
	case OpLd:
		// ld(v) = ln(v)/ln(2); differentiate through the rewrite.
		return derive(Div(Ln(u), lnTwo()), wrt)
	case OpExp:
		return Mul(Exp(u), du)
	case OpSqrt:
		return Div(du, Mul(Two, Sqrt(u)))
	case OpCbrt:
		return Div(du, Mul(Three, Pow(Cbrt(u), Two)))
	case OpSin:
		return Mul(Cos(u), du)
	case OpCos:
		return Mul(Neg(Sin(u)), du)
	case OpTan:
		return Div(du, Pow(Cos(u), Two))
	case OpAsin:
		return Div(du, Sqrt(Sub(One, Pow(u, Two))))
	case OpAcos:
		return Neg(Div(du, Sqrt(Sub(One, Pow(u, Two)))))
	case OpAtan:
		return Div(du, Add(One, Pow(u, Two)))
	case OpToRadians:
		// The conversion is a constant linear scale; rewrap the inner
		// derivative in the same conversion.
		return ToRadians(du)
	case OpToDegrees:
		return ToDegrees(du)
	default:
		panic("expr: unknown unary op")
	}
}

func deriveBinary(n *BinaryNode, wrt string) ExprNode {
	a, b := n.Left, n.Right
	da := derive(a, wrt)
	db := derive(b, wrt)

	switch n.Op {
	case OpAdd:
		return Add(da, db)
	case OpSub:
		return Sub(da, db)
	case OpMul:
		// Product rule: a'b + ab'
		return Add(Mul(da, b), Mul(a, db))
	case OpDiv:
		// Quotient rule: (a'b - ab') / b^2
		return Div(Sub(Mul(da, b), Mul(a, db)), Pow(b, Two))
	case OpPow:
		switch {
		case b.IsConstant():
			// Power rule: b * a^(b-1) * a'
			return Mul(b, Mul(Pow(a, Sub(b, One)), da))
		case a.IsConstant():
			// Exponential rule: a^b * ln(a) * b'
			return Mul(Pow(a, b), Mul(Ln(a), db))
		default:
			// Logarithmic differentiation:
			// a^b * (b'*ln(a) + b*a'/a)
			return Mul(Pow(a, b), Add(Mul(db, Ln(a)), Mul(b, Div(da, a))))
		}
	case OpLog:
		// Fixed base: value' / (value * ln(base))
		return Div(da, Mul(a, Ln(b)))
	default:
		panic("expr: unknown binary op")
	}
}
