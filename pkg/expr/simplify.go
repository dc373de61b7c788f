package expr

import "math"

// Simplify applies rewrite rules to reduce an expression tree to its
// canonical form. It repeatedly applies rules until no further changes
// occur. Simplification is total: it never fails for a structurally valid
// tree, and it preserves the evaluated value modulo the floating-point
// rounding introduced by eager constant folding.
func Simplify(node ExprNode) ExprNode {
	for i := 0; i < 20; i++ { // cap iterations
		next := simplifyOnce(node)
		if next.String() == node.String() {
			return next
		}
		node = next
	}
	return node
}

func simplifyOnce(node ExprNode) ExprNode {
	switch n := node.(type) {
	case *VarNode, *ConstNode:
		return node
	case *UnaryNode:
		return simplifyUnary(n)
	case *BinaryNode:
		return simplifyBinary(n)
	case *RootNode:
		return simplifyRoot(n)
	default:
		return node
	}
}

// foldConstant evaluates a fully constant subtree. Folding is skipped when
// evaluation fails or produces a non-finite value; such subtrees stay
// structurally intact.
func foldConstant(node ExprNode) (ExprNode, bool) {
	if !node.IsConstant() {
		return nil, false
	}
	v, err := node.Compute(nil)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return constOf(v), true
}

// negationOf unwraps the canonical negation form Mul(-1, e).
func negationOf(e ExprNode) (ExprNode, bool) {
	b, ok := e.(*BinaryNode)
	if !ok || b.Op != OpMul {
		return nil, false
	}
	if isConst(b.Left, -1) {
		return b.Right, true
	}
	if isConst(b.Right, -1) {
		return b.Left, true
	}
	return nil, false
}

// powParts views e as base^exp, treating a non-power node as exponent 1.
func powParts(e ExprNode) (base, exp ExprNode, isPow bool) {
	if b, ok := e.(*BinaryNode); ok && b.Op == OpPow {
		return b.Left, b.Right, true
	}
	return e, One, false
}

// commonFactor finds a factor shared between two products, returning the
// shared factor and the remaining factor of each side.
func commonFactor(a, b *BinaryNode) (common, restA, restB ExprNode, ok bool) {
	candidates := [][3]ExprNode{
		{a.Left, a.Right, b.Left},
		{a.Left, a.Right, b.Right},
		{a.Right, a.Left, b.Left},
		{a.Right, a.Left, b.Right},
	}
	rests := []ExprNode{b.Right, b.Left, b.Right, b.Left}
	for i, c := range candidates {
		if Equal(c[0], c[2]) {
			return c[0], c[1], rests[i], true
		}
	}
	return nil, nil, nil, false
}

func hasConstOperand(b *BinaryNode) bool {
	if _, ok := b.Left.(*ConstNode); ok {
		return true
	}
	_, ok := b.Right.(*ConstNode)
	return ok
}

func simplifyUnary(n *UnaryNode) ExprNode {
	child := simplifyOnce(n.Child)

	// The trig special-value table runs before numeric folding:
	// math.Sin(math.Pi) is 1.2e-16, not the exact zero the identity gives.
	switch n.Op {
	case OpSin:
		if c, ok := child.(*ConstNode); ok {
			switch c.Val {
			case 0, math.Pi:
				return Zero
			case math.Pi / 2:
				return One
			}
		}
		// sin(-v) = -sin(v)
		if inner, ok := negationOf(child); ok {
			return simplifyOnce(Neg(Sin(inner)))
		}
	case OpCos:
		if c, ok := child.(*ConstNode); ok {
			switch c.Val {
			case 0:
				return One
			case math.Pi:
				return MinusOne
			case math.Pi / 2:
				return Zero
			}
		}
		// cos(-v) = cos(v)
		if inner, ok := negationOf(child); ok {
			return simplifyOnce(Cos(inner))
		}
	}

	rebuilt := &UnaryNode{Op: n.Op, Child: child}
	if folded, ok := foldConstant(rebuilt); ok {
		return folded
	}

	switch n.Op {
	case OpLn:
		if inner, ok := child.(*UnaryNode); ok && inner.Op == OpExp {
			return inner.Child
		}
		if b, ok := child.(*BinaryNode); ok {
			switch b.Op {
			case OpPow: // ln(x^a) = a*ln(x)
				return simplifyOnce(Mul(b.Right, Ln(b.Left)))
			case OpMul: // ln(a*b) = ln(a) + ln(b)
				return simplifyOnce(Add(Ln(b.Left), Ln(b.Right)))
			case OpDiv: // ln(a/b) = ln(a) - ln(b)
				return simplifyOnce(Sub(Ln(b.Left), Ln(b.Right)))
			}
		}
	case OpExp:
		if inner, ok := child.(*UnaryNode); ok && inner.Op == OpLn {
			return inner.Child
		}
		// exp(a*ln(b)) = b^a, with ln on either multiplicand
		if m, ok := child.(*BinaryNode); ok && m.Op == OpMul {
			if l, ok := m.Left.(*UnaryNode); ok && l.Op == OpLn {
				return simplifyOnce(Pow(l.Child, m.Right))
			}
			if r, ok := m.Right.(*UnaryNode); ok && r.Op == OpLn {
				return simplifyOnce(Pow(r.Child, m.Left))
			}
		}
	case OpSqrt:
		if p, ok := child.(*BinaryNode); ok && p.Op == OpPow && isConst(p.Right, 2) {
			return p.Left
		}
	case OpCbrt:
		if p, ok := child.(*BinaryNode); ok && p.Op == OpPow && isConst(p.Right, 3) {
			return p.Left
		}
	}
	return rebuilt
}

func simplifyRoot(n *RootNode) ExprNode {
	child := simplifyOnce(n.Child)

	// Roots of 0, 1, and -1 (odd degrees) sit outside or on the edge of
	// the solver's domain and are handled structurally.
	if isConst(child, 0) {
		return Zero
	}
	if isConst(child, 1) {
		return One
	}
	if isConst(child, -1) && n.Degree%2 == 1 {
		return MinusOne
	}
	// root_n(x^n) = x
	if p, ok := child.(*BinaryNode); ok && p.Op == OpPow && isConst(p.Right, float64(n.Degree)) {
		return p.Left
	}
	rebuilt := &RootNode{Child: child, Degree: n.Degree}
	if folded, ok := foldConstant(rebuilt); ok {
		return folded
	}
	return rebuilt
}

func simplifyBinary(n *BinaryNode) ExprNode {
	left := simplifyOnce(n.Left)
	right := simplifyOnce(n.Right)

	rebuilt := &BinaryNode{Op: n.Op, Left: left, Right: right}
	if folded, ok := foldConstant(rebuilt); ok {
		return folded
	}

	switch n.Op {
	case OpAdd:
		return simplifyAdd(left, right)
	case OpSub:
		return simplifySub(left, right)
	case OpMul:
		return simplifyMul(left, right)
	case OpDiv:
		return simplifyDiv(left, right)
	case OpPow:
		return simplifyPow(left, right)
	case OpLog:
		return simplifyLog(left, right)
	default:
		return rebuilt
	}
}

func simplifyAdd(left, right ExprNode) ExprNode {
	// a + 0 = a, 0 + b = b
	if isConst(right, 0) {
		return left
	}
	if isConst(left, 0) {
		return right
	}
	// x + (-x) = 0
	if inner, ok := negationOf(right); ok && Equal(left, inner) {
		return Zero
	}
	if inner, ok := negationOf(left); ok && Equal(right, inner) {
		return Zero
	}
	// c*a + c*b = c*(a+b)
	if lm, ok := left.(*BinaryNode); ok && lm.Op == OpMul {
		if rm, ok := right.(*BinaryNode); ok && rm.Op == OpMul {
			if c, restL, restR, found := commonFactor(lm, rm); found {
				return simplifyOnce(Mul(c, Add(restL, restR)))
			}
		}
	}
	// Constants display first.
	if _, ok := right.(*ConstNode); ok {
		if _, leftConst := left.(*ConstNode); !leftConst {
			return &BinaryNode{Op: OpAdd, Left: right, Right: left}
		}
	}
	return &BinaryNode{Op: OpAdd, Left: left, Right: right}
}

func simplifySub(left, right ExprNode) ExprNode {
	// a - a = 0
	if Equal(left, right) {
		return Zero
	}
	// a - 0 = a
	if isConst(right, 0) {
		return left
	}
	// 0 - b = -b
	if isConst(left, 0) {
		return simplifyOnce(Neg(right))
	}
	// a - (-k) = a + k
	if rc, ok := right.(*ConstNode); ok && rc.Val < 0 {
		return simplifyOnce(Add(left, constOf(-rc.Val)))
	}
	// a - (-1*b) = a + b
	if inner, ok := negationOf(right); ok {
		return simplifyOnce(Add(left, inner))
	}
	return &BinaryNode{Op: OpSub, Left: left, Right: right}
}

func simplifyMul(left, right ExprNode) ExprNode {
	// 0 annihilates, 1 is identity
	if isConst(left, 0) || isConst(right, 0) {
		return Zero
	}
	if isConst(left, 1) {
		return right
	}
	if isConst(right, 1) {
		return left
	}
	// -1 stays in front as the canonical negation form.
	if isConst(right, -1) {
		return simplifyOnce(&BinaryNode{Op: OpMul, Left: MinusOne, Right: left})
	}
	// a*a = a^2
	if Equal(left, right) {
		return simplifyOnce(Pow(left, Two))
	}
	// base^p * base^q = base^(p+q)
	lb, lp, lIsPow := powParts(left)
	rb, rp, rIsPow := powParts(right)
	if (lIsPow || rIsPow) && Equal(lb, rb) {
		return simplifyOnce(Pow(lb, Add(lp, rp)))
	}
	// Merge constant coefficients across nested products: 3 * 2x = 6x.
	if lc, ok := left.(*ConstNode); ok {
		if rm, ok := right.(*BinaryNode); ok && rm.Op == OpMul {
			if ic, ok := rm.Left.(*ConstNode); ok {
				return simplifyOnce(Mul(constOf(lc.Val*ic.Val), rm.Right))
			}
			if ic, ok := rm.Right.(*ConstNode); ok {
				return simplifyOnce(Mul(constOf(lc.Val*ic.Val), rm.Left))
			}
		}
	}
	// Distribute a constant over a sum when one addend can fold with it.
	if lc, ok := left.(*ConstNode); ok {
		if add, ok := right.(*BinaryNode); ok && add.Op == OpAdd && hasConstOperand(add) {
			return simplifyOnce(Add(Mul(lc, add.Left), Mul(lc, add.Right)))
		}
	}
	if rc, ok := right.(*ConstNode); ok {
		if add, ok := left.(*BinaryNode); ok && add.Op == OpAdd && hasConstOperand(add) {
			return simplifyOnce(Add(Mul(rc, add.Left), Mul(rc, add.Right)))
		}
	}
	// Constants display first.
	if _, ok := right.(*ConstNode); ok {
		if _, leftConst := left.(*ConstNode); !leftConst {
			return &BinaryNode{Op: OpMul, Left: right, Right: left}
		}
	}
	return &BinaryNode{Op: OpMul, Left: left, Right: right}
}

func simplifyDiv(left, right ExprNode) ExprNode {
	// 0 / x = 0 for x != 0
	if isConst(left, 0) && !isConst(right, 0) {
		return Zero
	}
	// x / 1 = x
	if isConst(right, 1) {
		return left
	}
	// x / x = 1
	if Equal(left, right) {
		return One
	}
	// x / -1 = -x
	if isConst(right, -1) {
		return simplifyOnce(Neg(left))
	}
	// Cancel a factor shared with a product numerator or denominator.
	if lm, ok := left.(*BinaryNode); ok && lm.Op == OpMul {
		if Equal(lm.Left, right) {
			return lm.Right
		}
		if Equal(lm.Right, right) {
			return lm.Left
		}
	}
	if rm, ok := right.(*BinaryNode); ok && rm.Op == OpMul {
		if Equal(left, rm.Left) {
			return simplifyOnce(Div(One, rm.Right))
		}
		if Equal(left, rm.Right) {
			return simplifyOnce(Div(One, rm.Left))
		}
	}
	// base^p / base^q = base^(p-q)
	lb, lp, lIsPow := powParts(left)
	rb, rp, rIsPow := powParts(right)
	if (lIsPow || rIsPow) && Equal(lb, rb) {
		return simplifyOnce(Pow(lb, Sub(lp, rp)))
	}
	// Cross-cancel one factor shared by product numerator and denominator.
	if lm, ok := left.(*BinaryNode); ok && lm.Op == OpMul {
		if rm, ok := right.(*BinaryNode); ok && rm.Op == OpMul {
			if _, restL, restR, found := commonFactor(lm, rm); found {
				return simplifyOnce(Div(restL, restR))
			}
		}
	}
	// Hoist a constant denominator into a reciprocal coefficient.
	if rc, ok := right.(*ConstNode); ok && rc.Val != 0 {
		return simplifyOnce(Mul(constOf(1/rc.Val), left))
	}
	return &BinaryNode{Op: OpDiv, Left: left, Right: right}
}

func simplifyPow(left, right ExprNode) ExprNode {
	// x^0 = 1 for x != 0
	if isConst(right, 0) && !isConst(left, 0) {
		return One
	}
	// x^1 = x
	if isConst(right, 1) {
		return left
	}
	// 1^x = 1
	if isConst(left, 1) {
		return One
	}
	// 0^x = 0 for constant positive x
	if isConst(left, 0) {
		if rc, ok := right.(*ConstNode); ok && rc.Val > 0 {
			return Zero
		}
	}
	// (x^a)^b = x^(a*b)
	if inner, ok := left.(*BinaryNode); ok && inner.Op == OpPow {
		return simplifyOnce(Pow(inner.Left, Mul(inner.Right, right)))
	}
	// e^ln(x) = x
	if isConst(left, math.E) {
		if lnArg, ok := right.(*UnaryNode); ok && lnArg.Op == OpLn {
			return lnArg.Child
		}
	}
	return &BinaryNode{Op: OpPow, Left: left, Right: right}
}

func simplifyLog(left, right ExprNode) ExprNode {
	// log_b(b) = 1
	if Equal(left, right) {
		return One
	}
	return &BinaryNode{Op: OpLog, Left: left, Right: right}
}
