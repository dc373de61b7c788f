package expr

import "math"

// Compute for VarNode resolves the symbol and evaluates whatever it is
// bound to against the same environment.
func (v *VarNode) Compute(env Env) (float64, error) {
	bound, ok := env[v.Name]
	if !ok {
		return 0, &UnboundVariableError{Symbol: v.Name}
	}
	return bound.Compute(env)
}

// Compute for ConstNode returns the literal.
func (c *ConstNode) Compute(env Env) (float64, error) {
	return c.Val, nil
}

// Compute for UnaryNode dispatches on op.
func (u *UnaryNode) Compute(env Env) (float64, error) {
	child, err := u.Child.Compute(env)
	if err != nil {
		return 0, err
	}

	switch u.Op {
	case OpLn:
		return math.Log(child), nil
	case OpLd:
		return math.Log2(child), nil
	case OpExp:
		return math.Exp(child), nil
	case OpSqrt:
		return math.Sqrt(child), nil
	case OpCbrt:
		return math.Cbrt(child), nil
	case OpSin:
		return math.Sin(child), nil
	case OpAsin:
		return math.Asin(child), nil
	case OpCos:
		return math.Cos(child), nil
	case OpAcos:
		return math.Acos(child), nil
	case OpTan:
		return math.Tan(child), nil
	case OpAtan:
		return math.Atan(child), nil
	case OpToRadians:
		return child * math.Pi / 180, nil
	case OpToDegrees:
		return child * 180 / math.Pi, nil
	default:
		panic("expr: unknown unary op")
	}
}

// Compute for BinaryNode dispatches on op. Division by an exact zero is an
// error, not infinity. Pow follows math.Pow semantics for negative-base and
// fractional-exponent edge cases.
func (b *BinaryNode) Compute(env Env) (float64, error) {
	left, err := b.Left.Compute(env)
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Compute(env)
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, &DivisionByZeroError{Expr: b.String()}
		}
		return left / right, nil
	case OpPow:
		return math.Pow(left, right), nil
	case OpLog:
		// Change of base.
		return math.Log(left) / math.Log(right), nil
	default:
		panic("expr: unknown binary op")
	}
}

// Compute for RootNode runs the Newton solver on the evaluated child.
func (r *RootNode) Compute(env Env) (float64, error) {
	child, err := r.Child.Compute(env)
	if err != nil {
		return 0, err
	}
	return NthRootValue(child, r.Degree)
}
