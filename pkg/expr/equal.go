package expr

// Equal reports whether two expressions are interchangeable for rewrite
// purposes: constant subtrees compare by evaluated value, everything else
// by variant tag and pairwise-equal children. Structurally different
// non-constant shapes always compare unequal; there is no permissive
// fallback.
func Equal(a, b ExprNode) bool {
	if a.IsConstant() && b.IsConstant() {
		av, aerr := a.Compute(nil)
		bv, berr := b.Compute(nil)
		if aerr == nil && berr == nil {
			return av == bv
		}
		// Constant subtrees that fail to evaluate (e.g. a constant
		// division by zero) fall through to structural comparison.
	}

	switch x := a.(type) {
	case *ConstNode:
		y, ok := b.(*ConstNode)
		return ok && x.Val == y.Val
	case *VarNode:
		y, ok := b.(*VarNode)
		return ok && x.Name == y.Name
	case *UnaryNode:
		y, ok := b.(*UnaryNode)
		return ok && x.Op == y.Op && Equal(x.Child, y.Child)
	case *BinaryNode:
		y, ok := b.(*BinaryNode)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *RootNode:
		y, ok := b.(*RootNode)
		return ok && x.Degree == y.Degree && Equal(x.Child, y.Child)
	default:
		return false
	}
}
