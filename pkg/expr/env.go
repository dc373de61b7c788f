package expr

// Env resolves variable symbols to the expressions they stand for during
// evaluation. Entries may themselves contain variables, which are resolved
// against the same environment; this is what makes substitution work.
// A nil or empty Env is valid for expressions with no free variables.
type Env map[string]ExprNode

// DefaultVar is the symbol bound by the single-variable convenience helpers.
const DefaultVar = "x"

// At binds the default variable x to a numeric value.
func At(x float64) Env {
	return Env{DefaultVar: NewConst(x)}
}

// AtExpr binds the default variable x to an expression.
func AtExpr(e ExprNode) Env {
	return Env{DefaultVar: e}
}
