package expr

import "fmt"

// UnboundVariableError reports a variable symbol with no entry in the
// evaluation environment. Computing an expression with free variables is a
// caller usage error and is surfaced immediately.
type UnboundVariableError struct {
	Symbol string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Symbol)
}

// DivisionByZeroError reports a divisor that evaluated to exactly zero.
// The result is not approximated as infinity.
type DivisionByZeroError struct {
	Expr string // display form of the divide node that failed
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero in %s", e.Expr)
}

// DomainError reports an nth-root evaluation outside the solver's domain:
// degree < 2 or a non-positive radicand.
type DomainError struct {
	Value  float64
	Degree int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("nth root undefined for value %g, degree %d", e.Value, e.Degree)
}
