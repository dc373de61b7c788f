package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify(t *testing.T) {
	x := NewVar("x")

	tests := []struct {
		name string
		node ExprNode
		want string
	}{
		// constant folding
		{"fold sum", Add(NewConst(5), NewConst(7)), "12"},
		{"fold log with base", Log(NewConst(8), Two), "3"},
		{"fold negative cbrt", Cbrt(NewConst(-8)), "-2"},
		{"fold root", NthRoot(NewConst(32), 5), "2"},

		// additive identities
		{"add zero", Add(x, Zero), "x"},
		{"zero add", Add(Zero, Sin(x)), "sin(x)"},
		{"add negation", Add(x, Neg(x)), "0"},
		{"sub self", Sub(Sin(x), Sin(x)), "0"},
		{"sub zero", Sub(x, Zero), "x"},
		{"zero sub", Sub(Zero, x), "-x"},
		{"sub negative constant", Sub(x, NewConst(-5)), "5 + x"},
		{"sub negation", Sub(x, Neg(Sin(x))), "x + sin(x)"},
		{"constant fronted in sum", Add(x, Two), "2 + x"},

		// multiplicative identities
		{"mul zero", Mul(Sin(x), Zero), "0"},
		{"mul one", Mul(One, x), "x"},
		{"mul self", Mul(x, x), "x^2"},
		{"mul minus one", Mul(x, MinusOne), "-x"},
		{"double negation", Neg(Neg(x)), "x"},
		{"constant fronted in product", Mul(x, Two), "2x"},
		{"nested coefficients", Mul(Two, Mul(Three, x)), "6x"},
		{"distribute over foldable sum", Mul(Two, Add(x, Three)), "6 + 2x"},
		{"no distribute without fold", Mul(Two, Add(x, Sin(x))), "2 * (x + sin(x))"},
		{"merge powers", Mul(Pow(x, Two), x), "x^3"},

		// division
		{"div one", Div(x, One), "x"},
		{"div self", Div(Sin(x), Sin(x)), "1"},
		{"div minus one", Div(x, MinusOne), "-x"},
		{"cancel numerator factor", Div(Mul(x, Sin(x)), x), "sin(x)"},
		{"cancel denominator factor", Div(x, Mul(x, Sin(x))), "1 / sin(x)"},
		{"merge power quotient", Div(x, Pow(x, Three)), "x^-2"},
		{"constant denominator", Div(x, Two), "0.5x"},
		{"zero numerator", Div(Zero, Sin(x)), "0"},

		// powers
		{"pow zero", Pow(x, Zero), "1"},
		{"pow one", Pow(x, One), "x"},
		{"one pow", Pow(One, Sin(x)), "1"},
		{"nested pow", Pow(Pow(x, Two), Three), "x^6"},
		{"e to ln", Pow(E, Ln(x)), "x"},

		// logarithms and exponentials
		{"ln of exp", Ln(Exp(x)), "x"},
		{"exp of ln", Exp(Ln(x)), "x"},
		{"ln of power", Ln(Pow(x, Two)), "2 * ln(x)"},
		{"log of own base", Log(x, x), "1"},
		{"ln of one", Ln(One), "0"},
		{"ln of e", Ln(E), "1"},
		{"exp of zero", Exp(Zero), "1"},
		{"exp of one", Exp(One), "e"},
		{"exp of scaled ln", Exp(Mul(Two, Ln(x))), "x^2"},

		// trig special values
		{"sin zero", Sin(Zero), "0"},
		{"sin pi", Sin(Pi), "0"},
		{"sin half pi", Sin(Div(Pi, Two)), "1"},
		{"cos zero", Cos(Zero), "1"},
		{"cos pi", Cos(Pi), "-1"},
		{"cos half pi", Cos(Div(Pi, Two)), "0"},
		{"sin is odd", Sin(Neg(x)), "-sin(x)"},
		{"cos is even", Cos(Neg(x)), "cos(x)"},

		// roots
		{"root of one", NthRoot(One, 7), "1"},
		{"odd root of minus one", NthRoot(MinusOne, 3), "-1"},
		{"root inverts power", NthRoot(Pow(x, NewConst(5)), 5), "x"},
		{"sqrt inverts square", Sqrt(Pow(x, Two)), "x"},
		{"cbrt inverts cube", Cbrt(Pow(x, Three)), "x"},

		// common factor extraction
		{"shared factor", Add(Mul(Two, x), Mul(Two, Sin(x))), "2 * (x + sin(x))"},

		// already canonical
		{"irreducible sum", Add(x, Sin(x)), "x + sin(x)"},
		{"irreducible quotient", Div(One, x), "1 / x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Simplify(tc.node)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// Simplification reaches a fixed point: simplifying twice changes nothing.
func TestSimplifyIdempotent(t *testing.T) {
	x := NewVar("x")

	nodes := []ExprNode{
		Mul(Two, Add(x, Three)),
		Div(Mul(x, Sin(x)), x),
		Ln(Mul(x, x)),
		Sub(x, NewConst(-5)),
		Add(Mul(Two, x), Mul(Two, Sin(x))),
		Differentiate(Pow(x, Three), "x"),
	}

	for _, node := range nodes {
		once := Simplify(node)
		twice := Simplify(once)
		assert.Equal(t, once.String(), twice.String())
		assert.True(t, Equal(once, twice))
	}
}

// Rewrites must not change what an expression evaluates to.
func TestSimplifyPreservesValue(t *testing.T) {
	x := NewVar("x")

	nodes := []ExprNode{
		Mul(x, Sin(x)),
		Exp(Neg(Pow(x, Two))),
		Div(Mul(x, Sin(x)), x),
		Add(Mul(Two, x), Mul(Two, Sin(x))),
		Ln(Mul(x, x)),
		Sub(x, NewConst(-5)),
		Mul(Two, Add(x, Three)),
	}
	points := []float64{0.5, 1.7, 3}

	for _, node := range nodes {
		simplified := Simplify(node)
		for _, at := range points {
			want, err := node.Compute(At(at))
			require.NoError(t, err)
			got, err := simplified.Compute(At(at))
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9, "%s at %g", node, at)
		}
	}
}
