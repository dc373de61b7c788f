package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifferentiateSymbolic(t *testing.T) {
	x := NewVar("x")

	tests := []struct {
		name string
		node ExprNode
		want string
	}{
		{"constant", NewConst(5), "0"},
		{"variable", x, "1"},
		{"other variable", NewVar("y"), "0"},
		{"scaled variable", Mul(x, NewConst(5)), "5"},
		{"sum", Add(x, Sin(x)), "1 + cos(x)"},
		{"power rule", Pow(x, Three), "3 * x^2"},
		{"sin", Sin(x), "cos(x)"},
		{"cos", Cos(x), "-sin(x)"},
		{"tan", Tan(x), "1 / cos(x)^2"},
		{"ln", Ln(x), "1 / x"},
		{"exp", Exp(x), "exp(x)"},
		{"sqrt", Sqrt(x), "1 / (2 * sqrt(x))"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Differentiate(tc.node, "x")
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// centralDiff approximates f'(at) from the evaluator, for cross-checking
// the symbolic rules.
func centralDiff(t *testing.T, f ExprNode, at float64) float64 {
	t.Helper()
	const h = 1e-6
	hi := mustCompute(t, f, At(at+h))
	lo := mustCompute(t, f, At(at-h))
	return (hi - lo) / (2 * h)
}

func TestDifferentiateNumeric(t *testing.T) {
	x := NewVar("x")

	tests := []struct {
		name string
		node ExprNode
		at   float64
	}{
		{"product rule", Mul(x, Sin(x)), 1.3},
		{"quotient rule", Div(x, Add(One, Pow(x, Two))), 0.8},
		{"exponential", Pow(Two, x), 1.5},
		{"self power", Pow(x, x), 2},
		{"chain through exp", Exp(Sin(x)), 1.1},
		{"ln", Ln(x), 2.5},
		{"ld", Ld(x), 3},
		{"log base ten", Log(x, NewConst(10)), 4},
		{"sqrt", Sqrt(x), 2},
		{"cbrt", Cbrt(x), 2},
		{"tan", Tan(x), 0.5},
		{"asin", Asin(x), 0.3},
		{"acos", Acos(x), 0.3},
		{"atan", Atan(x), 2},
		{"degrees of sin", ToDegrees(Sin(x)), 0.9},
		{"radians of square", ToRadians(Pow(x, Two)), 1.7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Differentiate(tc.node, "x")
			got := mustCompute(t, d, At(tc.at))
			want := centralDiff(t, tc.node, tc.at)
			assert.InDelta(t, want, got, 1e-4)
		})
	}
}

// The root derivative follows the fixed quotient shape
// v' / (n * root(v, n) * root(v, n)^(n-1)).
func TestDifferentiateRoot(t *testing.T) {
	d := Differentiate(NthRoot(NewVar("x"), 4), "x")

	got, err := d.Compute(At(16))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/64, got, 1e-12)
}

func TestDifferentiateTwice(t *testing.T) {
	x := NewVar("x")
	f := Pow(x, Three)

	first := Differentiate(f, "x")
	second := Differentiate(first, "x")

	assert.Equal(t, "3 * x^2", first.String())
	assert.Equal(t, "6x", second.String())
}
