package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	x := NewVar("x")

	tests := []struct {
		name string
		a, b ExprNode
		want bool
	}{
		{"same constant", NewConst(2), NewConst(2), true},
		{"different constant", NewConst(2), Three, false},
		{"constant by value", NewConst(2), Add(One, One), true},
		{"same variable", NewVar("x"), NewVar("x"), true},
		{"different variable", NewVar("x"), NewVar("y"), false},
		{"variable vs constant", x, One, false},
		{"same unary", Sin(x), Sin(x), true},
		{"different unary op", Sin(x), Cos(x), false},
		{"different unary child", Sin(x), Sin(NewVar("y")), false},
		{"same binary", Add(x, One), Add(x, One), true},
		{"operand order matters", Add(x, One), Add(One, x), false},
		{"different binary op", Add(x, One), Sub(x, One), false},
		{"same root", NthRoot(x, 3), NthRoot(x, 3), true},
		{"different root degree", NthRoot(x, 3), NthRoot(x, 4), false},
		{"deep match", Mul(Sin(x), Pow(x, Two)), Mul(Sin(x), Pow(x, Two)), true},
		{"no algebraic identification", Mul(Two, x), Mul(x, Two), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Equal(tc.a, tc.b))
		})
	}
}

// Constant subtrees whose evaluation fails compare structurally instead
// of by value.
func TestEqualUncomputableConstants(t *testing.T) {
	assert.True(t, Equal(Div(One, Zero), Div(One, Zero)))
	assert.False(t, Equal(Div(One, Zero), Div(Two, Zero)))
}
