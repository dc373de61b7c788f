package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNthRootValueExact(t *testing.T) {
	// Perfect powers land on the exact integer once the iteration
	// reaches its fixed point.
	tests := []struct {
		name   string
		value  float64
		degree int
		want   float64
	}{
		{"fifth root of 32", 32, 5, 2},
		{"seventh root of 2187", 2187, 7, 3},
		{"square root of 4", 4, 2, 2},
		{"cube root of 27", 27, 3, 3},
		{"any root of 1", 1, 9, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NthRootValue(tc.value, tc.degree)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNthRootValueConvergence(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		degree int
	}{
		{"sqrt 5", 5, 2},
		{"cube root of a half", 0.5, 3},
		{"fourth root of 7", 7, 4},
		{"large radicand", 1e12, 6},
		{"small radicand", 1e-9, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NthRootValue(tc.value, tc.degree)
			require.NoError(t, err)

			want := math.Pow(tc.value, 1/float64(tc.degree))
			assert.InDelta(t, want, got, 1e-11*want)
		})
	}
}

func TestNthRootValueDomain(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		degree int
	}{
		{"degree below two", 9, 1},
		{"zero degree", 9, 0},
		{"zero value", 0, 3},
		{"negative value", -8, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NthRootValue(tc.value, tc.degree)
			require.Error(t, err)

			var domain *DomainError
			require.ErrorAs(t, err, &domain)
			assert.Equal(t, tc.value, domain.Value)
			assert.Equal(t, tc.degree, domain.Degree)
		})
	}
}
