// SPDX-License-Identifier: MIT

package numtheory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/numtheory"
)

// naiveDivisorSum sums every d in [1, n-1] dividing n.
func naiveDivisorSum(n int) int {
	s := 0
	for d := 1; d < n; d++ {
		if n%d == 0 {
			s += d
		}
	}

	return s
}

// TestDivisors_Domain verifies n < 1 is rejected by every divisor function.
func TestDivisors_Domain(t *testing.T) {
	_, err := numtheory.SumProperDivisors(0)
	assert.ErrorIs(t, err, numtheory.ErrDomain)
	_, err = numtheory.IsPerfectNumber(0)
	assert.ErrorIs(t, err, numtheory.ErrDomain)
	_, err = numtheory.IsAbundantNumber(-4)
	assert.ErrorIs(t, err, numtheory.ErrDomain)
}

// TestIsPerfectNumber_Known checks 6, 28, 496, 8128 and a few non-perfect values.
func TestIsPerfectNumber_Known(t *testing.T) {
	cases := map[int]bool{1: false, 2: false, 6: true, 12: false, 28: true, 496: true, 8128: true, 8129: false}
	for n, want := range cases {
		got, err := numtheory.IsPerfectNumber(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "IsPerfectNumber(%d)", n)
	}
}

// TestIsAbundantNumber_Known checks documented answers, including a perfect
// square (36) whose root must be counted once.
func TestIsAbundantNumber_Known(t *testing.T) {
	cases := map[int]bool{1: false, 6: false, 12: true, 16: false, 18: true, 20: true, 36: true, 945: true, 49: false}
	for n, want := range cases {
		got, err := numtheory.IsAbundantNumber(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "IsAbundantNumber(%d)", n)
	}
}

// TestSumProperDivisors_AgreesWithNaive compares against exhaustive summation on [1, 2000]
// and checks the perfect/abundant classification is consistent with the sum.
func TestSumProperDivisors_AgreesWithNaive(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		want := naiveDivisorSum(n)

		got, err := numtheory.SumProperDivisors(n)
		require.NoError(t, err)
		require.Equal(t, want, got, "SumProperDivisors(%d)", n)

		perfect, err := numtheory.IsPerfectNumber(n)
		require.NoError(t, err)
		require.Equal(t, n > 1 && want == n, perfect, "IsPerfectNumber(%d)", n)

		abundant, err := numtheory.IsAbundantNumber(n)
		require.NoError(t, err)
		require.Equal(t, n > 1 && want > n, abundant, "IsAbundantNumber(%d)", n)
	}
}
