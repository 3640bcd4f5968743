// SPDX-License-Identifier: MIT

package numtheory

import "math"

// SumProperDivisors returns the sum of the proper divisors of n (all positive
// divisors except n itself). SumProperDivisors(1) == 0.
//
// Errors:
//   - ErrDomain if n < 1.
//   - ErrOverflow if the sum exceeds math.MaxInt.
//
// Complexity: O(√n) time.
func SumProperDivisors(n int) (int, error) {
	if n < 1 {
		return 0, ntErrorf(opSumProperDivisors, ErrDomain)
	}
	if n == 1 {
		return 0, nil
	}

	sum := divisorSum(n, math.MaxInt)
	if sum > math.MaxInt {
		return 0, ntErrorf(opSumProperDivisors, ErrOverflow)
	}

	return int(sum), nil
}

// IsPerfectNumber reports whether n equals the sum of its proper divisors
// (6, 28, 496, …). 1 is never perfect.
//
// Errors:
//   - ErrDomain if n < 1.
//
// Complexity: O(√n) time.
func IsPerfectNumber(n int) (bool, error) {
	if n < 1 {
		return false, ntErrorf(opIsPerfectNumber, ErrDomain)
	}
	if n == 1 {
		return false, nil
	}

	return divisorSum(n, uint64(n)) == uint64(n), nil
}

// IsAbundantNumber reports whether the sum of the proper divisors of n
// exceeds n (12, 18, 20, …). 1 is never abundant.
//
// Errors:
//   - ErrDomain if n < 1.
//
// Complexity: O(√n) time.
func IsAbundantNumber(n int) (bool, error) {
	if n < 1 {
		return false, ntErrorf(opIsAbundantNumber, ErrDomain)
	}
	if n == 1 {
		return false, nil
	}

	return divisorSum(n, uint64(n)) > uint64(n), nil
}

// divisorSum accumulates the proper divisors of n ≥ 2 by trial division up
// to ⌊√n⌋, adding both i and n/i and counting a square root once.
//
// The scan ends as soon as the running sum exceeds stopAbove; the returned
// value is then only known to be > stopAbove. The uint64 accumulator cannot
// overflow: before each step sum ≤ stopAbove ≤ MaxInt and one step adds at
// most n+1.
func divisorSum(n int, stopAbove uint64) uint64 {
	sum := uint64(1) // 1 divides every n ≥ 2
	for i := 2; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		sum += uint64(i)
		if j := n / i; j != i {
			sum += uint64(j)
		}
		if sum > stopAbove {
			return sum
		}
	}

	return sum
}
