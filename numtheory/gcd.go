// SPDX-License-Identifier: MIT

package numtheory

import (
	"math"
	"math/bits"
)

// GCD returns the greatest common divisor of |a| and |b| (Euclid's algorithm).
// GCD(a, 0) == |a|.
//
// Errors:
//   - ErrDomain if a == b == 0 (every integer divides 0).
//   - ErrOverflow if either argument is math.MinInt.
//
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int) (int, error) {
	ua, err := absInt(a)
	if err != nil {
		return 0, ntErrorf(opGCD, err)
	}
	ub, err := absInt(b)
	if err != nil {
		return 0, ntErrorf(opGCD, err)
	}
	if ua == 0 && ub == 0 {
		return 0, ntErrorf(opGCD, ErrDomain)
	}

	return gcd(ua, ub), nil
}

// LCM returns the least common multiple |a·b| / GCD(a, b).
//
// Errors:
//   - ErrDomain if a or b is zero.
//   - ErrOverflow if an argument is math.MinInt or the result exceeds math.MaxInt.
func LCM(a, b int) (int, error) {
	ua, err := absInt(a)
	if err != nil {
		return 0, ntErrorf(opLCM, err)
	}
	ub, err := absInt(b)
	if err != nil {
		return 0, ntErrorf(opLCM, err)
	}
	if ua == 0 || ub == 0 {
		return 0, ntErrorf(opLCM, ErrDomain)
	}

	l, err := lcm(ua, ub)
	if err != nil {
		return 0, ntErrorf(opLCM, err)
	}

	return l, nil
}

// GCDMultiple folds GCD over all arguments, using absolute values.
// The fold stops early once the running result reaches 1, since a GCD
// can never drop below it.
//
// Errors:
//   - ErrNoArguments if nums is empty.
//   - ErrDomain if every argument is zero.
//   - ErrOverflow if any argument is math.MinInt.
//
// Example:
//
//	g, _ := GCDMultiple(48, 18, 24) // 6
func GCDMultiple(nums ...int) (int, error) {
	if len(nums) == 0 {
		return 0, ntErrorf(opGCDMultiple, ErrNoArguments)
	}

	// Stage 1: validate every operand before folding.
	abs := make([]int, len(nums))
	for i, v := range nums {
		u, err := absInt(v)
		if err != nil {
			return 0, ntErrorf(opGCDMultiple, err)
		}
		abs[i] = u
	}

	// Stage 2: pairwise fold with early exit at 1.
	result := abs[0]
	for _, v := range abs[1:] {
		result = gcd(result, v)
		if result == 1 {
			break
		}
	}
	if result == 0 {
		return 0, ntErrorf(opGCDMultiple, ErrDomain)
	}

	return result, nil
}

// LCMMultiple folds LCM over all arguments: lcm = |x·y| / gcd(x, y).
//
// Errors:
//   - ErrNoArguments if nums is empty.
//   - ErrDomain if any argument is zero.
//   - ErrOverflow if any argument is math.MinInt or the running LCM exceeds math.MaxInt.
//
// Example:
//
//	l, _ := LCMMultiple(4, 6, 8) // 24
func LCMMultiple(nums ...int) (int, error) {
	if len(nums) == 0 {
		return 0, ntErrorf(opLCMMultiple, ErrNoArguments)
	}

	// Stage 1: zero anywhere makes the whole fold undefined; check up front.
	abs := make([]int, len(nums))
	for i, v := range nums {
		u, err := absInt(v)
		if err != nil {
			return 0, ntErrorf(opLCMMultiple, err)
		}
		if u == 0 {
			return 0, ntErrorf(opLCMMultiple, ErrDomain)
		}
		abs[i] = u
	}

	// Stage 2: pairwise fold.
	result := abs[0]
	var err error
	for _, v := range abs[1:] {
		if result, err = lcm(result, v); err != nil {
			return 0, ntErrorf(opLCMMultiple, err)
		}
	}

	return result, nil
}

// ExtendedGCD runs the Extended Euclidean Algorithm and returns g together
// with Bézout coefficients x, y such that a·x + b·y == g.
//
// Recurrence:
//
//	egcd(a, 0)  = (a, 1, 0)
//	egcd(a, b)  = (g, y₁, x₁ − (a/b)·y₁)  where (g, x₁, y₁) = egcd(b, a mod b)
//
// The result is normalised so that g ≥ 0 (x and y are negated along with g),
// which makes g == GCD(|a|, |b|) for every sign combination. ExtendedGCD(0, 0)
// returns (0, 1, 0).
//
// math.MinInt is the exception: |math.MinInt| has no int form, so a result
// whose magnitude is 2⁶³ (or 2³¹) stays negative. a·x + b·y == g still holds
// in wrapping int arithmetic. Use GCD, which reports ErrOverflow, to reject
// such inputs up front.
//
// Complexity: O(log min(|a|,|b|)) time and recursion depth.
func ExtendedGCD(a, b int) (g, x, y int) {
	g, x, y = extendedGCD(a, b)
	if g < 0 {
		g, x, y = -g, -x, -y
	}

	return g, x, y
}

func extendedGCD(a, b int) (g, x, y int) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := extendedGCD(b, a%b)

	return g, y1, x1 - (a/b)*y1
}

// gcd assumes a, b ≥ 0.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm assumes a, b > 0. (a/g)·b is evaluated in 128 bits to detect overflow.
func lcm(a, b int) (int, error) {
	q := a / gcd(a, b)
	hi, lo := bits.Mul64(uint64(q), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, ErrOverflow
	}

	return int(lo), nil
}

// absInt returns |v|, or ErrOverflow for math.MinInt whose magnitude has no int form.
func absInt(v int) (int, error) {
	if v == math.MinInt {
		return 0, ErrOverflow
	}
	if v < 0 {
		return -v, nil
	}

	return v, nil
}
