// SPDX-License-Identifier: MIT

package numtheory

import (
	"iter"
	"math"
	"math/big"
)

// Fibonacci returns F(n) of the sequence 0, 1, 1, 2, 3, 5, … (0-indexed).
//
// Errors:
//   - ErrDomain if n < 0.
//   - ErrOverflow if F(n) exceeds math.MaxInt (n > 92 on 64-bit platforms).
//
// Complexity: O(n) time, O(1) memory.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, ntErrorf(opFibonacci, ErrDomain)
	}
	if n == 0 {
		return 0, nil
	}

	// Invariant after the loop body at step i: a = F(i-1), b = F(i).
	a, b := 0, 1
	for i := 1; i < n; i++ {
		if a > math.MaxInt-b {
			return 0, ntErrorf(opFibonacci, ErrOverflow)
		}
		a, b = b, a+b
	}

	return b, nil
}

// FibonacciSequence returns the first n Fibonacci numbers.
// n == 0 yields an empty slice and n == 1 yields [0].
//
// Errors:
//   - ErrDomain if n < 0.
//   - ErrOverflow if the n-th term does not fit in an int.
//
// Complexity: O(n) time and memory.
func FibonacciSequence(n int) ([]int, error) {
	if n < 0 {
		return nil, ntErrorf(opFibonacciSequence, ErrDomain)
	}
	if n == 0 {
		return []int{}, nil
	}
	if n == 1 {
		return []int{0}, nil
	}

	seq := make([]int, 2, n)
	seq[0], seq[1] = 0, 1
	for i := 2; i < n; i++ {
		if seq[i-2] > math.MaxInt-seq[i-1] {
			return nil, ntErrorf(opFibonacciSequence, ErrOverflow)
		}
		seq = append(seq, seq[i-1]+seq[i-2])
	}

	return seq, nil
}

// FibonacciGenerator returns a lazy sequence of every Fibonacci number ≤ limit,
// starting at 0 (so limit == 1 yields 0, 1, 1).
//
// The returned iter.Seq owns no shared state: each range over it starts again
// from 0, and breaking out early is safe. The sequence is finite for every
// limit, including math.MaxInt.
//
// Errors:
//   - ErrDomain if limit < 0.
//
// Example:
//
//	seq, _ := FibonacciGenerator(10)
//	for f := range seq {
//	  fmt.Print(f, " ") // 0 1 1 2 3 5 8
//	}
func FibonacciGenerator(limit int) (iter.Seq[int], error) {
	if limit < 0 {
		return nil, ntErrorf(opFibonacciGen, ErrDomain)
	}

	return func(yield func(int) bool) {
		a, b := 0, 1 // cursor lives inside a single traversal
		for {
			if !yield(a) {
				return
			}
			if b > limit {
				return
			}
			if a > math.MaxInt-b {
				// b is the last term representable as int, and b ≤ limit.
				yield(b)
				return
			}
			a, b = b, a+b
		}
	}, nil
}

// IsFibonacci reports whether n is a Fibonacci number, using the identity
// "n is Fibonacci ⇔ 5n²+4 or 5n²−4 is a perfect square". 0 is Fibonacci.
//
// The squares are evaluated with math/big so the test stays exact for every
// int, where 5n² would overflow a machine word.
//
// Errors:
//   - ErrDomain if n < 0.
func IsFibonacci(n int) (bool, error) {
	if n < 0 {
		return false, ntErrorf(opIsFibonacci, ErrDomain)
	}
	if n == 0 {
		return true, nil
	}

	// v = 5n²
	v := new(big.Int).SetInt64(int64(n))
	v.Mul(v, v)
	v.Mul(v, big.NewInt(5))

	four := big.NewInt(4)
	plus := new(big.Int).Add(v, four)
	minus := new(big.Int).Sub(v, four)

	return isPerfectSquare(plus) || isPerfectSquare(minus), nil
}

// isPerfectSquare reports whether x ≥ 0 equals ⌊√x⌋².
func isPerfectSquare(x *big.Int) bool {
	if x.Sign() < 0 {
		return false
	}
	s := new(big.Int).Sqrt(x)
	s.Mul(s, s)

	return s.Cmp(x) == 0
}
