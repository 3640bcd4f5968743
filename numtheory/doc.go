// SPDX-License-Identifier: MIT

// Package numtheory implements integer number-theory primitives: primality,
// prime generation and factorization, Fibonacci numbers, divisor-sum
// classification and GCD/LCM (including the Extended Euclidean Algorithm).
//
// 🚀 What is inside?
//
//	Primes:
//	  • IsPrime            - trial division by odd d ≤ ⌊√n⌋
//	  • GeneratePrimes     - Sieve of Eratosthenes over [0, limit]
//	  • PrimeFactors       - full multiset of prime factors, non-decreasing
//	Fibonacci:
//	  • Fibonacci          - n-th term (0-indexed)
//	  • FibonacciSequence  - first n terms
//	  • FibonacciGenerator - lazy iter.Seq of every term ≤ limit
//	  • IsFibonacci        - 5n²±4 perfect-square test
//	Divisors:
//	  • SumProperDivisors, IsPerfectNumber, IsAbundantNumber
//	GCD family:
//	  • GCD, LCM, GCDMultiple, LCMMultiple, ExtendedGCD
//	Arithmetic:
//	  • Factorial (*big.Int), ModPow
//
// ✨ Contract:
//   - Every function is pure and safe for concurrent use.
//   - Domain violations return ErrDomain (wrapped with the operation name);
//     match with errors.Is. Nothing panics on user input.
//   - Results that do not fit in int return ErrOverflow instead of wrapping.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/numtheory"
//
//	primes, err := numtheory.GeneratePrimes(30)
//	// primes == [2 3 5 7 11 13 17 19 23 29]
//
//	seq, _ := numtheory.FibonacciGenerator(10)
//	for f := range seq {
//	  fmt.Println(f) // 0 1 1 2 3 5 8
//	}
//
//	g, x, y := numtheory.ExtendedGCD(30, 18)
//	// g == 6, 30*x + 18*y == 6
//
// Complexity:
//
//   - IsPrime, PrimeFactors, divisor sums: O(√n)
//   - GeneratePrimes: O(n log log n) time, O(n) memory
//   - GCD family: O(log min(a,b)) per pair
package numtheory
