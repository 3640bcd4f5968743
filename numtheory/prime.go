// SPDX-License-Identifier: MIT

package numtheory

// IsPrime reports whether n is prime.
//
// The operation is defined for n ≥ 2 only; smaller values return ErrDomain.
// 2 is prime, every other even number is not, and odd n is trial-divided by
// odd d up to ⌊√n⌋.
//
// Complexity: O(√n) time, O(1) memory.
func IsPrime(n int) (bool, error) {
	if n < 2 {
		return false, ntErrorf(opIsPrime, ErrDomain)
	}

	return isPrime(n), nil
}

// isPrime assumes n ≥ 2.
func isPrime(n int) bool {
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// d <= n/d is d*d <= n without the overflow near math.MaxInt.
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// GeneratePrimes returns every prime p with 2 ≤ p ≤ limit in ascending order,
// using the Sieve of Eratosthenes.
//
// Algorithm:
//  1. Allocate a marker slice of length limit+1, all set; clear 0 and 1.
//  2. For i = 2..⌊√limit⌋: if i is still marked, clear i², i²+i, … ≤ limit.
//  3. Collect the indices that remain marked.
//
// Errors:
//   - ErrDomain if limit < 2.
//
// Complexity: O(limit·log log limit) time, O(limit) memory.
func GeneratePrimes(limit int) ([]int, error) {
	if limit < 2 {
		return nil, ntErrorf(opGeneratePrimes, ErrDomain)
	}

	// Stage 1: marker array over [0, limit].
	sieve := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		sieve[i] = true
	}

	// Stage 2: strike multiples starting from i².
	for i := 2; i <= limit/i; i++ {
		if !sieve[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			sieve[j] = false
			if j > limit-i {
				break // next j would overflow past math.MaxInt
			}
		}
	}

	// Stage 3: collect survivors in ascending order.
	primes := make([]int, 0, primeCountHint(limit))
	for i := 2; i <= limit; i++ {
		if sieve[i] {
			primes = append(primes, i)
		}
	}

	return primes, nil
}

// primeCountHint is a cheap capacity guess for π(limit); it never affects results.
func primeCountHint(limit int) int {
	if limit < 64 {
		return 18
	}

	return limit / 8
}

// PrimeFactors returns the prime factorization of n with multiplicity, in
// non-decreasing order. PrimeFactors(1) is the empty slice.
//
// Divisors d = 2, 3, 4, … are divided out while d² ≤ remaining n; any
// remainder above 1 is the largest prime factor and is appended last.
//
// Errors:
//   - ErrDomain if n < 1.
//
// Complexity: O(√n) time.
func PrimeFactors(n int) ([]int, error) {
	if n < 1 {
		return nil, ntErrorf(opPrimeFactors, ErrDomain)
	}

	factors := []int{}
	for d := 2; d <= n/d; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	return factors, nil
}
