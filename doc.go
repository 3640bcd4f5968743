// Package lvlmath is a small toolbox of exact integer math and descriptive
// statistics: pure functions over primitive numbers and numeric slices.
//
// 🚀 What is lvlmath?
//
//	Two independent packages, each a flat set of stateless operations:
//		• numtheory - primality, the Sieve of Eratosthenes, prime factorization,
//		  Fibonacci (values, sequences, a range-over-func generator),
//		  perfect/abundant numbers, GCD/LCM, Extended Euclid, n!, modular power
//		• stats     - mean, median, mode, variance/standard deviation,
//		  range, quartiles, percentiles, IQR- and Z-score outliers,
//		  cleaning of loosely typed ([]any) input
//
// ✨ Why choose lvlmath?
//
//   - Predictable: no globals, no I/O, inputs are never mutated
//   - Honest errors: sentinel errors for domain, empty and insufficient
//     data, matched with errors.Is; overflow is reported, never wrapped
//   - Generic: stats accepts every integer and float kind
//
// Layout:
//
//	numtheory/ - integer algorithms (int, *big.Int for factorials)
//	stats/     - descriptive statistics on gonum kernels
//	examples/  - runnable demo (sensor batch report, number theory tour)
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
