// SPDX-License-Identifier: MIT
// Package: lvlmath/numtheory
//
// errors.go: sentinel errors for the numtheory package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Every public function wraps the sentinel with its own name via
//     ntErrorf(op, ErrX), producing "IsPrime: numtheory: value outside domain".
//   • Nothing in this package panics on user input.

package numtheory

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates an argument outside the mathematically defined
	// domain of the operation (e.g. IsPrime(1), PrimeFactors(0), LCM(0, 5)).
	ErrDomain = errors.New("numtheory: value outside domain")

	// ErrNoArguments indicates a variadic operation (GCDMultiple, LCMMultiple)
	// was called without any operands.
	ErrNoArguments = errors.New("numtheory: at least one argument required")

	// ErrOverflow indicates the exact result does not fit in an int
	// (e.g. a Fibonacci term past the platform limit, or |math.MinInt|).
	ErrOverflow = errors.New("numtheory: result overflows int")
)

// Operation names used as error prefixes.
const (
	opIsPrime           = "IsPrime"
	opGeneratePrimes    = "GeneratePrimes"
	opPrimeFactors      = "PrimeFactors"
	opFibonacci         = "Fibonacci"
	opFibonacciSequence = "FibonacciSequence"
	opFibonacciGen      = "FibonacciGenerator"
	opIsFibonacci       = "IsFibonacci"
	opSumProperDivisors = "SumProperDivisors"
	opIsPerfectNumber   = "IsPerfectNumber"
	opIsAbundantNumber  = "IsAbundantNumber"
	opGCD               = "GCD"
	opLCM               = "LCM"
	opGCDMultiple       = "GCDMultiple"
	opLCMMultiple       = "LCMMultiple"
	opFactorial         = "Factorial"
	opModPow            = "ModPow"
)

// ntErrorf prefixes err with the operation tag, keeping err matchable via errors.Is.
func ntErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
