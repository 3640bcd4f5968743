// SPDX-License-Identifier: MIT

package numtheory

import "math/big"

// Factorial returns n! as an arbitrary-precision integer. 0! == 1! == 1.
//
// Errors:
//   - ErrDomain if n < 0.
//
// Complexity: O(n) big-integer multiplications.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ntErrorf(opFactorial, ErrDomain)
	}
	if n < 2 {
		return big.NewInt(1), nil
	}

	// MulRange computes the product 1·2·…·n with a balanced split.
	return new(big.Int).MulRange(1, int64(n)), nil
}

// ModPow returns base^exp mod mod, with the result in [0, mod).
// Negative bases are reduced into [0, mod) first, so ModPow(-2, 3, 5) == 2.
//
// Errors:
//   - ErrDomain if exp < 0 or mod ≤ 0.
//
// Complexity: O(log exp) modular multiplications.
func ModPow(base, exp, mod int) (int, error) {
	if exp < 0 || mod <= 0 {
		return 0, ntErrorf(opModPow, ErrDomain)
	}
	if mod == 1 {
		return 0, nil
	}

	m := big.NewInt(int64(mod))
	b := new(big.Int).Mod(big.NewInt(int64(base)), m) // Euclidean modulus, never negative
	r := new(big.Int).Exp(b, big.NewInt(int64(exp)), m)

	return int(r.Int64()), nil
}
