// SPDX-License-Identifier: MIT
// Package: lvlmath/stats
//
// dispersion.go: spread measures (Variance, StandardDeviation, Range).

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Variance returns the sample variance of data (divisor n−1), or the
// population variance (divisor n) when called with WithPopulation().
//
// Errors:
//   - ErrEmptyDataset if len(data) == 0.
//   - ErrInsufficientData for the sample estimator with len(data) < 2.
//
// Complexity: O(n) time, O(n) space.
func Variance[T Number](data []T, opts ...Option) (float64, error) {
	v, err := variance(data, applyOptions(opts))
	if err != nil {
		return 0, statsErrorf(opVariance, err)
	}

	return v, nil
}

// StandardDeviation returns √Variance(data, opts...).
//
// Errors: as Variance.
func StandardDeviation[T Number](data []T, opts ...Option) (float64, error) {
	v, err := variance(data, applyOptions(opts))
	if err != nil {
		return 0, statsErrorf(opStandardDeviation, err)
	}

	return math.Sqrt(v), nil
}

// Range returns max(data) − min(data).
//
// Errors:
//   - ErrEmptyDataset if len(data) == 0.
//
// Complexity: O(n) time, O(n) space.
func Range[T Number](data []T) (float64, error) {
	if len(data) == 0 {
		return 0, statsErrorf(opRange, ErrEmptyDataset)
	}
	x := toFloats(data)

	return floats.Max(x) - floats.Min(x), nil
}

// variance returns unwrapped sentinels so each public caller tags its own op.
func variance[T Number](data []T, cfg config) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	if cfg.population {
		return stat.PopVariance(toFloats(data), nil), nil
	}
	if len(data) < 2 {
		return 0, ErrInsufficientData
	}

	return stat.Variance(toFloats(data), nil), nil
}
