// SPDX-License-Identifier: MIT
// Package: lvlmath/stats
//
// outliers.go: outlier detection by interquartile fences and by Z-score.
//
// IQR method: x is an outlier iff x < Q1 − k·IQR or x > Q3 + k·IQR
// (strict; values on a fence are kept). k defaults to 1.5.
//
// Z-score method: x is an outlier iff |x − mean| / σ > threshold, with σ the
// sample standard deviation. threshold defaults to 2.0.
//
// Detectors return an empty, non-nil slice for empty input. Results keep
// the input order and duplicates.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// IQRBounds returns the lower and upper fences Q1 − k·IQR and Q3 + k·IQR,
// with k set by WithMultiplier (default 1.5).
//
// Errors: as Quartiles.
func IQRBounds[T Number](data []T, opts ...Option) (lower, upper float64, err error) {
	lower, upper, err = iqrBounds(data, applyOptions(opts))
	if err != nil {
		return 0, 0, statsErrorf(opIQRBounds, err)
	}

	return lower, upper, nil
}

// DetectOutliersIQR returns the values of data lying strictly outside the
// IQR fences.
//
// Errors:
//   - ErrInsufficientData if 0 < len(data) < 3.
//
// Complexity: O(n log n) time, O(n) space.
func DetectOutliersIQR[T Number](data []T, opts ...Option) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}
	lower, upper, err := iqrBounds(data, applyOptions(opts))
	if err != nil {
		return nil, statsErrorf(opDetectOutliersIQR, err)
	}

	return filter(data, func(x float64) bool { return x < lower || x > upper }), nil
}

// RemoveOutliersIQR returns data without the values DetectOutliersIQR would
// report. Removal is by value, so every copy of an outlying value goes.
//
// Errors: as DetectOutliersIQR.
func RemoveOutliersIQR[T Number](data []T, opts ...Option) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}
	lower, upper, err := iqrBounds(data, applyOptions(opts))
	if err != nil {
		return nil, statsErrorf(opRemoveOutliersIQR, err)
	}

	return filter(data, func(x float64) bool { return !(x < lower || x > upper) }), nil
}

// ZScores returns (x − mean) / σ for every element, σ being the sample
// standard deviation. When σ == 0 every score is 0.
//
// Errors:
//   - ErrEmptyDataset if len(data) == 0.
//   - ErrInsufficientData if len(data) == 1.
//
// Complexity: O(n) time, O(n) space.
func ZScores[T Number](data []T) ([]float64, error) {
	switch len(data) {
	case 0:
		return nil, statsErrorf(opZScores, ErrEmptyDataset)
	case 1:
		return nil, statsErrorf(opZScores, ErrInsufficientData)
	}

	return zScores(toFloats(data)), nil
}

// DetectOutliersZScore returns the values of data whose absolute Z-score
// exceeds the threshold set by WithThreshold (default 2.0). Fewer than two
// values, or zero spread, yield no outliers.
//
// Complexity: O(n) time, O(n) space.
func DetectOutliersZScore[T Number](data []T, opts ...Option) ([]T, error) {
	if len(data) < 2 {
		return []T{}, nil
	}
	cfg := applyOptions(opts)

	scores := zScores(toFloats(data))
	out := make([]T, 0)
	for i, z := range scores {
		if math.Abs(z) > cfg.threshold {
			out = append(out, data[i])
		}
	}

	return out, nil
}

// iqrBounds returns unwrapped sentinels from quartiles.
func iqrBounds[T Number](data []T, cfg config) (lower, upper float64, err error) {
	q, err := quartiles(data)
	if err != nil {
		return 0, 0, err
	}
	spread := cfg.multiplier * q.IQR()

	return q.Q1 - spread, q.Q3 + spread, nil
}

// zScores scores x in place and returns it; len(x) must be at least 2.
func zScores(x []float64) []float64 {
	mean, std := stat.MeanStdDev(x, nil)
	if std == 0 {
		clear(x)

		return x
	}
	for i, v := range x {
		x[i] = stat.StdScore(v, mean, std)
	}

	return x
}

// filter keeps the elements of data for which keep(float64(x)) holds.
func filter[T Number](data []T, keep func(float64) bool) []T {
	out := make([]T, 0, len(data))
	for _, v := range data {
		if keep(float64(v)) {
			out = append(out, v)
		}
	}

	return out
}
