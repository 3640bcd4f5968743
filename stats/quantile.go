// SPDX-License-Identifier: MIT
// Package: lvlmath/stats
//
// quantile.go: positional measures (Quartiles, Percentile, InterquartileRange).
//
// Quartiles use the median-of-halves method. The halves are s[:n/2] and
// s[n/2:] for even n, s[:n/2] and s[n/2+1:] for odd n, so the central
// element of odd-length data belongs to neither half.
//
// Percentile ranks p over the sorted data at index (p/100)·(n−1) and
// interpolates linearly between the neighbouring elements.

package stats

import (
	"math"
)

// Quartiles returns Q1, Q2 and Q3 of data. data is not modified.
//
// Errors:
//   - ErrEmptyDataset if len(data) == 0.
//   - ErrInsufficientData if len(data) < 3.
//
// Complexity: O(n log n) time, O(n) space.
func Quartiles[T Number](data []T) (Quartile, error) {
	q, err := quartiles(data)
	if err != nil {
		return Quartile{}, statsErrorf(opQuartiles, err)
	}

	return q, nil
}

// InterquartileRange returns Q3 − Q1 as computed by Quartiles.
//
// Errors: as Quartiles.
func InterquartileRange[T Number](data []T) (float64, error) {
	q, err := quartiles(data)
	if err != nil {
		return 0, statsErrorf(opInterquartileRange, err)
	}

	return q.IQR(), nil
}

// Percentile returns the p-th percentile of data, p ∈ [0, 100].
// p = 0 yields the minimum and p = 100 the maximum.
//
// Errors:
//   - ErrPercentileRange (an ErrDomain) if p is outside [0, 100] or NaN.
//     This is checked before the dataset.
//   - ErrEmptyDataset if len(data) == 0.
//
// Complexity: O(n log n) time, O(n) space.
func Percentile[T Number](data []T, p float64) (float64, error) {
	if !(p >= 0 && p <= 100) {
		return 0, statsErrorf(opPercentile, ErrPercentileRange)
	}
	if len(data) == 0 {
		return 0, statsErrorf(opPercentile, ErrEmptyDataset)
	}

	s := sortedFloats(data)
	n := len(s)
	switch p {
	case 0:
		return s[0], nil
	case 100:
		return s[n-1], nil
	}

	index := p / 100 * float64(n-1)
	lo := math.Floor(index)
	i := int(lo)
	if index == lo {
		return s[i], nil
	}
	weight := index - lo

	return s[i] + weight*(s[i+1]-s[i]), nil
}

// quartiles returns unwrapped sentinels so each public caller tags its own op.
func quartiles[T Number](data []T) (Quartile, error) {
	n := len(data)
	if n == 0 {
		return Quartile{}, ErrEmptyDataset
	}
	if n < 3 {
		return Quartile{}, ErrInsufficientData
	}

	s := sortedFloats(data)
	half := n / 2
	upper := s[half:]
	if n%2 == 1 {
		upper = s[half+1:]
	}

	return Quartile{
		Q1: medianSorted(s[:half]),
		Q2: medianSorted(s),
		Q3: medianSorted(upper),
	}, nil
}
