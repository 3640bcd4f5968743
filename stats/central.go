// SPDX-License-Identifier: MIT
// Package: lvlmath/stats
//
// central.go: measures of central tendency (Mean, Median, Mode).

package stats

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of data.
//
// Errors:
//   - ErrEmptyDataset if len(data) == 0.
//
// Complexity: O(n) time, O(n) space for the float64 copy.
func Mean[T Number](data []T) (float64, error) {
	if len(data) == 0 {
		return 0, statsErrorf(opMean, ErrEmptyDataset)
	}

	return stat.Mean(toFloats(data), nil), nil
}

// Median returns the middle value of the sorted data, or the mean of the two
// middle values when len(data) is even. data is not modified.
//
// Errors:
//   - ErrEmptyDataset if len(data) == 0.
//
// Complexity: O(n log n) time, O(n) space.
func Median[T Number](data []T) (float64, error) {
	if len(data) == 0 {
		return 0, statsErrorf(opMedian, ErrEmptyDataset)
	}

	return medianSorted(sortedFloats(data)), nil
}

// Mode returns every value that occurs with the highest frequency, in the
// order each value first appears in data. A dataset of distinct values
// returns all of them. NaN never compares equal to itself and is not counted,
// so a NaN occurring more often than any number is silently ignored:
// Mode([NaN, NaN, 1]) is [1].
//
// Errors:
//   - ErrEmptyDataset if len(data) == 0.
//
// Complexity: O(n) time, O(k) space for k distinct values.
func Mode[T Number](data []T) ([]T, error) {
	if len(data) == 0 {
		return nil, statsErrorf(opMode, ErrEmptyDataset)
	}

	// Stage 1: count occurrences, remembering first-seen order.
	counts := make(map[T]int, len(data))
	order := make([]T, 0, len(data))
	best := 0
	for _, v := range data {
		c, seen := counts[v]
		if !seen {
			order = append(order, v)
		}
		c++
		counts[v] = c
		if c > best {
			best = c
		}
	}

	// Stage 2: keep the values reaching the maximum count.
	modes := make([]T, 0, 1)
	for _, v := range order {
		if counts[v] == best {
			modes = append(modes, v)
		}
	}

	return modes, nil
}

// sortedFloats returns an ascending float64 copy of data.
func sortedFloats[T Number](data []T) []float64 {
	s := toFloats(data)
	slices.Sort(s)

	return s
}

// medianSorted returns the median of a non-empty ascending slice.
func medianSorted(s []float64) float64 {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}
