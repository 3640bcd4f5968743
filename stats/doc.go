// SPDX-License-Identifier: MIT

// Package stats provides descriptive statistics over numeric slices:
// central tendency, dispersion, quartiles and percentiles, outlier detection
// and cleaning of loosely typed input.
//
// 🚀 What is inside?
//
//	Central tendency: Mean, Median, Mode (all tied values)
//	Dispersion:       Variance, StandardDeviation (sample or population), Range
//	Position:         Quartiles, Percentile (linear interpolation), InterquartileRange
//	Outliers:         IQRBounds, DetectOutliersIQR, RemoveOutliersIQR,
//	                  ZScores, DetectOutliersZScore
//	Cleaning:         CleanNumericData, IsNumeric, Floats (for []any input)
//
// ✨ Contract:
//   - Every function is generic over Number (all integer and float kinds) and
//     never mutates its input; sorting happens on a private copy.
//   - Failures are sentinel errors matched with errors.Is: ErrEmptyDataset,
//     ErrInsufficientData, ErrTypeMismatch, ErrDomain (ErrPercentileRange).
//   - Outlier detectors return an empty result for empty input rather than
//     an error: no data means no outliers.
//
// Quartile convention:
//
//	Q2 is the median of the sorted data. Q1 is the median of the first n/2
//	elements and Q3 the median of the last n/2 elements (integer division),
//	so for odd n the central element belongs to neither half:
//
//	  [1 2 3 4 | 5 | 6 7 8 9] → Q1 = 2.5, Q2 = 5, Q3 = 7.5
//	  [1 2 3 | 4 5 6]         → Q1 = 2,   Q2 = 3.5, Q3 = 5
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/stats"
//
//	q, err := stats.Quartiles([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
//	// q == Quartile{Q1: 2.5, Q2: 5, Q3: 7.5}
//
//	out, err := stats.DetectOutliersIQR([]int{1, 2, 3, 4, 5, 100})
//	// out == [100]
//
//	sd, err := stats.StandardDeviation(data, stats.WithPopulation())
//
// Complexity:
//
//   - Mean, Variance, Range, Mode, Z-scores: O(n)
//   - Median, Quartiles, Percentile, IQR outliers: O(n log n) (sort)
package stats
