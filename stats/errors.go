// SPDX-License-Identifier: MIT
// Package: lvlmath/stats
//
// errors.go: sentinel errors for the stats package.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is.
//   • Public functions wrap with their own name: "Quartiles: stats: insufficient data".
//   • ErrPercentileRange wraps ErrDomain, so errors.Is(err, ErrDomain) also holds.
//   • Option constructors may panic on meaningless values; algorithms never do.

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset indicates an operation that needs at least one value got none.
	ErrEmptyDataset = errors.New("stats: empty dataset")

	// ErrInsufficientData indicates too few values for the requested measure
	// (sample variance needs 2, quartiles need 3).
	ErrInsufficientData = errors.New("stats: insufficient data")

	// ErrTypeMismatch indicates a non-numeric element in loosely typed input.
	ErrTypeMismatch = errors.New("stats: non-numeric value")

	// ErrDomain indicates a parameter outside its valid range.
	ErrDomain = errors.New("stats: value outside domain")

	// ErrPercentileRange indicates p ∉ [0, 100].
	ErrPercentileRange = fmt.Errorf("%w: percentile must be within [0, 100]", ErrDomain)
)

// Operation names used as error prefixes.
const (
	opMean               = "Mean"
	opMedian             = "Median"
	opMode               = "Mode"
	opVariance           = "Variance"
	opStandardDeviation  = "StandardDeviation"
	opRange              = "Range"
	opQuartiles          = "Quartiles"
	opPercentile         = "Percentile"
	opInterquartileRange = "InterquartileRange"
	opIQRBounds          = "IQRBounds"
	opDetectOutliersIQR  = "DetectOutliersIQR"
	opRemoveOutliersIQR  = "RemoveOutliersIQR"
	opZScores            = "ZScores"
	opFloats             = "Floats"
)

// statsErrorf prefixes err with the operation tag, keeping err matchable via errors.Is.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
