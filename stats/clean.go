// SPDX-License-Identifier: MIT
// Package: lvlmath/stats
//
// clean.go: helpers for loosely typed input ([]any), e.g. decoded JSON
// or CSV cells.
//
// Numeric means a built-in integer or floating-point kind. bool is never
// numeric, and neither is nil, a string, or any other type.

package stats

import (
	"fmt"
	"math"
)

// CleanNumericData returns the numeric elements of data in their original
// order, dropping nil, non-numeric values, bools and NaN. ±Inf is kept.
// The returned slice is never nil. CleanNumericData(CleanNumericData(x))
// equals CleanNumericData(x).
//
// Complexity: O(n) time, O(n) space.
func CleanNumericData(data []any) []any {
	out := make([]any, 0, len(data))
	for _, v := range data {
		f, ok := asFloat(v)
		if !ok || math.IsNaN(f) {
			continue
		}
		out = append(out, v)
	}

	return out
}

// IsNumeric reports whether every element of data is numeric and finite.
// An empty slice is numeric.
func IsNumeric(data []any) bool {
	for _, v := range data {
		f, ok := asFloat(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

// Floats converts data to []float64 for use with the typed API.
//
// Errors:
//   - ErrTypeMismatch at the first element that is not numeric; the message
//     names its index and dynamic type.
func Floats(data []any) ([]float64, error) {
	out := make([]float64, len(data))
	for i, v := range data {
		f, ok := asFloat(v)
		if !ok {
			return nil, statsErrorf(opFloats, fmt.Errorf("element %d (%T): %w", i, v, ErrTypeMismatch))
		}
		out[i] = f
	}

	return out, nil
}

// asFloat converts a built-in numeric value to float64.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
