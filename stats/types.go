// SPDX-License-Identifier: MIT
// Package: lvlmath/stats
//
// types.go: numeric constraint, result types and functional options.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs;
//     the algorithms themselves never panic.
//   • Each call starts from defaultConfig(); nothing is global.

package stats

import (
	"fmt"
	"math"
)

// Number is satisfied by every built-in integer and floating-point kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Quartile holds the first, second (median) and third quartiles.
// For any valid input Q1 ≤ Q2 ≤ Q3.
type Quartile struct {
	Q1, Q2, Q3 float64
}

// IQR returns Q3 − Q1.
func (q Quartile) IQR() float64 { return q.Q3 - q.Q1 }

// Default parameters.
const (
	// DefaultIQRMultiplier is Tukey's fence factor k in Q1 − k·IQR, Q3 + k·IQR.
	DefaultIQRMultiplier = 1.5

	// DefaultZScoreThreshold is the |z| above which a value is an outlier.
	DefaultZScoreThreshold = 2.0
)

// config carries per-call parameters.
type config struct {
	population bool    // divide by n instead of n−1
	multiplier float64 // IQR fence factor
	threshold  float64 // |z| cut-off
}

func defaultConfig() config {
	return config{
		multiplier: DefaultIQRMultiplier,
		threshold:  DefaultZScoreThreshold,
	}
}

// Option customizes a single call.
type Option func(*config)

// WithPopulation switches Variance and StandardDeviation to the population
// estimator (divide by n). The default is the sample estimator (n−1).
func WithPopulation() Option {
	return func(c *config) { c.population = true }
}

// WithMultiplier sets the IQR fence factor. Panics if k is negative, NaN or infinite.
func WithMultiplier(k float64) Option {
	if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		panic(fmt.Sprintf("stats: WithMultiplier(%v)", k))
	}
	return func(c *config) { c.multiplier = k }
}

// WithThreshold sets the Z-score cut-off. Panics if z is negative, NaN or infinite.
func WithThreshold(z float64) Option {
	if z < 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		panic(fmt.Sprintf("stats: WithThreshold(%v)", z))
	}
	return func(c *config) { c.threshold = z }
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// toFloats copies data into a new []float64.
func toFloats[T Number](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}

	return out
}
