// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Sample is a collection of observations.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Clean returns a new slice holding the values of xs that are not
// NaN, in their original order. Infinities are kept.
func Clean(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// Bounds returns the minimum and maximum values of the Sample,
// ignoring NaNs.
//
// If the Sample has no comparable values, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if s.Sorted && len(s.Xs) > 0 && !math.IsNaN(s.Xs[0]) && !math.IsNaN(s.Xs[len(s.Xs)-1]) {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return Extent(s.Xs)
}

// Weight returns the total weight of the Sample, which is the number
// of observations.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	return Mean(s.Xs)
}

// Variance returns the unbiased sample variance of the Sample.
func (s Sample) Variance() float64 {
	return Variance(s.Xs)
}

// StdDev returns the sample standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return StdDev(s.Xs)
}

// Quantile returns the q'th quantile of the Sample using R's type 7
// definition. See the package-level Quantile for details.
//
// If the Sample is not sorted, Quantile sorts a copy of it first.
func (s Sample) Quantile(q float64) float64 {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return Quantile(s.Xs, q)
}

// IQR returns the interquartile range of the Sample.
func (s Sample) IQR() float64 {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return IQR(s.Xs)
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}
