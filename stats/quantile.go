// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Quantile returns the p'th quantile of sorted, which must be sorted
// in ascending order.
//
// This is R's type 7 estimator: the quantile is interpolated linearly
// between the order statistics around fractional rank (n-1)*p. For
// p <= 0, Quantile returns the first value and for p >= 1 the last.
// A sample of one value yields that value for any p. An empty sample
// or a NaN p yields NaN. Infinite neighbors are not interpolated
// between: a -Inf lower neighbor yields -Inf and a +Inf upper one
// yields +Inf, so quantiles of samples holding infinities stay
// ordered.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch {
	case n == 0 || math.IsNaN(p):
		return nan
	case p <= 0 || n == 1:
		return sorted[0]
	case p >= 1:
		return sorted[n-1]
	}

	i := float64(n-1) * p
	i0 := math.Floor(i)
	lo := sorted[int(i0)]
	if i == i0 || math.IsInf(lo, -1) {
		return lo
	}
	hi := sorted[int(i0)+1]
	if lo == hi {
		// Also covers two +Inf neighbors, whose difference is NaN.
		return lo
	}
	// Rounding must not carry the result past the next order statistic.
	return math.Min(lo+(hi-lo)*(i-i0), hi)
}

// IQR returns the interquartile range Q3 - Q1 of sorted, which must
// be sorted in ascending order.
func IQR(sorted []float64) float64 {
	return Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
}

// Extent returns the minimum and maximum of xs, ignoring NaNs.
//
// If xs has no comparable values, both bounds are NaN.
func Extent(xs []float64) (min, max float64) {
	min, max = nan, nan
	found := false
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if !found {
			min, max = x, x
			found = true
			continue
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}
