// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Mean returns the arithmetic mean of xs, or NaN if xs is empty.
//
// The mean is accumulated with Welford's running update, which keeps
// the partial result on the scale of the data instead of growing a
// large sum. Infinities dominate as they would in a sum: the mean is
// ±Inf if xs holds infinities of one sign and NaN if it holds both.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	m := 0.0
	posInf, negInf := false, false
	for i, x := range xs {
		switch {
		case math.IsInf(x, 1):
			posInf = true
		case math.IsInf(x, -1):
			negInf = true
		default:
			m += (x - m) / float64(i+1)
		}
	}
	switch {
	case posInf && negInf:
		return nan
	case posInf:
		return inf
	case negInf:
		return -inf
	}
	return m
}

// Variance returns the unbiased sample variance of xs, using Bessel's
// correction (a denominator of n-1).
//
// Variance returns NaN if xs is empty and 0 if xs has one value.
func Variance(xs []float64) float64 {
	switch len(xs) {
	case 0:
		return nan
	case 1:
		return 0
	}
	mean := Mean(xs)
	s := 0.0
	for _, x := range xs {
		d := x - mean
		s += d * d
	}
	return s / float64(len(xs)-1)
}

// StdDev returns the sample standard deviation of xs, the square root
// of Variance(xs).
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}
