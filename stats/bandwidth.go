// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// BandwidthSilverman is a bandwidth estimator for Gaussian kernels
// implementing Silverman's rule of thumb with a robust scale: it
// takes the smaller of the sample's standard deviation and IQR/1.34,
// so heavy tails and extreme outliers do not inflate the bandwidth.
// This matches R's bw.nrd.
//
// For an empty sample the result is NaN. A sample with no spread (a
// single value, or one value repeated) yields 0; KDE substitutes a
// usable bandwidth in that case (see KDE.EffectiveBandwidth).
//
// Silverman, B. W. (1986) Density Estimation.
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
	Quantile(float64) float64
}) float64 {
	iqr := data.Quantile(0.75) - data.Quantile(0.25)
	h := iqr / 1.34
	return 1.06 * math.Min(data.StdDev(), h) * math.Pow(data.Weight(), -1.0/5)
}

// fallbackBandwidth returns a positive, finite bandwidth for s when
// the selected bandwidth is not one. Like R's bw.nrd0, it falls back
// on the standard deviation, then the magnitude of the first value,
// then 1.
func fallbackBandwidth(s Sample) float64 {
	usable := func(x float64) bool { return x > 0 && x < inf }
	scale := s.StdDev()
	if !usable(scale) && len(s.Xs) > 0 {
		scale = math.Abs(s.Xs[0])
	}
	if !usable(scale) {
		scale = 1
	}
	n := math.Max(s.Weight(), 1)
	return 1.06 * scale * math.Pow(n, -1.0/5)
}
