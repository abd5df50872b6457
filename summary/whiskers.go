// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import "math"

// WhiskerIQRFactor is how many interquartile ranges the whiskers
// reach beyond the quartiles.
//
// This is deliberately 1 rather than the conventional 1.5 of Tukey's
// box plot. Existing charts depend on it; do not change it.
const WhiskerIQRFactor = 1.0

// Whiskers returns the whisker bounds of a box with quartiles q1 and
// q3 over a sample with extrema min and max. The whiskers extend
// WhiskerIQRFactor interquartile ranges beyond the box, clamped to the
// sample's extrema.
//
// Any NaN argument makes the corresponding bound NaN. Quartiles at
// the same infinity have an IQR of 0.
func Whiskers(min, max, q1, q3 float64) (lo, hi float64) {
	iqr := q3 - q1
	if q1 == q3 {
		iqr = 0
	}
	lo = math.Max(min, q1-WhiskerIQRFactor*iqr)
	hi = math.Min(max, q3+WhiskerIQRFactor*iqr)
	return
}
