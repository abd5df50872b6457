// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF. The total weight outside of these bounds should be
	// approximately 0.
	Bounds() (float64, float64)
}

var _ Dist = KDE{}
