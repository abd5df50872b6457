// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package summary computes the records drawn by box-and-whisker and
// violin charts from raw samples.
//
// NewBoxPlot and NewViolin are pure functions of a slice. Charts
// usually ask for the summary of the same data many times, so Cache
// memoizes summaries per *stats.Sample; the package-level BoxPlotOf,
// ViolinOf, AsBoxPlot and AsViolin use a shared Cache.
//
// Whiskers extend one interquartile range beyond the box, not the 1.5
// of Tukey's convention. See WhiskerIQRFactor.
package summary // import "github.com/go-boxstats/boxstats/summary"

import (
	"math"

	"github.com/go-boxstats/boxstats/stats"
)

var nan = math.NaN()

var defaultCache Cache

// BoxPlotOf returns the memoized box plot summary of s.
func BoxPlotOf(s *stats.Sample) *BoxPlot {
	return defaultCache.BoxPlot(s)
}

// ViolinOf returns the memoized violin summary of s.
func ViolinOf(s *stats.Sample) *Violin {
	return defaultCache.Violin(s)
}

// AsBoxPlot is Cache.AsBoxPlot on the shared cache.
func AsBoxPlot(v Value) (*BoxPlot, error) {
	return defaultCache.AsBoxPlot(v)
}

// AsViolin is Cache.AsViolin on the shared cache.
func AsViolin(v Value) (*Violin, error) {
	return defaultCache.AsViolin(v)
}
