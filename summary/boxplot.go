// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"github.com/go-boxstats/boxstats/stats"
)

// BoxPlot summarizes a sample for a box-and-whisker plot.
//
// For a non-empty sample,
//
//	Min <= WhiskerMin <= Q1 <= Median <= Q3 <= WhiskerMax <= Max.
//
// The summary of an empty sample has every float field NaN, no
// outliers and a Total of 0.
//
// Since NaN has no JSON representation, a BoxPlot is not meant to be
// marshaled directly; encoders should map NaN fields to null.
type BoxPlot struct {
	// Min and Max are the extrema of the sample.
	Min float64
	Max float64

	// Mean is the arithmetic mean of the sample.
	Mean float64

	// Median, Q1 and Q3 are the 50th, 25th and 75th percentiles
	// (R's type 7 quantiles).
	Median float64
	Q1     float64
	Q3     float64

	// WhiskerMin and WhiskerMax are the ends of the whiskers. See
	// Whiskers.
	WhiskerMin float64
	WhiskerMax float64

	// Outliers are the values of the sample strictly outside
	// [WhiskerMin, WhiskerMax], in ascending order.
	Outliers []float64

	// Total is the number of observations summarized. NaNs in the
	// input are not counted.
	Total int
}

// NewBoxPlot returns the box plot summary of xs. NaN values in xs
// are ignored. xs is not modified.
func NewBoxPlot(xs []float64) *BoxPlot {
	if len(xs) == 0 {
		return emptyBoxPlot()
	}

	s := stats.Sample{Xs: stats.Clean(xs)}
	s.Sort()
	min, max := s.Bounds()
	b := &BoxPlot{
		Min:      min,
		Max:      max,
		Mean:     s.Mean(),
		Median:   s.Quantile(0.5),
		Q1:       s.Quantile(0.25),
		Q3:       s.Quantile(0.75),
		Outliers: []float64{},
		Total:    len(s.Xs),
	}
	b.WhiskerMin, b.WhiskerMax = Whiskers(b.Min, b.Max, b.Q1, b.Q3)
	for _, x := range s.Xs {
		if x < b.WhiskerMin || x > b.WhiskerMax {
			b.Outliers = append(b.Outliers, x)
		}
	}
	return b
}

func emptyBoxPlot() *BoxPlot {
	return &BoxPlot{
		Min:        nan,
		Max:        nan,
		Mean:       nan,
		Median:     nan,
		Q1:         nan,
		Q3:         nan,
		WhiskerMin: nan,
		WhiskerMax: nan,
		Outliers:   []float64{},
	}
}

// IQR returns the interquartile range Q3 - Q1.
func (b *BoxPlot) IQR() float64 {
	return b.Q3 - b.Q1
}

// OutlierFraction returns the fraction of the observations that are
// outliers, or NaN if there are none.
func (b *BoxPlot) OutlierFraction() float64 {
	if b.Total == 0 {
		return nan
	}
	return float64(len(b.Outliers)) / float64(b.Total)
}

// Field returns the value of field f, or NaN if f is not a field of
// a box plot.
func (b *BoxPlot) Field(f Field) float64 {
	switch f {
	case FieldMin:
		return b.Min
	case FieldMax:
		return b.Max
	case FieldMean:
		return b.Mean
	case FieldMedian:
		return b.Median
	case FieldQ1:
		return b.Q1
	case FieldQ3:
		return b.Q3
	case FieldWhiskerMin:
		return b.WhiskerMin
	case FieldWhiskerMax:
		return b.WhiskerMax
	}
	return nan
}
