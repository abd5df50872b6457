// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/go-boxstats/boxstats/stats"
)

// DefaultPoints is the number of intervals Violin.Density divides the
// sample range into when no count is given.
const DefaultPoints = 100

// Violin summarizes a sample for a violin plot.
//
// For a non-empty sample, Min <= Median <= Max. The summary of an
// empty sample has NaN fields, a nil KDE and no outliers. Like
// BoxPlot, a Violin is not meant to be marshaled directly.
type Violin struct {
	// Min and Max are the extrema of the sample.
	Min float64
	Max float64

	// Median is the 50th percentile of the sample.
	Median float64

	// Mean, Q1 and Q3 are carried over from a box plot summary of
	// the same sample, if one was available when the violin was
	// computed. Otherwise they are NaN.
	Mean float64
	Q1   float64
	Q3   float64

	// KDE is the density estimate of the sample. It is configured
	// but not evaluated; see Density.
	KDE *stats.KDE

	// Coords, if non-nil, is a pre-sampled density that Density
	// returns instead of evaluating KDE.
	Coords []Coord

	// Outliers is empty for computed summaries.
	Outliers []float64
}

// Coord is the density Estimate at sample value V.
type Coord struct {
	V        float64
	Estimate float64
}

// Density is a violin's outline: its density sampled across the
// sample range.
type Density struct {
	Coords []Coord

	// MaxEstimate is the largest estimate in Coords, which a chart
	// scales to the violin's width.
	MaxEstimate float64
}

// NewViolin returns the violin summary of xs. NaN values in xs are
// ignored. xs is not modified.
//
// If baseline is non-nil, its Mean, Q1 and Q3 are copied into the
// result; they are not recomputed.
func NewViolin(xs []float64, baseline *BoxPlot) *Violin {
	s := stats.Sample{Xs: stats.Clean(xs)}
	if len(s.Xs) == 0 {
		return emptyViolin()
	}
	s.Sort()

	min, max := s.Bounds()
	v := &Violin{
		Min:    min,
		Max:    max,
		Median: s.Quantile(0.5),
		Mean:   nan,
		Q1:     nan,
		Q3:     nan,
		KDE:    &stats.KDE{Sample: s},
	}
	if baseline != nil {
		v.Mean, v.Q1, v.Q3 = baseline.Mean, baseline.Q1, baseline.Q3
	}
	return v
}

func emptyViolin() *Violin {
	return &Violin{
		Min:      nan,
		Max:      nan,
		Median:   nan,
		Mean:     nan,
		Q1:       nan,
		Q3:       nan,
		Outliers: []float64{},
	}
}

// HasBaseline reports whether v carries a mean or quartiles.
func (v *Violin) HasBaseline() bool {
	return !math.IsNaN(v.Mean) || !math.IsNaN(v.Q1) || !math.IsNaN(v.Q3)
}

// Density samples v's density estimate at the starts of points
// equal intervals spanning [Min, Max], plus at Max itself. If
// points <= 0, DefaultPoints is used. If v.Coords is set, Density
// returns it instead.
//
// A violin with neither Coords nor a KDE has an empty density with a
// NaN MaxEstimate.
func (v *Violin) Density(points int) Density {
	coords := v.Coords
	if coords == nil && v.KDE != nil {
		xs := v.samplePoints(points)
		coords = make([]Coord, len(xs))
		for i, p := range v.KDE.Estimate(xs) {
			coords[i] = Coord{p.X, p.Density}
		}
	}
	if len(coords) == 0 {
		return Density{Coords: coords, MaxEstimate: nan}
	}

	estimates := make([]float64, len(coords))
	for i, c := range coords {
		estimates[i] = c.Estimate
	}
	return Density{Coords: coords, MaxEstimate: floats.Max(estimates)}
}

func (v *Violin) samplePoints(points int) []float64 {
	if points <= 0 {
		points = DefaultPoints
	}
	var xs []float64
	if span := v.Max - v.Min; span > 0 && !math.IsInf(span, 0) {
		step := span / float64(points)
		xs = make([]float64, points, points+1)
		for i := range xs {
			xs[i] = v.Min + float64(i)*step
		}
	}
	if len(xs) == 0 || xs[len(xs)-1] != v.Max {
		xs = append(xs, v.Max)
	}
	return xs
}

// Field returns the value of field f, or NaN if f is not a field of
// a violin.
func (v *Violin) Field(f Field) float64 {
	switch f {
	case FieldMin:
		return v.Min
	case FieldMax:
		return v.Max
	case FieldMean:
		return v.Mean
	case FieldMedian:
		return v.Median
	case FieldQ1:
		return v.Q1
	case FieldQ3:
		return v.Q3
	}
	return nan
}
