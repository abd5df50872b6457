// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"errors"

	"github.com/go-boxstats/boxstats/stats"
)

var (
	// ErrNoValue is returned by the accessors for an empty Value.
	ErrNoValue = errors.New("summary: no value")

	// ErrShape is returned by the accessors when a Value holds a
	// summary of the other kind, or a violin with no density.
	ErrShape = errors.New("summary: value has no summary of the requested shape")
)

type valueKind uint8

const (
	kindNone valueKind = iota
	kindSample
	kindBoxPlot
	kindViolin
)

// A Value is a data point of a box or violin chart: either a raw
// sample or a summary computed elsewhere. The zero Value holds
// nothing.
type Value struct {
	kind   valueKind
	sample *stats.Sample
	box    *BoxPlot
	violin *Violin
}

// FromSample returns a Value holding the raw sample s. Summaries of s
// are memoized by the identity of s, so s must not be modified once
// it has been summarized.
func FromSample(s *stats.Sample) Value {
	return Value{kind: kindSample, sample: s}
}

// FromBoxPlot returns a Value holding a precomputed box plot.
func FromBoxPlot(b *BoxPlot) Value {
	return Value{kind: kindBoxPlot, box: b}
}

// FromViolin returns a Value holding a precomputed violin.
func FromViolin(v *Violin) Value {
	return Value{kind: kindViolin, violin: v}
}

// IsZero reports whether v holds nothing, including a nil sample or
// summary.
func (v Value) IsZero() bool {
	switch v.kind {
	case kindSample:
		return v.sample == nil
	case kindBoxPlot:
		return v.box == nil
	case kindViolin:
		return v.violin == nil
	}
	return true
}

// Sample returns the raw sample held by v, if any.
func (v Value) Sample() (*stats.Sample, bool) {
	return v.sample, v.kind == kindSample && v.sample != nil
}
