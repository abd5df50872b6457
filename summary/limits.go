// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"math"
	"strconv"
)

// A Field names a statistic of a summary.
type Field int

const (
	FieldMin Field = iota
	FieldMax
	FieldMean
	FieldMedian
	FieldQ1
	FieldQ3
	FieldWhiskerMin
	FieldWhiskerMax
)

var fieldNames = [...]string{
	FieldMin:        "min",
	FieldMax:        "max",
	FieldMean:       "mean",
	FieldMedian:     "median",
	FieldQ1:         "q1",
	FieldQ3:         "q3",
	FieldWhiskerMin: "whiskerMin",
	FieldWhiskerMax: "whiskerMax",
}

// String returns the field's JSON name.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// field returns field f of v. Samples are summarized as box plots.
func (c *Cache) field(v Value, f Field) (float64, error) {
	if v.kind == kindViolin && !v.IsZero() {
		return v.violin.Field(f), nil
	}
	b, err := c.AsBoxPlot(v)
	if err != nil {
		return nan, err
	}
	return b.Field(f), nil
}

// Limits returns the smallest lo field and the largest hi field
// across values, the data range a chart axis must cover. Typical
// choices are FieldMin and FieldMax, or FieldWhiskerMin and
// FieldWhiskerMax to leave outliers off the axis.
//
// Empty values and NaN fields are skipped. ok is false if no value
// contributed to both limits.
func (c *Cache) Limits(values []Value, lo, hi Field) (min, max float64, ok bool) {
	var haveMin, haveMax bool
	for _, v := range values {
		l, err := c.field(v, lo)
		if err != nil {
			continue
		}
		h, _ := c.field(v, hi)
		if !math.IsNaN(l) && (!haveMin || l < min) {
			min, haveMin = l, true
		}
		if !math.IsNaN(h) && (!haveMax || h > max) {
			max, haveMax = h, true
		}
	}
	if !haveMin || !haveMax {
		return nan, nan, false
	}
	return min, max, true
}

// Median returns the median of v, the single number a chart uses to
// stand for a box or violin (for example, to sort or label it).
func (c *Cache) Median(v Value) (float64, error) {
	return c.field(v, FieldMedian)
}
