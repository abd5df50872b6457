// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/go-boxstats/boxstats/stats"
)

func TestLimits(t *testing.T) {
	var c Cache
	values := []Value{
		FromSample(&stats.Sample{Xs: append(oneToTen(), 1000)}),
		{},
		FromSample(&stats.Sample{Xs: []float64{-3, 0, 2}}),
		FromBoxPlot(&BoxPlot{Min: -7, Max: 4, Median: 0, Q1: -1, Q3: 1, WhiskerMin: nan, WhiskerMax: nan}),
		FromSample(&stats.Sample{}),
	}

	min, max, ok := c.Limits(values, FieldMin, FieldMax)
	assert.Check(t, ok)
	assert.Equal(t, min, -7.0)
	assert.Equal(t, max, 1000.0)

	// Whisker limits leave the outlier off the axis.
	min, max, ok = c.Limits(values, FieldWhiskerMin, FieldWhiskerMax)
	assert.Check(t, ok)
	assert.Equal(t, min, -3.0)
	assert.Equal(t, max, 13.5)

	// Violins contribute their fields too.
	violin := NewViolin([]float64{-20, 0, 1}, nil)
	min, max, ok = c.Limits(append(values, FromViolin(violin)), FieldMin, FieldMax)
	assert.Check(t, ok)
	assert.Equal(t, min, -20.0)
	assert.Equal(t, max, 1000.0)
}

func TestLimitsNone(t *testing.T) {
	var c Cache
	for _, values := range [][]Value{
		nil,
		{{}, FromSample(nil)},
		{FromSample(&stats.Sample{Xs: []float64{math.NaN()}})},
	} {
		min, max, ok := c.Limits(values, FieldMin, FieldMax)
		assert.Check(t, !ok)
		assert.Check(t, math.IsNaN(min) && math.IsNaN(max))
	}
}

func TestMedian(t *testing.T) {
	var c Cache
	m, err := c.Median(FromSample(&stats.Sample{Xs: []float64{9, 1, 5}}))
	assert.NilError(t, err)
	assert.Equal(t, m, 5.0)

	m, err = c.Median(FromBoxPlot(&BoxPlot{Median: 3, WhiskerMin: 1}))
	assert.NilError(t, err)
	assert.Equal(t, m, 3.0)

	m, err = c.Median(FromViolin(NewViolin(oneToTen(), nil)))
	assert.NilError(t, err)
	assert.Equal(t, m, 5.5)

	_, err = c.Median(Value{})
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestFieldString(t *testing.T) {
	for f, want := range map[Field]string{
		FieldMin:        "min",
		FieldQ3:         "q3",
		FieldWhiskerMax: "whiskerMax",
		Field(-1):       "Field(-1)",
		Field(99):       "Field(99)",
	} {
		assert.Equal(t, f.String(), want)
	}
}
