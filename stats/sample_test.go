// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 16,
		.25: 20,
		.30: 23,
		.40: 29,
		.50: 35,
		.95: 48,
		1:   50,
		2:   50,
	})

	// Unsorted input gives the same answers and is left alone.
	u := Sample{Xs: []float64{50, 15, 40, 20, 35}}
	testFunc(t, "Quantile", u.Quantile, map[float64]float64{
		0:   15,
		.30: 23,
		1:   50,
	})
	if u.Xs[0] != 50 || u.Sorted {
		t.Errorf("Quantile modified its receiver: %+v", u)
	}
}

func TestSampleBounds(t *testing.T) {
	check := func(xs []float64, sorted bool, wmin, wmax float64) {
		t.Helper()
		min, max := Sample{Xs: xs, Sorted: sorted}.Bounds()
		if !aeq(wmin, min) || !aeq(wmax, max) {
			t.Errorf("Bounds(%v) = %v, %v; want %v, %v", xs, min, max, wmin, wmax)
		}
	}
	check([]float64{3, 1, 2}, false, 1, 3)
	check([]float64{1, 2, 3}, true, 1, 3)
	check([]float64{nan, 4, nan, -2}, false, -2, 4)
	check([]float64{nan, 1, 2}, true, 1, 2)
	check([]float64{nan, nan}, false, nan, nan)
	check(nil, false, nan, nan)
}

func TestSampleSort(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}}
	c := s.Copy()
	c.Sort()
	if !c.Sorted || c.Xs[0] != 1 || c.Xs[2] != 3 {
		t.Errorf("Sort produced %+v", c)
	}
	if s.Xs[0] != 3 {
		t.Errorf("sorting a copy modified the original: %v", s.Xs)
	}
}

func TestClean(t *testing.T) {
	xs := []float64{1, nan, math.Inf(1), 2, nan}
	got := Clean(xs)
	want := []float64{1, math.Inf(1), 2}
	if len(got) != len(want) {
		t.Fatalf("Clean(%v) = %v; want %v", xs, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Clean(%v) = %v; want %v", xs, got, want)
			break
		}
	}
	if !math.IsNaN(xs[1]) {
		t.Errorf("Clean modified its argument")
	}
	if got := Clean(nil); got == nil || len(got) != 0 {
		t.Errorf("Clean(nil) = %#v; want empty non-nil slice", got)
	}
}
