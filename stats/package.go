// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the descriptive statistics behind box and
// violin plots: order statistics, moments, bandwidth selection and
// kernel density estimation.
//
// All functions are pure. Degenerate input (an empty sample, a sample
// of one value) produces NaN or zero results rather than panics.
package stats // import "github.com/go-boxstats/boxstats/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
