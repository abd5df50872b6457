// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package summary

import (
	"math"
	"runtime"
	"sync"
	"weak"

	"github.com/go-boxstats/boxstats/stats"
)

// A Cache memoizes summaries by sample identity.
//
// Each *stats.Sample has independent box plot and violin slots, each
// computed at most once; repeated requests return the same pointer.
// The cache holds samples weakly: an entry is dropped once its sample
// is garbage collected. Any *stats.Sample may be used, including
// package variables, slice elements and struct fields. Modifying a
// sample after it has been summarized is not detected.
//
// The zero Cache is empty and ready to use. A Cache is safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[weak.Pointer[stats.Sample]]*cacheEntry
}

type cacheEntry struct {
	box    *BoxPlot
	violin *Violin
}

// entry returns the entry for s, creating it if necessary. c.mu must
// be held.
func (c *Cache) entry(s *stats.Sample) *cacheEntry {
	key := weak.Make(s)
	if e, ok := c.entries[key]; ok {
		return e
	}
	if c.entries == nil {
		c.entries = make(map[weak.Pointer[stats.Sample]]*cacheEntry)
	}
	e := new(cacheEntry)
	c.entries[key] = e
	runtime.AddCleanup(s, c.forget, key)
	return e
}

func (c *Cache) forget(key weak.Pointer[stats.Sample]) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of samples with cached summaries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// BoxPlot returns the box plot summary of s, computing it on the
// first request. A nil s is summarized as an empty sample and is not
// cached.
func (c *Cache) BoxPlot(s *stats.Sample) *BoxPlot {
	if s == nil {
		return NewBoxPlot(nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entry(s)
	if e.box == nil {
		e.box = NewBoxPlot(s.Xs)
	}
	return e.box
}

// Violin returns the violin summary of s, computing it on the first
// request. If a box plot of s is cached at that point, the violin
// takes its mean and quartiles from it. A nil s is summarized as an
// empty sample and is not cached.
func (c *Cache) Violin(s *stats.Sample) *Violin {
	if s == nil {
		return NewViolin(nil, nil)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entry(s)
	if e.violin == nil {
		e.violin = NewViolin(s.Xs, e.box)
	}
	return e.violin
}

// AsBoxPlot returns the box plot summary of v.
//
// For a sample, this is c.BoxPlot. A precomputed box plot is returned
// as is, except that if its WhiskerMin is NaN both whiskers are first
// filled in from its extrema and quartiles using Whiskers.
//
// AsBoxPlot returns ErrNoValue if v is empty and ErrShape if v holds
// a violin.
func (c *Cache) AsBoxPlot(v Value) (*BoxPlot, error) {
	if v.IsZero() {
		return nil, ErrNoValue
	}
	switch v.kind {
	case kindSample:
		return c.BoxPlot(v.sample), nil
	case kindBoxPlot:
		b := v.box
		c.mu.Lock()
		if math.IsNaN(b.WhiskerMin) {
			b.WhiskerMin, b.WhiskerMax = Whiskers(b.Min, b.Max, b.Q1, b.Q3)
		}
		c.mu.Unlock()
		return b, nil
	}
	return nil, ErrShape
}

// AsViolin returns the violin summary of v.
//
// For a sample, this is c.Violin. A precomputed violin is returned as
// is if it has a KDE or Coords.
//
// AsViolin returns ErrNoValue if v is empty and ErrShape if v holds a
// box plot or a violin with no density.
func (c *Cache) AsViolin(v Value) (*Violin, error) {
	if v.IsZero() {
		return nil, ErrNoValue
	}
	switch v.kind {
	case kindSample:
		return c.Violin(v.sample), nil
	case kindViolin:
		if v.violin.KDE != nil || v.violin.Coords != nil {
			return v.violin, nil
		}
	}
	return nil, ErrShape
}
