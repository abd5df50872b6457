// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// KDE represents a kernel density estimate of a sample.
//
// Kernel density estimation constructs an estimate ƒ̂(x) of an unknown
// distribution ƒ(x) given a sample from that distribution:
//
//	ƒ̂(x) = 1/(n·h) Σᵢ K((x - xᵢ)/h)
//
// where K is the kernel and h is the bandwidth. It is similar to a
// histogram, except that it is smooth and does not require choosing
// bins.
//
// A KDE is a plain configuration value. The With methods return
// modified copies, so a configured KDE can be shared freely; once
// configured it is a pure function of the points it is evaluated at.
// Evaluation costs O(n) per point.
//
// The default (zero) value of Kernel and Bandwidth is a reasonable
// default configuration.
type KDE struct {
	// Kernel is the kernel to use for the KDE.
	Kernel KDEKernel

	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthSilverman. Otherwise it must be
	// positive and finite; evaluating a KDE with any other
	// bandwidth panics.
	Bandwidth float64

	// Sample is the sample to estimate the density of.
	Sample Sample
}

// KDEKernel represents a kernel to use for a KDE.
type KDEKernel int

//go:generate stringer -type=KDEKernel

const (
	// GaussianKernel is the standard normal density
	// φ(u) = e^(-u²/2)/√(2π).
	GaussianKernel KDEKernel = iota

	// EpanechnikovKernel is ¾(1-u²) on [-1, 1].
	EpanechnikovKernel

	// UniformKernel is ½ on [-1, 1].
	UniformKernel

	// TriangularKernel is 1-|u| on [-1, 1].
	TriangularKernel
)

// support returns the half-width of the kernel's support, in units of
// bandwidth. For the Gaussian kernel this is where the density has
// fallen below 0.5% of its peak.
func (k KDEKernel) support() float64 {
	if k == GaussianKernel {
		return 3
	}
	return 1
}

func (k KDEKernel) fn() func(u float64) float64 {
	switch k {
	case GaussianKernel:
		return distuv.UnitNormal.Prob
	case EpanechnikovKernel:
		return func(u float64) float64 {
			if math.Abs(u) > 1 {
				return 0
			}
			return 0.75 * (1 - u*u)
		}
	case UniformKernel:
		return func(u float64) float64 {
			if math.Abs(u) > 1 {
				return 0
			}
			return 0.5
		}
	case TriangularKernel:
		return func(u float64) float64 {
			if u = math.Abs(u); u > 1 {
				return 0
			}
			return 1 - u
		}
	}
	panic(fmt.Sprint("unknown kernel ", k))
}

// Point is a density estimate at X.
type Point struct {
	X       float64
	Density float64
}

// WithSample returns a copy of k that estimates the density of s.
// If s is not sorted, k holds a sorted copy of it, so selecting the
// bandwidth does not sort s on every evaluation.
func (k KDE) WithSample(s Sample) KDE {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	k.Sample = s
	return k
}

// WithBandwidth returns a copy of k with bandwidth h. A zero h selects
// the bandwidth from the sample.
func (k KDE) WithBandwidth(h float64) KDE {
	k.Bandwidth = h
	return k
}

// WithKernel returns a copy of k using kernel kernel.
func (k KDE) WithKernel(kernel KDEKernel) KDE {
	k.Kernel = kernel
	return k
}

// EffectiveBandwidth returns the bandwidth used to evaluate k.
//
// This is k.Bandwidth if it is non-zero and BandwidthSilverman of the
// sample otherwise. If the selected bandwidth is not a positive finite
// number, which happens for samples without spread, a fallback scale
// is used so that the density stays finite. A negative, NaN or
// infinite k.Bandwidth panics.
func (k KDE) EffectiveBandwidth() float64 {
	switch h := k.Bandwidth; {
	case h == 0:
	case h > 0 && h < inf:
		return h
	default:
		panic(fmt.Sprint("invalid KDE bandwidth ", h))
	}

	s := k.Sample
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	if h := BandwidthSilverman(s); h > 0 && h < inf {
		return h
	}
	return fallbackBandwidth(s)
}

// PDF returns the density estimate at x. The estimate of an empty
// sample is 0 everywhere.
func (k KDE) PDF(x float64) float64 {
	return k.PDFEach([]float64{x})[0]
}

// PDFEach returns PDF(xs[i]) for each i.
func (k KDE) PDFEach(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	n := len(k.Sample.Xs)
	if n == 0 {
		return ys
	}
	h := k.EffectiveBandwidth()
	kernel := k.Kernel.fn()
	for i, x := range xs {
		y := 0.0
		for _, xi := range k.Sample.Xs {
			y += kernel((x - xi) / h)
		}
		ys[i] = y / h / float64(n)
	}
	return ys
}

// Estimate evaluates k at each of points.
func (k KDE) Estimate(points []float64) []Point {
	ys := k.PDFEach(points)
	out := make([]Point, len(points))
	for i, x := range points {
		out[i] = Point{x, ys[i]}
	}
	return out
}

// Bounds returns the range outside of which the density estimate is
// approximately 0: the sample's bounds widened by the kernel's support.
//
// If the sample is empty, Bounds returns NaN, NaN.
func (k KDE) Bounds() (low float64, high float64) {
	low, high = k.Sample.Bounds()
	if math.IsNaN(low) {
		return
	}
	w := k.Kernel.support() * k.EffectiveBandwidth()
	return low - w, high + w
}
