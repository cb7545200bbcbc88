// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import "sort"

// Kind1D selects a 1D interpolation variant. The set is closed and dispatch
// happens through a switch in New1D rather than a registry, because the
// right-hand side of the guiding-center ODE evaluates these many times per
// accepted step and inlining matters more than open extensibility.
type Kind1D int

const (
	Linear Kind1D = iota
	Cubic
	Steffen
)

func (k Kind1D) String() string {
	switch k {
	case Linear:
		return "Linear"
	case Cubic:
		return "Cubic"
	case Steffen:
		return "Steffen"
	default:
		return "Unknown"
	}
}

// Interp1D is a 1D interpolant over a strictly monotone knot vector x with
// associated values y. It exposes value, first-derivative and
// second-derivative evaluation. Evaluating outside [x[0], x[n-1]] returns an
// OutOfDomain error rather than extrapolating.
type Interp1D interface {
	Eval(x float64) (float64, error)
	EvalDeriv(x float64) (float64, error)
	EvalDeriv2(x float64) (float64, error)
	Xmin() float64
	Xmax() float64
}

// New1D builds a 1D interpolant of the given kind from knots x and values y.
// x must be strictly increasing and len(x) == len(y) >= the variant's minimum
// knot count. Construction fails with IllConditioned on violation.
func New1D(kind Kind1D, x, y []float64, axis string) (Interp1D, error) {
	if len(x) != len(y) {
		return nil, illConditioned("interp: axis %q: len(x)=%d != len(y)=%d", axis, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, illConditioned("interp: axis %q: need at least 2 knots, got %d", axis, len(x))
	}
	if err := checkStrictlyMonotone(x, axis); err != nil {
		return nil, err
	}
	switch kind {
	case Linear:
		return newLinear1D(x, y, axis)
	case Cubic:
		return newCubic1D(x, y, axis)
	case Steffen:
		return newSteffen1D(x, y, axis)
	default:
		return nil, illConditioned("interp: axis %q: unknown 1D interpolation kind %d", axis, int(kind))
	}
}

func checkStrictlyMonotone(x []float64, axis string) error {
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return illConditioned("interp: axis %q: knots are not strictly monotone at index %d (%g <= %g)", axis, i, x[i], x[i-1])
		}
	}
	return nil
}

// bracket1D returns the index i such that x[i] <= v <= x[i+1], or an
// OutOfDomain error if v lies outside [x[0], x[n-1]].
func bracket1D(x []float64, v float64, axis string) (int, error) {
	n := len(x)
	lo, hi := x[0], x[n-1]
	if v < lo || v > hi {
		return 0, outOfDomain(axis, v, lo, hi)
	}
	// sort.Search finds the smallest i such that x[i] > v
	i := sort.Search(n, func(i int) bool { return x[i] > v })
	if i == 0 {
		i = 1
	}
	if i >= n {
		i = n - 1
	}
	return i - 1, nil
}
