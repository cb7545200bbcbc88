// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp implements the 1D and 2D spline interpolation kernel that
// every equilibrium and perturbation quantity is built on: linear, natural
// cubic and Steffen variants in one dimension; bilinear and bicubic in two.
package interp

import "github.com/cpmech/gosl/chk"

// Kind identifies the class of interpolation failure.
type Kind int

// closed set of interpolation-kernel failure kinds
const (
	// IllConditioned is returned when knots are non-monotone or degenerate.
	IllConditioned Kind = iota
	// OutOfDomain is returned when an evaluation point lies outside the knot range.
	OutOfDomain
)

// Error is the error type returned by every constructor and evaluation
// function in this package. Axis/Value/Range are populated for OutOfDomain;
// they are zero for IllConditioned.
type Error struct {
	Kind  Kind
	Axis  string
	Value float64
	Lo    float64
	Hi    float64
	msg   string
}

func (e *Error) Error() string {
	return e.msg
}

func illConditioned(format string, args ...interface{}) error {
	return &Error{Kind: IllConditioned, msg: chk.Err(format, args...).Error()}
}

func outOfDomain(axis string, value, lo, hi float64) error {
	return &Error{
		Kind:  OutOfDomain,
		Axis:  axis,
		Value: value,
		Lo:    lo,
		Hi:    hi,
		msg:   chk.Err("interp: %s=%g is out of domain [%g, %g]", axis, value, lo, hi).Error(),
	}
}
