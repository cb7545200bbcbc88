// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perturb implements the non-axisymmetric magnetic perturbation as a
// sum of Fourier harmonics, each with a cached phase method and analytic
// partial derivatives.
package perturb

import "github.com/cpmech/gosl/chk"

// Kind identifies the class of perturbation construction failure.
type Kind int

const (
	// IllConditioned mirrors interp.IllConditioned for harmonic data that
	// fails to build a valid amplitude/phase spline.
	IllConditioned Kind = iota
	// NoResonance is returned by the Resonance phase method when q(psip)=m/n
	// has no root within the tabulated psip range.
	NoResonance
	// DuplicateMode is returned when two harmonics in a Perturbation share
	// the same (m, n) pair.
	DuplicateMode
)

// Error is returned by Harmonic and Perturbation construction.
type Error struct {
	Kind Kind
	M, N int
	msg  string
}

func (e *Error) Error() string { return e.msg }

func errIllConditioned(format string, args ...interface{}) error {
	return &Error{Kind: IllConditioned, msg: chk.Err(format, args...).Error()}
}

func errNoResonance(m, n int) error {
	return &Error{Kind: NoResonance, M: m, N: n, msg: chk.Err("perturb: no resonance q=%d/%d in range for harmonic (m=%d, n=%d)", m, n, m, n).Error()}
}

func errDuplicateMode(m, n int) error {
	return &Error{Kind: DuplicateMode, M: m, N: n, msg: chk.Err("perturb: duplicate mode numbers (m=%d, n=%d)", m, n).Error()}
}
