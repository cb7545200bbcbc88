// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equilibrium builds the immutable, read-only stationary
// axisymmetric equilibrium (geometry, safety factor, currents, field
// strength) from tabulated arrays supplied by a Dataset, as thin named
// wrappers over interp.Interp1D/Interp2D splines.
package equilibrium

import "github.com/cpmech/gosl/chk"

// Kind identifies the class of equilibrium construction failure.
type Kind int

const (
	FileMissing Kind = iota
	MissingVariable
	ShapeMismatch
	NonMonotoneAxis
)

// Error is returned by every equilibrium-construction entry point.
type Error struct {
	Kind Kind
	Name string
	msg  string
}

func (e *Error) Error() string { return e.msg }

func errFileMissing(path string) error {
	return &Error{Kind: FileMissing, Name: path, msg: chk.Err("equilibrium: file not found: %q", path).Error()}
}

func errMissingVariable(name string) error {
	return &Error{Kind: MissingVariable, Name: name, msg: chk.Err("equilibrium: required variable %q is missing from dataset", name).Error()}
}

func errShapeMismatch(name, expected, got string) error {
	return &Error{Kind: ShapeMismatch, Name: name, msg: chk.Err("equilibrium: variable %q has shape %s, expected %s", name, got, expected).Error()}
}

func errNonMonotoneAxis(axis string) error {
	return &Error{Kind: NonMonotoneAxis, Name: axis, msg: chk.Err("equilibrium: axis %q is not strictly monotone", axis).Error()}
}
