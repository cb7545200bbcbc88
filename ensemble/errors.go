// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ensemble drives a batch of independent guiding-center particles
// over a shared, read-only equilibrium and perturbation, fanning the work out
// across a bounded worker pool.
package ensemble

import "fmt"

// Kind tags the distinct ways a Heap construction can fail. Per-particle
// integration failures never reach this type: they are recorded in the
// particle's own result entry instead.
type Kind int

const (
	// ShapeMismatch marks a HeapInitialConditions whose five arrays are not
	// all the same length.
	ShapeMismatch Kind = iota
)

// Error reports a Heap construction failure.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func errShapeMismatch(lens map[string]int) error {
	return &Error{Kind: ShapeMismatch, Msg: fmt.Sprintf("ensemble: initial-condition arrays have mismatched lengths: %v", lens)}
}
