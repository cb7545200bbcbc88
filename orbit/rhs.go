// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit implements the adaptive-step dense-output integrator and the
// event-driven Poincaré / frequency analyzers built on top of it. The
// vector field it integrates is any Func, typically a *guiding.RHS.
package orbit

// Func is the four-dimensional vector field the stepper advances. It must
// populate dy with dy/dt at (t, y); y and dy always have length
// guiding.NDim == 4. A *guiding.RHS satisfies this interface without
// modification.
type Func interface {
	Eval(t float64, y, dy []float64) error
}

// FuncFn adapts a plain function to Func.
type FuncFn func(t float64, y, dy []float64) error

// Eval implements Func.
func (f FuncFn) Eval(t float64, y, dy []float64) error { return f(t, y, dy) }
