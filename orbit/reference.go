// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"github.com/cpmech/gosl/ode"
)

// ReferenceSolve integrates fn from y0 over [t0, tf] with gosl's black-box
// Radau5 solver and returns the final state only, with no dense output or
// event support. It exists to cross-check the hand-rolled dense-output
// stepper in Integrate against an independently implemented method, the same
// role gosl/ode plays for ana.ColumnFluidPressure's numerical branch.
func ReferenceSolve(fn Func, y0 []float64, t0, tf float64) ([]float64, error) {
	n := len(y0)
	y := append([]float64{}, y0...)

	var sol ode.ODE
	sol.Init("Radau5", n, func(f []float64, dx, x float64, y []float64, args ...interface{}) error {
		return fn.Eval(x, y, f)
	}, nil, nil, nil, true)
	sol.Distr = false

	step := (tf - t0) / 100
	if step == 0 {
		step = 1
	}
	if err := sol.Solve(y, t0, tf, step, false); err != nil {
		return nil, err
	}
	return y, nil
}
