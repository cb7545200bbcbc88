// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

// EventFunc is a scalar function of state whose zero crossings the
// integrator brackets and refines. It is evaluated through the step's dense
// interpolant, never at raw stepper instants only.
type EventFunc func(t float64, y []float64) (float64, error)

// Event describes one zero-crossing condition the integrator watches for.
type Event struct {
	Fn        EventFunc
	Direction Direction
	Terminal  bool    // if true, integration stops at this event
	Tol       float64 // absolute bisection tolerance on t
}

// EventRecord is one fired event, with the index of the Event that fired and
// the interpolated state at the crossing.
type EventRecord struct {
	Index int
	T     float64
	Y     []float64
}

// bisectEvent brackets a sign change of ev.Fn inside [ta, tb] (with values
// va, vb of opposite sign under ev.Direction) using the step's dense
// interpolant, and refines by bisection to ev.Tol absolute tolerance on t.
// The returned sample is the post-crossing bracket endpoint, so the event
// function at the recorded state carries the after-crossing sign and a
// restart from that state cannot re-detect the same crossing.
func bisectEvent(ev Event, t0, h float64, y0, f0, y1, f1 []float64, ta, va, tb, vb float64) (t float64, y []float64, err error) {
	n := len(y0)
	buf := make([]float64, n)
	tol := ev.Tol
	if tol <= 0 {
		tol = 1e-10
	}
	for tb-ta > tol {
		tm := 0.5 * (ta + tb)
		theta := (tm - t0) / h
		hermiteInterp(t0, h, y0, f0, y1, f1, theta, buf)
		vm, err := ev.Fn(tm, buf)
		if err != nil {
			return 0, nil, err
		}
		if sameSign(va, vm) {
			ta, va = tm, vm
		} else {
			tb, vb = tm, vm
		}
	}
	t = tb
	theta := (t - t0) / h
	y = make([]float64, n)
	hermiteInterp(t0, h, y0, f0, y1, f1, theta, y)
	return t, y, nil
}

func sameSign(a, b float64) bool {
	return (a <= 0 && b <= 0) || (a >= 0 && b >= 0)
}
