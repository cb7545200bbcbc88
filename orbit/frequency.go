// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"math"

	"github.com/cpmech/dexter/guiding"
)

// Frequencies holds the bounce/transit frequencies and kinetic safety factor
// extracted from one period of an orbit.
type Frequencies struct {
	OmegaTheta float64
	OmegaZeta  float64
	Qkinetic   float64
}

// psipTol is the default tolerance used to disambiguate the correct return
// to the (theta0, psip0) line from an unrelated crossing at the same theta.
const psipTol = 1e-3

// ComputeFrequencies integrates fn from y0 until two returns to the initial
// (theta0, psip0) line are observed (theta crossing zero relative to theta0
// with matching sign, and psip within psipTol of psip0), then derives
// omega_theta, omega_zeta and q_kinetic from the time and zeta elapsed
// between those two returns. It reports NoPeriodFound if the time horizon is
// exhausted first.
func ComputeFrequencies(fn Func, y0 []float64, t0, tHorizon float64, opts Options) (Frequencies, error) {
	theta0 := y0[guiding.ITheta]
	psip0 := y0[guiding.IPsip]

	returnFn := func(t float64, y []float64) (float64, error) {
		return math.Sin((y[guiding.ITheta] - theta0) / 2), nil
	}

	// A genuine return revisits the initial phase-space point, so theta
	// must be moving the same way it was at t0; crossings with the opposite
	// theta-dot (the other leg of a banana, or the half-period return) are
	// rejected along with any crossing whose psip misses psip0.
	dy := make([]float64, len(y0))
	if err := fn.Eval(t0, y0, dy); err != nil {
		return Frequencies{}, errNoPeriodFound()
	}
	thetaDot0 := dy[guiding.ITheta]

	var crossings []EventRecord
	t := t0
	y := append([]float64{}, y0...)
	event := Event{Fn: returnFn, Direction: Either, Terminal: true, Tol: 1e-10}
	for len(crossings) < 2 {
		leg, err := Integrate(fn, y, t, tHorizon, opts, []Event{event})
		if err != nil {
			return Frequencies{}, err
		}
		if leg.Status != EventReached {
			return Frequencies{}, errNoPeriodFound()
		}
		ct, cy := leg.Last()
		if err := fn.Eval(ct, cy, dy); err != nil {
			return Frequencies{}, errNoPeriodFound()
		}
		if dy[guiding.ITheta]*thetaDot0 > 0 && math.Abs(cy[guiding.IPsip]-psip0) <= psipTol {
			crossings = append(crossings, EventRecord{T: ct, Y: cy})
		}
		t, y = ct, cy
	}
	t1, y1 := crossings[0].T, crossings[0].Y
	t2, y2 := crossings[1].T, crossings[1].Y
	tOmega := t2 - t1
	if tOmega <= 0 {
		return Frequencies{}, errNoPeriodFound()
	}
	omegaTheta := 2 * math.Pi / tOmega
	omegaZeta := (y2[guiding.IZeta] - y1[guiding.IZeta]) / tOmega
	return Frequencies{OmegaTheta: omegaTheta, OmegaZeta: omegaZeta, Qkinetic: omegaZeta / omegaTheta}, nil
}
