// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"math"

	"github.com/cpmech/dexter/guiding"
)

// Section selects which Boozer angle the Poincaré surface is defined on.
type Section int

const (
	ConstTheta Section = iota
	ConstZeta
)

// MappingParameters selects the Poincaré surface Sigma = {x = Alpha (mod
// 2*pi)}, x in {theta, zeta}, and how many crossings to collect.
type MappingParameters struct {
	Section       Section
	Alpha         float64
	Intersections int
	Direction     Direction // default Direction zero value is Increasing
}

// Poincare integrates fn from y0 starting at t0, recording up to
// params.Intersections crossings of the chosen section. The returned
// Evolution's T/Y hold only the crossing samples; Status is Completed once
// Intersections crossings were found, or whatever status the underlying
// integration ended with otherwise.
func Poincare(fn Func, y0 []float64, t0, tHorizon float64, opts Options, params MappingParameters) (*Evolution, error) {
	ix := guiding.ITheta
	if params.Section == ConstZeta {
		ix = guiding.IZeta
	}
	sectionFn := func(t float64, y []float64) (float64, error) {
		return math.Sin((y[ix] - params.Alpha) / 2), nil
	}
	// The section function vanishes at x = Alpha + 2*pi*k but its slope
	// through zero alternates with k, so the crossing detector runs in both
	// directions and params.Direction filters on the sign of xDot at the
	// crossing instead.
	event := Event{Fn: sectionFn, Direction: Either, Terminal: true, Tol: 1e-10}

	result := &Evolution{}
	t := t0
	y := append([]float64{}, y0...)
	dy := make([]float64, len(y0))

	for len(result.Events) < params.Intersections {
		leg, err := Integrate(fn, y, t, tHorizon, opts, []Event{event})
		if err != nil {
			return nil, err
		}
		if leg.Status != EventReached {
			result.Status = leg.Status
			if len(result.Events) == 0 {
				return result, errNoPeriodFound()
			}
			return result, nil
		}
		crossingT, crossingY := leg.Last()
		keep := true
		if params.Direction != Either {
			if err := fn.Eval(crossingT, crossingY, dy); err != nil {
				result.Status = EscapedDomain
				return result, nil
			}
			switch params.Direction {
			case Increasing:
				keep = dy[ix] > 0
			case Decreasing:
				keep = dy[ix] < 0
			}
		}
		if keep {
			result.T = append(result.T, crossingT)
			result.Y = append(result.Y, crossingY)
			result.Events = append(result.Events, EventRecord{Index: 0, T: crossingT, Y: crossingY})
		}
		t, y = crossingT, crossingY
		if t >= tHorizon {
			break
		}
	}
	if len(result.Events) < params.Intersections {
		// the time horizon was reached before enough crossings were kept
		result.Status = Completed
		return result, nil
	}
	result.Status = Completed
	return result, nil
}
