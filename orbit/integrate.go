// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"math"

	"github.com/cpmech/dexter/guiding"
)

const (
	safety    = 0.9
	minShrink = 0.2
	maxGrow   = 5.0
)

// Integrate advances y0 from t0 toward tf under fn, sampling dense output at
// every accepted step and watching events. It never returns a non-nil error
// for an ordinary evaluation failure: an OutOfDomain equilibrium evaluation
// ends the run with Status EscapedDomain rather than propagating the error
// to the caller. Integrate returns a non-nil error only for a malformed
// call (e.g. len(y0) != 4).
func Integrate(fn Func, y0 []float64, t0, tf float64, opts Options, events []Event) (*Evolution, error) {
	n := len(y0)
	if n != guiding.NDim {
		return nil, errMalformedState()
	}
	ev := &Evolution{T: []float64{t0}, Y: [][]float64{append([]float64{}, y0...)}}

	var e0 float64
	var haveEnergy bool
	if opts.EnergyFn != nil {
		v, err := opts.EnergyFn(y0)
		if err == nil {
			e0 = v
			haveEnergy = true
			ev.Energy = append(ev.Energy, v)
		}
	}

	y := append([]float64{}, y0...)
	t := t0
	h := opts.InitialStep
	if h <= 0 {
		h = (tf - t0) / 1000
	}
	forward := tf >= t0
	if !forward {
		h = -math.Abs(h)
	} else {
		h = math.Abs(h)
	}

	evalValues := make([]float64, len(events))
	for i, e := range events {
		v, err := e.Fn(t, y)
		if err != nil {
			ev.Status = EscapedDomain
			return ev, nil
		}
		evalValues[i] = v
	}

	f0 := make([]float64, n)
	y1 := make([]float64, n)
	f1 := make([]float64, n)

	for ev.Steps < opts.MaxSteps {
		if (forward && t >= tf) || (!forward && t <= tf) {
			ev.Status = Completed
			return ev, nil
		}
		if remaining := tf - t; (forward && h > remaining) || (!forward && h < remaining) {
			h = remaining
		}

		if err := fn.Eval(t, y, f0); err != nil {
			// Any RHS failure terminates the run rather than panicking;
			// OutOfDomain is the common case, but a degenerate
			// guiding-center transform reports the same status.
			ev.Status = EscapedDomain
			return ev, nil
		}

		errNorm, err := dopriStep(fn, t, y, f0, h, opts.AbsTol, opts.RelTol, y1, f1)
		if err != nil {
			ev.Status = EscapedDomain
			return ev, nil
		}

		accept := opts.Policy == FixedStep || errNorm <= 1
		if !accept {
			factor := math.Max(minShrink, safety*math.Pow(errNorm, -0.2))
			h *= factor
			if math.Abs(h) < opts.MinStep {
				ev.Status = StepTooSmall
				return ev, nil
			}
			continue
		}

		tNext := t + h
		terminal := false
		var terminalRec EventRecord
		for i, e := range events {
			vNext, err := e.Fn(tNext, y1)
			if err != nil {
				ev.Status = EscapedDomain
				return ev, nil
			}
			if e.Direction.matches(evalValues[i], vNext) {
				te, ye, err := bisectEvent(e, t, h, y, f0, y1, f1, t, evalValues[i], tNext, vNext)
				if err != nil {
					ev.Status = EscapedDomain
					return ev, nil
				}
				rec := EventRecord{Index: i, T: te, Y: ye}
				ev.Events = append(ev.Events, rec)
				if e.Terminal {
					terminal = true
					terminalRec = rec
				}
			}
			evalValues[i] = vNext
		}

		t = tNext
		copy(y, y1)
		ev.Steps++
		ev.T = append(ev.T, t)
		ev.Y = append(ev.Y, append([]float64{}, y...))

		if haveEnergy {
			en, err := opts.EnergyFn(y)
			if err == nil {
				ev.Energy = append(ev.Energy, en)
				if opts.Policy == EnergyAdaptive && e0 != 0 {
					dev := math.Abs(en-e0) / math.Abs(e0)
					if dev > opts.EnergyBound {
						h *= 0.5
					}
				}
			}
		}

		if terminal {
			ev.T[len(ev.T)-1] = terminalRec.T
			ev.Y[len(ev.Y)-1] = terminalRec.Y
			ev.Status = EventReached
			return ev, nil
		}

		if opts.Policy != FixedStep {
			growFactor := math.Min(maxGrow, safety*math.Pow(math.Max(errNorm, 1e-12), -0.2))
			h *= growFactor
			if mx := opts.MaxStep; mx > 0 && math.Abs(h) > mx {
				h = math.Copysign(mx, h)
			}
		}
	}
	ev.Status = StepLimit
	return ev, nil
}

func errMalformedState() error {
	return &Error{Kind: InvalidState}
}
