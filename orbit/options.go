// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

// StepPolicy selects how the integrator adapts its step size.
type StepPolicy int

const (
	// ErrorAdaptive grows/shrinks the step from the embedded 5(4) error
	// estimate alone. This is the default.
	ErrorAdaptive StepPolicy = iota
	// FixedStep advances by InitialStep every iteration (clamped only to
	// land exactly on t_f); the embedded error estimate is computed but
	// never used to reject or resize a step.
	FixedStep
	// EnergyAdaptive behaves like ErrorAdaptive but additionally shrinks the
	// next step whenever the running relative energy deviation from the
	// initial value exceeds EnergyBound. Requires EnergyFn.
	EnergyAdaptive
)

// Options configures one Integrate call.
type Options struct {
	AbsTol, RelTol float64
	InitialStep    float64
	MaxStep        float64
	MinStep        float64 // step floor; falling below it reports StepTooSmall
	MaxSteps       int
	Policy         StepPolicy

	// EnergyFn, if set, is evaluated at every accepted step and recorded in
	// Evolution.Energy. Required (and consulted for step control) when
	// Policy == EnergyAdaptive.
	EnergyFn func(y []float64) (float64, error)
	// EnergyBound is the maximum tolerated relative deviation of the running
	// energy from its initial value before EnergyAdaptive halves the next
	// step. Ignored otherwise.
	EnergyBound float64
}

// DefaultOptions returns conservative defaults suitable for guiding-center
// orbits normalized so psip, theta, zeta are O(1).
func DefaultOptions() Options {
	return Options{
		AbsTol:      1e-12,
		RelTol:      1e-10,
		InitialStep: 1e-3,
		MaxStep:     1.0,
		MinStep:     1e-12,
		MaxSteps:    200000,
		Policy:      ErrorAdaptive,
		EnergyBound: 1e-6,
	}
}
