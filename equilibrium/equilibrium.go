// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import "github.com/cpmech/dexter/interp"

// Options selects the interpolation variant used to build every tabulated
// quantity read from a Dataset. Steffen/Bicubic are the defaults: Steffen is
// monotonicity-preserving, which matters for q, g, I and the harmonic
// amplitude/phase the perturb package builds on the same psip grid.
type Options struct {
	Kind1D interp.Kind1D
	Kind2D interp.Kind2D
}

// DefaultOptions returns the recommended default variants.
func DefaultOptions() Options {
	return Options{Kind1D: interp.Steffen, Kind2D: interp.Bicubic}
}

// Equilibrium aggregates the four immutable equilibrium entities. Once
// constructed it is read-only and safe to share by reference across
// concurrent particle integrations (ensemble.Heap does exactly that).
type Equilibrium struct {
	Geometry *Geometry
	Qfactor  Qfactor
	Current  Current
	Bfield   Bfield

	// PsipWall is the last tabulated psip_norm value; all normalized fluxes
	// are required to lie in [0, PsipWall].
	PsipWall float64
}

// New assembles an Equilibrium from already-constructed parts. This is the
// entry point used by scenarios that mix analytic variants (UnityQfactor,
// LarCurrent, an empty perturb.Perturbation) with a tabulated Bfield, or vice
// versa; the RHS never needs to know which combination it was given.
func New(geom *Geometry, q Qfactor, cur Current, bf Bfield) *Equilibrium {
	return &Equilibrium{Geometry: geom, Qfactor: q, Current: cur, Bfield: bf, PsipWall: geom.PsipWall}
}

// Load reads geometry, q, g, I and B from ds, validating presence of the
// required entries and the (len(psip_norm), len(theta)) shape of every 2D
// variable, and builds a fully tabulated Equilibrium.
func Load(ds Dataset, opts Options) (*Equilibrium, error) {
	psip, err := requireArray1D(ds, "psip_norm")
	if err != nil {
		return nil, err
	}
	theta, err := requireArray1D(ds, "theta")
	if err != nil {
		return nil, err
	}
	if err := checkMonotone(psip, "psip_norm"); err != nil {
		return nil, err
	}
	if err := checkMonotone(theta, "theta"); err != nil {
		return nil, err
	}
	if _, err := requireIntArray(ds, "m"); err != nil {
		return nil, err
	}
	if _, err := requireIntArray(ds, "n"); err != nil {
		return nil, err
	}

	geom, err := loadGeometry(ds, psip, theta, opts.Kind1D, opts.Kind2D)
	if err != nil {
		return nil, err
	}
	q, err := loadQfactor(ds, psip, opts.Kind1D)
	if err != nil {
		return nil, err
	}
	cur, err := loadCurrent(ds, psip, opts.Kind1D)
	if err != nil {
		return nil, err
	}
	bf, err := loadBfield(ds, psip, theta, opts.Kind2D)
	if err != nil {
		return nil, err
	}
	return New(geom, q, cur, bf), nil
}

func checkMonotone(x []float64, axis string) error {
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return errNonMonotoneAxis(axis)
		}
	}
	return nil
}
