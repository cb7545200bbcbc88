// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perturb

// Perturbation is an ordered collection of harmonics with unique (m, n)
// mode numbers. It evaluates p = sum_k h_k and the same sum over each
// partial derivative. An empty Perturbation evaluates to 0 (and all
// partials to 0) everywhere, which is what makes field-line tracing and
// unperturbed orbits exact limiting cases rather than a special code path.
type Perturbation struct {
	harmonics []*Harmonic
}

// New builds a Perturbation from a set of harmonics, rejecting duplicate
// (m, n) mode pairs.
func New(harmonics ...*Harmonic) (*Perturbation, error) {
	seen := make(map[[2]int]bool, len(harmonics))
	for _, h := range harmonics {
		key := [2]int{h.M, h.N}
		if seen[key] {
			return nil, errDuplicateMode(h.M, h.N)
		}
		seen[key] = true
	}
	return &Perturbation{harmonics: harmonics}, nil
}

// Empty returns a Perturbation with no harmonics: p and all partials are
// identically 0.
func Empty() *Perturbation {
	return &Perturbation{}
}

// P returns the perturbation value at (psip, theta, zeta).
func (pt *Perturbation) P(psip, theta, zeta float64) (float64, error) {
	var sum float64
	for _, h := range pt.harmonics {
		v, err := h.Eval(psip, theta, zeta)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// DPsip returns dp/dpsip.
func (pt *Perturbation) DPsip(psip, theta, zeta float64) (float64, error) {
	var sum float64
	for _, h := range pt.harmonics {
		v, err := h.DPsip(psip, theta, zeta)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// DTheta returns dp/dtheta.
func (pt *Perturbation) DTheta(psip, theta, zeta float64) (float64, error) {
	var sum float64
	for _, h := range pt.harmonics {
		v, err := h.DTheta(psip, theta, zeta)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// DZeta returns dp/dzeta.
func (pt *Perturbation) DZeta(psip, theta, zeta float64) (float64, error) {
	var sum float64
	for _, h := range pt.harmonics {
		v, err := h.DZeta(psip, theta, zeta)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// DT returns dp/dt. Reserved for future time-dependent perturbations;
// always 0.
func (pt *Perturbation) DT(psip, theta, zeta, t float64) (float64, error) {
	return 0, nil
}

// Harmonics returns the ordered harmonic list (read-only use only).
func (pt *Perturbation) Harmonics() []*Harmonic { return pt.harmonics }
