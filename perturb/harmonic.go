// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perturb

import (
	"math"

	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/interp"
)

// Harmonic is a single Fourier component of the magnetic perturbation:
//
//	h(psip, theta, zeta) = alpha(psip) * cos(n*zeta - m*theta + Phi(psip))
//
// with partials obtained by analytic differentiation of the cosine; alpha
// and its derivative come from a spline, Phi and its derivative come from
// the resolved PhaseMethod.
type Harmonic struct {
	M, N   int
	Method PhaseMethod

	alpha interp.Interp1D
	phase phaseFunc
}

// NewHarmonic builds a harmonic from tabulated amplitude and phase arrays
// over the shared psip grid. q is only consulted by the Resonance phase
// method; it may be nil for the other three.
func NewHarmonic(psip, alphaVals, phaseVals []float64, m, n int, method PhaseMethod, kind interp.Kind1D, q equilibrium.Qfactor) (*Harmonic, error) {
	if len(alphaVals) != len(psip) {
		return nil, errIllConditioned("perturb: harmonic (m=%d,n=%d): len(alpha)=%d != len(psip)=%d", m, n, len(alphaVals), len(psip))
	}
	if len(phaseVals) != len(psip) {
		return nil, errIllConditioned("perturb: harmonic (m=%d,n=%d): len(phase)=%d != len(psip)=%d", m, n, len(phaseVals), len(psip))
	}
	alpha, err := interp.New1D(kind, psip, alphaVals, "psip_norm")
	if err != nil {
		return nil, errIllConditioned("perturb: harmonic (m=%d,n=%d) amplitude spline: %v", m, n, err)
	}
	phase, err := resolvePhase(method, psip, phaseVals, m, n, kind, q)
	if err != nil {
		return nil, err
	}
	return &Harmonic{M: m, N: n, Method: method, alpha: alpha, phase: phase}, nil
}

func (h *Harmonic) arg(psip, theta, zeta float64) (float64, error) {
	phi, err := h.phase.Phi(psip)
	if err != nil {
		return 0, err
	}
	return float64(h.N)*zeta - float64(h.M)*theta + phi, nil
}

// Eval returns h(psip, theta, zeta).
func (h *Harmonic) Eval(psip, theta, zeta float64) (float64, error) {
	a, err := h.alpha.Eval(psip)
	if err != nil {
		return 0, err
	}
	arg, err := h.arg(psip, theta, zeta)
	if err != nil {
		return 0, err
	}
	return a * math.Cos(arg), nil
}

// DPsip returns dh/dpsip.
func (h *Harmonic) DPsip(psip, theta, zeta float64) (float64, error) {
	a, err := h.alpha.Eval(psip)
	if err != nil {
		return 0, err
	}
	ap, err := h.alpha.EvalDeriv(psip)
	if err != nil {
		return 0, err
	}
	arg, err := h.arg(psip, theta, zeta)
	if err != nil {
		return 0, err
	}
	phip, err := h.phase.PhiPrime(psip)
	if err != nil {
		return 0, err
	}
	return ap*math.Cos(arg) - a*math.Sin(arg)*phip, nil
}

// DTheta returns dh/dtheta.
func (h *Harmonic) DTheta(psip, theta, zeta float64) (float64, error) {
	a, err := h.alpha.Eval(psip)
	if err != nil {
		return 0, err
	}
	arg, err := h.arg(psip, theta, zeta)
	if err != nil {
		return 0, err
	}
	return a * float64(h.M) * math.Sin(arg), nil
}

// DZeta returns dh/dzeta.
func (h *Harmonic) DZeta(psip, theta, zeta float64) (float64, error) {
	a, err := h.alpha.Eval(psip)
	if err != nil {
		return 0, err
	}
	arg, err := h.arg(psip, theta, zeta)
	if err != nil {
		return 0, err
	}
	return -a * float64(h.N) * math.Sin(arg), nil
}

// DT returns dh/dt. The time-dependence slot is reserved; this always
// returns 0.
func (h *Harmonic) DT(psip, theta, zeta, t float64) (float64, error) {
	return 0, nil
}
