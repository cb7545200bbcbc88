// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guiding

import (
	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/perturb"
)

// Ptheta returns the canonical poloidal momentum
// P_theta = psi(psip) + rhoPar*I(psip), with psi the toroidal flux
// (dpsi/dpsip = q).
func Ptheta(eq *equilibrium.Equilibrium, psip, rhoPar float64) (float64, error) {
	i, err := eq.Current.I(psip)
	if err != nil {
		return 0, err
	}
	psi, err := eq.Qfactor.Psi(psip)
	if err != nil {
		return 0, err
	}
	return psi + rhoPar*i, nil
}

// Pzeta returns the canonical toroidal momentum
// P_zeta = g(psip)*rhoPar - psip.
func Pzeta(eq *equilibrium.Equilibrium, psip, rhoPar float64) (float64, error) {
	g, err := eq.Current.G(psip)
	if err != nil {
		return 0, err
	}
	return g*rhoPar - psip, nil
}

// Energy returns the Littlejohn guiding-center Hamiltonian
//
//	H = (1/2) * rhoPar^2 * B(psip,theta)^2 + mu*B(psip,theta) + p(psip,theta,zeta)
//
// evaluated at the given state. It is conserved along an unperturbed,
// time-independent orbit.
func Energy(eq *equilibrium.Equilibrium, pert *perturb.Perturbation, theta, psip, rhoPar, zeta, mu float64) (float64, error) {
	b, err := eq.Bfield.B(psip, theta)
	if err != nil {
		return 0, err
	}
	p, err := pert.P(psip, theta, zeta)
	if err != nil {
		return 0, err
	}
	return 0.5*rhoPar*rhoPar*b*b + mu*b + p, nil
}
