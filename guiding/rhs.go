// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guiding

import (
	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/perturb"
)

// RHS evaluates the guiding-center vector field from an equilibrium plus an
// optional perturbation. The canonical momenta
//
//	P_theta = psi(psip) + rhoPar*I(psip)
//	P_zeta  = g(psip)*rhoPar - psip
//
// couple (thetaDot, zetaDot) to (psipDot, rhoDot) through a shared 2x2
// Jacobian with determinant D = g*q + I + rhoPar*(g*I' - I*g'); Eval solves
// that transform in closed form rather than inverting a matrix at every
// call. In the field-line limit (rhoPar -> 0, mu = 0) the equations reduce
// to dzeta/dtheta = q.
type RHS struct {
	Eq   *equilibrium.Equilibrium
	Pert *perturb.Perturbation
	Mu   float64
}

// New builds an RHS over a static equilibrium and perturbation. pert may be
// perturb.Empty() for the unperturbed/field-line limiting cases.
func New(eq *equilibrium.Equilibrium, pert *perturb.Perturbation, mu float64) *RHS {
	return &RHS{Eq: eq, Pert: pert, Mu: mu}
}

// Eval computes dy/dt at (t, y) where y = (theta, psip, rhoPar, zeta), writing
// the result into dy. Both slices must have length NDim.
func (r *RHS) Eval(t float64, y, dy []float64) error {
	theta, psip, rho, zeta := y[ITheta], y[IPsip], y[IRhoPar], y[IZeta]

	b, err := r.Eq.Bfield.B(psip, theta)
	if err != nil {
		return err
	}
	dBdPsip, err := r.Eq.Bfield.DBDPsip(psip, theta)
	if err != nil {
		return err
	}
	dBdTheta, err := r.Eq.Bfield.DBDTheta(psip, theta)
	if err != nil {
		return err
	}
	g, err := r.Eq.Current.G(psip)
	if err != nil {
		return err
	}
	gp, err := r.Eq.Current.Gprime(psip)
	if err != nil {
		return err
	}
	i, err := r.Eq.Current.I(psip)
	if err != nil {
		return err
	}
	ip, err := r.Eq.Current.Iprime(psip)
	if err != nil {
		return err
	}
	q, err := r.Eq.Qfactor.Q(psip)
	if err != nil {
		return err
	}
	dPdPsip, err := r.Pert.DPsip(psip, theta, zeta)
	if err != nil {
		return err
	}
	dPdTheta, err := r.Pert.DTheta(psip, theta, zeta)
	if err != nil {
		return err
	}
	dPdZeta, err := r.Pert.DZeta(psip, theta, zeta)
	if err != nil {
		return err
	}

	weight := rho*rho*b + r.Mu
	hPsip := weight*dBdPsip + dPdPsip
	hTheta := weight*dBdTheta + dPdTheta
	hZeta := dPdZeta
	hRho := rho * b * b

	det := g*q + i + rho*(ip*g-i*gp)
	if det == 0 {
		return errSingularTransform(det)
	}

	oneMinusRhoGp := 1 - rho*gp
	qPlusRhoIp := q + rho*ip

	dy[ITheta] = (g*hPsip + oneMinusRhoGp*hRho) / det
	dy[IPsip] = (-g*hTheta + i*hZeta) / det
	dy[IRhoPar] = (-oneMinusRhoGp*hTheta - qPlusRhoIp*hZeta) / det
	dy[IZeta] = (qPlusRhoIp*hRho - i*hPsip) / det
	return nil
}

// Energy returns the Hamiltonian value at the given state, evaluated via the
// same equilibrium and perturbation this RHS integrates.
func (r *RHS) Energy(s State) (float64, error) {
	return Energy(r.Eq, r.Pert, s.Theta(), s.Psip(), s.RhoPar(), s.Zeta(), s.Mu)
}
