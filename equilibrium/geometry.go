// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import "github.com/cpmech/dexter/interp"

// Geometry holds the device-scale scalars and, when the dataset provides the
// optional derived arrays, the coordinate-conversion interpolants
// {r<->psip, psip->psi} (1D) and {(psip,theta)->Rlab, Zlab, J} (2D).
type Geometry struct {
	B0       float64 // baxis [T]
	R0       float64 // raxis [m]
	Z0       float64 // zaxis [m]
	Rgeo     float64 // rgeo [m]
	Rwall    float64 // minor radius at the wall [m], derived from r(psip_wall)
	PsipWall float64 // last tabulated psip_norm value
	PsiWall  float64 // psi at the wall, if available

	rOfPsip  interp.Interp1D // r(psip), optional
	psipOfR  interp.Interp1D // inverse of rOfPsip, optional
	rLab     interp.Interp2D // Rlab(psip, theta), optional
	zLab     interp.Interp2D // Zlab(psip, theta), optional
	jacobian interp.Interp2D // J(psip, theta), optional
}

func loadGeometry(ds Dataset, psip, theta []float64, kind1D interp.Kind1D, kind2D interp.Kind2D) (*Geometry, error) {
	b0, err := requireScalar(ds, "baxis")
	if err != nil {
		return nil, err
	}
	r0, err := requireScalar(ds, "raxis")
	if err != nil {
		return nil, err
	}
	z0, err := requireScalar(ds, "zaxis")
	if err != nil {
		return nil, err
	}
	rgeo, err := requireScalar(ds, "rgeo")
	if err != nil {
		return nil, err
	}
	g := &Geometry{B0: b0, R0: r0, Z0: z0, Rgeo: rgeo, PsipWall: psip[len(psip)-1]}

	if r, ok := ds.Array1D("r"); ok {
		rOfPsip, err := interp.New1D(kind1D, psip, r, "psip_norm")
		if err != nil {
			return nil, err
		}
		// r(psip) must itself be monotone to be invertible as psip(r)
		psipOfR, err := interp.New1D(kind1D, r, psip, "r")
		if err != nil {
			return nil, err
		}
		g.rOfPsip = rOfPsip
		g.psipOfR = psipOfR
		g.Rwall = r[len(r)-1]
	}
	if psi, ok := ds.Array1D("psi"); ok {
		if len(psi) != len(psip) {
			return nil, errShapeMismatch("psi", dims(len(psip), 0), dims(len(psi), 0))
		}
		g.PsiWall = psi[len(psi)-1]
	}
	if rlab, ok := ds.Array2D("rlab"); ok {
		i2, err := interp.New2D(kind2D, psip, theta, rlab, "psip_norm", "theta")
		if err != nil {
			return nil, err
		}
		g.rLab = i2
	}
	if zlab, ok := ds.Array2D("zlab"); ok {
		i2, err := interp.New2D(kind2D, psip, theta, zlab, "psip_norm", "theta")
		if err != nil {
			return nil, err
		}
		g.zLab = i2
	}
	if jac, ok := ds.Array2D("jacobian"); ok {
		i2, err := interp.New2D(kind2D, psip, theta, jac, "psip_norm", "theta")
		if err != nil {
			return nil, err
		}
		g.jacobian = i2
	}
	return g, nil
}

// HasRadialMap reports whether r<->psip conversion is available.
func (g *Geometry) HasRadialMap() bool { return g.rOfPsip != nil }

// RadiusAt returns r(psip).
func (g *Geometry) RadiusAt(psip float64) (float64, error) {
	if g.rOfPsip == nil {
		return 0, errMissingVariable("r")
	}
	return g.rOfPsip.Eval(psip)
}

// PsipAt returns psip(r), the inverse of RadiusAt.
func (g *Geometry) PsipAt(r float64) (float64, error) {
	if g.psipOfR == nil {
		return 0, errMissingVariable("r")
	}
	return g.psipOfR.Eval(r)
}

// HasLabFrame reports whether (R_lab, Z_lab, J) conversion is available.
func (g *Geometry) HasLabFrame() bool { return g.rLab != nil && g.zLab != nil && g.jacobian != nil }

// Rlab returns the lab-frame major radius at (psip, theta).
func (g *Geometry) Rlab(psip, theta float64) (float64, error) {
	if g.rLab == nil {
		return 0, errMissingVariable("rlab")
	}
	return g.rLab.Eval(psip, theta)
}

// Zlab returns the lab-frame height at (psip, theta).
func (g *Geometry) Zlab(psip, theta float64) (float64, error) {
	if g.zLab == nil {
		return 0, errMissingVariable("zlab")
	}
	return g.zLab.Eval(psip, theta)
}

// Jacobian returns the coordinate Jacobian J(psip, theta) [m/T].
func (g *Geometry) Jacobian(psip, theta float64) (float64, error) {
	if g.jacobian == nil {
		return 0, errMissingVariable("jacobian")
	}
	return g.jacobian.Eval(psip, theta)
}
