// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import "github.com/cpmech/dexter/interp"

// Bfield is the capability set every field-strength variant must expose: B
// and its first two partials with respect to (psip, theta).
type Bfield interface {
	B(psip, theta float64) (float64, error)
	DBDPsip(psip, theta float64) (float64, error)
	DBDTheta(psip, theta float64) (float64, error)
	D2BDPsip2(psip, theta float64) (float64, error)
	D2BDTheta2(psip, theta float64) (float64, error)
	D2BDPsipDTheta(psip, theta float64) (float64, error)
}

// tabulatedBfield builds B(psip,theta) as a 2D spline, then evaluates that
// spline's first partials on the same grid and builds two further 2D
// splines from those derivative tables. Second partials come from those
// re-interpolated derivative splines rather than by differentiating the
// primary bicubic patch a second time, which keeps them continuous across
// cell boundaries.
type tabulatedBfield struct {
	b        interp.Interp2D
	dBdPsip  interp.Interp2D
	dBdTheta interp.Interp2D
}

func loadBfield(ds Dataset, psip, theta []float64, kind interp.Kind2D) (Bfield, error) {
	bvals, err := requireArray2D(ds, "b_norm", len(psip), len(theta))
	if err != nil {
		return nil, err
	}
	b, err := interp.New2D(kind, psip, theta, bvals, "psip_norm", "theta")
	if err != nil {
		return nil, err
	}

	dPsipTable := make([][]float64, len(psip))
	dThetaTable := make([][]float64, len(psip))
	for i, pv := range psip {
		dPsipTable[i] = make([]float64, len(theta))
		dThetaTable[i] = make([]float64, len(theta))
		for j, tv := range theta {
			dp, err := b.EvalDx(pv, tv)
			if err != nil {
				return nil, err
			}
			dt, err := b.EvalDy(pv, tv)
			if err != nil {
				return nil, err
			}
			dPsipTable[i][j] = dp
			dThetaTable[i][j] = dt
		}
	}
	dBdPsip, err := interp.New2D(kind, psip, theta, dPsipTable, "psip_norm", "theta")
	if err != nil {
		return nil, err
	}
	dBdTheta, err := interp.New2D(kind, psip, theta, dThetaTable, "psip_norm", "theta")
	if err != nil {
		return nil, err
	}
	return &tabulatedBfield{b: b, dBdPsip: dBdPsip, dBdTheta: dBdTheta}, nil
}

func (o *tabulatedBfield) B(psip, theta float64) (float64, error) {
	return o.b.Eval(psip, theta)
}

func (o *tabulatedBfield) DBDPsip(psip, theta float64) (float64, error) {
	return o.dBdPsip.Eval(psip, theta)
}

func (o *tabulatedBfield) DBDTheta(psip, theta float64) (float64, error) {
	return o.dBdTheta.Eval(psip, theta)
}

func (o *tabulatedBfield) D2BDPsip2(psip, theta float64) (float64, error) {
	return o.dBdPsip.EvalDx(psip, theta)
}

func (o *tabulatedBfield) D2BDTheta2(psip, theta float64) (float64, error) {
	return o.dBdTheta.EvalDy(psip, theta)
}

func (o *tabulatedBfield) D2BDPsipDTheta(psip, theta float64) (float64, error) {
	return o.dBdPsip.EvalDy(psip, theta)
}
