// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guiding

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/perturb"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// constBfield is a uniform field B=B0 with no poloidal/radial variation,
// used to check the RHS reduces to simple circular drift motion.
type constBfield struct{ b0 float64 }

func (c constBfield) B(psip, theta float64) (float64, error)              { return c.b0, nil }
func (c constBfield) DBDPsip(psip, theta float64) (float64, error)        { return 0, nil }
func (c constBfield) DBDTheta(psip, theta float64) (float64, error)       { return 0, nil }
func (c constBfield) D2BDPsip2(psip, theta float64) (float64, error)      { return 0, nil }
func (c constBfield) D2BDTheta2(psip, theta float64) (float64, error)     { return 0, nil }
func (c constBfield) D2BDPsipDTheta(psip, theta float64) (float64, error) { return 0, nil }

var _ equilibrium.Bfield = constBfield{}

func newTestEquilibrium(b0 float64) *equilibrium.Equilibrium {
	geom := &equilibrium.Geometry{PsipWall: 1.0}
	return equilibrium.New(geom, equilibrium.UnityQfactor{}, equilibrium.LarCurrent{}, constBfield{b0: b0})
}

func Test_rhs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs01. unperturbed energy after one Euler step")

	eq := newTestEquilibrium(1.2)
	rhs := New(eq, perturb.Empty(), 0.05)

	y := []float64{0.0, 0.3, 0.4, 0.0} // theta, psip, rhoPar, zeta
	s0 := State{Y: [NDim]float64{y[0], y[1], y[2], y[3]}, Mu: rhs.Mu}
	e0, err := rhs.Energy(s0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	dy := make([]float64, NDim)
	if err := rhs.Eval(0, y, dy); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	const h = 1e-4
	yNext := make([]float64, NDim)
	for i := range y {
		yNext[i] = y[i] + h*dy[i]
	}
	sNext := State{Y: [NDim]float64{yNext[0], yNext[1], yNext[2], yNext[3]}, Mu: rhs.Mu}
	eNext, err := rhs.Energy(sNext)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("e0=%g eNext=%g\n", e0, eNext)
	chk.Float64(tst, "energy after Euler step", 1e-5, eNext, e0)
}

func Test_rhs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs02. field-line limit: rhoPar=0, mu=0")

	eq := newTestEquilibrium(1.0)
	rhs := New(eq, perturb.Empty(), 0)
	y := []float64{0.5, 0.2, 1e-5, 0.0} // small rhoPar: a field-line tracer
	dy := make([]float64, NDim)
	if err := rhs.Eval(0, y, dy); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "rhoDot", 1e-17, dy[IRhoPar], 0)
	if dy[ITheta] == 0 {
		tst.Errorf("thetaDot should be nonzero for a field line\n")
		return
	}
	// field lines satisfy dzeta/dtheta = q, and UnityQfactor has q = 1
	chk.Float64(tst, "dzeta/dtheta", 1e-12, dy[IZeta]/dy[ITheta], 1.0)
}

func Test_rhs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rhs03. grad(H) dotted with the RHS tangent vanishes")

	eq := newTestEquilibrium(1.3)
	rhs := New(eq, perturb.Empty(), 0.02)
	y := []float64{0.3, 0.25, 0.5, 0.1}
	dy := make([]float64, NDim)
	if err := rhs.Eval(0, y, dy); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	const eps = 1e-6
	grad := make([]float64, NDim)
	for k := 0; k < NDim; k++ {
		yp := append([]float64{}, y...)
		ym := append([]float64{}, y...)
		yp[k] += eps
		ym[k] -= eps
		sp := State{Y: [NDim]float64{yp[0], yp[1], yp[2], yp[3]}, Mu: rhs.Mu}
		sm := State{Y: [NDim]float64{ym[0], ym[1], ym[2], ym[3]}, Mu: rhs.Mu}
		ep, err := rhs.Energy(sp)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		em, err := rhs.Energy(sm)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		grad[k] = (ep - em) / (2 * eps)
	}

	dHdt := grad[ITheta]*dy[ITheta] + grad[IPsip]*dy[IPsip] + grad[IRhoPar]*dy[IRhoPar] + grad[IZeta]*dy[IZeta]
	io.Pforan("dH/dt along tangent = %g\n", dHdt)
	if math.Abs(dHdt) > 1e-5 {
		tst.Errorf("dH/dt along the RHS tangent should vanish, got %g\n", dHdt)
	}
}
