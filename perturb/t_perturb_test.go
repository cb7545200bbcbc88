// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perturb

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/interp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// linearQ is a small Qfactor stand-in with q(psip) = q0 + slope*psip, used
// to exercise the Resonance phase method without pulling in the full
// equilibrium.Load machinery.
type linearQ struct{ q0, slope float64 }

func (l linearQ) Q(psip float64) (float64, error)   { return l.q0 + l.slope*psip, nil }
func (l linearQ) Psi(psip float64) (float64, error) { return psip, nil }
func (l linearQ) DPsiDPsip(psip float64) (float64, error) {
	return l.q0 + l.slope*psip, nil
}

var _ equilibrium.Qfactor = linearQ{}

func Test_pert01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pert01. empty perturbation is identically zero")

	p := Empty()
	for _, fn := range []func(float64, float64, float64) (float64, error){p.P, p.DPsip, p.DTheta, p.DZeta} {
		v, err := fn(0.3, 1.1, 2.2)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Float64(tst, "empty perturbation", 1e-17, v, 0)
	}
	dt, _ := p.DT(0.3, 1.1, 2.2, 5.0)
	chk.Float64(tst, "dp/dt", 1e-17, dt, 0)
}

func Test_pert02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pert02. Zero phase method ignores the tabulated phase")

	psip := utl.LinSpace(0, 1, 11)
	alpha := make([]float64, len(psip))
	phase := make([]float64, len(psip))
	for i := range psip {
		alpha[i] = 0.01
		phase[i] = 123.456 // garbage phase data that Zero must ignore
	}
	h, err := NewHarmonic(psip, alpha, phase, 2, 1, Zero, interp.Steffen, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err := h.Eval(0.5, 0.0, 0.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "h at arg=0", 1e-12, v, 0.01)
}

func Test_pert03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pert03. Average phase method is the constant mean")

	psip := utl.LinSpace(0, 1, 5)
	alpha := []float64{0.1, 0.1, 0.1, 0.1, 0.1}
	phase := []float64{0, 1, 2, 3, 4}
	h, err := NewHarmonic(psip, alpha, phase, 1, 1, Average, interp.Steffen, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	phi, err := h.phase.Phi(0.37)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "average phase", 1e-9, phi, 2.0)
	dphi, _ := h.phase.PhiPrime(0.37)
	chk.Float64(tst, "average phase derivative", 1e-17, dphi, 0)
}

func Test_pert04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pert04. Resonance phase method finds q = m/n")

	psip := utl.LinSpace(0, 1, 41)
	alpha := make([]float64, len(psip))
	phase := make([]float64, len(psip))
	for i, p := range psip {
		alpha[i] = 0.02
		phase[i] = 0.5 * p
	}
	q := linearQ{q0: 0.5, slope: 4.5} // q in [0.5, 5]
	// m=5, n=2: target q = 2.5, psip_res = (2.5-0.5)/4.5 = 4/9
	h, err := NewHarmonic(psip, alpha, phase, 5, 2, Resonance, interp.Steffen, q)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	psipRes := (2.5 - 0.5) / 4.5
	phi, err := h.phase.Phi(0.1) // constant regardless of argument
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("psip_res=%g phi=%g\n", psipRes, phi)
	chk.Float64(tst, "resonance phase", 1e-4, phi, 0.5*psipRes)
}

func Test_pert05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pert05. Resonance phase method fails without a root")

	psip := utl.LinSpace(0, 1, 21)
	alpha := make([]float64, len(psip))
	phase := make([]float64, len(psip))
	for i := range psip {
		alpha[i] = 0.01
	}
	q := linearQ{q0: 0.5, slope: 4.5} // q in [0.5, 5]
	_, err := NewHarmonic(psip, alpha, phase, 5, 100, Resonance, interp.Steffen, q)
	if err == nil {
		tst.Errorf("m=5, n=100 with q in [0.5,5] must fail\n")
		return
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != NoResonance {
		tst.Errorf("wrong error kind: %v\n", err)
		return
	}
	chk.IntAssert(e.M, 5)
	chk.IntAssert(e.N, 100)
}

func Test_pert06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pert06. Spline phase method varies with psip")

	psip := utl.LinSpace(0, 1, 11)
	alpha := make([]float64, len(psip))
	phase := make([]float64, len(psip))
	for i, p := range psip {
		alpha[i] = 0.01
		phase[i] = p * p
	}
	h, err := NewHarmonic(psip, alpha, phase, 1, 1, Spline, interp.Steffen, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	phi1, _ := h.phase.Phi(0.2)
	phi2, _ := h.phase.Phi(0.8)
	io.Pforan("phi(0.2)=%g phi(0.8)=%g\n", phi1, phi2)
	if math.Abs(phi1-phi2) < 1e-6 {
		tst.Errorf("spline phase should vary across psip\n")
	}
}

func Test_pert07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pert07. duplicate (m,n) mode numbers are rejected")

	psip := utl.LinSpace(0, 1, 5)
	alpha := []float64{0.01, 0.01, 0.01, 0.01, 0.01}
	phase := []float64{0, 0, 0, 0, 0}
	h1, err := NewHarmonic(psip, alpha, phase, 2, 1, Zero, interp.Steffen, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	h2, err := NewHarmonic(psip, alpha, phase, 2, 1, Zero, interp.Steffen, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, err = New(h1, h2)
	if err == nil {
		tst.Errorf("duplicate (2,1) mode must be rejected\n")
	}
}

func Test_pert08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pert08. analytic partials vs finite differences")

	psip := utl.LinSpace(0, 1, 21)
	alpha := make([]float64, len(psip))
	phase := make([]float64, len(psip))
	for i, p := range psip {
		alpha[i] = 0.05 + 0.02*p
		phase[i] = 0.3 * p
	}
	h, err := NewHarmonic(psip, alpha, phase, 2, 1, Spline, interp.Steffen, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	const eps = 1e-6
	psip0, theta0, zeta0 := 0.5, 1.0, 0.7

	dPsip, _ := h.DPsip(psip0, theta0, zeta0)
	fPlus, _ := h.Eval(psip0+eps, theta0, zeta0)
	fMinus, _ := h.Eval(psip0-eps, theta0, zeta0)
	chk.Float64(tst, "dh/dpsip", 1e-4, dPsip, (fPlus-fMinus)/(2*eps))

	dTheta, _ := h.DTheta(psip0, theta0, zeta0)
	fPlus, _ = h.Eval(psip0, theta0+eps, zeta0)
	fMinus, _ = h.Eval(psip0, theta0-eps, zeta0)
	chk.Float64(tst, "dh/dtheta", 1e-4, dTheta, (fPlus-fMinus)/(2*eps))

	dZeta, _ := h.DZeta(psip0, theta0, zeta0)
	fPlus, _ = h.Eval(psip0, theta0, zeta0+eps)
	fMinus, _ = h.Eval(psip0, theta0, zeta0-eps)
	chk.Float64(tst, "dh/dzeta", 1e-4, dZeta, (fPlus-fMinus)/(2*eps))
}
