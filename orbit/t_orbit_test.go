// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/guiding"
	"github.com/cpmech/dexter/perturb"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// harmonicOscillator is a simple two-state field (theta, zeta unused) packed
// into the four-vector so Integrate's NDim=4 assumption still holds: y =
// (theta, psip, rhoPar, zeta) with theta'=psip, psip'=-theta (unit circle in
// the theta-psip plane), rhoPar and zeta held fixed. Energy = theta^2+psip^2
// is exactly conserved, which makes this a clean check of the stepper
// independent of any equilibrium machinery.
func harmonicOscillator(t float64, y, dy []float64) error {
	dy[0] = y[1]
	dy[1] = -y[0]
	dy[2] = 0
	dy[3] = 0
	return nil
}

func energyOf(y []float64) (float64, error) {
	return y[0]*y[0] + y[1]*y[1], nil
}

func Test_orb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb01. integration completes at the horizon")

	opts := DefaultOptions()
	ev, err := Integrate(FuncFn(harmonicOscillator), []float64{1, 0, 0, 0}, 0, 2*math.Pi, opts, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if ev.Status != Completed {
		tst.Errorf("wrong status: %v\n", ev.Status)
		return
	}
	tf, y := ev.Last()
	chk.Float64(tst, "final time", 1e-9, tf, 2*math.Pi)
	chk.Float64(tst, "theta after one period", 1e-5, y[0], 1)
	chk.Float64(tst, "psip after one period", 1e-5, y[1], 0)
}

func Test_orb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb02. energy-adaptive policy conserves energy")

	opts := DefaultOptions()
	opts.EnergyFn = energyOf
	opts.Policy = EnergyAdaptive
	ev, err := Integrate(FuncFn(harmonicOscillator), []float64{1, 0, 0, 0}, 0, 10*math.Pi, opts, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if ev.Status != Completed {
		tst.Errorf("wrong status: %v\n", ev.Status)
		return
	}
	mean := 0.0
	for _, e := range ev.Energy {
		mean += e
	}
	mean /= float64(len(ev.Energy))
	var variance float64
	for _, e := range ev.Energy {
		variance += (e - mean) * (e - mean)
	}
	variance /= float64(len(ev.Energy))
	relStd := math.Sqrt(variance) / mean
	io.Pforan("samples=%d relStd=%g\n", len(ev.Energy), relStd)
	if relStd > 1e-6 {
		tst.Errorf("energy relative std too large: %g\n", relStd)
	}
}

func Test_orb03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb03. terminal zero-crossing event")

	opts := DefaultOptions()
	// event: theta crosses 0 going negative-to-positive
	event := Event{
		Fn:        func(t float64, y []float64) (float64, error) { return y[0], nil },
		Direction: Increasing,
		Terminal:  true,
		Tol:       1e-10,
	}
	ev, err := Integrate(FuncFn(harmonicOscillator), []float64{0, 1, 0, 0}, 0, 100, opts, []Event{event})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if ev.Status != EventReached {
		tst.Errorf("wrong status: %v\n", ev.Status)
		return
	}
	tf, y := ev.Last()
	chk.Float64(tst, "event time", 1e-6, tf, 2*math.Pi)
	chk.Float64(tst, "theta at event", 1e-6, y[0], 0)
}

func Test_orb04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb04. malformed state is rejected")

	_, err := Integrate(FuncFn(harmonicOscillator), nil, 0, 1, DefaultOptions(), nil)
	if err == nil {
		tst.Errorf("an empty state vector must be rejected\n")
	}
}

func Test_orb05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb05. Poincare mapping collects the requested crossings")

	opts := DefaultOptions()
	params := MappingParameters{Section: ConstTheta, Alpha: 0, Intersections: 4, Direction: Increasing}
	ev, err := Poincare(FuncFn(harmonicOscillator), []float64{0, 1, 0, 0}, 0, 1000, opts, params)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if ev.Status != Completed {
		tst.Errorf("wrong status: %v\n", ev.Status)
		return
	}
	chk.IntAssert(len(ev.T), 4)
	for _, y := range ev.Y {
		chk.Float64(tst, "crossing theta", 1e-6, y[0], 0)
	}
}

func Test_orb06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb06. frequencies of the harmonic oscillator")

	opts := DefaultOptions()
	freq, err := ComputeFrequencies(FuncFn(harmonicOscillator), []float64{0, 1, 0, 0}, 0, 1000, opts)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("omega_theta=%g omega_zeta=%g\n", freq.OmegaTheta, freq.OmegaZeta)
	chk.Float64(tst, "omega_theta", 1e-4, freq.OmegaTheta, 1.0)
}

func Test_orb07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb07. dense stepper vs gosl reference solver")

	opts := DefaultOptions()
	ev, err := Integrate(FuncFn(harmonicOscillator), []float64{1, 0, 0, 0}, 0, 1.0, opts, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, y1 := ev.Last()

	y2, err := ReferenceSolve(FuncFn(harmonicOscillator), []float64{1, 0, 0, 0}, 0, 1.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "theta", 1e-4, y1[0], y2[0])
	chk.Float64(tst, "psip", 1e-4, y1[1], y2[1])
}

// ripple is an analytic large-aspect-ratio field strength
// B = 1 - eps*psip*cos(theta), giving the RHS a nontrivial poloidal
// dependence without any tabulated data.
type ripple struct{ eps float64 }

func (r ripple) B(psip, theta float64) (float64, error) {
	return 1 - r.eps*psip*math.Cos(theta), nil
}
func (r ripple) DBDPsip(psip, theta float64) (float64, error) {
	return -r.eps * math.Cos(theta), nil
}
func (r ripple) DBDTheta(psip, theta float64) (float64, error) {
	return r.eps * psip * math.Sin(theta), nil
}
func (r ripple) D2BDPsip2(psip, theta float64) (float64, error) { return 0, nil }
func (r ripple) D2BDTheta2(psip, theta float64) (float64, error) {
	return r.eps * psip * math.Cos(theta), nil
}
func (r ripple) D2BDPsipDTheta(psip, theta float64) (float64, error) {
	return r.eps * math.Sin(theta), nil
}

var _ equilibrium.Bfield = ripple{}

func Test_orb08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb08. unity/LAR passing orbit: energy and zeta monotonicity")

	geom := &equilibrium.Geometry{PsipWall: 1.0}
	eq := equilibrium.New(geom, equilibrium.UnityQfactor{}, equilibrium.LarCurrent{}, ripple{eps: 0.3})
	rhs := guiding.New(eq, perturb.Empty(), 0)

	opts := DefaultOptions()
	opts.EnergyFn = func(y []float64) (float64, error) {
		s := guiding.State{Y: [guiding.NDim]float64{y[0], y[1], y[2], y[3]}, Mu: rhs.Mu}
		return rhs.Energy(s)
	}
	y0 := []float64{0, 0.3, 0.05, 0}
	ev, err := Integrate(rhs, y0, 0, 500, opts, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if ev.Status != Completed {
		tst.Errorf("wrong status: %v\n", ev.Status)
		return
	}

	mean := 0.0
	for _, e := range ev.Energy {
		mean += e
	}
	mean /= float64(len(ev.Energy))
	var variance float64
	for _, e := range ev.Energy {
		variance += (e - mean) * (e - mean)
	}
	relStd := math.Sqrt(variance/float64(len(ev.Energy))) / math.Abs(mean)
	io.Pforan("steps=%d energy relStd=%g\n", ev.Steps, relStd)
	if relStd > 1e-6 {
		tst.Errorf("energy relative std too large: %g\n", relStd)
	}

	for k := 1; k < len(ev.Y); k++ {
		if ev.Y[k][guiding.IZeta] <= ev.Y[k-1][guiding.IZeta] {
			tst.Errorf("zeta must increase monotonically (sample %d)\n", k)
			return
		}
	}
	for _, y := range ev.Y {
		if math.Abs(y[guiding.IPsip]-0.3) > 0.05 {
			tst.Errorf("psip oscillation left its band: %g\n", y[guiding.IPsip])
			return
		}
	}
}

func Test_orb09(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orb09. q_kinetic of a passing orbit matches q(psip)")

	q, err := equilibrium.NewLinearQfactor(fun.Prms{&fun.Prm{N: "q0", V: 1.3}})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	geom := &equilibrium.Geometry{PsipWall: 1.0}
	eq := equilibrium.New(geom, q, equilibrium.LarCurrent{}, ripple{eps: 0})
	rhs := guiding.New(eq, perturb.Empty(), 0)

	opts := DefaultOptions()
	y0 := []float64{1.0, 0.8, 0.01, 0} // theta0 away from 0 and pi
	freq, err := ComputeFrequencies(rhs, y0, 0, 1e5, opts)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("omega_theta=%g omega_zeta=%g q_kinetic=%g\n", freq.OmegaTheta, freq.OmegaZeta, freq.Qkinetic)
	chk.Float64(tst, "q_kinetic", 0.013, freq.Qkinetic, 1.3)
}
