// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/dexter/dataio"
	"github.com/cpmech/dexter/ensemble"
	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/interp"
	"github.com/cpmech/dexter/orbit"
	"github.com/cpmech/dexter/perturb"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	eqFile := flag.String("eq", "", "equilibrium JSON file (required)")
	pertFile := flag.String("pert", "", "perturbation JSON file (optional)")
	mode := flag.String("mode", "poincare", "analysis mode: poincare | frequencies")
	section := flag.String("section", "theta", "Poincare section: theta | zeta")
	alpha := flag.Float64("alpha", 0, "Poincare section offset (rad)")
	intersections := flag.Int("n", 100, "number of Poincare intersections per particle")
	nParticles := flag.Int("particles", 40, "number of ensemble particles")
	psipMin := flag.Float64("psip-min", 0, "minimum normalized psip across particles")
	psipMax := flag.Float64("psip-max", 0.9, "maximum normalized psip across particles")
	theta0 := flag.Float64("theta0", 0, "initial theta shared across particles")
	rho0 := flag.Float64("rho0", 1e-5, "initial rho_par shared across particles")
	zeta0 := flag.Float64("zeta0", 0, "initial zeta shared across particles")
	mu0 := flag.Float64("mu0", 0, "initial mu shared across particles")
	tHorizon := flag.Float64("t-horizon", 1e5, "time budget per particle")
	workers := flag.Int("workers", 0, "worker pool size (0 = GOMAXPROCS)")
	flag.Parse()

	if *eqFile == "" {
		chk.Panic("Please provide -eq <equilibrium.json>\n")
	}

	io.PfWhite("\nDEXTER -- guiding-center orbit simulator\n\n")

	ds, err := dataio.LoadEquilibrium(*eqFile)
	if err != nil {
		chk.Panic("failed to load equilibrium file: %v", err)
	}
	eq, err := equilibrium.Load(ds, equilibrium.DefaultOptions())
	if err != nil {
		chk.Panic("failed to build equilibrium: %v", err)
	}

	pert := perturb.Empty()
	if *pertFile != "" {
		pert, err = loadPerturbation(*pertFile, eq)
		if err != nil {
			chk.Panic("failed to build perturbation: %v", err)
		}
	}

	ic := ensemble.HeapInitialConditions{
		Theta:  fill(*nParticles, *theta0),
		Psip:   utl.LinSpace(*psipMin, *psipMax, *nParticles),
		RhoPar: fill(*nParticles, *rho0),
		Zeta:   fill(*nParticles, *zeta0),
		Mu:     fill(*nParticles, *mu0),
	}
	heap, err := ensemble.New(eq, pert, ic, orbit.DefaultOptions())
	if err != nil {
		chk.Panic("failed to build ensemble: %v", err)
	}
	heap.Workers = *workers

	switch *mode {
	case "poincare":
		sec := orbit.ConstTheta
		if *section == "zeta" {
			sec = orbit.ConstZeta
		}
		params := orbit.MappingParameters{Section: sec, Alpha: *alpha, Intersections: *intersections, Direction: orbit.Increasing}
		res := heap.Poincare(0, *tHorizon, params)
		for i, status := range res.Status {
			io.Pf("particle %3d: status=%-14v crossings=%d\n", i, status, len(res.T[i]))
		}
	case "frequencies":
		res := heap.Frequencies(0, *tHorizon)
		for i, e := range res.Err {
			if e != nil {
				io.Pf("particle %3d: %v\n", i, e)
				continue
			}
			f := res.Values[i]
			io.Pf("particle %3d: omega_theta=%.6g omega_zeta=%.6g q_kinetic=%.6g\n", i, f.OmegaTheta, f.OmegaZeta, f.Qkinetic)
		}
	default:
		chk.Panic("unknown -mode %q (want poincare or frequencies)", *mode)
	}
}

func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// loadPerturbation reads a perturbation JSON file and builds a
// *perturb.Perturbation, consulting eq.Qfactor for any Resonance-method
// harmonic.
func loadPerturbation(path string, eq *equilibrium.Equilibrium) (*perturb.Perturbation, error) {
	pf, err := dataio.LoadPerturbation(path)
	if err != nil {
		return nil, err
	}
	harmonics := make([]*perturb.Harmonic, len(pf.Harmonics))
	for i, spec := range pf.Harmonics {
		method, err := parsePhaseMethod(spec.Method)
		if err != nil {
			return nil, err
		}
		h, err := perturb.NewHarmonic(spec.Psip, spec.Alpha, spec.Phase, spec.M, spec.N, method, interp.Steffen, eq.Qfactor)
		if err != nil {
			return nil, err
		}
		harmonics[i] = h
	}
	return perturb.New(harmonics...)
}

var phaseMethodNames = []string{"zero", "average", "resonance", "spline"}
var phaseMethodValues = []perturb.PhaseMethod{perturb.Zero, perturb.Average, perturb.Resonance, perturb.Spline}

func parsePhaseMethod(s string) (perturb.PhaseMethod, error) {
	if s == "" {
		return perturb.Zero, nil
	}
	idx := utl.StrIndexSmall(phaseMethodNames, s)
	if idx < 0 {
		return 0, chk.Err("dexter: unknown phase method %q", s)
	}
	return phaseMethodValues[idx], nil
}
