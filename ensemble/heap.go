// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ensemble

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/guiding"
	"github.com/cpmech/dexter/orbit"
	"github.com/cpmech/dexter/perturb"
)

// HeapInitialConditions holds five parallel arrays describing N particles'
// initial (theta, psip, rhoPar, zeta, mu).
type HeapInitialConditions struct {
	Theta, Psip, RhoPar, Zeta, Mu []float64
}

func (ic HeapInitialConditions) n() int { return len(ic.Theta) }

func (ic HeapInitialConditions) validate() error {
	n := ic.n()
	lens := map[string]int{"theta": n, "psip": len(ic.Psip), "rhoPar": len(ic.RhoPar), "zeta": len(ic.Zeta), "mu": len(ic.Mu)}
	for _, l := range lens {
		if l != n {
			return errShapeMismatch(lens)
		}
	}
	return nil
}

func (ic HeapInitialConditions) state(i int) []float64 {
	return []float64{ic.Theta[i], ic.Psip[i], ic.RhoPar[i], ic.Zeta[i]}
}

// Heap is a batch of N independent particles sharing one equilibrium and
// perturbation by reference; both are immutable once constructed, so
// concurrent readers need no locking.
type Heap struct {
	Eq      *equilibrium.Equilibrium
	Pert    *perturb.Perturbation
	IC      HeapInitialConditions
	Opts    orbit.Options
	Workers int // concurrency cap; 0 means runtime.GOMAXPROCS(0)
}

// New validates ic's array lengths and builds a Heap of N particles.
func New(eq *equilibrium.Equilibrium, pert *perturb.Perturbation, ic HeapInitialConditions, opts orbit.Options) (*Heap, error) {
	if err := ic.validate(); err != nil {
		return nil, err
	}
	return &Heap{Eq: eq, Pert: pert, IC: ic, Opts: opts}, nil
}

func (h *Heap) workers() int {
	if h.Workers > 0 {
		return h.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (h *Heap) rhs(i int) *guiding.RHS {
	return guiding.New(h.Eq, h.Pert, h.IC.Mu[i])
}

// PoincareResult holds the ensemble's Poincaré output: per-particle crossing
// samples and status, ordered exactly as the input HeapInitialConditions.
type PoincareResult struct {
	T      [][]float64
	Y      [][][]float64
	Status []orbit.Status
}

// Poincare runs orbit.Poincare for every particle in the heap concurrently,
// bounded by h.workers(). A particle whose mapping fails (e.g. NoPeriodFound)
// still contributes a result entry with its Status set from the partial
// Evolution; only a Heap construction error aborts the whole operation, and
// Heap is already validated by New.
func (h *Heap) Poincare(t0, tHorizon float64, params orbit.MappingParameters) *PoincareResult {
	n := h.IC.n()
	res := &PoincareResult{T: make([][]float64, n), Y: make([][][]float64, n), Status: make([]orbit.Status, n)}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(h.workers())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			ev, err := orbit.Poincare(h.rhs(i), h.IC.state(i), t0, tHorizon, h.Opts, params)
			if ev != nil {
				res.T[i] = ev.T
				res.Y[i] = ev.Y
				res.Status[i] = ev.Status
			}
			_ = err // particle-level failures surface through Status, not the group error
			return nil
		})
	}
	g.Wait()
	return res
}

// FrequenciesResult holds the ensemble's frequency-analysis output, ordered
// exactly as the input HeapInitialConditions. Err[i] is non-nil (typically
// *orbit.Error with Kind NoPeriodFound) exactly when Values[i] is the zero
// value.
type FrequenciesResult struct {
	Values []orbit.Frequencies
	Err    []error
}

// Frequencies runs orbit.ComputeFrequencies for every particle concurrently,
// bounded by h.workers().
func (h *Heap) Frequencies(t0, tHorizon float64) *FrequenciesResult {
	n := h.IC.n()
	res := &FrequenciesResult{Values: make([]orbit.Frequencies, n), Err: make([]error, n)}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(h.workers())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			freq, err := orbit.ComputeFrequencies(h.rhs(i), h.IC.state(i), t0, tHorizon, h.Opts)
			res.Values[i] = freq
			res.Err[i] = err
			return nil
		})
	}
	g.Wait()
	return res
}
