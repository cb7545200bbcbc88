// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perturb

import (
	"github.com/cpmech/dexter/equilibrium"
	"github.com/cpmech/dexter/interp"
)

// PhaseMethod selects how a Harmonic's phase Phi(psip) is obtained from the
// tabulated phase array. This is a closed, four-way enum rather than an
// interface hierarchy: Average and Resonance need a one-time precomputation
// at construction, and the precomputed scalar is cached alongside the tag so
// evaluation at RHS-call time stays O(1).
type PhaseMethod int

const (
	// Zero ignores the tabulated phase entirely: Phi(psip) == 0.
	Zero PhaseMethod = iota
	// Average uses the arithmetic mean of the tabulated phase array as a
	// constant Phi.
	Average
	// Resonance evaluates the phase spline at the psip where q(psip)=m/n,
	// as a constant Phi. Construction fails with NoResonance if no such
	// psip exists in range.
	Resonance
	// Spline uses the phase spline phi(psip) directly: a non-constant Phi.
	Spline
)

// phaseFunc is the evaluator cached inside a Harmonic once the phase method
// has been resolved at construction time.
type phaseFunc interface {
	Phi(psip float64) (float64, error)
	PhiPrime(psip float64) (float64, error)
}

type constantPhase struct{ value float64 }

func (p constantPhase) Phi(float64) (float64, error)      { return p.value, nil }
func (p constantPhase) PhiPrime(float64) (float64, error) { return 0, nil }

type splinePhase struct{ spline interp.Interp1D }

func (p splinePhase) Phi(psip float64) (float64, error)      { return p.spline.Eval(psip) }
func (p splinePhase) PhiPrime(psip float64) (float64, error) { return p.spline.EvalDeriv(psip) }

// resolvePhase builds the cached phaseFunc for the given method, m, n over
// the tabulated phase array.
func resolvePhase(method PhaseMethod, psip, phaseVals []float64, m, n int, kind interp.Kind1D, q equilibrium.Qfactor) (phaseFunc, error) {
	switch method {
	case Zero:
		return constantPhase{0}, nil
	case Average:
		return constantPhase{mean(phaseVals)}, nil
	case Resonance:
		phiSpline, err := interp.New1D(kind, psip, phaseVals, "psip_norm")
		if err != nil {
			return nil, errIllConditioned("perturb: harmonic (m=%d,n=%d) phase spline: %v", m, n, err)
		}
		psipRes, ok := findResonance(psip, q, m, n)
		if !ok {
			return nil, errNoResonance(m, n)
		}
		phiRes, err := phiSpline.Eval(psipRes)
		if err != nil {
			return nil, errIllConditioned("perturb: harmonic (m=%d,n=%d) resonance phase lookup: %v", m, n, err)
		}
		return constantPhase{phiRes}, nil
	case Spline:
		phiSpline, err := interp.New1D(kind, psip, phaseVals, "psip_norm")
		if err != nil {
			return nil, errIllConditioned("perturb: harmonic (m=%d,n=%d) phase spline: %v", m, n, err)
		}
		return splinePhase{spline: phiSpline}, nil
	default:
		return nil, errIllConditioned("perturb: unknown phase method %d", int(method))
	}
}

func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// findResonance brackets and bisects q(psip) - m/n == 0 over the tabulated
// psip grid. n == 0 never resonates (m/n undefined).
func findResonance(psip []float64, q equilibrium.Qfactor, m, n int) (float64, bool) {
	if n == 0 {
		return 0, false
	}
	target := float64(m) / float64(n)
	f := func(p float64) (float64, bool) {
		v, err := q.Q(p)
		if err != nil {
			return 0, false
		}
		return v - target, true
	}
	prevP := psip[0]
	prevF, ok := f(prevP)
	if !ok {
		return 0, false
	}
	for k := 1; k < len(psip); k++ {
		curP := psip[k]
		curF, ok := f(curP)
		if !ok {
			return 0, false
		}
		if prevF == 0 {
			return prevP, true
		}
		if (prevF < 0) != (curF < 0) {
			return bisect(f, prevP, curP, prevF, curF), true
		}
		prevP, prevF = curP, curF
	}
	if prevF == 0 {
		return prevP, true
	}
	return 0, false
}

func bisect(f func(float64) (float64, bool), a, b, fa, _ float64) float64 {
	const maxIter = 60
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (a + b)
		fm, ok := f(mid)
		if !ok {
			return mid
		}
		if (fa < 0) == (fm < 0) {
			a, fa = mid, fm
		} else {
			b = mid
		}
		if b-a < 1e-12 {
			break
		}
	}
	return 0.5 * (a + b)
}
