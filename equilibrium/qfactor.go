// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/dexter/interp"
)

// Qfactor is the capability set every safety-factor variant must expose:
// q(psip), psi(psip) and the invariant check dpsi/dpsip == q(psip). A
// trivial analytic UnityQfactor satisfies the same set with q==1, psi==psip,
// so the guiding-center RHS never needs to branch on which variant backs the
// equilibrium.
type Qfactor interface {
	Q(psip float64) (float64, error)
	Psi(psip float64) (float64, error)
	DPsiDPsip(psip float64) (float64, error)
}

// tabulatedQfactor builds q(psip) and psi(psip) as two independently
// constructed splines (psi either from tabulated data or by cumulative
// integration of q), so that the round-trip invariant
// |q(psip) - dpsi/dpsip(psip)| <= 1e-4 is a genuine correctness check rather
// than a tautology.
type tabulatedQfactor struct {
	q   interp.Interp1D
	psi interp.Interp1D
}

func loadQfactor(ds Dataset, psip []float64, kind interp.Kind1D) (Qfactor, error) {
	qvals, err := requireArray1D(ds, "q")
	if err != nil {
		return nil, err
	}
	if len(qvals) != len(psip) {
		return nil, errShapeMismatch("q", dims(len(psip), 0), dims(len(qvals), 0))
	}
	qSpline, err := interp.New1D(kind, psip, qvals, "psip_norm")
	if err != nil {
		return nil, err
	}

	psiVals, ok := ds.Array1D("psi")
	if !ok {
		psiVals = cumulativeTrapezoid(psip, qvals)
	} else if len(psiVals) != len(psip) {
		return nil, errShapeMismatch("psi", dims(len(psip), 0), dims(len(psiVals), 0))
	}
	psiSpline, err := interp.New1D(kind, psip, psiVals, "psip_norm")
	if err != nil {
		return nil, err
	}
	return &tabulatedQfactor{q: qSpline, psi: psiSpline}, nil
}

func cumulativeTrapezoid(x, dydx []float64) []float64 {
	y := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		h := x[i] - x[i-1]
		y[i] = y[i-1] + 0.5*h*(dydx[i]+dydx[i-1])
	}
	return y
}

func (o *tabulatedQfactor) Q(psip float64) (float64, error)         { return o.q.Eval(psip) }
func (o *tabulatedQfactor) Psi(psip float64) (float64, error)       { return o.psi.Eval(psip) }
func (o *tabulatedQfactor) DPsiDPsip(psip float64) (float64, error) { return o.psi.EvalDeriv(psip) }

// UnityQfactor is the trivial analytic variant: q==1, psi==psip everywhere.
type UnityQfactor struct{}

func (UnityQfactor) Q(psip float64) (float64, error)         { return 1, nil }
func (UnityQfactor) Psi(psip float64) (float64, error)       { return psip, nil }
func (UnityQfactor) DPsiDPsip(psip float64) (float64, error) { return 1, nil }

// LinearQfactor is the analytic q(psip) = q0 + q0p*psip variant, a common
// stand-in for a tabulated safety-factor profile when only the on-axis value
// and its radial slope are known. psi is obtained by exact integration of q,
// so DPsiDPsip == Q holds to machine precision rather than by construction
// of independent splines.
type LinearQfactor struct {
	q0  float64
	q0p float64
}

// NewLinearQfactor builds a LinearQfactor from a named parameter list, in
// the same "q0"/"q0p" key lookup style a gofem material model reads its
// parameters from a .sim file (e.g. the retention models under mdl/).
func NewLinearQfactor(prms fun.Prms) (*LinearQfactor, error) {
	o := &LinearQfactor{q0: 1}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "q0":
			o.q0 = p.V
		case "q0p":
			o.q0p = p.V
		default:
			return nil, chk.Err("equilibrium: LinearQfactor: parameter named %q is incorrect\n", p.N)
		}
	}
	return o, nil
}

func (o *LinearQfactor) Q(psip float64) (float64, error) { return o.q0 + o.q0p*psip, nil }
func (o *LinearQfactor) Psi(psip float64) (float64, error) {
	return o.q0*psip + 0.5*o.q0p*psip*psip, nil
}
func (o *LinearQfactor) DPsiDPsip(psip float64) (float64, error) { return o.q0 + o.q0p*psip, nil }
