// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import "github.com/cpmech/dexter/interp"

// Current is the capability set every current-function variant must
// expose: the toroidal and poloidal stream functions g(psip), I(psip) and
// their first derivatives, which enter the canonical momenta P_theta, P_zeta.
type Current interface {
	G(psip float64) (float64, error)
	I(psip float64) (float64, error)
	Gprime(psip float64) (float64, error)
	Iprime(psip float64) (float64, error)
}

type tabulatedCurrent struct {
	g, i interp.Interp1D
}

func loadCurrent(ds Dataset, psip []float64, kind interp.Kind1D) (Current, error) {
	gvals, err := requireArray1D(ds, "g_norm")
	if err != nil {
		return nil, err
	}
	ivals, err := requireArray1D(ds, "i_norm")
	if err != nil {
		return nil, err
	}
	if len(gvals) != len(psip) {
		return nil, errShapeMismatch("g_norm", dims(len(psip), 0), dims(len(gvals), 0))
	}
	if len(ivals) != len(psip) {
		return nil, errShapeMismatch("i_norm", dims(len(psip), 0), dims(len(ivals), 0))
	}
	g, err := interp.New1D(kind, psip, gvals, "psip_norm")
	if err != nil {
		return nil, err
	}
	i, err := interp.New1D(kind, psip, ivals, "psip_norm")
	if err != nil {
		return nil, err
	}
	return &tabulatedCurrent{g: g, i: i}, nil
}

func (o *tabulatedCurrent) G(psip float64) (float64, error)      { return o.g.Eval(psip) }
func (o *tabulatedCurrent) I(psip float64) (float64, error)      { return o.i.Eval(psip) }
func (o *tabulatedCurrent) Gprime(psip float64) (float64, error) { return o.g.EvalDeriv(psip) }
func (o *tabulatedCurrent) Iprime(psip float64) (float64, error) { return o.i.EvalDeriv(psip) }

// LarCurrent is the trivial large-aspect-ratio variant: g==1, I==0.
type LarCurrent struct{}

func (LarCurrent) G(psip float64) (float64, error)      { return 1, nil }
func (LarCurrent) I(psip float64) (float64, error)      { return 0, nil }
func (LarCurrent) Gprime(psip float64) (float64, error) { return 0, nil }
func (LarCurrent) Iprime(psip float64) (float64, error) { return 0, nil }
