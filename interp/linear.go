// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

// linear1D is a piecewise-linear interpolant. Its second derivative is
// identically zero between knots (and undefined at knots); EvalDeriv2 always
// returns 0.
type linear1D struct {
	x, y []float64
	axis string
}

func newLinear1D(x, y []float64, axis string) (Interp1D, error) {
	xc := append([]float64(nil), x...)
	yc := append([]float64(nil), y...)
	return &linear1D{x: xc, y: yc, axis: axis}, nil
}

func (o *linear1D) Xmin() float64 { return o.x[0] }
func (o *linear1D) Xmax() float64 { return o.x[len(o.x)-1] }

func (o *linear1D) Eval(v float64) (float64, error) {
	i, err := bracket1D(o.x, v, o.axis)
	if err != nil {
		return 0, err
	}
	t := (v - o.x[i]) / (o.x[i+1] - o.x[i])
	return o.y[i] + t*(o.y[i+1]-o.y[i]), nil
}

func (o *linear1D) EvalDeriv(v float64) (float64, error) {
	i, err := bracket1D(o.x, v, o.axis)
	if err != nil {
		return 0, err
	}
	return (o.y[i+1] - o.y[i]) / (o.x[i+1] - o.x[i]), nil
}

func (o *linear1D) EvalDeriv2(v float64) (float64, error) {
	if _, err := bracket1D(o.x, v, o.axis); err != nil {
		return 0, err
	}
	return 0, nil
}
