// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

// cubic1D is a natural (second-derivative-zero at both ends) C2 cubic
// spline. The second derivatives at knots are precomputed once at
// construction by solving a tridiagonal system, following the classical
// natural-spline algorithm.
type cubic1D struct {
	x, y []float64
	y2   []float64 // second derivative at each knot
	axis string
}

func newCubic1D(x, y []float64, axis string) (Interp1D, error) {
	n := len(x)
	if n < 3 {
		return nil, illConditioned("interp: axis %q: cubic spline needs at least 3 knots, got %d", axis, n)
	}
	y2 := naturalSplineSecondDerivs(x, y)
	xc := append([]float64(nil), x...)
	yc := append([]float64(nil), y...)
	return &cubic1D{x: xc, y: yc, y2: y2, axis: axis}, nil
}

// naturalSplineSecondDerivs solves the standard tridiagonal system for the
// second derivatives of a natural cubic spline (y2[0] = y2[n-1] = 0).
func naturalSplineSecondDerivs(x, y []float64) []float64 {
	n := len(x)
	y2 := make([]float64, n)
	u := make([]float64, n)
	for i := 1; i < n-1; i++ {
		sig := (x[i] - x[i-1]) / (x[i+1] - x[i-1])
		p := sig*y2[i-1] + 2.0
		y2[i] = (sig - 1.0) / p
		u[i] = (y[i+1]-y[i])/(x[i+1]-x[i]) - (y[i]-y[i-1])/(x[i]-x[i-1])
		u[i] = (6.0*u[i]/(x[i+1]-x[i-1]) - sig*u[i-1]) / p
	}
	for k := n - 2; k >= 0; k-- {
		y2[k] = y2[k]*y2[k+1] + u[k]
	}
	return y2
}

func (o *cubic1D) Xmin() float64 { return o.x[0] }
func (o *cubic1D) Xmax() float64 { return o.x[len(o.x)-1] }

func (o *cubic1D) coeffs(v float64) (i int, h, a, b float64, err error) {
	i, err = bracket1D(o.x, v, o.axis)
	if err != nil {
		return
	}
	h = o.x[i+1] - o.x[i]
	a = (o.x[i+1] - v) / h
	b = (v - o.x[i]) / h
	return
}

func (o *cubic1D) Eval(v float64) (float64, error) {
	i, h, a, b, err := o.coeffs(v)
	if err != nil {
		return 0, err
	}
	return a*o.y[i] + b*o.y[i+1] +
		((a*a*a-a)*o.y2[i]+(b*b*b-b)*o.y2[i+1])*(h*h)/6.0, nil
}

func (o *cubic1D) EvalDeriv(v float64) (float64, error) {
	i, h, a, b, err := o.coeffs(v)
	if err != nil {
		return 0, err
	}
	return (o.y[i+1]-o.y[i])/h -
		(3*a*a-1)/6*h*o.y2[i] +
		(3*b*b-1)/6*h*o.y2[i+1], nil
}

func (o *cubic1D) EvalDeriv2(v float64) (float64, error) {
	i, _, a, b, err := o.coeffs(v)
	if err != nil {
		return 0, err
	}
	return a*o.y2[i] + b*o.y2[i+1], nil
}
