// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import "math"

// steffen1D is a monotonicity-preserving piecewise-cubic interpolant with a
// continuous first derivative. It introduces no local extremum strictly
// between two adjacent knots that is not already present in the tabulated
// values. This is the default variant for quantities (alpha, phi, g, I, q)
// where spurious overshoot would alias a physical signal.
//
// The per-knot derivative estimate follows Steffen (1990), "A simple method
// for monotonic interpolation in one dimension", A&A 239, 443-450: each
// interior derivative is twice the smallest of the two adjacent secant
// magnitudes and half the weighted-average slope magnitude (the
// weighted-average slope clipped to twice the smaller secant), with the
// secants' common sign, and is forced to zero at a local extremum of the
// data.
type steffen1D struct {
	x, y, dy []float64
	axis     string
}

func newSteffen1D(x, y []float64, axis string) (Interp1D, error) {
	n := len(x)
	m := make([]float64, n-1) // secant slopes
	for i := 0; i < n-1; i++ {
		m[i] = (y[i+1] - y[i]) / (x[i+1] - x[i])
	}
	dy := make([]float64, n)
	if n == 2 {
		dy[0] = m[0]
		dy[1] = m[0]
	} else {
		for i := 1; i < n-1; i++ {
			him1 := x[i] - x[i-1]
			hi := x[i+1] - x[i]
			p := (m[i-1]*hi + m[i]*him1) / (him1 + hi)
			switch {
			case m[i-1]*m[i] <= 0:
				dy[i] = 0
			default:
				dy[i] = 2 * sign(m[i-1]) * math.Min(math.Min(math.Abs(m[i-1]), math.Abs(m[i])), 0.5*math.Abs(p))
			}
		}
		dy[0] = steffenEndpoint(m[0], m[1], x[1]-x[0], x[2]-x[1])
		dy[n-1] = steffenEndpoint(m[n-2], m[n-3], x[n-1]-x[n-2], x[n-2]-x[n-3])
	}
	xc := append([]float64(nil), x...)
	yc := append([]float64(nil), y...)
	return &steffen1D{x: xc, y: yc, dy: dy, axis: axis}, nil
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// steffenEndpoint computes the one-sided derivative at a boundary knot, given
// the adjacent secant mNear (spanning the boundary interval), the next
// secant mFar, the boundary interval length hNear and the next interval
// length hFar.
func steffenEndpoint(mNear, mFar, hNear, hFar float64) float64 {
	p := mNear*(1+hNear/(hNear+hFar)) - mFar*hNear/(hNear+hFar)
	switch {
	case p*mNear <= 0:
		return 0
	case mNear*mFar <= 0 && math.Abs(p) > 2*math.Abs(mNear):
		return 2 * mNear
	default:
		return p
	}
}

func (o *steffen1D) Xmin() float64 { return o.x[0] }
func (o *steffen1D) Xmax() float64 { return o.x[len(o.x)-1] }

func (o *steffen1D) Eval(v float64) (float64, error) {
	i, err := bracket1D(o.x, v, o.axis)
	if err != nil {
		return 0, err
	}
	h := o.x[i+1] - o.x[i]
	t := (v - o.x[i]) / h
	t2, t3 := t*t, t*t*t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*o.y[i] + h10*h*o.dy[i] + h01*o.y[i+1] + h11*h*o.dy[i+1], nil
}

func (o *steffen1D) EvalDeriv(v float64) (float64, error) {
	i, err := bracket1D(o.x, v, o.axis)
	if err != nil {
		return 0, err
	}
	h := o.x[i+1] - o.x[i]
	t := (v - o.x[i]) / h
	t2 := t * t
	dh00 := 6*t2 - 6*t
	dh10 := 3*t2 - 4*t + 1
	dh01 := -6*t2 + 6*t
	dh11 := 3*t2 - 2*t
	return (dh00*o.y[i])/h + dh10*o.dy[i] + (dh01*o.y[i+1])/h + dh11*o.dy[i+1], nil
}

func (o *steffen1D) EvalDeriv2(v float64) (float64, error) {
	i, err := bracket1D(o.x, v, o.axis)
	if err != nil {
		return 0, err
	}
	h := o.x[i+1] - o.x[i]
	t := (v - o.x[i]) / h
	ddh00 := (12*t - 6) / (h * h)
	ddh10 := (6*t - 4) / h
	ddh01 := (-12*t + 6) / (h * h)
	ddh11 := (6*t - 2) / h
	return ddh00*o.y[i] + ddh10*o.dy[i] + ddh01*o.y[i+1] + ddh11*o.dy[i+1], nil
}
