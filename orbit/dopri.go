// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "math"

// Dormand-Prince 5(4) Butcher tableau (Dormand & Prince, 1980). c are the
// stage abscissae, a the stage coefficients, b the 5th-order weights and bhat
// the embedded 4th-order weights used for the error estimate.
var (
	dpC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}

	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}

	dpB = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}

	dpBhat = [7]float64{
		5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40,
	}
)

// dopriStep advances one embedded RK45 trial step of size h from (t0, y0)
// with known derivative f0, writing the 5th-order solution into y1 and its
// derivative into f1. It returns the weighted RMS error norm used to accept
// or reject the step (Hairer, Norsett & Wanner's formula).
func dopriStep(fn Func, t0 float64, y0, f0 []float64, h float64, atol, rtol float64, y1, f1 []float64) (errNorm float64, err error) {
	n := len(y0)
	var k [7][]float64
	k[0] = f0
	for s := 1; s < 7; s++ {
		stage := make([]float64, n)
		for i := 0; i < n; i++ {
			sum := y0[i]
			for j := 0; j < s; j++ {
				sum += h * dpA[s][j] * k[j][i]
			}
			stage[i] = sum
		}
		if s < 6 {
			k[s] = make([]float64, n)
			if err = fn.Eval(t0+dpC[s]*h, stage, k[s]); err != nil {
				return 0, err
			}
		} else {
			// stage 6 (c=1) shares its abscissa with the solution point;
			// its derivative doubles as f1 for the FSAL-style dense output.
			copy(y1, stage)
		}
	}
	if err = fn.Eval(t0+h, y1, f1); err != nil {
		return 0, err
	}
	k[6] = f1

	var sumSq float64
	for i := 0; i < n; i++ {
		var y5, y4 float64
		for s := 0; s < 7; s++ {
			y5 += dpB[s] * k[s][i]
			y4 += dpBhat[s] * k[s][i]
		}
		diff := h * (y5 - y4)
		scale := atol + rtol*math.Max(math.Abs(y0[i]), math.Abs(y1[i]))
		sumSq += (diff / scale) * (diff / scale)
	}
	errNorm = math.Sqrt(sumSq / float64(n))
	return errNorm, nil
}

// hermiteInterp evaluates the cubic Hermite dense-output polynomial built
// from the step endpoints (t0, y0, f0) and (t0+h, y1, f1) at the fractional
// position theta in [0, 1], writing the result into out.
func hermiteInterp(t0, h float64, y0, f0, y1, f1 []float64, theta float64, out []float64) {
	t2 := theta * theta
	t3 := t2 * theta
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + theta
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	for i := range out {
		out[i] = h00*y0[i] + h10*h*f0[i] + h01*y1[i] + h11*h*f1[i]
	}
}
