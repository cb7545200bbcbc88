// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

// cubic Hermite basis functions on [0,1] and their derivatives with respect
// to the local parameter t. h0/h1 interpolate the two endpoint values, g0/g1
// the two endpoint tangents (already scaled by the interval length by the
// caller).
func hBasis(t float64) (h0, h1 float64) {
	t2, t3 := t*t, t*t*t
	h0 = 2*t3 - 3*t2 + 1
	h1 = -2*t3 + 3*t2
	return
}

func gBasis(t float64) (g0, g1 float64) {
	t2, t3 := t*t, t*t*t
	g0 = t3 - 2*t2 + t
	g1 = t3 - t2
	return
}

func dhBasis(t float64) (dh0, dh1 float64) {
	t2 := t * t
	dh0 = 6*t2 - 6*t
	dh1 = -6*t2 + 6*t
	return
}

func dgBasis(t float64) (dg0, dg1 float64) {
	t2 := t * t
	dg0 = 3*t2 - 4*t + 1
	dg1 = 3*t2 - 2*t
	return
}

func ddhBasis(t float64) (ddh0, ddh1 float64) {
	ddh0 = 12*t - 6
	ddh1 = -12*t + 6
	return
}

func ddgBasis(t float64) (ddg0, ddg1 float64) {
	ddg0 = 6*t - 4
	ddg1 = 6*t - 2
	return
}
