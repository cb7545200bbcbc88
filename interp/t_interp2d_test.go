// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func planeGrid(x, y []float64) [][]float64 {
	z := make([][]float64, len(x))
	for i, xi := range x {
		z[i] = make([]float64, len(y))
		for j, yj := range y {
			z[i][j] = 2*xi + 3*yj + 1
		}
	}
	return z
}

func Test_interp2d01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp2d01. bilinear variant reproduces a plane")

	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 2}
	z := planeGrid(x, y)
	o, err := New2D(Bilinear, x, y, z, "psip", "theta")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err := o.Eval(1.5, 0.5)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "bilinear(1.5,0.5)", 1e-9, v, 2*1.5+3*0.5+1)
	dx, err := o.EvalDx(1.5, 0.5)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dz/dx", 1e-9, dx, 2)
}

func Test_interp2d02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp2d02. bicubic variant: plane values and partials")

	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 2, 3}
	z := planeGrid(x, y)
	o, err := New2D(Bicubic, x, y, z, "psip", "theta")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	for _, pt := range [][2]float64{{0.3, 0.3}, {1.7, 2.2}, {3.5, 1.1}} {
		v, err := o.Eval(pt[0], pt[1])
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Float64(tst, io.Sf("bicubic(%.2f,%.2f)", pt[0], pt[1]), 1e-6, v, 2*pt[0]+3*pt[1]+1)
		dx, err := o.EvalDx(pt[0], pt[1])
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Float64(tst, "dz/dx", 1e-6, dx, 2)
		dy, err := o.EvalDy(pt[0], pt[1])
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Float64(tst, "dz/dy", 1e-6, dy, 3)
		dxx, _ := o.EvalDxx(pt[0], pt[1])
		dyy, _ := o.EvalDyy(pt[0], pt[1])
		dxy, _ := o.EvalDxy(pt[0], pt[1])
		chk.Float64(tst, "d2z/dx2", 1e-6, dxx, 0)
		chk.Float64(tst, "d2z/dy2", 1e-6, dyy, 0)
		chk.Float64(tst, "d2z/dxdy", 1e-6, dxy, 0)
	}
}

func Test_interp2d03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp2d03. out-of-domain on either axis")

	x := []float64{0, 1, 2}
	y := []float64{0, 1, 2}
	z := planeGrid(x, y)
	o, err := New2D(Bicubic, x, y, z, "psip", "theta")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if _, err := o.Eval(2.5, 1); err == nil {
		tst.Errorf("evaluation past the last x knot must fail\n")
	}
	if _, err := o.Eval(1, -0.1); err == nil {
		tst.Errorf("evaluation before the first y knot must fail\n")
	}
}
