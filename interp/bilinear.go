// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

// bilinear2D is the fallback 2D interpolant: bilinear within each cell, with
// piecewise-constant first partials and identically-zero second partials.
type bilinear2D struct {
	x, y  []float64
	z     [][]float64
	axisX string
	axisY string
}

func newBilinear(x, y []float64, z [][]float64, axisX, axisY string) (Interp2D, error) {
	return &bilinear2D{x: copy1(x), y: copy1(y), z: copy2(z), axisX: axisX, axisY: axisY}, nil
}

func copy1(a []float64) []float64 { return append([]float64(nil), a...) }
func copy2(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = copy1(row)
	}
	return out
}

func (o *bilinear2D) Xmin() float64 { return o.x[0] }
func (o *bilinear2D) Xmax() float64 { return o.x[len(o.x)-1] }
func (o *bilinear2D) Ymin() float64 { return o.y[0] }
func (o *bilinear2D) Ymax() float64 { return o.y[len(o.y)-1] }

// cell locates the grid cell containing (x,y) and the corner values and
// normalized coordinates (tx, ty) in [0,1] within that cell.
func (o *bilinear2D) cell(x, y float64) (i, j int, tx, ty, hx, hy float64, err error) {
	i, err = bracket2D(o.x, x, o.axisX)
	if err != nil {
		return
	}
	j, err = bracket2D(o.y, y, o.axisY)
	if err != nil {
		return
	}
	hx = o.x[i+1] - o.x[i]
	hy = o.y[j+1] - o.y[j]
	tx = (x - o.x[i]) / hx
	ty = (y - o.y[j]) / hy
	return
}

func (o *bilinear2D) Eval(x, y float64) (float64, error) {
	i, j, tx, ty, _, _, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	z00, z10, z01, z11 := o.z[i][j], o.z[i+1][j], o.z[i][j+1], o.z[i+1][j+1]
	return z00*(1-tx)*(1-ty) + z10*tx*(1-ty) + z01*(1-tx)*ty + z11*tx*ty, nil
}

func (o *bilinear2D) EvalDx(x, y float64) (float64, error) {
	i, j, _, ty, hx, _, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	z00, z10, z01, z11 := o.z[i][j], o.z[i+1][j], o.z[i][j+1], o.z[i+1][j+1]
	return ((z10-z00)*(1-ty) + (z11-z01)*ty) / hx, nil
}

func (o *bilinear2D) EvalDy(x, y float64) (float64, error) {
	i, j, tx, _, _, hy, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	z00, z10, z01, z11 := o.z[i][j], o.z[i+1][j], o.z[i][j+1], o.z[i+1][j+1]
	return ((z01-z00)*(1-tx) + (z11-z10)*tx) / hy, nil
}

func (o *bilinear2D) EvalDxx(x, y float64) (float64, error) {
	if _, _, _, _, _, _, err := o.cell(x, y); err != nil {
		return 0, err
	}
	return 0, nil
}

func (o *bilinear2D) EvalDyy(x, y float64) (float64, error) {
	if _, _, _, _, _, _, err := o.cell(x, y); err != nil {
		return 0, err
	}
	return 0, nil
}

func (o *bilinear2D) EvalDxy(x, y float64) (float64, error) {
	i, j, _, _, hx, hy, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	z00, z10, z01, z11 := o.z[i][j], o.z[i+1][j], o.z[i][j+1], o.z[i+1][j+1]
	return (z11 - z10 - z01 + z00) / (hx * hy), nil
}
