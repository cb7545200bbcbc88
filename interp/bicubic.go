// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

// bicubic2D builds, once at construction, a grid of estimated first partials
// (fx, fy) and the mixed second partial (fxy) at every node by central
// differences (one-sided at the domain boundary), then blends the four
// corner values and partials of each cell through a tensor product of cubic
// Hermite bases. This is the classical 4x4-coefficient-per-cell bicubic
// construction: the coefficients never need to be solved for as a generic
// linear system because the Hermite tensor product already is that solution
// in closed form.
type bicubic2D struct {
	x, y           []float64
	z, fx, fy, fxy [][]float64
	axisX, axisY   string
}

func newBicubic(x, y []float64, z [][]float64, axisX, axisY string) (Interp2D, error) {
	nx, ny := len(x), len(y)
	fx := make([][]float64, nx)
	fy := make([][]float64, nx)
	fxy := make([][]float64, nx)
	for i := range fx {
		fx[i] = make([]float64, ny)
		fy[i] = make([]float64, ny)
		fxy[i] = make([]float64, ny)
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			fx[i][j] = centralDiff(x, func(k int) float64 { return z[k][j] }, i)
			fy[i][j] = centralDiff(y, func(k int) float64 { return z[i][k] }, j)
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			fxy[i][j] = centralDiff(y, func(k int) float64 { return fx[i][k] }, j)
		}
	}
	return &bicubic2D{
		x: copy1(x), y: copy1(y), z: copy2(z),
		fx: fx, fy: fy, fxy: fxy,
		axisX: axisX, axisY: axisY,
	}, nil
}

// centralDiff estimates d(val)/d(knot) at index i using a central
// difference over knot, falling back to a one-sided difference at either
// boundary.
func centralDiff(knot []float64, val func(int) float64, i int) float64 {
	n := len(knot)
	switch {
	case n == 1:
		return 0
	case i == 0:
		return (val(1) - val(0)) / (knot[1] - knot[0])
	case i == n-1:
		return (val(n-1) - val(n-2)) / (knot[n-1] - knot[n-2])
	default:
		return (val(i+1) - val(i-1)) / (knot[i+1] - knot[i-1])
	}
}

func (o *bicubic2D) Xmin() float64 { return o.x[0] }
func (o *bicubic2D) Xmax() float64 { return o.x[len(o.x)-1] }
func (o *bicubic2D) Ymin() float64 { return o.y[0] }
func (o *bicubic2D) Ymax() float64 { return o.y[len(o.y)-1] }

type bicubicCell struct {
	i, j   int
	tx, ty float64
	hx, hy float64
	// corner data, indexed [a][b] with a,b in {0,1}: a=0 -> node i, a=1 -> node i+1 (same for b,j)
	f, fx, fy, fxy [2][2]float64
}

func (o *bicubic2D) cell(x, y float64) (c bicubicCell, err error) {
	c.i, err = bracket2D(o.x, x, o.axisX)
	if err != nil {
		return
	}
	c.j, err = bracket2D(o.y, y, o.axisY)
	if err != nil {
		return
	}
	c.hx = o.x[c.i+1] - o.x[c.i]
	c.hy = o.y[c.j+1] - o.y[c.j]
	c.tx = (x - o.x[c.i]) / c.hx
	c.ty = (y - o.y[c.j]) / c.hy
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			c.f[a][b] = o.z[c.i+a][c.j+b]
			c.fx[a][b] = o.fx[c.i+a][c.j+b]
			c.fy[a][b] = o.fy[c.i+a][c.j+b]
			c.fxy[a][b] = o.fxy[c.i+a][c.j+b]
		}
	}
	return
}

// Hx/Gx select the value-basis or tangent-basis weight for corner index a at
// parameter t; likewise Hy/Gy for corner index b. The six Eval* methods
// below differ only in which of (Hx,Gx)/(Hy,Gy)/derivative-order they use.
func basisPair(useDeriv2 bool, useDeriv bool, t float64) (h0, h1 float64) {
	switch {
	case useDeriv2:
		return ddhBasis(t)
	case useDeriv:
		return dhBasis(t)
	default:
		return hBasis(t)
	}
}

func tangentPair(useDeriv2 bool, useDeriv bool, t float64) (g0, g1 float64) {
	switch {
	case useDeriv2:
		return ddgBasis(t)
	case useDeriv:
		return dgBasis(t)
	default:
		return gBasis(t)
	}
}

// blend sums the tensor-product Hermite patch, selecting value/1st/2nd
// derivative bases independently along x and y.
func (c *bicubicCell) blend(dxOrder, dyOrder int) float64 {
	Hx0, Hx1 := basisPair(dxOrder == 2, dxOrder == 1, c.tx)
	Gx0, Gx1 := tangentPair(dxOrder == 2, dxOrder == 1, c.tx)
	Hy0, Hy1 := basisPair(dyOrder == 2, dyOrder == 1, c.ty)
	Gy0, Gy1 := tangentPair(dyOrder == 2, dyOrder == 1, c.ty)
	Hx := [2]float64{Hx0, Hx1}
	Gx := [2]float64{Gx0, Gx1}
	Hy := [2]float64{Hy0, Hy1}
	Gy := [2]float64{Gy0, Gy1}
	var sum float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			sum += Hx[a] * Hy[b] * c.f[a][b]
			sum += Gx[a] * c.hx * Hy[b] * c.fx[a][b]
			sum += Hx[a] * Gy[b] * c.hy * c.fy[a][b]
			sum += Gx[a] * c.hx * Gy[b] * c.hy * c.fxy[a][b]
		}
	}
	return sum
}

func (o *bicubic2D) Eval(x, y float64) (float64, error) {
	c, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	return c.blend(0, 0), nil
}

func (o *bicubic2D) EvalDx(x, y float64) (float64, error) {
	c, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	return c.blend(1, 0) / c.hx, nil
}

func (o *bicubic2D) EvalDy(x, y float64) (float64, error) {
	c, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	return c.blend(0, 1) / c.hy, nil
}

func (o *bicubic2D) EvalDxx(x, y float64) (float64, error) {
	c, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	return c.blend(2, 0) / (c.hx * c.hx), nil
}

func (o *bicubic2D) EvalDyy(x, y float64) (float64, error) {
	c, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	return c.blend(0, 2) / (c.hy * c.hy), nil
}

func (o *bicubic2D) EvalDxy(x, y float64) (float64, error) {
	c, err := o.cell(x, y)
	if err != nil {
		return 0, err
	}
	return c.blend(1, 1) / (c.hx * c.hy), nil
}
