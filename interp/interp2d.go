// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

// Kind2D selects a 2D interpolation variant.
type Kind2D int

const (
	Bilinear Kind2D = iota
	Bicubic
)

func (k Kind2D) String() string {
	switch k {
	case Bilinear:
		return "Bilinear"
	case Bicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Interp2D is a 2D interpolant over a rectangular grid (x-vector times
// y-vector) of values z, with value and partial-derivative evaluation.
// Evaluating outside the grid returns an OutOfDomain error.
type Interp2D interface {
	Eval(x, y float64) (float64, error)
	EvalDx(x, y float64) (float64, error)
	EvalDy(x, y float64) (float64, error)
	EvalDxx(x, y float64) (float64, error)
	EvalDyy(x, y float64) (float64, error)
	EvalDxy(x, y float64) (float64, error)
	Xmin() float64
	Xmax() float64
	Ymin() float64
	Ymax() float64
}

// New2D builds a 2D interpolant of the given kind over grid (x, y) with
// values z, where z has shape (len(x), len(y)): z[i][j] = value at (x[i], y[j]).
func New2D(kind Kind2D, x, y []float64, z [][]float64, axisX, axisY string) (Interp2D, error) {
	if len(x) < 2 || len(y) < 2 {
		return nil, illConditioned("interp2d: need at least 2 knots per axis, got nx=%d ny=%d", len(x), len(y))
	}
	if len(z) != len(x) {
		return nil, illConditioned("interp2d: shape mismatch: len(z)=%d != len(x)=%d", len(z), len(x))
	}
	for i, row := range z {
		if len(row) != len(y) {
			return nil, illConditioned("interp2d: shape mismatch: len(z[%d])=%d != len(y)=%d", i, len(row), len(y))
		}
	}
	if err := checkStrictlyMonotone(x, axisX); err != nil {
		return nil, err
	}
	if err := checkStrictlyMonotone(y, axisY); err != nil {
		return nil, err
	}
	switch kind {
	case Bilinear:
		return newBilinear(x, y, z, axisX, axisY)
	case Bicubic:
		return newBicubic(x, y, z, axisX, axisY)
	default:
		return nil, illConditioned("interp2d: unknown 2D interpolation kind %d", int(kind))
	}
}

func bracket2D(x []float64, v float64, axis string) (int, error) {
	return bracket1D(x, v, axis)
}
