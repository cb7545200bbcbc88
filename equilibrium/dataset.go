// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equilibrium

import "strconv"

// Dataset is the abstraction over the tabulated-data container produced by
// the equilibrium reconstruction pipeline. The scientific-array file format
// itself, and the code that parses it, live in the host environment; this
// package only ever consumes named scalars and arrays through this
// interface and never cares how the bytes got there.
//
// Missing-ness is expressed by returning (zero-value, false): callers never
// need to distinguish "absent" from "legitimately zero" via error plumbing
// for optional entries.
type Dataset interface {
	// Scalar returns a named scalar entry (e.g. "baxis", "raxis").
	Scalar(name string) (value float64, ok bool)
	// Array1D returns a named 1D array (e.g. "psip_norm", "q").
	Array1D(name string) (values []float64, ok bool)
	// Array2D returns a named 2D array with shape (len(psip_norm), len(theta)).
	Array2D(name string) (values [][]float64, ok bool)
	// IntArray returns a named integer array (e.g. "m", "n").
	IntArray(name string) (values []int, ok bool)
}

func requireScalar(ds Dataset, name string) (float64, error) {
	v, ok := ds.Scalar(name)
	if !ok {
		return 0, errMissingVariable(name)
	}
	return v, nil
}

func requireArray1D(ds Dataset, name string) ([]float64, error) {
	v, ok := ds.Array1D(name)
	if !ok {
		return nil, errMissingVariable(name)
	}
	return v, nil
}

func requireArray2D(ds Dataset, name string, nPsip, nTheta int) ([][]float64, error) {
	v, ok := ds.Array2D(name)
	if !ok {
		return nil, errMissingVariable(name)
	}
	if len(v) != nPsip {
		return nil, errShapeMismatch(name, dims(nPsip, nTheta), dims(len(v), rowLen(v)))
	}
	for _, row := range v {
		if len(row) != nTheta {
			return nil, errShapeMismatch(name, dims(nPsip, nTheta), dims(len(v), rowLen(v)))
		}
	}
	return v, nil
}

func requireIntArray(ds Dataset, name string) ([]int, error) {
	v, ok := ds.IntArray(name)
	if !ok {
		return nil, errMissingVariable(name)
	}
	return v, nil
}

func rowLen(v [][]float64) int {
	if len(v) == 0 {
		return 0
	}
	return len(v[0])
}

func dims(a, b int) string {
	return "(" + strconv.Itoa(a) + ", " + strconv.Itoa(b) + ")"
}
