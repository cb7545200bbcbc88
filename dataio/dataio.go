// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataio is a convenience adapter from a plain JSON file to
// equilibrium.Dataset and a perturbation harmonic list. The self-describing
// scientific-array container produced by the reconstruction pipeline is read
// by the host environment, not here; this package exists only so the CLI in
// main.go has something concrete to read.
package dataio

import (
	"encoding/json"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/dexter/equilibrium"
)

// EquilibriumFile is the on-disk JSON shape consumed by LoadEquilibrium. Its
// entry names (baxis, psip_norm, b_norm, ...) follow the array-container
// naming convention used by the reconstruction tools.
type EquilibriumFile struct {
	Scalars   map[string]float64     `json:"scalars"`
	Arrays1D  map[string][]float64   `json:"arrays1d"`
	Arrays2D  map[string][][]float64 `json:"arrays2d"`
	IntArrays map[string][]int       `json:"int_arrays"`
}

var _ equilibrium.Dataset = (*EquilibriumFile)(nil)

// Scalar implements equilibrium.Dataset.
func (f *EquilibriumFile) Scalar(name string) (float64, bool) {
	v, ok := f.Scalars[name]
	return v, ok
}

// Array1D implements equilibrium.Dataset.
func (f *EquilibriumFile) Array1D(name string) ([]float64, bool) {
	v, ok := f.Arrays1D[name]
	return v, ok
}

// Array2D implements equilibrium.Dataset.
func (f *EquilibriumFile) Array2D(name string) ([][]float64, bool) {
	v, ok := f.Arrays2D[name]
	return v, ok
}

// IntArray implements equilibrium.Dataset.
func (f *EquilibriumFile) IntArray(name string) ([]int, bool) {
	v, ok := f.IntArrays[name]
	return v, ok
}

// LoadEquilibrium reads and decodes an EquilibriumFile from path.
func LoadEquilibrium(path string) (*EquilibriumFile, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f EquilibriumFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// HarmonicSpec is one entry of a JSON perturbation file, mirroring the
// tabulated amplitude/phase arrays a Harmonic is built from.
type HarmonicSpec struct {
	M      int       `json:"m"`
	N      int       `json:"n"`
	Method string    `json:"method"` // "zero", "average", "resonance", "spline"
	Psip   []float64 `json:"psip_norm"`
	Alpha  []float64 `json:"alpha"`
	Phase  []float64 `json:"phase"`
}

// PerturbationFile is the on-disk JSON shape consumed by LoadPerturbation.
type PerturbationFile struct {
	Harmonics []HarmonicSpec `json:"harmonics"`
}

// LoadPerturbation reads and decodes a PerturbationFile from path.
func LoadPerturbation(path string) (*PerturbationFile, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f PerturbationFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
