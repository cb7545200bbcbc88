// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guiding implements the guiding-center Hamiltonian and its
// right-hand side: the four-dimensional vector field integrated by the
// orbit package, derived from an equilibrium plus an optional perturbation.
package guiding

// Index positions of the four evolved coordinates within a state vector.
// mu is a constant of motion and is carried alongside the vector, not
// evolved with it.
const (
	ITheta = iota
	IPsip
	IRhoPar
	IZeta
	NDim
)

// State is the six-tuple (t, theta, psip, rhoPar, zeta, mu), split into the
// evolved 4-vector Y and the two scalars carried alongside it.
type State struct {
	T  float64
	Y  [NDim]float64 // theta, psip, rhoPar, zeta
	Mu float64       // constant of motion
}

func (s State) Theta() float64  { return s.Y[ITheta] }
func (s State) Psip() float64   { return s.Y[IPsip] }
func (s State) RhoPar() float64 { return s.Y[IRhoPar] }
func (s State) Zeta() float64   { return s.Y[IZeta] }
