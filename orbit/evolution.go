// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

// Evolution is the accepted-step dense-output record of one integration.
// Samples are strictly time-ordered; T[k], Y[k] is the state at the k-th
// accepted step, with Y[0] the initial condition.
type Evolution struct {
	T      []float64
	Y      [][]float64
	Energy []float64 // populated only when Options.EnergyFn is set
	Status Status
	Events []EventRecord
	Steps  int
}

// Last returns the final recorded sample.
func (e *Evolution) Last() (t float64, y []float64) {
	n := len(e.T)
	return e.T[n-1], e.Y[n-1]
}
