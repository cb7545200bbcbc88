// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

// Direction filters which sign changes of an event function count as
// crossings.
type Direction int

const (
	// Increasing counts only crossings where the event function goes from
	// negative to positive. This is the default for Poincaré mapping.
	Increasing Direction = iota
	// Decreasing counts only positive-to-negative crossings.
	Decreasing
	// Either counts crossings in both directions.
	Either
)

func (d Direction) matches(before, after float64) bool {
	switch d {
	case Increasing:
		return before < 0 && after >= 0
	case Decreasing:
		return before > 0 && after <= 0
	default:
		return (before < 0 && after >= 0) || (before > 0 && after <= 0)
	}
}
