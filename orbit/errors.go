// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import "fmt"

// Kind tags the distinct ways orbit analysis (as opposed to integration,
// which reports a Status) can fail.
type Kind int

const (
	// NoPeriodFound marks a frequency analysis that exhausted its time
	// budget without observing two matching returns to the initial
	// (theta0, psip0) line.
	NoPeriodFound Kind = iota
	// InvalidState marks a malformed call, e.g. an initial state vector of
	// the wrong length. This is a programmer-level invariant violation, not
	// a numerical outcome, and is the only orbit.Error Integrate itself
	// ever returns.
	InvalidState
)

// Error reports an orbit-analysis failure.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoPeriodFound:
		return "orbit: no period found within the integration budget"
	case InvalidState:
		return "orbit: malformed initial state"
	default:
		return fmt.Sprintf("orbit: error kind %d", e.Kind)
	}
}

func errNoPeriodFound() error { return &Error{Kind: NoPeriodFound} }
