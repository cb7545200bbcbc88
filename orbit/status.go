// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

// Status reports how an integration ended. It is always set, never implied
// by a panic or a nil/non-nil error split: callers branch on Status, not on
// error presence, which is what lets the ensemble driver collect one status
// per particle without aborting the batch.
type Status int

const (
	// Completed means the integration reached its requested end time t_f.
	Completed Status = iota
	// EventReached means a terminal event fired and integration stopped there.
	EventReached
	// StepTooSmall means the stepper repeatedly failed to find an acceptable
	// step size above the minimum step floor.
	StepTooSmall
	// EscapedDomain means an equilibrium evaluation returned OutOfDomain,
	// i.e. the state left the tabulated (psip, theta) rectangle.
	EscapedDomain
	// StepLimit means the maximum number of accepted steps was reached
	// before t_f or a terminal event.
	StepLimit
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "Completed"
	case EventReached:
		return "EventReached"
	case StepTooSmall:
		return "StepTooSmall"
	case EscapedDomain:
		return "EscapedDomain"
	case StepLimit:
		return "StepLimit"
	default:
		return "Unknown"
	}
}
