// Copyright 2024 The Dexter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guiding

import "fmt"

// Kind tags the distinct ways an RHS evaluation can fail.
type Kind int

const (
	// SingularTransform marks a state where the canonical-momenta Jacobian
	// g*q + I + rhoPar*(I'*g - I*g') vanishes, so (theta,zeta)-dot cannot be
	// recovered from (psip,rhoPar)-dot. This only happens at contrived,
	// non-physical equilibrium/current combinations.
	SingularTransform Kind = iota
)

// Error reports a guiding-center RHS failure.
type Error struct {
	Kind Kind
	Det  float64
}

func (e *Error) Error() string {
	return fmt.Sprintf("guiding: singular canonical-momenta transform (det=%g)", e.Det)
}

func errSingularTransform(det float64) error {
	return &Error{Kind: SingularTransform, Det: det}
}
