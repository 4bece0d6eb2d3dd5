// SPDX-License-Identifier: EPL-2.0

// Package errs holds the error kinds shared by the graph, automation and
// spatial packages.
//
// Operations wrap one of these sentinels with context, so callers classify
// failures with errors.Is:
//
//	if err := panner.SetConeOuterGain(2); errors.Is(err, errs.ErrState) {
//	    // value was a finite number but outside [0, 1]
//	}
//
// None of the errors are retried or swallowed inside the engine.
package errs

import "errors"

var (
	// ErrValidation reports a malformed argument: a non-finite number or an
	// unknown enumeration value. State is left unchanged.
	ErrValidation = errors.New("validation error")

	// ErrState reports a well-formed value that violates a domain invariant,
	// such as a cone outer gain outside [0, 1] or starting a source twice.
	ErrState = errors.New("invalid state")

	// ErrNotSupported reports a request that the target explicitly forbids,
	// such as the "max" channel count mode on a panner.
	ErrNotSupported = errors.New("not supported")

	// ErrMathDomain reports an automation request that needs an undefined
	// operation, such as an exponential ramp through zero.
	ErrMathDomain = errors.New("math domain error")

	// ErrDestroyed reports use of a node after Teardown.
	ErrDestroyed = errors.New("node destroyed")

	// ErrIndexSize reports a port index outside the node's port count.
	ErrIndexSize = errors.New("index out of range")
)
