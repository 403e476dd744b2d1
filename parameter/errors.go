// SPDX-License-Identifier: MIT
// Package parameter: sentinel error set. All call sites return these
// sentinels (optionally wrapped with %w) and tests match via errors.Is.

package parameter

import "errors"

var (
	// ErrUnknownParameter indicates a name that matches no descriptor
	// (neither primary name nor alias) in the group.
	ErrUnknownParameter = errors.New("parameter: unknown parameter")

	// ErrMissingParameter indicates a required parameter read with no
	// supplied value and no declared default. Fatal to the operation
	// being built.
	ErrMissingParameter = errors.New("parameter: missing required parameter")

	// ErrIllegalValue indicates a supplied value outside the descriptor's
	// declared bounds.
	ErrIllegalValue = errors.New("parameter: value out of bounds")
)
