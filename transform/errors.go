// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

// Sentinel errors for the transform package. Callers match with errors.Is;
// wrapped messages carry the operation tag that produced them.
var (
	// ErrMismatchedDimensions - coordinate slice length differs from the
	// transform's declared source dimensions.
	ErrMismatchedDimensions = errors.New("transform: coordinate length does not match source dimensions")

	// ErrNoninvertible - the transform (or one of its steps) has no inverse.
	ErrNoninvertible = errors.New("transform: transform is not invertible")

	// ErrOutsideDomain - the input lies outside the mathematical domain of
	// the operation (for example a latitude beyond the pole).
	ErrOutsideDomain = errors.New("transform: coordinate outside domain of validity")

	// ErrAlreadyFinalized - mutation attempted on contextual parameters
	// after CreateConcatenatedTransform sealed them.
	ErrAlreadyFinalized = errors.New("transform: contextual parameters already finalized")

	// ErrFactory - a factory could not create the requested transform.
	// The underlying cause is wrapped and reachable through errors.Is/As.
	ErrFactory = errors.New("transform: factory failure")
)

// Operation tags used in wrapped error messages.
const (
	opAffine       = "NewAffine"
	opConcatenated = "NewConcatenated"
	opApply        = "Transform"
	opInverse      = "Inverse"
	opContext      = "NewContextualParameters"
	opNormalize    = "Normalization"
	opFinalize     = "CreateConcatenatedTransform"
)

// transformErrorf prefixes err with the operation tag, preserving the
// sentinel for errors.Is.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// factoryErrorf marks err as a factory failure while keeping the original
// cause matchable.
func factoryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrFactory, err)
}

// errorsJoin chains a package sentinel in front of its cause so both stay
// matchable through errors.Is.
func errorsJoin(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
