// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/shruda/geodesy/matrix"
	"github.com/shruda/geodesy/parameter"
)

// Transform converts coordinate tuples from a source space to a target
// space. Implementations are immutable after construction and safe for
// concurrent use.
type Transform interface {
	// SourceDimensions reports the length of input coordinate tuples.
	SourceDimensions() int

	// TargetDimensions reports the length of output coordinate tuples.
	TargetDimensions() int

	// Transform converts one coordinate tuple. The input slice is never
	// mutated; a freshly allocated output slice is returned.
	//
	// Errors: ErrMismatchedDimensions when len(src) != SourceDimensions();
	// ErrOutsideDomain when the point lies outside the operation's domain.
	Transform(src []float64) ([]float64, error)

	// Inverse returns the reverse transform, or ErrNoninvertible.
	Inverse() (Transform, error)
}

// Linear is a Transform fully described by a matrix in the homogeneous
// convention: a transform from n to m dimensions is an (m+1)×(n+1) matrix
// whose last row is [0 … 0 1].
type Linear interface {
	Transform

	// Matrix returns the defining matrix. Callers must not mutate it.
	Matrix() matrix.Matrix
}

// Parameterized is implemented by transforms built around a
// normalize → kernel → denormalize bracket. It exposes the contextual
// parameters for chain formatting and introspection.
type Parameterized interface {
	Transform

	// Context returns the contextual parameters describing the complete
	// operation this kernel belongs to.
	Context() *ContextualParameters
}

// Method describes an operation method from the transform side: its
// parameter contract and declared dimensionalities. Providers implement
// this; ContextualParameters consumes it.
type Method interface {
	// Parameters returns the descriptor group for the complete operation.
	Parameters() *parameter.DescriptorGroup

	// SourceDimensions reports the declared input dimensionality,
	// or 0 when the method leaves it unspecified.
	SourceDimensions() int

	// TargetDimensions reports the declared output dimensionality,
	// or 0 when the method leaves it unspecified.
	TargetDimensions() int
}
