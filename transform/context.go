// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"log"

	"github.com/shruda/geodesy/matrix"
	"github.com/shruda/geodesy/parameter"
)

// ContextualParameters carries the linear context around a non-linear
// kernel: the parameter values of the complete operation, a normalize
// matrix converting user coordinates to kernel inputs, and a denormalize
// matrix converting kernel outputs to user coordinates.
//
// Lifecycle: after construction the instance is in draft phase and the two
// matrices are caller-editable. CreateConcatenatedTransform assembles the
// complete transform, replaces both matrices by the factory's canonical
// representation and seals the instance; every later mutation fails with
// ErrAlreadyFinalized.
type ContextualParameters struct {
	method      Method
	values      *parameter.ValueGroup
	normalize   *matrix.Dense
	denormalize *matrix.Dense
	finalized   bool
}

// NewContextualParameters starts a draft context for the given method.
// Both matrices start as identities sized from the method's declared
// dimensionalities.
//
// Errors: parameter.ErrMissingParameter when the method does not declare
// its source or target dimensionality.
func NewContextualParameters(method Method) (*ContextualParameters, error) {
	srcDim, tgtDim := method.SourceDimensions(), method.TargetDimensions()
	if srcDim <= 0 || tgtDim <= 0 {
		return nil, transformErrorf(opContext, parameter.ErrMissingParameter)
	}
	n, err := matrix.NewIdentity(srcDim + 1)
	if err != nil {
		return nil, transformErrorf(opContext, err)
	}
	d, err := matrix.NewIdentity(tgtDim + 1)
	if err != nil {
		return nil, transformErrorf(opContext, err)
	}
	return &ContextualParameters{
		method:      method,
		values:      parameter.NewValues(method.Parameters()),
		normalize:   n,
		denormalize: d,
	}, nil
}

// Method returns the operation method this context was created for.
func (c *ContextualParameters) Method() Method { return c.method }

// Values returns the parameter values of the complete operation. Providers
// fill it during construction; after finalization it serves inspection.
func (c *ContextualParameters) Values() *parameter.ValueGroup { return c.values }

// Normalization returns the normalize (norm = true) or denormalize matrix.
// In draft phase the live matrix is returned and may be edited in place;
// after finalization a defensive copy is returned.
func (c *ContextualParameters) Normalization(norm bool) *matrix.Dense {
	m := c.denormalize
	if norm {
		m = c.normalize
	}
	if c.finalized {
		cp, err := matrix.CopyOf(m)
		if err != nil { // cannot happen for a well-formed context
			return m
		}
		return cp
	}
	return m
}

// NormalizeGeographicInputs configures the normalize matrix for geographic
// inputs in (λ, φ) degree order: both angles are converted to radians with
// extended precision and the central meridian λ0 (given in degrees) is
// subtracted from the longitude. Returns the matrix for further editing.
//
// Errors: ErrAlreadyFinalized after finalization.
func (c *ContextualParameters) NormalizeGeographicInputs(centralMeridian float64) (*matrix.Dense, error) {
	if c.finalized {
		return nil, transformErrorf(opNormalize, ErrAlreadyFinalized)
	}
	offset := matrix.Extended{}
	if centralMeridian != 0 {
		offset = matrix.NewExtended(-centralMeridian).Mul(matrix.DegreesToRadians)
	}
	if err := c.normalize.Concatenate(0, matrix.DegreesToRadians, offset); err != nil {
		return nil, transformErrorf(opNormalize, err)
	}
	if err := c.normalize.Concatenate(1, matrix.DegreesToRadians, matrix.Extended{}); err != nil {
		return nil, transformErrorf(opNormalize, err)
	}
	return c.normalize, nil
}

// DenormalizeCartesianOutputs configures the denormalize matrix for
// projected outputs: both kernel axes are multiplied by scale (usually
// a·k0) and shifted by the false easting and false northing, all in
// extended precision.
//
// Errors: ErrAlreadyFinalized after finalization.
func (c *ContextualParameters) DenormalizeCartesianOutputs(scale, falseEasting, falseNorthing float64) (*matrix.Dense, error) {
	if c.finalized {
		return nil, transformErrorf(opNormalize, ErrAlreadyFinalized)
	}
	s := matrix.NewExtended(scale)
	if err := c.denormalize.Concatenate(0, s, matrix.NewExtended(falseEasting)); err != nil {
		return nil, transformErrorf(opNormalize, err)
	}
	if err := c.denormalize.Concatenate(1, s, matrix.NewExtended(falseNorthing)); err != nil {
		return nil, transformErrorf(opNormalize, err)
	}
	return c.denormalize, nil
}

// DenormalizeGeographicOutputs configures the denormalize matrix for
// geographic outputs in (λ, φ) order: both angles are converted from
// radians to degrees and the central meridian λ0 (in degrees) is added
// back to the longitude.
//
// Errors: ErrAlreadyFinalized after finalization.
func (c *ContextualParameters) DenormalizeGeographicOutputs(centralMeridian float64) (*matrix.Dense, error) {
	if c.finalized {
		return nil, transformErrorf(opNormalize, ErrAlreadyFinalized)
	}
	if err := c.denormalize.Concatenate(0, matrix.RadiansToDegrees, matrix.NewExtended(centralMeridian)); err != nil {
		return nil, transformErrorf(opNormalize, err)
	}
	if err := c.denormalize.Concatenate(1, matrix.RadiansToDegrees, matrix.Extended{}); err != nil {
		return nil, transformErrorf(opNormalize, err)
	}
	return c.denormalize, nil
}

// CreateConcatenatedTransform assembles normalize → kernel → denormalize
// into one Transform and finalizes the context. When the factory supports
// de-duplication the kernel is canonicalized first, so equal
// parameterizations share a single kernel instance.
//
// Errors: ErrAlreadyFinalized on a second call; ErrFactory when the
// factory cannot build one of the steps.
func (c *ContextualParameters) CreateConcatenatedTransform(f Factory, kernel Transform) (Transform, error) {
	if c.finalized {
		return nil, transformErrorf(opFinalize, ErrAlreadyFinalized)
	}
	if u, ok := f.(Uniquifier); ok {
		kernel = u.Unique(kernel)
	}
	n, err := f.CreateAffineTransform(c.normalize)
	if err != nil {
		return nil, transformErrorf(opFinalize, err)
	}
	d, err := f.CreateAffineTransform(c.denormalize)
	if err != nil {
		return nil, transformErrorf(opFinalize, err)
	}
	// adopt the factory's canonical matrices before sealing
	if lin, ok := n.(Linear); ok {
		if cp, err := matrix.CopyOf(lin.Matrix()); err == nil {
			c.normalize = cp
		}
	}
	if lin, ok := d.(Linear); ok {
		if cp, err := matrix.CopyOf(lin.Matrix()); err == nil {
			c.denormalize = cp
		}
	}
	c.finalized = true
	step, err := f.CreateConcatenatedTransform(n, kernel)
	if err != nil {
		return nil, transformErrorf(opFinalize, err)
	}
	complete, err := f.CreateConcatenatedTransform(step, d)
	if err != nil {
		return nil, transformErrorf(opFinalize, err)
	}
	return complete, nil
}

// String identifies the complete operation for chain formatting.
func (c *ContextualParameters) String() string {
	return fmt.Sprintf("operation %q", c.values.Group().Name())
}

// BeforeFormat rewrites a formatting chain so readers see the complete
// operation instead of raw normalize / kernel / denormalize internals.
// chain[index] must be the kernel; it is replaced by this context, and the
// normalize and denormalize contributions are stripped from the adjacent
// linear steps, keeping only their user-defined residuals. Identity
// residuals are removed from the chain. inverse indicates that the chain
// is the reverse operation, which swaps the roles of the two matrices.
//
// The rewritten chain and the kernel's new index are returned. When a
// context matrix is singular the rewrite is abandoned: a warning is
// logged and the chain is returned unchanged.
func (c *ContextualParameters) BeforeFormat(chain []interface{}, index int, inverse bool) ([]interface{}, int) {
	var invBefore, invAfter *matrix.Dense
	if inverse {
		// the inverse chain contains denormalize⁻¹ and normalize⁻¹, so the
		// residuals fall out with the forward matrices and nothing needs
		// to be inverted here
		invBefore, invAfter = c.denormalize, c.normalize
	} else {
		var err error
		if invBefore, err = matrix.Inverse(c.normalize); err == nil {
			invAfter, err = matrix.Inverse(c.denormalize)
		}
		if err != nil {
			log.Printf("transform: cannot rewrite operation chain for display: %v", err)
			return chain, index
		}
	}
	out := append([]interface{}(nil), chain...)
	out[index] = c
	// residual of the step feeding the kernel: U = N⁻¹ · A
	if index > 0 {
		if lin, ok := out[index-1].(Linear); ok {
			if residual, err := matrix.Mul(invBefore, lin.Matrix()); err == nil {
				if matrix.IsIdentityTol(residual, matrix.DefaultEpsilon) {
					out = append(out[:index-1], out[index:]...)
					index--
				} else if a, err := NewAffine(residual); err == nil {
					out[index-1] = a
				}
			}
		}
	}
	// residual of the step consuming the kernel: U = B · D⁻¹
	if index+1 < len(out) {
		if lin, ok := out[index+1].(Linear); ok {
			if residual, err := matrix.Mul(lin.Matrix(), invAfter); err == nil {
				if matrix.IsIdentityTol(residual, matrix.DefaultEpsilon) {
					out = append(out[:index+1], out[index+2:]...)
				} else if a, err := NewAffine(residual); err == nil {
					out[index+1] = a
				}
			}
		}
	}
	return out, index
}

// PseudoSteps flattens t into a display chain and lets every kernel with
// contextual parameters rewrite its neighborhood. The result is intended
// for inspection and logging only; entries are either Transform values or
// *ContextualParameters.
func PseudoSteps(t Transform) []interface{} {
	var chain []interface{}
	if c, ok := t.(*Concatenated); ok {
		for _, s := range c.Steps() {
			chain = append(chain, s)
		}
	} else {
		chain = append(chain, t)
	}
	for i := 0; i < len(chain); i++ {
		p, ok := chain[i].(Parameterized)
		if !ok {
			continue
		}
		chain, i = p.Context().BeforeFormat(chain, i, isInverseKernel(p))
	}
	return chain
}

// isInverseKernel reports whether the kernel is the reverse direction of
// its parameterized operation.
func isInverseKernel(p Parameterized) bool {
	type reversed interface{ IsReverse() bool }
	if r, ok := p.(reversed); ok {
		return r.IsReverse()
	}
	return false
}
