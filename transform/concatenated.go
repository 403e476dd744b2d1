// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/shruda/geodesy/matrix"
)

// Concatenated applies a sequence of transforms in order. Construction
// normalizes the chain: nested concatenations are flattened, adjacent
// linear steps are merged into a single affine step (their matrices
// multiplied) and identity steps are dropped.
type Concatenated struct {
	steps  []Transform
	srcDim int
	tgtDim int
}

// NewConcatenated chains t1 then t2.
//
// When the whole chain collapses to a single step, that step is returned
// directly rather than a one-element Concatenated.
//
// Errors: ErrMismatchedDimensions when t1's target dimensionality differs
// from t2's source dimensionality.
func NewConcatenated(t1, t2 Transform) (Transform, error) {
	if t1 == nil || t2 == nil {
		return nil, transformErrorf(opConcatenated, matrix.ErrNilMatrix)
	}
	if t1.TargetDimensions() != t2.SourceDimensions() {
		return nil, transformErrorf(opConcatenated, ErrMismatchedDimensions)
	}
	var flat []Transform
	for _, t := range []Transform{t1, t2} {
		if c, ok := t.(*Concatenated); ok {
			flat = append(flat, c.steps...)
			continue
		}
		flat = append(flat, t)
	}
	steps, err := simplify(flat)
	if err != nil {
		return nil, transformErrorf(opConcatenated, err)
	}
	switch len(steps) {
	case 0:
		return NewIdentityTransform(t1.SourceDimensions())
	case 1:
		return steps[0], nil
	}
	return &Concatenated{
		steps:  steps,
		srcDim: steps[0].SourceDimensions(),
		tgtDim: steps[len(steps)-1].TargetDimensions(),
	}, nil
}

// simplify merges adjacent linear steps and drops identities.
func simplify(steps []Transform) ([]Transform, error) {
	out := make([]Transform, 0, len(steps))
	for _, t := range steps {
		if a, ok := t.(*Affine); ok {
			if a.IsIdentity() {
				continue
			}
			if n := len(out); n > 0 {
				if prev, ok := out[n-1].(*Affine); ok {
					// matrix of the second step premultiplies the first
					m, err := matrix.Mul(a.Matrix(), prev.Matrix())
					if err != nil {
						return nil, err
					}
					merged, err := NewAffine(m)
					if err != nil {
						return nil, err
					}
					if merged.IsIdentity() {
						out = out[:n-1]
						continue
					}
					out[n-1] = merged
					continue
				}
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// Steps returns the normalized chain in application order. The returned
// slice must not be mutated.
func (c *Concatenated) Steps() []Transform { return c.steps }

// SourceDimensions implements Transform.
func (c *Concatenated) SourceDimensions() int { return c.srcDim }

// TargetDimensions implements Transform.
func (c *Concatenated) TargetDimensions() int { return c.tgtDim }

// Transform implements Transform by piping the tuple through every step.
func (c *Concatenated) Transform(src []float64) ([]float64, error) {
	if len(src) != c.srcDim {
		return nil, transformErrorf(opApply, ErrMismatchedDimensions)
	}
	cur := src
	for _, step := range c.steps {
		next, err := step.Transform(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Inverse implements Transform: the inverses of the steps, in reverse
// order. Fails with the first non-invertible step's error.
func (c *Concatenated) Inverse() (Transform, error) {
	var inv Transform
	for i := len(c.steps) - 1; i >= 0; i-- {
		step, err := c.steps[i].Inverse()
		if err != nil {
			return nil, transformErrorf(opInverse, err)
		}
		if inv == nil {
			inv = step
			continue
		}
		inv, err = NewConcatenated(inv, step)
		if err != nil {
			return nil, transformErrorf(opInverse, err)
		}
	}
	if inv == nil {
		return NewIdentityTransform(c.tgtDim)
	}
	return inv, nil
}
