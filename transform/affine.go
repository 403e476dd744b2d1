// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/shruda/geodesy/matrix"
)

// Affine is a linear transform defined by a matrix in the homogeneous
// convention: an (m+1)×(n+1) matrix maps n source dimensions to m target
// dimensions. The last row is usually [0 … 0 1]; a general last row turns
// the step into a projective map with a perspective divide.
//
// Affine values are immutable and safe for concurrent use.
type Affine struct {
	m      *matrix.Dense
	rows   [][]float64 // row views extracted once at construction
	srcDim int
	tgtDim int
	affine bool
}

// NewAffine builds a linear transform from the matrix. The matrix is
// copied; later mutation of the argument does not affect the transform.
//
// Errors: matrix.ErrNilMatrix for a nil argument; matrix.ErrBadShape when
// either dimension is smaller than 2 (a homogeneous matrix needs at least
// one coordinate row plus the constant row).
func NewAffine(m matrix.Matrix) (*Affine, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, transformErrorf(opAffine, err)
	}
	d, err := matrix.CopyOf(m)
	if err != nil {
		return nil, transformErrorf(opAffine, err)
	}
	r, c := d.Rows(), d.Cols()
	if r < 2 || c < 2 {
		return nil, transformErrorf(opAffine, matrix.ErrBadShape)
	}
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			v, _ := d.At(i, j)
			rows[i][j] = v
		}
	}
	return &Affine{
		m:      d,
		rows:   rows,
		srcDim: c - 1,
		tgtDim: r - 1,
		affine: matrix.IsAffine(d),
	}, nil
}

// NewIdentityTransform returns the identity transform of the given
// dimensionality.
func NewIdentityTransform(dim int) (*Affine, error) {
	id, err := matrix.NewIdentity(dim + 1)
	if err != nil {
		return nil, transformErrorf(opAffine, err)
	}
	return NewAffine(id)
}

// SourceDimensions implements Transform.
func (a *Affine) SourceDimensions() int { return a.srcDim }

// TargetDimensions implements Transform.
func (a *Affine) TargetDimensions() int { return a.tgtDim }

// Matrix implements Linear. The returned matrix must not be mutated.
func (a *Affine) Matrix() matrix.Matrix { return a.m }

// IsIdentity reports whether the transform maps every tuple to itself.
func (a *Affine) IsIdentity() bool { return matrix.IsIdentity(a.m) }

// Transform implements Transform: dst_i = Σ_j m[i][j]·src[j] + m[i][n],
// with a perspective divide when the last row is not [0 … 0 1].
func (a *Affine) Transform(src []float64) ([]float64, error) {
	if len(src) != a.srcDim {
		return nil, transformErrorf(opApply, ErrMismatchedDimensions)
	}
	dst := make([]float64, a.tgtDim)
	for i := 0; i < a.tgtDim; i++ {
		row := a.rows[i]
		s := row[a.srcDim]
		for j, v := range src {
			if w := row[j]; w != 0 { // skip zeros so NaN·0 cannot poison the sum
				s += w * v
			}
		}
		dst[i] = s
	}
	if !a.affine {
		row := a.rows[a.tgtDim]
		w := row[a.srcDim]
		for j, v := range src {
			w += row[j] * v
		}
		if w == 0 || math.IsNaN(w) {
			return nil, transformErrorf(opApply, ErrOutsideDomain)
		}
		for i := range dst {
			dst[i] /= w
		}
	}
	return dst, nil
}

// Inverse implements Transform by inverting the matrix.
//
// Errors: ErrNoninvertible when the matrix is not square or is singular
// to working precision.
func (a *Affine) Inverse() (Transform, error) {
	inv, err := matrix.Inverse(a.m)
	if err != nil {
		return nil, transformErrorf(opInverse, errorsJoin(ErrNoninvertible, err))
	}
	return NewAffine(inv)
}
