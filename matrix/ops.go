// SPDX-License-Identifier: MIT

// Package matrix: canonical linear-algebra kernels on the Matrix contract.
//
// Purpose:
//   - Declare the kernels used across the coordinate-operation core
//     (Mul, Transpose, Inverse) plus the structural predicates
//     (IsAffine, IsIdentity, equality).
//   - All kernels use central validators and return plain sentinels or wrap
//     them via matrixErrorf at the facade.
//
// Determinism:
//   - Fixed loop orders everywhere; the inversion path delegates the pivoted
//     elimination to gonum for numerical stability and checks the reciprocal
//     condition number against the configured bound.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and
// reducing magic strings.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opInverse     = "Inverse"
	opConcatenate = "Concatenate"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for the fast path, i→j→k for the fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero A[i,k] entries skip the inner loop;
//     normalize/denormalize affines are mostly zeros, so this matters here.
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Inverse computes A⁻¹ for a square matrix.
//
// Implementation:
//   - Stage 1: Validate non-nil and square.
//   - Stage 2: 2×2 fast path with an exact zero-determinant check (the
//     draft normalize/denormalize matrices of 2D kernels are 2×2 or 3×3,
//     and an exactly singular 2×2 must be reported regardless of tolerance).
//   - Stage 3: general case via a pivoted LU factorization (gonum); inputs
//     whose reciprocal condition number falls below the configured bound
//     are rejected as numerically singular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts)
	src, err := CopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := src.r

	// 2×2 fast path: exact determinant check, closed-form inverse.
	if n == 2 {
		a, b := src.data[0], src.data[1]
		c, d := src.data[2], src.data[3]
		det := a*d - b*c
		if det == 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		res, _ := NewDense(2, 2)
		res.data[0] = d / det
		res.data[1] = -b / det
		res.data[2] = -c / det
		res.data[3] = a / det
		return res, nil
	}

	// General case: pivoted LU with reciprocal-condition guard.
	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, src.data))
	cond := lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || 1/cond < o.rcond {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	eye := make([]float64, n*n)
	for i := 0; i < n; i++ {
		eye[i*n+i] = 1
	}
	var sol mat.Dense
	if err := lu.SolveTo(&sol, false, mat.NewDense(n, n, eye)); err != nil {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	res, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = sol.At(i, j)
		}
	}
	return res, nil
}

// IsAffine reports whether the bottom row of m equals [0, …, 0, 1]
// (homogeneous-coordinates convention). Nil matrices are not affine.
// Complexity: O(c).
func IsAffine(m Matrix) bool {
	if m == nil {
		return false
	}
	rows, cols := m.Rows(), m.Cols()
	last := rows - 1
	var v float64
	for j := 0; j < cols; j++ {
		v, _ = m.At(last, j)
		want := 0.0
		if j == cols-1 {
			want = 1
		}
		if v != want {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is exactly the identity matrix.
// The exact form is used for structural simplification (e.g. omitting a
// no-op step from a display chain); use IsIdentityTol for semantic checks.
// Complexity: O(r*c).
func IsIdentity(m Matrix) bool {
	return isIdentity(m, 0)
}

// IsIdentityTol reports whether m equals identity within tol on every entry.
// Complexity: O(r*c).
func IsIdentityTol(m Matrix, tol float64) bool {
	return isIdentity(m, tol)
}

func isIdentity(m Matrix, tol float64) bool {
	if m == nil || m.Rows() != m.Cols() {
		return false
	}
	n := m.Rows()
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j)
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(v-want) > tol {
				return false
			}
		}
	}
	return true
}

// Equal reports exact, bit-for-bit equality of two matrices.
// Differing shapes or nil operands compare unequal; NaN entries compare
// unequal by IEEE semantics, which is the desired bit-for-bit contract
// for regression baselines.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	return equal(a, b, 0, true)
}

// EqualTol reports element-wise equality within the given tolerance,
// the form used for round-trip and semantic-equivalence checks.
// Complexity: O(r*c).
func EqualTol(a, b Matrix, tol float64) bool {
	return equal(a, b, tol, false)
}

func equal(a, b Matrix, tol float64, exact bool) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if exact {
				if av != bv {
					return false
				}
			} else if math.Abs(av-bv) > tol {
				return false
			}
		}
	}
	return true
}

// Concatenate applies, in place, the in-row affine update
//
//	row[axis] = row[axis]*scale,  translation column += offset
//
// using extended-precision arithmetic for the scale/offset pair. For an
// affine matrix this is the premultiplication by a step that scales
// coordinate `axis` and shifts it by `offset`, the exact operation used to
// fold unit conversions and origin shifts into normalize/denormalize
// matrices without losing low-order bits over long chains.
//
// A zero-valued offset Extended leaves the translation column untouched by
// addition (exact zero adds are lossless anyway).
//
// Errors: ErrOutOfRange when axis is not a coordinate row (the homogeneous
// row cannot be concatenated over).
// Complexity: O(c).
func (m *Dense) Concatenate(axis int, scale, offset Extended) error {
	// The last row is the homogeneous [0,…,0,1] row; it is not a valid axis.
	if axis < 0 || axis >= m.r-1 {
		return matrixErrorf(opConcatenate, denseErrorf("Concatenate", axis, 0, ErrOutOfRange))
	}
	last := m.c - 1
	base := axis * m.c
	for j := 0; j <= last; j++ {
		e := NewExtended(m.data[base+j]).Mul(scale)
		if j == last {
			e = e.Add(offset)
		}
		m.data[base+j] = e.Value()
	}
	return nil
}
