// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra foundation of the
// coordinate-operation core: the affine steps that bracket every
// non-linear projection or datum-shift kernel are plain matrices built
// and manipulated here.
//
// What:
//
//   - Matrix interface + row-major Dense implementation (float64).
//   - Factories: NewDense, NewIdentity, NewFromSlice, CopyOf.
//   - Kernels: Mul, Transpose, Inverse, exact and tolerance-based
//     identity/equality tests, homogeneous-row affinity test.
//   - Concatenate applies row[axis] = row[axis]*scale + offset in
//     extended (double-double) precision, so long chains of unit
//     conversions and meridian shifts do not lose the low-order bits
//     that geodetic accuracy lives in.
//
// Why:
//
//   - Geodetic pipelines routinely subtract near-equal large numbers
//     (longitude minus central meridian at arc-second precision); plain
//     float64 accumulation of the normalize/denormalize coefficients
//     would surface as centimetre-level noise after reprojection.
//
// Numeric policy:
//
//   - Inverse short-circuits 2×2 with an exact zero-determinant check and
//     otherwise delegates to a pivoted LU factorization (gonum), rejecting
//     near-singular inputs by a configurable reciprocal-condition bound.
//   - Equality comes in two flavours: Equal (bit-for-bit, used for
//     structural simplification) and EqualTol (semantic equivalence).
//
// Errors:
//
//   - ErrNilMatrix: nil receiver or operand.
//   - ErrBadShape: non-positive construction dimensions.
//   - ErrOutOfRange: row/column index outside declared size.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrSingular: inversion of a (numerically) non-invertible matrix.
//
// All operations are single-threaded value manipulation; callers must not
// mutate a matrix concurrently with a read.
package matrix
