// SPDX-License-Identifier: MIT

// Package transform implements coordinate operations as composable
// transforms: affine steps realized from matrices, concatenated chains,
// the contextual-parameters pipeline, and the non-linear kernels
// (Transverse Mercator, Polar Stereographic variant A, Molodensky).
//
// What:
//
//   - Transform: the minimal contract — dimensions, forward application,
//     inversion.
//   - Affine: a matrix-backed linear step (homogeneous convention).
//   - Concatenated: a chain of steps applied in order, with adjacent
//     linear steps merged and identity steps elided at construction.
//   - Factory / DefaultFactory: creates affine and concatenated transforms;
//     optionally canonicalizes kernels so equal parameterizations share one
//     instance (Uniquifier).
//   - ContextualParameters: the normalize → kernel → denormalize bracket.
//     Kernels expose only normalized internal state (semi-major axis of 1,
//     radians); all linear pre/post work lives in the two affine matrices.
//   - Kernels: TransverseMercator, PolarStereographic, Molodensky. Kernel
//     inputs are (λ, φ[, h]) with angles in radians and λ already shifted
//     by the central meridian; the normalize matrix produces exactly that.
//
// Pipeline picture:
//
//	(λ°, φ°) ──normalize──► (λrad−λ₀, φrad) ──kernel──► (x, y) ──denormalize──► (E, N)
//
// Lifecycle:
//
//   - A ContextualParameters starts in draft phase: its matrices are
//     caller-editable through Normalization and the normalize/denormalize
//     helpers. CreateConcatenatedTransform finalizes it: matrices are
//     replaced by the factory's canonical representation and further edits
//     fail with ErrAlreadyFinalized.
//
// Errors:
//
//   - ErrMismatchedDimensions: coordinate length does not match the
//     transform's source dimensions.
//   - ErrNoninvertible: inversion of a non-invertible step.
//   - ErrOutsideDomain: input outside the kernel's mathematical domain.
//   - ErrAlreadyFinalized: mutation of finalized contextual parameters.
//   - ErrFactory: a factory could not produce a requested object (wraps
//     the cause).
//
// Everything here is pure synchronous computation; no operation blocks,
// suspends or performs I/O.
package transform
