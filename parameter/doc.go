// SPDX-License-Identifier: MIT

// Package parameter models the descriptor/value contract between operation
// methods and the callers that parameterize them.
//
// What:
//
//   - Descriptor: one named parameter with authority aliases, a unit,
//     value bounds and an optional default.
//   - DescriptorGroup: the named, identified (e.g. EPSG code) set of
//     descriptors an operation method declares once.
//   - ValueGroup: the mutable bag of values a caller fills before asking a
//     provider to synthesize a transform. Reads convert to the target unit;
//     optional parameters read as NaN instead of failing.
//
// Why:
//
//   - Authorities describe the same operation differently (EPSG supplies
//     axis-length and flattening differences, OGC supplies explicit target
//     axes); the descriptor alias list plus NaN-for-absent reads lets one
//     provider serve both vocabularies.
//
// Errors:
//
//   - ErrUnknownParameter: name matches no descriptor in the group.
//   - ErrMissingParameter: required read with no value and no default.
//   - ErrIllegalValue: value outside the descriptor's declared bounds.
//
// ValueGroup is a plain mutable value-holder with no internal locking.
package parameter
