// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

// Numeric policy defaults — single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the non-negative tolerance callers pass to the
	// tolerance-based identity and equality tests (IsIdentityTol, EqualTol)
	// when they have no sharper requirement of their own.
	DefaultEpsilon = 1e-9

	// DefaultRCond is the reciprocal-condition-number bound below which the
	// general inversion path reports ErrSingular. 1e-14 keeps well-formed
	// geodetic affines (unit conversions, axis swaps, false origins) valid
	// while rejecting numerically rank-deficient inputs.
	DefaultRCond = 1e-14
)

// options is the resolved numeric policy consumed by Inverse. The
// tolerance-based predicates take their tolerance directly, so the only
// knob here is the singularity bound.
type options struct {
	rcond float64 // reciprocal-condition bound for Inverse
}

// Option mutates the numeric policy. Constructed via WithX functions only.
type Option func(*options)

// WithRCond overrides the reciprocal-condition bound used by Inverse.
// Panics if rcond is not in [0, 1).
func WithRCond(rcond float64) Option {
	if rcond < 0 || rcond >= 1 {
		panic("matrix: WithRCond requires 0 <= rcond < 1")
	}
	return func(o *options) { o.rcond = rcond }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{rcond: DefaultRCond}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
