// SPDX-License-Identifier: MIT

// Package parameter: value groups.
// A ValueGroup pairs a DescriptorGroup contract with caller-supplied values.
// Reads convert between the storage unit and the requested unit; optional
// reads yield NaN rather than an error so providers can derive what the
// caller left out.

package parameter

import (
	"fmt"
	"math"

	"github.com/shruda/geodesy/unit"
)

// entry is one stored value with the unit the caller supplied it in.
type entry struct {
	value float64
	unit  unit.Unit
}

// ValueGroup holds parameter values against a descriptor-group contract.
// Plain mutable value-holder; callers must not share one across goroutines
// while writing.
type ValueGroup struct {
	group  *DescriptorGroup
	values map[string]entry // keyed by primary descriptor name
}

// NewValues creates an empty value group for the given contract.
func NewValues(group *DescriptorGroup) *ValueGroup {
	return &ValueGroup{group: group, values: make(map[string]entry)}
}

// Group returns the descriptor-group contract.
func (v *ValueGroup) Group() *DescriptorGroup { return v.group }

// Set stores a value for the parameter with the given name (primary or
// alias), recording the unit it was supplied in.
//
// Errors:
//   - ErrUnknownParameter when the name matches no descriptor.
//   - ErrIllegalValue when, expressed in the descriptor's unit, the value
//     violates the declared bounds.
//   - unit.ErrIncompatibleUnits when the supplied unit kind differs from
//     the descriptor's.
func (v *ValueGroup) Set(name string, value float64, u unit.Unit) error {
	d := v.group.Find(name)
	if d == nil {
		return fmt.Errorf("Set(%q): %w", name, ErrUnknownParameter)
	}
	bounded, err := unit.Convert(value, u, d.unit)
	if err != nil {
		return fmt.Errorf("Set(%q): %w", name, err)
	}
	if !d.inBounds(bounded) {
		return fmt.Errorf("Set(%q, %v%s): %w", name, value, u.Symbol(), ErrIllegalValue)
	}
	v.values[d.name] = entry{value: value, unit: u}
	return nil
}

// Value returns the parameter value expressed in the descriptor's own unit.
// Falls back to the declared default; a required parameter with neither
// fails with ErrMissingParameter, an optional one yields NaN.
func (v *ValueGroup) Value(d *Descriptor) (float64, error) {
	return v.ValueIn(d, d.unit)
}

// ValueIn returns the parameter value converted into the requested unit.
// Same fallback rules as Value.
func (v *ValueGroup) ValueIn(d *Descriptor, u unit.Unit) (float64, error) {
	if e, ok := v.values[d.name]; ok {
		return unit.Convert(e.value, e.unit, u)
	}
	if !math.IsNaN(d.def) {
		return unit.Convert(d.def, d.unit, u)
	}
	if d.required {
		return math.NaN(), fmt.Errorf("Value(%q): %w", d.name, ErrMissingParameter)
	}
	return math.NaN(), nil
}

// Optional returns the parameter value in the descriptor's unit, or NaN when
// absent — never an error. This is the read used for parameters a provider
// can derive from others.
func (v *ValueGroup) Optional(d *Descriptor) float64 {
	if e, ok := v.values[d.name]; ok {
		if converted, err := unit.Convert(e.value, e.unit, d.unit); err == nil {
			return converted
		}
		return math.NaN()
	}
	return d.def // NaN when no default was declared
}

// IsSet reports whether a value was explicitly supplied for the descriptor.
func (v *ValueGroup) IsSet(d *Descriptor) bool {
	_, ok := v.values[d.name]
	return ok
}

// Clone returns an independent copy sharing the immutable contract.
func (v *ValueGroup) Clone() *ValueGroup {
	c := NewValues(v.group)
	for k, e := range v.values {
		c.values[k] = e
	}
	return c
}
