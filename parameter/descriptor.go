// SPDX-License-Identifier: MIT

// Package parameter: descriptors and descriptor groups.
// Descriptors are immutable after Create; groups are immutable after
// NewGroup. Providers build them once at construction and share them.

package parameter

import (
	"math"

	"github.com/shruda/geodesy/unit"
)

// Descriptor describes one operation parameter: primary name, authority
// aliases, unit of measure, closed value bounds and an optional default.
type Descriptor struct {
	name     string
	aliases  []string
	unit     unit.Unit
	min, max float64 // NaN means unbounded on that side
	def      float64 // NaN means no default
	required bool
}

// Name returns the primary parameter name.
func (d *Descriptor) Name() string { return d.name }

// Aliases returns the authority-specific alternative names.
func (d *Descriptor) Aliases() []string { return d.aliases }

// Unit returns the unit in which bounds and defaults are expressed.
func (d *Descriptor) Unit() unit.Unit { return d.unit }

// Required reports whether a read without a value or default must fail.
func (d *Descriptor) Required() bool { return d.required }

// Default returns the declared default, NaN when none.
func (d *Descriptor) Default() float64 { return d.def }

// matches reports whether name equals the primary name or any alias.
func (d *Descriptor) matches(name string) bool {
	if name == d.name {
		return true
	}
	for _, a := range d.aliases {
		if name == a {
			return true
		}
	}
	return false
}

// inBounds reports whether v satisfies the declared bounds.
// NaN bounds are open; NaN values are always accepted (they mean "unset").
func (d *Descriptor) inBounds(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	if !math.IsNaN(d.min) && v < d.min {
		return false
	}
	if !math.IsNaN(d.max) && v > d.max {
		return false
	}
	return true
}

// Builder assembles a Descriptor field by field. The zero Builder starts
// unbounded, optional, defaultless and dimensionless.
type Builder struct {
	d Descriptor
}

// NewBuilder returns a Builder for a parameter with the given primary name.
func NewBuilder(name string) *Builder {
	return &Builder{d: Descriptor{
		name: name,
		unit: unit.One,
		min:  math.NaN(),
		max:  math.NaN(),
		def:  math.NaN(),
	}}
}

// Alias adds an authority-specific alternative name.
func (b *Builder) Alias(name string) *Builder {
	b.d.aliases = append(b.d.aliases, name)
	return b
}

// Unit sets the unit in which bounds and defaults are expressed.
func (b *Builder) Unit(u unit.Unit) *Builder {
	b.d.unit = u
	return b
}

// Bounds sets the closed [min, max] interval of valid values.
func (b *Builder) Bounds(min, max float64) *Builder {
	b.d.min, b.d.max = min, max
	return b
}

// Default sets the value returned by required reads when none was supplied.
func (b *Builder) Default(v float64) *Builder {
	b.d.def = v
	return b
}

// Required marks the parameter as mandatory.
func (b *Builder) Required() *Builder {
	b.d.required = true
	return b
}

// Create finalizes and returns the immutable Descriptor.
func (b *Builder) Create() *Descriptor {
	d := b.d
	d.aliases = append([]string(nil), b.d.aliases...)
	return &d
}

// DescriptorGroup is the named, identified set of descriptors declared by
// one operation method.
type DescriptorGroup struct {
	name       string
	identifier string
	list       []*Descriptor
}

// NewGroup builds an immutable descriptor group. The identifier is the
// authority code (e.g. "9604" for Molodensky in the EPSG dataset).
func NewGroup(name, identifier string, descriptors ...*Descriptor) *DescriptorGroup {
	return &DescriptorGroup{
		name:       name,
		identifier: identifier,
		list:       append([]*Descriptor(nil), descriptors...),
	}
}

// Name returns the operation-method name.
func (g *DescriptorGroup) Name() string { return g.name }

// Identifier returns the authority code, empty when none.
func (g *DescriptorGroup) Identifier() string { return g.identifier }

// Descriptors returns the declared descriptors in declaration order.
func (g *DescriptorGroup) Descriptors() []*Descriptor {
	return append([]*Descriptor(nil), g.list...)
}

// Find returns the descriptor matching name (primary or alias), nil if none.
func (g *DescriptorGroup) Find(name string) *Descriptor {
	for _, d := range g.list {
		if d.matches(name) {
			return d
		}
	}
	return nil
}
