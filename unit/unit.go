// SPDX-License-Identifier: MIT
// Package unit: unit kinds, canonical unit values and conversion.

package unit

import (
	"errors"
	"fmt"
	"math"
)

// Kind classifies a unit. Conversion is defined only within one kind.
type Kind uint8

// Unit kinds. Angular units convert through radians, linear units through
// metres; dimensionless units have factor 1 by construction.
const (
	Angular Kind = iota
	Linear
	Dimensionless
)

// ErrIncompatibleUnits is returned when a conversion crosses unit kinds.
var ErrIncompatibleUnits = errors.New("unit: incompatible unit kinds")

// Unit is an immutable measurement unit: a symbol, a kind, and the factor
// converting one of this unit into the kind's base unit.
type Unit struct {
	symbol string
	kind   Kind
	toBase float64
}

// Canonical units of the coordinate-operation core.
var (
	// Radian is the base angular unit.
	Radian = Unit{symbol: "rad", kind: Angular, toBase: 1}

	// Degree converts through π/180 radians.
	Degree = Unit{symbol: "°", kind: Angular, toBase: math.Pi / 180}

	// ArcSecond is 1/3600 of a degree, used by datum-shift authorities.
	ArcSecond = Unit{symbol: "″", kind: Angular, toBase: math.Pi / (180 * 3600)}

	// Metre is the base linear unit.
	Metre = Unit{symbol: "m", kind: Linear, toBase: 1}

	// Kilometre converts through 1000 metres.
	Kilometre = Unit{symbol: "km", kind: Linear, toBase: 1000}

	// One is the dimensionless unit (scale factors, flattening differences).
	One = Unit{symbol: "", kind: Dimensionless, toBase: 1}
)

// Symbol returns the display symbol of the unit.
func (u Unit) Symbol() string { return u.symbol }

// Kind returns the unit kind.
func (u Unit) Kind() Kind { return u.kind }

// Factor returns the multiplier from this unit to the kind's base unit.
func (u Unit) Factor() float64 { return u.toBase }

// Convert expresses value (given in from) in to.
// Returns ErrIncompatibleUnits when the kinds differ; NaN propagates as-is.
// Complexity: O(1).
func Convert(value float64, from, to Unit) (float64, error) {
	if from.kind != to.kind {
		return math.NaN(), fmt.Errorf("Convert(%s→%s): %w", from.symbol, to.symbol, ErrIncompatibleUnits)
	}
	if from.toBase == to.toBase {
		return value, nil // identical factors: avoid a useless multiply/divide round-trip
	}
	return value * (from.toBase / to.toBase), nil
}
