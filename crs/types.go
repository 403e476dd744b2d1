// SPDX-License-Identifier: MIT

// Package crs: the CRS/datum type model.

package crs

import (
	"fmt"

	"github.com/shruda/geodesy/parameter"
)

// Ellipsoid is a reference surface defined by its semi-major and
// semi-minor axis lengths, both in metres. Immutable.
type Ellipsoid struct {
	name      string
	semiMajor float64
	semiMinor float64
}

// NewEllipsoid validates and builds an ellipsoid from axis lengths in metres.
// Returns ErrInvalidAxes unless semiMajor >= semiMinor > 0.
func NewEllipsoid(name string, semiMajor, semiMinor float64) (*Ellipsoid, error) {
	if !(semiMinor > 0) || semiMajor < semiMinor {
		return nil, fmt.Errorf("NewEllipsoid(%q, a=%v, b=%v): %w", name, semiMajor, semiMinor, ErrInvalidAxes)
	}
	return &Ellipsoid{name: name, semiMajor: semiMajor, semiMinor: semiMinor}, nil
}

// Name returns the ellipsoid name.
func (e *Ellipsoid) Name() string { return e.name }

// SemiMajor returns the semi-major axis length a, in metres.
func (e *Ellipsoid) SemiMajor() float64 { return e.semiMajor }

// SemiMinor returns the semi-minor axis length b, in metres.
func (e *Ellipsoid) SemiMinor() float64 { return e.semiMinor }

// Flattening returns f = (a-b)/a.
func (e *Ellipsoid) Flattening() float64 {
	return (e.semiMajor - e.semiMinor) / e.semiMajor
}

// EccentricitySquared returns e² = 1 - (b/a)².
func (e *Ellipsoid) EccentricitySquared() float64 {
	r := e.semiMinor / e.semiMajor
	return 1 - r*r
}

// SemiMajorDifference returns Δa = other.a − a, in metres.
// Datum-shift kernels use this as the fallback when no explicit
// axis-length difference was supplied by the authority.
func (e *Ellipsoid) SemiMajorDifference(other *Ellipsoid) float64 {
	return other.semiMajor - e.semiMajor
}

// FlatteningDifference returns Δf = other.f − f.
func (e *Ellipsoid) FlatteningDifference(other *Ellipsoid) float64 {
	return other.Flattening() - e.Flattening()
}

// Datum binds a name to a reference ellipsoid.
type Datum struct {
	name      string
	ellipsoid *Ellipsoid
}

// NewDatum builds a datum for the given ellipsoid.
func NewDatum(name string, e *Ellipsoid) *Datum {
	return &Datum{name: name, ellipsoid: e}
}

// Name returns the datum name.
func (d *Datum) Name() string { return d.name }

// Ellipsoid returns the reference ellipsoid.
func (d *Datum) Ellipsoid() *Ellipsoid { return d.ellipsoid }

// CRS is the minimal contract the transform engine needs from a
// coordinate reference system.
type CRS interface {
	// Name returns the CRS name.
	Name() string

	// Dimension returns the coordinate dimension (2 or 3).
	Dimension() int

	// Datum returns the datum the CRS is referenced to.
	Datum() *Datum
}

// Geographic is a latitude/longitude CRS in degrees, EPSG axis order
// (latitude first), optionally with an ellipsoidal-height third axis.
type Geographic struct {
	name  string
	datum *Datum
	dim   int
}

// NewGeographic builds a geographic CRS; dim must be 2 or 3.
func NewGeographic(name string, datum *Datum, dim int) *Geographic {
	if dim != 2 && dim != 3 {
		dim = 2
	}
	return &Geographic{name: name, datum: datum, dim: dim}
}

// Name returns the CRS name.
func (g *Geographic) Name() string { return g.name }

// Dimension returns 2, or 3 when an ellipsoidal height axis is present.
func (g *Geographic) Dimension() int { return g.dim }

// Datum returns the datum.
func (g *Geographic) Datum() *Datum { return g.datum }

// Projected is a planar CRS derived from a geographic base through a named
// operation method with concrete parameter values. Planar axes are
// easting/northing in metres.
type Projected struct {
	name       string
	base       *Geographic
	method     string
	conversion *parameter.ValueGroup
}

// NewProjected builds a projected CRS. The method string is the operation
// method name declared by the provider that can realize the conversion
// (e.g. "Transverse Mercator"); conversion holds its parameter values.
func NewProjected(name string, base *Geographic, method string, conversion *parameter.ValueGroup) *Projected {
	return &Projected{name: name, base: base, method: method, conversion: conversion}
}

// Name returns the CRS name.
func (p *Projected) Name() string { return p.name }

// Dimension returns 2: projected CRS are planar here.
func (p *Projected) Dimension() int { return 2 }

// Datum returns the base datum.
func (p *Projected) Datum() *Datum { return p.base.Datum() }

// Base returns the geographic base CRS.
func (p *Projected) Base() *Geographic { return p.base }

// Method returns the operation-method name of the defining conversion.
func (p *Projected) Method() string { return p.method }

// Conversion returns the parameter values of the defining conversion.
func (p *Projected) Conversion() *parameter.ValueGroup { return p.conversion }
