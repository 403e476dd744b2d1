// SPDX-License-Identifier: MIT

package provider

import (
	"github.com/shruda/geodesy/parameter"
	"github.com/shruda/geodesy/transform"
	"github.com/shruda/geodesy/unit"
)

// Provider is an operation method that can manufacture its transform from
// a filled parameter group. Providers are immutable after construction and
// safe for concurrent use.
type Provider interface {
	transform.Method

	// Name returns the method's primary (EPSG) name.
	Name() string

	// Identifier returns the authority identifier, such as "EPSG:9807".
	Identifier() string

	// CreateTransform builds the complete transform described by the
	// values: angles in, taking care of units, derived parameters and the
	// normalize/denormalize bracket.
	CreateTransform(f transform.Factory, values *parameter.ValueGroup) (transform.Transform, error)
}

// method carries the identity and contract shared by every provider.
type method struct {
	name       string
	identifier string
	group      *parameter.DescriptorGroup
	srcDim     int
	tgtDim     int
}

func (m *method) Name() string                           { return m.name }
func (m *method) Identifier() string                     { return m.identifier }
func (m *method) Parameters() *parameter.DescriptorGroup { return m.group }
func (m *method) SourceDimensions() int                  { return m.srcDim }
func (m *method) TargetDimensions() int                  { return m.tgtDim }

// NewValues returns an empty value group bound to the method's contract.
func (m *method) NewValues() *parameter.ValueGroup {
	return parameter.NewValues(m.group)
}

// copyValues mirrors explicitly supplied values into the contextual
// parameters so the complete operation stays inspectable after assembly.
func copyValues(dst, src *parameter.ValueGroup) {
	for _, d := range src.Group().Descriptors() {
		if !src.IsSet(d) {
			continue
		}
		if v, err := src.Value(d); err == nil {
			_ = dst.Set(d.Name(), v, d.Unit())
		}
	}
}

// ellipsoidAxes are the parameter descriptors every map projection shares.
type ellipsoidAxes struct {
	semiMajor *parameter.Descriptor
	semiMinor *parameter.Descriptor
}

func newEllipsoidAxes() ellipsoidAxes {
	return ellipsoidAxes{
		semiMajor: parameter.NewBuilder("semi_major").
			Unit(unit.Metre).Bounds(0, 1e9).Required().Create(),
		semiMinor: parameter.NewBuilder("semi_minor").
			Unit(unit.Metre).Bounds(0, 1e9).Required().Create(),
	}
}
