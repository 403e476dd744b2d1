// SPDX-License-Identifier: MIT

package provider

import (
	"math"

	"github.com/shruda/geodesy/parameter"
	"github.com/shruda/geodesy/transform"
	"github.com/shruda/geodesy/unit"
)

// Universal Polar Stereographic layout constants.
const (
	// UPSScaleFactor is the scale factor at the pole.
	UPSScaleFactor = 0.994

	// UPSFalseEasting and UPSFalseNorthing in metres, putting the pole at
	// the center of a 4 000 km grid square.
	UPSFalseEasting  = 2000000.0
	UPSFalseNorthing = 2000000.0
)

// Comparison tolerances for classifying polar parameterizations.
const (
	angularEpsilon = 1e-9 // degrees
	linearEpsilon  = 1e-6 // metres
	scaleEpsilon   = 1e-9
)

// PolarStereographicA provides the Polar Stereographic projection,
// variant A (EPSG:9810): the natural origin is exactly at a pole and the
// scale factor is given at that pole.
type PolarStereographicA struct {
	method
	axes             ellipsoidAxes
	latitudeOfOrigin *parameter.Descriptor
	centralMeridian  *parameter.Descriptor
	scaleFactor      *parameter.Descriptor
	falseEasting     *parameter.Descriptor
	falseNorthing    *parameter.Descriptor
}

// NewPolarStereographicA returns the provider.
func NewPolarStereographicA() *PolarStereographicA {
	p := &PolarStereographicA{
		axes: newEllipsoidAxes(),
		latitudeOfOrigin: parameter.NewBuilder("Latitude of natural origin").
			Alias("latitude_of_origin").Unit(unit.Degree).Bounds(-90, 90).Required().Create(),
		centralMeridian: parameter.NewBuilder("Longitude of natural origin").
			Alias("central_meridian").Unit(unit.Degree).Bounds(-180, 180).Default(0).Create(),
		scaleFactor: parameter.NewBuilder("Scale factor at natural origin").
			Alias("scale_factor").Unit(unit.One).Bounds(0, 10).Default(1).Create(),
		falseEasting: parameter.NewBuilder("False easting").
			Alias("false_easting").Unit(unit.Metre).Default(0).Create(),
		falseNorthing: parameter.NewBuilder("False northing").
			Alias("false_northing").Unit(unit.Metre).Default(0).Create(),
	}
	p.method = method{
		name:       "Polar Stereographic (variant A)",
		identifier: "EPSG:9810",
		group: parameter.NewGroup("Polar Stereographic (variant A)", "EPSG:9810",
			p.axes.semiMajor, p.axes.semiMinor,
			p.latitudeOfOrigin, p.centralMeridian, p.scaleFactor,
			p.falseEasting, p.falseNorthing),
		srcDim: 2,
		tgtDim: 2,
	}
	return p
}

// IsUPS classifies a parameter group as the pole-centered case the
// projection simplifies to: +1 when the scale factor is one, the false
// easting, false northing and central meridian are zero and the origin is
// the north pole; −1 for the south pole; 0 otherwise. Angles are compared
// with an angular epsilon and lengths with a linear one, so values that
// went through unit round-trips still classify.
func (p *PolarStereographicA) IsUPS(values *parameter.ValueGroup) int {
	k0 := values.Optional(p.scaleFactor)
	fe := values.Optional(p.falseEasting)
	fn := values.Optional(p.falseNorthing)
	cm := values.Optional(p.centralMeridian)
	if math.Abs(k0-1) > scaleEpsilon ||
		math.Abs(fe) > linearEpsilon ||
		math.Abs(fn) > linearEpsilon ||
		math.Abs(cm) > angularEpsilon {
		return 0
	}
	phi0 := values.Optional(p.latitudeOfOrigin)
	switch {
	case math.Abs(phi0-90) <= angularEpsilon:
		return +1
	case math.Abs(phi0+90) <= angularEpsilon:
		return -1
	}
	return 0
}

// CreateTransform implements Provider.
//
// Errors: ErrIllegalArgument when the latitude of origin is not a pole.
func (p *PolarStereographicA) CreateTransform(f transform.Factory, values *parameter.ValueGroup) (transform.Transform, error) {
	const tag = "PolarStereographicA.CreateTransform"
	sa, err := values.Value(p.axes.semiMajor)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	sb, err := values.Value(p.axes.semiMinor)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	phi0, err := values.Value(p.latitudeOfOrigin)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	if math.Abs(math.Abs(phi0)-90) > angularEpsilon {
		return nil, providerErrorf(tag, ErrIllegalArgument)
	}
	lambda0, err := values.Value(p.centralMeridian)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	k0, err := values.Value(p.scaleFactor)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	fe, err := values.Value(p.falseEasting)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	fn, err := values.Value(p.falseNorthing)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	ctx, err := transform.NewContextualParameters(p)
	if err != nil {
		return nil, err
	}
	copyValues(ctx.Values(), values)
	if _, err := ctx.NormalizeGeographicInputs(lambda0); err != nil {
		return nil, err
	}
	if _, err := ctx.DenormalizeCartesianOutputs(sa*k0, fe, fn); err != nil {
		return nil, err
	}
	e2 := 1 - (sb*sb)/(sa*sa)
	kernel := transform.NewPolarStereographic(ctx, e2, phi0 < 0)
	return ctx.CreateConcatenatedTransform(f, kernel)
}
