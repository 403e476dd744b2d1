// SPDX-License-Identifier: MIT

package provider

import (
	"math"

	"github.com/shruda/geodesy/parameter"
	"github.com/shruda/geodesy/transform"
	"github.com/shruda/geodesy/unit"
)

// UTM layout constants.
const (
	// ZoneWidth is the longitude span of one UTM zone in degrees.
	ZoneWidth = 6.0

	// ZoneCount is the number of UTM zones.
	ZoneCount = 60

	// UTMScaleFactor is the scale factor at the natural origin.
	UTMScaleFactor = 0.9996

	// UTMFalseEasting in metres, shared by every zone.
	UTMFalseEasting = 500000.0

	// UTMFalseNorthing for the southern hemisphere in metres (zero in the
	// northern hemisphere).
	UTMFalseNorthing = 10000000.0
)

// UTMZone returns the UTM zone (1…60) for a position in degrees,
// including the two standard irregularities: the widened zone 32 over
// south-west Norway and the 9°-spaced zones 31/33/35/37 over Svalbard.
// The longitude is wrapped into [−180°, 180°) first.
func UTMZone(latitude, longitude float64) int {
	lon := math.Mod(longitude+180, 360)
	if lon < 0 {
		lon += 360
	}
	lon -= 180 // now in [-180, 180)
	zone := int(math.Floor((lon+180)/ZoneWidth)) + 1
	if zone > ZoneCount {
		zone = ZoneCount
	}
	switch {
	case latitude >= 56 && latitude < 64 && lon >= 3 && lon < 12:
		zone = 32
	case latitude >= 72 && latitude < 84 && lon >= 0 && lon < 42:
		switch {
		case lon < 9:
			zone = 31
		case lon < 21:
			zone = 33
		case lon < 33:
			zone = 35
		default:
			zone = 37
		}
	}
	return zone
}

// CentralMeridian returns the central meridian of a UTM zone in degrees.
func CentralMeridian(zone int) float64 {
	return float64(zone)*ZoneWidth - 183
}

// TransverseMercator provides the Transverse Mercator projection
// (EPSG:9807), the basis of every UTM zone.
type TransverseMercator struct {
	method
	axes             ellipsoidAxes
	latitudeOfOrigin *parameter.Descriptor
	centralMeridian  *parameter.Descriptor
	scaleFactor      *parameter.Descriptor
	falseEasting     *parameter.Descriptor
	falseNorthing    *parameter.Descriptor
}

// NewTransverseMercator returns the provider.
func NewTransverseMercator() *TransverseMercator {
	p := &TransverseMercator{
		axes: newEllipsoidAxes(),
		latitudeOfOrigin: parameter.NewBuilder("Latitude of natural origin").
			Alias("latitude_of_origin").Unit(unit.Degree).Bounds(-90, 90).Default(0).Create(),
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
		name:       "Transverse Mercator",
		identifier: "EPSG:9807",
		group: parameter.NewGroup("Transverse Mercator", "EPSG:9807",
			p.axes.semiMajor, p.axes.semiMinor,
			p.latitudeOfOrigin, p.centralMeridian, p.scaleFactor,
			p.falseEasting, p.falseNorthing),
		srcDim: 2,
		tgtDim: 2,
	}
	return p
}

// CreateTransform implements Provider: (λ°, φ°) in, (easting, northing)
// in metres out.
func (p *TransverseMercator) CreateTransform(f transform.Factory, values *parameter.ValueGroup) (transform.Transform, error) {
	const tag = "TransverseMercator.CreateTransform"
	sa, err := values.Value(p.axes.semiMajor)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	sb, err := values.Value(p.axes.semiMinor)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	phi0, err := values.ValueIn(p.latitudeOfOrigin, unit.Radian)
	if err != nil {
		return nil, providerErrorf(tag, err)
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
	kernel := transform.NewTransverseMercator(ctx, e2, phi0)
	return ctx.CreateConcatenatedTransform(f, kernel)
}
