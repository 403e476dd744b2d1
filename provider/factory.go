// SPDX-License-Identifier: MIT

package provider

import (
	"fmt"
	"strings"

	"github.com/shruda/geodesy/crs"
	"github.com/shruda/geodesy/matrix"
	"github.com/shruda/geodesy/parameter"
	"github.com/shruda/geodesy/transform"
	"github.com/shruda/geodesy/unit"
)

// Factory is the operation registry: providers looked up by method name,
// projected-CRS composition for the UTM and UPS families, and complete
// operation search between reference systems. Construct once, share
// freely; a Factory is safe for concurrent use after NewFactory returns.
type Factory struct {
	transforms *transform.DefaultFactory
	registry   *crs.Registry
	methods    map[string]Provider

	// shifts holds geocentric translations keyed by "source→target"
	// datum names; only pairs registered here can be bridged.
	shifts map[string][3]float64
}

// NewFactory builds the factory over a CRS registry, with the Molodensky
// pair, Transverse Mercator and Polar Stereographic (variant A) providers
// registered, plus the classical ED50 → WGS 84 mean shift.
func NewFactory(registry *crs.Registry) *Factory {
	f := &Factory{
		transforms: transform.NewFactory(),
		registry:   registry,
		methods:    make(map[string]Provider),
		shifts:     make(map[string][3]float64),
	}
	for _, p := range []Provider{
		NewMolodensky(false),
		NewMolodensky(true),
		NewTransverseMercator(),
		NewPolarStereographicA(),
	} {
		f.methods[strings.ToLower(p.Name())] = p
	}
	f.RegisterShift("European Datum 1950", "World Geodetic System 1984", -87, -98, -121)
	return f
}

// Transforms exposes the underlying transform factory.
func (f *Factory) Transforms() *transform.DefaultFactory { return f.transforms }

// Registry exposes the CRS registry the factory was built over.
func (f *Factory) Registry() *crs.Registry { return f.registry }

// Method returns the provider registered under the given name
// (case-insensitive).
//
// Errors: ErrUnknownMethod.
func (f *Factory) Method(name string) (Provider, error) {
	if p, ok := f.methods[strings.ToLower(name)]; ok {
		return p, nil
	}
	return nil, providerErrorf(fmt.Sprintf("Method(%q)", name), ErrUnknownMethod)
}

// RegisterShift records the mean geocentric translation from one datum to
// another, in metres. The reverse direction is derived automatically.
func (f *Factory) RegisterShift(sourceDatum, targetDatum string, tx, ty, tz float64) {
	f.shifts[sourceDatum+"→"+targetDatum] = [3]float64{tx, ty, tz}
	f.shifts[targetDatum+"→"+sourceDatum] = [3]float64{-tx, -ty, -tz}
}

// UTM composes the projected CRS for a UTM zone over the given geographic
// base, northern or southern hemisphere.
//
// Errors: ErrIllegalArgument for a zone outside 1…60.
func (f *Factory) UTM(base *crs.Geographic, zone int, north bool) (*crs.Projected, error) {
	if zone < 1 || zone > ZoneCount {
		return nil, providerErrorf("UTM", ErrIllegalArgument)
	}
	p, err := f.Method("Transverse Mercator")
	if err != nil {
		return nil, err
	}
	ell := base.Datum().Ellipsoid()
	v := parameter.NewValues(p.Parameters())
	fn := 0.0
	hemisphere := "N"
	if !north {
		fn = UTMFalseNorthing
		hemisphere = "S"
	}
	for _, set := range []struct {
		name  string
		value float64
		unit  unit.Unit
	}{
		{"semi_major", ell.SemiMajor(), unit.Metre},
		{"semi_minor", ell.SemiMinor(), unit.Metre},
		{"Latitude of natural origin", 0, unit.Degree},
		{"Longitude of natural origin", CentralMeridian(zone), unit.Degree},
		{"Scale factor at natural origin", UTMScaleFactor, unit.One},
		{"False easting", UTMFalseEasting, unit.Metre},
		{"False northing", fn, unit.Metre},
	} {
		if err := v.Set(set.name, set.value, set.unit); err != nil {
			return nil, providerErrorf("UTM", err)
		}
	}
	name := fmt.Sprintf("%s / UTM zone %d%s", base.Name(), zone, hemisphere)
	return crs.NewProjected(name, base, p.Name(), v), nil
}

// UPS composes the projected CRS for the Universal Polar Stereographic
// grid over the given geographic base, north or south aspect.
func (f *Factory) UPS(base *crs.Geographic, north bool) (*crs.Projected, error) {
	p, err := f.Method("Polar Stereographic (variant A)")
	if err != nil {
		return nil, err
	}
	ell := base.Datum().Ellipsoid()
	v := parameter.NewValues(p.Parameters())
	phi0 := 90.0
	aspect := "North"
	if !north {
		phi0 = -90
		aspect = "South"
	}
	for _, set := range []struct {
		name  string
		value float64
		unit  unit.Unit
	}{
		{"semi_major", ell.SemiMajor(), unit.Metre},
		{"semi_minor", ell.SemiMinor(), unit.Metre},
		{"Latitude of natural origin", phi0, unit.Degree},
		{"Longitude of natural origin", 0, unit.Degree},
		{"Scale factor at natural origin", UPSScaleFactor, unit.One},
		{"False easting", UPSFalseEasting, unit.Metre},
		{"False northing", UPSFalseNorthing, unit.Metre},
	} {
		if err := v.Set(set.name, set.value, set.unit); err != nil {
			return nil, providerErrorf("UPS", err)
		}
	}
	name := fmt.Sprintf("%s / Universal Polar Stereographic %s", base.Name(), aspect)
	return crs.NewProjected(name, base, p.Name(), v), nil
}

// FindOperation builds the transform converting coordinates of source
// into coordinates of target. Supported paths: identity, geographic ↔
// projected over the same or a shift-bridged datum, geographic ↔
// geographic across registered datum shifts or dimensionality changes,
// and projected ↔ projected through the geographic hub.
//
// Errors: ErrOperationNotFound when no path exists; crs.ErrNilCRS for a
// nil argument; wrapped provider and transform errors otherwise.
func (f *Factory) FindOperation(source, target crs.CRS) (transform.Transform, error) {
	const tag = "FindOperation"
	if source == nil || target == nil {
		return nil, providerErrorf(tag, crs.ErrNilCRS)
	}
	if source == target {
		return transform.NewIdentityTransform(source.Dimension())
	}
	switch s := source.(type) {
	case *crs.Geographic:
		switch t := target.(type) {
		case *crs.Geographic:
			return f.geographicToGeographic(s, t)
		case *crs.Projected:
			prep, err := f.geographicToGeographic(s, t.Base())
			if err != nil {
				return nil, err
			}
			proj, err := f.projection(t)
			if err != nil {
				return nil, err
			}
			return f.transforms.CreateConcatenatedTransform(prep, proj)
		}
	case *crs.Projected:
		switch t := target.(type) {
		case *crs.Geographic:
			fwd, err := f.FindOperation(t, s)
			if err != nil {
				return nil, err
			}
			inv, err := fwd.Inverse()
			if err != nil {
				return nil, providerErrorf(tag, err)
			}
			return inv, nil
		case *crs.Projected:
			toGeo, err := f.FindOperation(s, s.Base())
			if err != nil {
				return nil, err
			}
			onward, err := f.FindOperation(s.Base(), t)
			if err != nil {
				return nil, err
			}
			return f.transforms.CreateConcatenatedTransform(toGeo, onward)
		}
	}
	return nil, providerErrorf(tag, ErrOperationNotFound)
}

// geographicToGeographic bridges two geographic CRS: identity for the
// same datum and dimensionality, an affine step for pure 2D/3D changes,
// and a Molodensky shift when a translation is registered for the pair.
func (f *Factory) geographicToGeographic(s, t *crs.Geographic) (transform.Transform, error) {
	const tag = "FindOperation"
	if s.Datum().Name() == t.Datum().Name() {
		if s.Dimension() == t.Dimension() {
			return transform.NewIdentityTransform(s.Dimension())
		}
		return f.dimensionChange(s.Dimension(), t.Dimension())
	}
	shift, ok := f.shifts[s.Datum().Name()+"→"+t.Datum().Name()]
	if !ok {
		return nil, providerErrorf(tag, ErrOperationNotFound)
	}
	p, err := f.Method("Molodensky")
	if err != nil {
		return nil, err
	}
	mol, err := p.(*Molodensky).Redimension(s.Dimension(), t.Dimension())
	if err != nil {
		return nil, err
	}
	se := s.Datum().Ellipsoid()
	te := t.Datum().Ellipsoid()
	v := mol.NewValues()
	for _, set := range []struct {
		name  string
		value float64
	}{
		{"src_semi_major", se.SemiMajor()},
		{"src_semi_minor", se.SemiMinor()},
		{"tgt_semi_major", te.SemiMajor()},
		{"tgt_semi_minor", te.SemiMinor()},
		{"X-axis translation", shift[0]},
		{"Y-axis translation", shift[1]},
		{"Z-axis translation", shift[2]},
	} {
		if err := v.Set(set.name, set.value, unit.Metre); err != nil {
			return nil, providerErrorf(tag, err)
		}
	}
	tr, err := mol.CreateTransform(f.transforms, v)
	if err != nil {
		return nil, err
	}
	// geographic CRS axes are latitude-first; the datum shift works in
	// longitude-first order
	return f.swapWrapped(tr, s.Dimension(), t.Dimension())
}

// dimensionChange returns the affine step adding (as zero) or dropping
// the ellipsoidal-height axis between same-datum geographic CRS.
func (f *Factory) dimensionChange(srcDim, tgtDim int) (transform.Transform, error) {
	m, err := matrix.NewDense(tgtDim+1, srcDim+1)
	if err != nil {
		return nil, providerErrorf("FindOperation", err)
	}
	for i := 0; i < tgtDim && i < srcDim; i++ {
		if err := m.Set(i, i, 1); err != nil {
			return nil, providerErrorf("FindOperation", err)
		}
	}
	if err := m.Set(tgtDim, srcDim, 1); err != nil {
		return nil, providerErrorf("FindOperation", err)
	}
	return f.transforms.CreateAffineTransform(m)
}

// projection builds the base-geographic → projected transform of a
// projected CRS, including the latitude-first → longitude-first axis swap
// in front of the provider-made conversion.
func (f *Factory) projection(p *crs.Projected) (transform.Transform, error) {
	prov, err := f.Method(p.Method())
	if err != nil {
		return nil, err
	}
	conv, err := prov.CreateTransform(f.transforms, p.Conversion())
	if err != nil {
		return nil, err
	}
	swap, err := f.axisSwap(2)
	if err != nil {
		return nil, err
	}
	return f.transforms.CreateConcatenatedTransform(swap, conv)
}

// axisSwap returns the affine transposing the first two axes of a
// dim-dimensional tuple.
func (f *Factory) axisSwap(dim int) (transform.Transform, error) {
	m, err := matrix.NewIdentity(dim + 1)
	if err != nil {
		return nil, providerErrorf("FindOperation", err)
	}
	for _, set := range [][3]int{{0, 0, 0}, {1, 1, 0}, {0, 1, 1}, {1, 0, 1}} {
		if err := m.Set(set[0], set[1], float64(set[2])); err != nil {
			return nil, providerErrorf("FindOperation", err)
		}
	}
	return f.transforms.CreateAffineTransform(m)
}

// swapWrapped brackets a longitude-first transform between axis swaps so
// it accepts and produces latitude-first tuples.
func (f *Factory) swapWrapped(tr transform.Transform, srcDim, tgtDim int) (transform.Transform, error) {
	pre, err := f.axisSwap(srcDim)
	if err != nil {
		return nil, err
	}
	post, err := f.axisSwap(tgtDim)
	if err != nil {
		return nil, err
	}
	inner, err := f.transforms.CreateConcatenatedTransform(pre, tr)
	if err != nil {
		return nil, err
	}
	return f.transforms.CreateConcatenatedTransform(inner, post)
}
