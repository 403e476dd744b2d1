// SPDX-License-Identifier: MIT

// Package crs: the well-known definition registry.
// One Registry is built eagerly at process start and handed by reference to
// every consumer (transform factories, grid-reference encoders). There are
// no package-level mutable tables behind it.

package crs

// Registry holds the well-known ellipsoids, datums and geographic CRS.
// Immutable after NewRegistry; safe for concurrent reads.
type Registry struct {
	wgs84     *Ellipsoid
	grs80     *Ellipsoid
	intl1924  *Ellipsoid
	wgs84Dat  *Datum
	ed50Dat   *Datum
	geo2D     *Geographic
	geo3D     *Geographic
	ed50Geo2D *Geographic
}

// NewRegistry eagerly builds the registry of well-known definitions.
// Axis lengths follow the EPSG dataset.
func NewRegistry() *Registry {
	r := &Registry{}
	// The hard-coded axes below satisfy NewEllipsoid's invariants; errors
	// here would be programmer mistakes, hence the panic on construction.
	mustEllipsoid := func(name string, a, b float64) *Ellipsoid {
		e, err := NewEllipsoid(name, a, b)
		if err != nil {
			panic(err)
		}
		return e
	}
	r.wgs84 = mustEllipsoid("WGS 84", 6378137, 6356752.314245179)
	r.grs80 = mustEllipsoid("GRS 1980", 6378137, 6356752.314140356)
	r.intl1924 = mustEllipsoid("International 1924", 6378388, 6356911.9461279465)

	r.wgs84Dat = NewDatum("World Geodetic System 1984", r.wgs84)
	r.ed50Dat = NewDatum("European Datum 1950", r.intl1924)

	r.geo2D = NewGeographic("WGS 84", r.wgs84Dat, 2)
	r.geo3D = NewGeographic("WGS 84 (3D)", r.wgs84Dat, 3)
	r.ed50Geo2D = NewGeographic("ED50", r.ed50Dat, 2)
	return r
}

// WGS84 returns the WGS 84 ellipsoid.
func (r *Registry) WGS84() *Ellipsoid { return r.wgs84 }

// GRS80 returns the GRS 1980 ellipsoid.
func (r *Registry) GRS80() *Ellipsoid { return r.grs80 }

// International1924 returns the Hayford ellipsoid used by ED50.
func (r *Registry) International1924() *Ellipsoid { return r.intl1924 }

// Geographic returns the two-dimensional WGS 84 geographic CRS
// (latitude, longitude, degrees).
func (r *Registry) Geographic() *Geographic { return r.geo2D }

// Geographic3D returns the WGS 84 geographic CRS with ellipsoidal height.
func (r *Registry) Geographic3D() *Geographic { return r.geo3D }

// ED50 returns the European Datum 1950 geographic CRS.
func (r *Registry) ED50() *Geographic { return r.ed50Geo2D }
