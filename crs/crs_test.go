// SPDX-License-Identifier: MIT

package crs_test

import (
	"errors"
	"math"
	"testing"

	"github.com/shruda/geodesy/crs"
)

// TestNewEllipsoid_Errors verifies axis validation.
func TestNewEllipsoid_Errors(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
	}{
		{"ZeroMinor", 6378137, 0},
		{"NegativeMinor", 6378137, -1},
		{"Inverted", 6356752, 6378137},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := crs.NewEllipsoid("bad", tc.a, tc.b); !errors.Is(err, crs.ErrInvalidAxes) {
				t.Errorf("NewEllipsoid(%v,%v) error = %v; want ErrInvalidAxes", tc.a, tc.b, err)
			}
		})
	}
}

// TestEllipsoid_DerivedQuantities checks flattening and eccentricity of WGS 84.
func TestEllipsoid_DerivedQuantities(t *testing.T) {
	e := crs.NewRegistry().WGS84()
	if got := 1 / e.Flattening(); math.Abs(got-298.257223563) > 1e-6 {
		t.Errorf("WGS84 1/f = %v; want 298.257223563", got)
	}
	if got := e.EccentricitySquared(); math.Abs(got-6.694379990141317e-3) > 1e-12 {
		t.Errorf("WGS84 e² = %v; want ~0.0066943799901", got)
	}
}

// TestEllipsoid_Differences verifies Δa/Δf pairwise computation.
func TestEllipsoid_Differences(t *testing.T) {
	r := crs.NewRegistry()
	src := r.International1924()
	dst := r.WGS84()
	if got := src.SemiMajorDifference(dst); math.Abs(got-(-251)) > 1e-9 {
		t.Errorf("Δa = %v; want -251", got)
	}
	// 1/f: 297 → 298.257…, so Δf is small and negative.
	if got := src.FlatteningDifference(dst); got >= 0 || math.Abs(got) > 1e-4 {
		t.Errorf("Δf = %v; want a small negative value", got)
	}
}

// TestRegistry_CRSShapes verifies dimensions and datum wiring.
func TestRegistry_CRSShapes(t *testing.T) {
	r := crs.NewRegistry()
	if d := r.Geographic().Dimension(); d != 2 {
		t.Errorf("Geographic dimension = %d; want 2", d)
	}
	if d := r.Geographic3D().Dimension(); d != 3 {
		t.Errorf("Geographic3D dimension = %d; want 3", d)
	}
	if r.Geographic().Datum().Ellipsoid() != r.WGS84() {
		t.Error("Geographic datum must reference the WGS84 ellipsoid")
	}
	if r.ED50().Datum().Ellipsoid() != r.International1924() {
		t.Error("ED50 datum must reference the International 1924 ellipsoid")
	}
}
