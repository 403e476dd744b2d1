// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shruda/geodesy/crs"
	"github.com/shruda/geodesy/transform"
)

// buildUTM32 assembles the complete WGS84 / UTM zone 32 north conversion:
// degrees in, metres out.
func buildUTM32(t *testing.T) transform.Transform {
	t.Helper()
	reg := crs.NewRegistry()
	wgs84 := reg.WGS84()
	f := transform.NewFactory()
	ctx := mustContext(t, 2, 2)
	_, err := ctx.NormalizeGeographicInputs(9)
	require.NoError(t, err)
	_, err = ctx.DenormalizeCartesianOutputs(wgs84.SemiMajor()*0.9996, 500000, 0)
	require.NoError(t, err)
	kernel := transform.NewTransverseMercator(ctx, wgs84.EccentricitySquared(), 0)
	complete, err := ctx.CreateConcatenatedTransform(f, kernel)
	require.NoError(t, err)
	return complete
}

// TestTransverseMercator_UTM32 checks the full pipeline against reference
// values for a point near Mainz (50°N 8°E, UTM zone 32 north).
func TestTransverseMercator_UTM32(t *testing.T) {
	utm := buildUTM32(t)

	out, err := utm.Transform([]float64{8, 50})
	require.NoError(t, err)
	assert.InDelta(t, 428333.552, out[0], 1e-3)
	assert.InDelta(t, 5539109.816, out[1], 1e-3)

	t.Run("round trip", func(t *testing.T) {
		inv, err := utm.Inverse()
		require.NoError(t, err)
		back, err := inv.Transform(out)
		require.NoError(t, err)
		assert.InDelta(t, 8, back[0], 1e-9)
		assert.InDelta(t, 50, back[1], 1e-9)
	})

	t.Run("round trip far from the central meridian", func(t *testing.T) {
		// several degrees out the footpoint series alone drifts by metres;
		// the iterative closure has to hold these to the micro-degree and
		// far beyond
		inv, err := utm.Inverse()
		require.NoError(t, err)
		for _, pt := range [][]float64{{3.1, 57}, {16, 70}, {1, -40}} {
			out, err := utm.Transform(pt)
			require.NoError(t, err)
			back, err := inv.Transform(out)
			require.NoError(t, err)
			assert.InDelta(t, pt[0], back[0], 1e-10)
			assert.InDelta(t, pt[1], back[1], 1e-10)
		}
	})

	t.Run("central meridian maps to false easting", func(t *testing.T) {
		out, err := utm.Transform([]float64{9, 50})
		require.NoError(t, err)
		assert.InDelta(t, 500000, out[0], 1e-6)
	})

	t.Run("latitude beyond pole rejected", func(t *testing.T) {
		_, err := utm.Transform([]float64{9, 90.5})
		require.ErrorIs(t, err, transform.ErrOutsideDomain)
	})
}

// buildUPSNorth assembles the WGS84 Universal Polar Stereographic north
// conversion (k0 = 0.994, false easting/northing 2 000 000 m).
func buildUPSNorth(t *testing.T) transform.Transform {
	t.Helper()
	reg := crs.NewRegistry()
	wgs84 := reg.WGS84()
	f := transform.NewFactory()
	ctx := mustContext(t, 2, 2)
	_, err := ctx.NormalizeGeographicInputs(0)
	require.NoError(t, err)
	_, err = ctx.DenormalizeCartesianOutputs(wgs84.SemiMajor()*0.994, 2000000, 2000000)
	require.NoError(t, err)
	kernel := transform.NewPolarStereographic(ctx, wgs84.EccentricitySquared(), false)
	complete, err := ctx.CreateConcatenatedTransform(f, kernel)
	require.NoError(t, err)
	return complete
}

// TestPolarStereographic_UPS checks the north aspect against reference
// values and the exact pole.
func TestPolarStereographic_UPS(t *testing.T) {
	ups := buildUPSNorth(t)

	out, err := ups.Transform([]float64{45, 87})
	require.NoError(t, err)
	assert.InDelta(t, 2235568.725, out[0], 1e-3)
	assert.InDelta(t, 1764431.275, out[1], 1e-3)

	t.Run("pole maps to grid center", func(t *testing.T) {
		out, err := ups.Transform([]float64{0, 90})
		require.NoError(t, err)
		assert.InDelta(t, 2000000, out[0], 1e-6)
		assert.InDelta(t, 2000000, out[1], 1e-6)
	})

	t.Run("round trip", func(t *testing.T) {
		inv, err := ups.Inverse()
		require.NoError(t, err)
		back, err := inv.Transform(out)
		require.NoError(t, err)
		assert.InDelta(t, 45, back[0], 1e-9)
		assert.InDelta(t, 87, back[1], 1e-9)
	})
}

// TestPolarStereographic_SouthAspect mirrors the north aspect through the
// equator: the south projection of (λ, −φ) shares the easting and flips
// nothing else.
func TestPolarStereographic_SouthAspect(t *testing.T) {
	ctxN := mustContext(t, 2, 2)
	ctxS := mustContext(t, 2, 2)
	e2 := 0.00669437999014
	north := transform.NewPolarStereographic(ctxN, e2, false)
	south := transform.NewPolarStereographic(ctxS, e2, true)

	lambda, phi := 0.3, 1.45 // radians
	n, err := north.Transform([]float64{lambda, phi})
	require.NoError(t, err)
	s, err := south.Transform([]float64{lambda, -phi})
	require.NoError(t, err)
	assert.InDelta(t, n[0], s[0], 1e-15)
	assert.InDelta(t, -n[1], s[1], 1e-15)
}

// TestMolodensky_ED50ToWGS84 checks both variants against reference
// values for a 3D shift from the International 1924 ellipsoid.
func TestMolodensky_ED50ToWGS84(t *testing.T) {
	reg := crs.NewRegistry()
	intl := reg.International1924()
	wgs84 := reg.WGS84()
	f := transform.NewFactory()
	nan := math.NaN()
	diff := transform.EllipsoidDifferences{DeltaA: nan, DeltaF: nan}

	t.Run("standard", func(t *testing.T) {
		tr, err := transform.NewMolodenskyTransform(f, newStubMethod(3, 3),
			intl, wgs84, diff, -87, -98, -121, false)
		require.NoError(t, err)
		out, err := tr.Transform([]float64{2, 45, 100})
		require.NoError(t, err)
		assert.InDelta(t, 1.99879642408795, out[0], 1e-11)
		assert.InDelta(t, 44.998982949985674, out[1], 1e-11)
		assert.InDelta(t, 155.9317631, out[2], 1e-6)
	})

	t.Run("abridged", func(t *testing.T) {
		tr, err := transform.NewMolodenskyTransform(f, newStubMethod(3, 3),
			intl, wgs84, diff, -87, -98, -121, true)
		require.NoError(t, err)
		out, err := tr.Transform([]float64{2, 45, 100})
		require.NoError(t, err)
		assert.InDelta(t, 1.9987964052500964, out[0], 1e-11)
		assert.InDelta(t, 44.99898293052406, out[1], 1e-11)
		assert.InDelta(t, 155.8550133, out[2], 1e-6)
	})

	t.Run("round trip", func(t *testing.T) {
		tr, err := transform.NewMolodenskyTransform(f, newStubMethod(3, 3),
			intl, wgs84, diff, -87, -98, -121, false)
		require.NoError(t, err)
		inv, err := tr.Inverse()
		require.NoError(t, err)
		out, err := tr.Transform([]float64{2, 45, 100})
		require.NoError(t, err)
		back, err := inv.Transform(out)
		require.NoError(t, err)
		// Molodensky is not exactly self-inverse; hundreds of metres of
		// shift survive round-tripping to within centimetres
		assert.InDelta(t, 2, back[0], 1e-6)
		assert.InDelta(t, 45, back[1], 1e-6)
		assert.InDelta(t, 100, back[2], 1e-1)
	})

	t.Run("two dimensional", func(t *testing.T) {
		tr, err := transform.NewMolodenskyTransform(f, newStubMethod(2, 2),
			intl, wgs84, diff, -87, -98, -121, false)
		require.NoError(t, err)
		out, err := tr.Transform([]float64{2, 45})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.InDelta(t, 1.998796, out[0], 1e-5)
		assert.InDelta(t, 44.998983, out[1], 1e-5)
	})
}

// TestEllipsoidDifferences_Resolve checks explicit-wins precedence.
func TestEllipsoidDifferences_Resolve(t *testing.T) {
	reg := crs.NewRegistry()
	intl := reg.International1924()
	wgs84 := reg.WGS84()

	t.Run("computed fallback", func(t *testing.T) {
		d := transform.EllipsoidDifferences{DeltaA: math.NaN(), DeltaF: math.NaN()}
		da, df := d.Resolve(intl, wgs84)
		assert.InDelta(t, -251, da, 1e-9)
		assert.InDelta(t, wgs84.Flattening()-intl.Flattening(), df, 0)
	})

	t.Run("explicit wins", func(t *testing.T) {
		d := transform.EllipsoidDifferences{DeltaA: -250, DeltaF: 1e-5}
		da, df := d.Resolve(intl, wgs84)
		assert.Equal(t, -250.0, da)
		assert.Equal(t, 1e-5, df)
	})
}
