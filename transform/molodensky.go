// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/shruda/geodesy/crs"
)

// EllipsoidDifferences resolves the axis-length difference Δa and the
// flattening difference Δf between a source and a target ellipsoid.
// Explicit fields win when set; a NaN field falls back to the value
// computed from the two ellipsoids. Providers populate the explicit
// fields from operation parameters when the user declared them.
type EllipsoidDifferences struct {
	// DeltaA is target semi-major axis minus source semi-major axis in
	// metres, or NaN when not explicitly declared.
	DeltaA float64

	// DeltaF is target flattening minus source flattening, or NaN when
	// not explicitly declared.
	DeltaF float64
}

// Resolve returns the effective (Δa, Δf) pair for the ellipsoid pair.
func (d EllipsoidDifferences) Resolve(source, target *crs.Ellipsoid) (da, df float64) {
	da, df = d.DeltaA, d.DeltaF
	if math.IsNaN(da) {
		da = source.SemiMajorDifference(target)
	}
	if math.IsNaN(df) {
		df = source.FlatteningDifference(target)
	}
	return da, df
}

// Molodensky is the datum-shift kernel working directly in geographic
// coordinates: (λ, φ[, h]) with angles in radians and the ellipsoidal
// height in metres. Both the standard and the abridged variants are
// supported; the abridged one drops the height from the denominators.
//
// The complete transform is assembled by NewMolodenskyTransform, which
// brackets this kernel between degree↔radian conversions.
type Molodensky struct {
	tX, tY, tZ float64 // geocentric shift in metres
	a, b       float64 // source ellipsoid axes in metres
	da, df     float64 // resolved differences toward the target
	e2         float64
	abridged   bool
	source3D   bool
	target3D   bool
	reverse    bool
	ctx        *ContextualParameters
}

// NewMolodenskyKernel builds the bare kernel. Most callers want
// NewMolodenskyTransform instead.
func NewMolodenskyKernel(ctx *ContextualParameters, source *crs.Ellipsoid,
	tx, ty, tz, da, df float64, source3D, target3D, abridged bool) *Molodensky {
	return &Molodensky{
		tX: tx, tY: ty, tZ: tz,
		a: source.SemiMajor(), b: source.SemiMinor(),
		da: da, df: df,
		e2:       source.EccentricitySquared(),
		abridged: abridged,
		source3D: source3D,
		target3D: target3D,
		ctx:      ctx,
	}
}

// Context implements Parameterized.
func (m *Molodensky) Context() *ContextualParameters { return m.ctx }

// SourceDimensions implements Transform.
func (m *Molodensky) SourceDimensions() int {
	if m.source3D {
		return 3
	}
	return 2
}

// TargetDimensions implements Transform.
func (m *Molodensky) TargetDimensions() int {
	if m.target3D {
		return 3
	}
	return 2
}

// CacheKey implements Canonicalizable.
func (m *Molodensky) CacheKey() string {
	return fmt.Sprintf("molodensky:%016x:%016x:%016x:%016x:%016x:%016x:%t:%t:%t",
		math.Float64bits(m.tX), math.Float64bits(m.tY), math.Float64bits(m.tZ),
		math.Float64bits(m.a), math.Float64bits(m.da), math.Float64bits(m.df),
		m.abridged, m.source3D, m.target3D)
}

// Transform implements Transform.
func (m *Molodensky) Transform(src []float64) ([]float64, error) {
	if len(src) != m.SourceDimensions() {
		return nil, transformErrorf(opApply, ErrMismatchedDimensions)
	}
	lambda, phi := src[0], src[1]
	if math.IsNaN(lambda) || math.IsNaN(phi) || math.Abs(phi) > math.Pi/2 {
		return nil, transformErrorf(opApply, ErrOutsideDomain)
	}
	var h float64
	if m.source3D {
		h = src[2]
	}
	sinPhi, cosPhi := math.Sincos(phi)
	sinLam, cosLam := math.Sincos(lambda)
	sin2 := sinPhi * sinPhi
	den := 1 - m.e2*sin2
	// prime vertical and meridian radii of curvature
	nu := m.a / math.Sqrt(den)
	rho := m.a * (1 - m.e2) / (den * math.Sqrt(den))

	shift := -m.tX*sinPhi*cosLam - m.tY*sinPhi*sinLam + m.tZ*cosPhi
	var dPhi, dLam, dH float64
	if m.abridged {
		f := (m.a - m.b) / m.a
		adffda := m.a*m.df + f*m.da
		dPhi = (shift + adffda*math.Sin(2*phi)) / rho
		if cosPhi != 0 {
			dLam = (-m.tX*sinLam + m.tY*cosLam) / (nu * cosPhi)
		}
		dH = m.tX*cosPhi*cosLam + m.tY*cosPhi*sinLam + m.tZ*sinPhi +
			adffda*sin2 - m.da
	} else {
		dPhi = (shift +
			m.da*(nu*m.e2*sinPhi*cosPhi)/m.a +
			m.df*(rho*(m.a/m.b)+nu*(m.b/m.a))*sinPhi*cosPhi) / (rho + h)
		if cosPhi != 0 {
			dLam = (-m.tX*sinLam + m.tY*cosLam) / ((nu + h) * cosPhi)
		}
		dH = m.tX*cosPhi*cosLam + m.tY*cosPhi*sinLam + m.tZ*sinPhi -
			m.da*m.a/nu + m.df*(m.b/m.a)*nu*sin2
	}
	dst := []float64{lambda + dLam, phi + dPhi}
	if m.target3D {
		dst = append(dst, h+dH)
	}
	return dst, nil
}

// Inverse implements Transform: the Molodensky shift with every parameter
// negated, starting from the target ellipsoid, with the dimensionalities
// swapped.
func (m *Molodensky) Inverse() (Transform, error) {
	ta := m.a + m.da
	sourceF := (m.a - m.b) / m.a
	tb := ta * (1 - (sourceF + m.df))
	target, err := crs.NewEllipsoid("derived target ellipsoid", ta, tb)
	if err != nil {
		return nil, transformErrorf(opInverse, errorsJoin(ErrNoninvertible, err))
	}
	inv := NewMolodenskyKernel(m.ctx, target,
		-m.tX, -m.tY, -m.tZ, -m.da, -m.df,
		m.target3D, m.source3D, m.abridged)
	inv.reverse = true
	return inv, nil
}

// IsReverse reports whether this kernel was obtained through Inverse.
func (m *Molodensky) IsReverse() bool { return m.reverse }

// NewMolodenskyTransform assembles the complete degree-based datum shift:
// degree→radian normalization, the Molodensky kernel, radian→degree
// denormalization. Heights pass through in metres. diff carries the
// explicitly declared Δa/Δf when the user supplied them.
//
// Errors: ErrFactory (wrapped) when a step cannot be built;
// parameter.ErrMissingParameter when the method lacks dimensionalities.
func NewMolodenskyTransform(f Factory, method Method, source, target *crs.Ellipsoid,
	diff EllipsoidDifferences, tx, ty, tz float64, abridged bool) (Transform, error) {
	ctx, err := NewContextualParameters(method)
	if err != nil {
		return nil, err
	}
	if _, err := ctx.NormalizeGeographicInputs(0); err != nil {
		return nil, err
	}
	if _, err := ctx.DenormalizeGeographicOutputs(0); err != nil {
		return nil, err
	}
	da, df := diff.Resolve(source, target)
	kernel := NewMolodenskyKernel(ctx, source, tx, ty, tz, da, df,
		method.SourceDimensions() >= 3, method.TargetDimensions() >= 3, abridged)
	return ctx.CreateConcatenatedTransform(f, kernel)
}
