// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
)

// TransverseMercator is the normalized Transverse Mercator kernel: it maps
// (λ, φ) in radians, with λ already reduced by the central meridian, onto
// a sphere-of-radius-one projection plane. The a·k0 scale and the false
// easting/northing live in the denormalize matrix.
//
// The series expansion follows the classical USGS formulation, accurate to
// well under a centimetre inside the usual ±3° zone width.
type TransverseMercator struct {
	e2  float64 // first eccentricity squared
	ep2 float64 // second eccentricity squared e²/(1−e²)
	m0  float64 // meridian distance of the latitude of origin
	ctx *ContextualParameters
}

// NewTransverseMercator builds the kernel for the given eccentricity
// squared and latitude of origin (radians).
func NewTransverseMercator(ctx *ContextualParameters, eccentricitySquared, latitudeOfOrigin float64) *TransverseMercator {
	t := &TransverseMercator{
		e2:  eccentricitySquared,
		ep2: eccentricitySquared / (1 - eccentricitySquared),
		ctx: ctx,
	}
	t.m0 = t.meridianDistance(latitudeOfOrigin)
	return t
}

// meridianDistance returns the rectifying distance from the equator to
// latitude φ on an ellipsoid of semi-major axis 1.
func (t *TransverseMercator) meridianDistance(phi float64) float64 {
	e2, e4 := t.e2, t.e2*t.e2
	e6 := e4 * t.e2
	return (1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi)
}

// Context implements Parameterized.
func (t *TransverseMercator) Context() *ContextualParameters { return t.ctx }

// SourceDimensions implements Transform.
func (t *TransverseMercator) SourceDimensions() int { return 2 }

// TargetDimensions implements Transform.
func (t *TransverseMercator) TargetDimensions() int { return 2 }

// CacheKey implements Canonicalizable: kernels with identical eccentricity
// and origin are interchangeable.
func (t *TransverseMercator) CacheKey() string {
	return fmt.Sprintf("tmerc:%016x:%016x",
		math.Float64bits(t.e2), math.Float64bits(t.m0))
}

// Transform implements Transform.
//
// Errors: ErrMismatchedDimensions for a tuple that is not (λ, φ);
// ErrOutsideDomain when φ lies beyond a pole or the inputs are NaN.
func (t *TransverseMercator) Transform(src []float64) ([]float64, error) {
	if len(src) != 2 {
		return nil, transformErrorf(opApply, ErrMismatchedDimensions)
	}
	lambda, phi := src[0], src[1]
	if math.IsNaN(lambda) || math.IsNaN(phi) || math.Abs(phi) > math.Pi/2 {
		return nil, transformErrorf(opApply, ErrOutsideDomain)
	}
	x, y := t.project(lambda, phi)
	return []float64{x, y}, nil
}

// project evaluates the forward series at finite (λ, φ).
func (t *TransverseMercator) project(lambda, phi float64) (x, y float64) {
	sinPhi, cosPhi := math.Sincos(phi)
	if cosPhi == 0 { // exactly at a pole the meridian arc is the whole story
		return 0, t.meridianDistance(phi) - t.m0
	}
	nu := 1 / math.Sqrt(1-t.e2*sinPhi*sinPhi)
	tt := sinPhi * sinPhi / (cosPhi * cosPhi)
	cc := t.ep2 * cosPhi * cosPhi
	a := cosPhi * lambda
	a2 := a * a
	a3 := a2 * a
	x = nu * (a +
		(1-tt+cc)*a3/6 +
		(5-18*tt+tt*tt+72*cc-58*t.ep2)*a3*a2/120)
	y = t.meridianDistance(phi) - t.m0 +
		nu*sinPhi/cosPhi*(a2/2+
			(5-tt+9*cc+4*cc*cc)*a2*a2/24+
			(61-58*tt+tt*tt+600*cc-330*t.ep2)*a3*a3/720)
	return x, y
}

// Inverse implements Transform.
func (t *TransverseMercator) Inverse() (Transform, error) {
	return &inverseTransverseMercator{fwd: t}, nil
}

// inverseTransverseMercator is the reverse kernel, sharing the forward
// kernel's precomputed constants.
type inverseTransverseMercator struct {
	fwd *TransverseMercator
}

func (t *inverseTransverseMercator) Context() *ContextualParameters { return t.fwd.ctx }
func (t *inverseTransverseMercator) SourceDimensions() int          { return 2 }
func (t *inverseTransverseMercator) TargetDimensions() int          { return 2 }
func (t *inverseTransverseMercator) IsReverse() bool                { return true }

func (t *inverseTransverseMercator) CacheKey() string {
	return "inv:" + t.fwd.CacheKey()
}

func (t *inverseTransverseMercator) Inverse() (Transform, error) {
	return t.fwd, nil
}

// Refinement bounds for the inverse: the residual against the forward
// series is driven below inverseConvergence (radians on the unit sphere,
// sub-nanometre on Earth); far corners of a wide zone contract slowly, so
// the cap is generous.
const (
	inverseConvergence = 1e-16
	inverseIterations  = 25
)

// Transform recovers (λ, φ) from normalized projected coordinates: the
// footpoint-latitude series supplies the estimate, then the forward series
// is inverted by iteration until the round trip closes to machine
// precision. The series alone drifts past the millimetre several degrees
// from the central meridian, which the 100 km square letters of grid
// labels would expose.
func (t *inverseTransverseMercator) Transform(src []float64) ([]float64, error) {
	if len(src) != 2 {
		return nil, transformErrorf(opApply, ErrMismatchedDimensions)
	}
	x, y := src[0], src[1]
	if math.IsNaN(x) || math.IsNaN(y) {
		return nil, transformErrorf(opApply, ErrOutsideDomain)
	}
	f := t.fwd
	e2, e4 := f.e2, f.e2*f.e2
	e6 := e4 * f.e2
	m := f.m0 + y
	mu := m / (1 - e2/4 - 3*e4/64 - 5*e6/256)
	sqrt1me2 := math.Sqrt(1 - e2)
	e1 := (1 - sqrt1me2) / (1 + sqrt1me2)
	e12 := e1 * e1
	phi1 := mu +
		(3*e1/2-27*e1*e12/32)*math.Sin(2*mu) +
		(21*e12/16-55*e12*e12/32)*math.Sin(4*mu) +
		(151*e1*e12/96)*math.Sin(6*mu) +
		(1097*e12*e12/512)*math.Sin(8*mu)
	sinPhi1, cosPhi1 := math.Sincos(phi1)
	if cosPhi1 == 0 {
		// footpoint at a pole: longitude is indeterminate there
		return []float64{0, phi1}, nil
	}
	s2 := sinPhi1 * sinPhi1
	den := 1 - e2*s2
	nu1 := 1 / math.Sqrt(den)
	rho1 := (1 - e2) / (den * math.Sqrt(den))
	tt1 := s2 / (cosPhi1 * cosPhi1)
	cc1 := f.ep2 * cosPhi1 * cosPhi1
	d := x / nu1
	d2 := d * d
	d3 := d2 * d
	phi := phi1 - (nu1*sinPhi1/cosPhi1/rho1)*(d2/2-
		(5+3*tt1+10*cc1-4*cc1*cc1-9*f.ep2)*d2*d2/24+
		(61+90*tt1+298*cc1+45*tt1*tt1-252*f.ep2-3*cc1*cc1)*d3*d3/720)
	lambda := (d -
		(1+2*tt1+cc1)*d3/6 +
		(5-2*cc1+28*tt1-3*cc1*cc1+8*f.ep2+24*tt1*tt1)*d3*d2/120) / cosPhi1

	// Newton-style closure against the forward series. Each step corrects
	// through the local radii ν cosφ (east) and ρ (north); the neglected
	// grid convergence only slows the contraction, it never breaks it.
	for i := 0; i < inverseIterations; i++ {
		fx, fy := f.project(lambda, phi)
		dx, dy := fx-x, fy-y
		if math.Abs(dx) <= inverseConvergence && math.Abs(dy) <= inverseConvergence {
			break
		}
		sinPhi, cosPhi := math.Sincos(phi)
		if cosPhi == 0 {
			break
		}
		nu := 1 / math.Sqrt(1-e2*sinPhi*sinPhi)
		rho := (1 - e2) * nu * nu * nu
		lambda -= dx / (nu * cosPhi)
		phi -= dy / rho
	}
	return []float64{lambda, phi}, nil
}
