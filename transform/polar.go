// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
)

// PolarStereographic is the normalized Polar Stereographic kernel,
// variant A: latitude of origin exactly at a pole, scale factor given at
// that pole. Inputs are (λ, φ) in radians with λ already reduced by the
// longitude of origin; outputs are dimensionless plane coordinates scaled
// by a·k0 in the denormalize matrix.
type PolarStereographic struct {
	e     float64 // first eccentricity
	coef  float64 // √((1+e)^(1+e) · (1−e)^(1−e))
	south bool
	ctx   *ContextualParameters
}

// NewPolarStereographic builds the kernel for the given eccentricity
// squared. south selects the south-pole aspect.
func NewPolarStereographic(ctx *ContextualParameters, eccentricitySquared float64, south bool) *PolarStereographic {
	e := math.Sqrt(eccentricitySquared)
	return &PolarStereographic{
		e:     e,
		coef:  math.Sqrt(math.Pow(1+e, 1+e) * math.Pow(1-e, 1-e)),
		south: south,
		ctx:   ctx,
	}
}

// Context implements Parameterized.
func (p *PolarStereographic) Context() *ContextualParameters { return p.ctx }

// SourceDimensions implements Transform.
func (p *PolarStereographic) SourceDimensions() int { return 2 }

// TargetDimensions implements Transform.
func (p *PolarStereographic) TargetDimensions() int { return 2 }

// CacheKey implements Canonicalizable.
func (p *PolarStereographic) CacheKey() string {
	return fmt.Sprintf("polar:%016x:%t", math.Float64bits(p.e), p.south)
}

// tsfn returns the isometric-latitude factor
// tan(π/4 − φ/2) · ((1+e·sinφ)/(1−e·sinφ))^(e/2).
func (p *PolarStereographic) tsfn(phi, sinPhi float64) float64 {
	es := p.e * sinPhi
	return math.Tan(math.Pi/4-phi/2) * math.Pow((1+es)/(1-es), p.e/2)
}

// Transform implements Transform. The south aspect is handled by
// mirroring the latitude and the northing.
func (p *PolarStereographic) Transform(src []float64) ([]float64, error) {
	if len(src) != 2 {
		return nil, transformErrorf(opApply, ErrMismatchedDimensions)
	}
	lambda, phi := src[0], src[1]
	if math.IsNaN(lambda) || math.IsNaN(phi) || math.Abs(phi) > math.Pi/2 {
		return nil, transformErrorf(opApply, ErrOutsideDomain)
	}
	if p.south {
		phi = -phi
	}
	t := p.tsfn(phi, math.Sin(phi))
	rho := 2 * t / p.coef
	sinL, cosL := math.Sincos(lambda)
	x := rho * sinL
	y := -rho * cosL
	if p.south {
		y = -y
	}
	return []float64{x, y}, nil
}

// Inverse implements Transform.
func (p *PolarStereographic) Inverse() (Transform, error) {
	return &inversePolarStereographic{fwd: p}, nil
}

// inversePolarStereographic recovers (λ, φ) with the conformal-latitude
// series, avoiding the fixed-point iteration of the textbook method.
type inversePolarStereographic struct {
	fwd *PolarStereographic
}

func (p *inversePolarStereographic) Context() *ContextualParameters { return p.fwd.ctx }
func (p *inversePolarStereographic) SourceDimensions() int          { return 2 }
func (p *inversePolarStereographic) TargetDimensions() int          { return 2 }
func (p *inversePolarStereographic) IsReverse() bool                { return true }

func (p *inversePolarStereographic) CacheKey() string {
	return "inv:" + p.fwd.CacheKey()
}

func (p *inversePolarStereographic) Inverse() (Transform, error) {
	return p.fwd, nil
}

func (p *inversePolarStereographic) Transform(src []float64) ([]float64, error) {
	if len(src) != 2 {
		return nil, transformErrorf(opApply, ErrMismatchedDimensions)
	}
	x, y := src[0], src[1]
	if math.IsNaN(x) || math.IsNaN(y) {
		return nil, transformErrorf(opApply, ErrOutsideDomain)
	}
	f := p.fwd
	if f.south {
		y = -y
	}
	rho := math.Hypot(x, y)
	t := rho * f.coef / 2
	chi := math.Pi/2 - 2*math.Atan(t)
	e2 := f.e * f.e
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e4 * e4
	phi := chi +
		(e2/2+5*e4/24+e6/12+13*e8/360)*math.Sin(2*chi) +
		(7*e4/48+29*e6/240+811*e8/11520)*math.Sin(4*chi) +
		(7*e6/120+81*e8/1120)*math.Sin(6*chi) +
		(4279*e8/161280)*math.Sin(8*chi)
	var lambda float64
	if rho != 0 {
		lambda = math.Atan2(x, -y)
	}
	if f.south {
		phi = -phi
	}
	return []float64{lambda, phi}, nil
}
