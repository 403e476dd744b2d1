// SPDX-License-Identifier: MIT

package provider

import (
	"math"

	"github.com/shruda/geodesy/crs"
	"github.com/shruda/geodesy/parameter"
	"github.com/shruda/geodesy/transform"
	"github.com/shruda/geodesy/unit"
)

// Molodensky provides the (Abridged) Molodensky geographic datum shift.
// A provider instance is fixed to one source/target dimensionality pair;
// Redimension returns the sibling for another pair. All four siblings
// share one descriptor group, so values filled against any of them are
// interchangeable.
type Molodensky struct {
	method
	abridged bool
	siblings *[4]*Molodensky

	dim          *parameter.Descriptor
	tX, tY, tZ   *parameter.Descriptor
	deltaA       *parameter.Descriptor
	deltaF       *parameter.Descriptor
	srcSemiMajor *parameter.Descriptor
	srcSemiMinor *parameter.Descriptor
	tgtSemiMajor *parameter.Descriptor
	tgtSemiMinor *parameter.Descriptor
}

// NewMolodensky returns the 2D→2D provider of the standard (abridged =
// false) or abridged variant.
func NewMolodensky(abridged bool) *Molodensky {
	name, id := "Molodensky", "EPSG:9604"
	if abridged {
		name, id = "Abridged Molodensky", "EPSG:9605"
	}
	dim := parameter.NewBuilder("dim").
		Unit(unit.One).Bounds(2, 3).Create()
	tX := parameter.NewBuilder("X-axis translation").Alias("dx").
		Unit(unit.Metre).Default(0).Create()
	tY := parameter.NewBuilder("Y-axis translation").Alias("dy").
		Unit(unit.Metre).Default(0).Create()
	tZ := parameter.NewBuilder("Z-axis translation").Alias("dz").
		Unit(unit.Metre).Default(0).Create()
	deltaA := parameter.NewBuilder("Semi-major axis length difference").Alias("da").
		Unit(unit.Metre).Create()
	deltaF := parameter.NewBuilder("Flattening difference").Alias("df").
		Unit(unit.One).Bounds(-1, 1).Create()
	axes := []*parameter.Descriptor{
		parameter.NewBuilder("src_semi_major").Unit(unit.Metre).Bounds(0, 1e9).Required().Create(),
		parameter.NewBuilder("src_semi_minor").Unit(unit.Metre).Bounds(0, 1e9).Required().Create(),
		parameter.NewBuilder("tgt_semi_major").Unit(unit.Metre).Bounds(0, 1e9).Create(),
		parameter.NewBuilder("tgt_semi_minor").Unit(unit.Metre).Bounds(0, 1e9).Create(),
	}
	group := parameter.NewGroup(name, id,
		dim, axes[0], axes[1], axes[2], axes[3], tX, tY, tZ, deltaA, deltaF)

	var siblings [4]*Molodensky
	for i := range siblings {
		siblings[i] = &Molodensky{
			method: method{
				name:       name,
				identifier: id,
				group:      group,
				srcDim:     2 + (i>>1)&1,
				tgtDim:     2 + i&1,
			},
			abridged: abridged,
			siblings: &siblings,
			dim:      dim,
			tX:       tX, tY: tY, tZ: tZ,
			deltaA:       deltaA,
			deltaF:       deltaF,
			srcSemiMajor: axes[0],
			srcSemiMinor: axes[1],
			tgtSemiMajor: axes[2],
			tgtSemiMinor: axes[3],
		}
	}
	return siblings[0]
}

// Abridged reports which variant this provider builds.
func (p *Molodensky) Abridged() bool { return p.abridged }

// Redimension returns the sibling provider for the given source and
// target dimensionalities.
//
// Errors: ErrIllegalArgument for any dimensionality outside {2, 3}.
func (p *Molodensky) Redimension(srcDim, tgtDim int) (*Molodensky, error) {
	if srcDim < 2 || srcDim > 3 || tgtDim < 2 || tgtDim > 3 {
		return nil, providerErrorf("Redimension", ErrIllegalArgument)
	}
	return p.siblings[(srcDim&1)<<1|tgtDim&1], nil
}

// CreateTransform implements Provider.
//
// Target axes may be given directly (tgt_semi_major/minor) or through the
// differences Δa and Δf; an explicitly supplied difference wins over the
// value derivable from the axes. The variant with neither fails with
// parameter.ErrMissingParameter.
func (p *Molodensky) CreateTransform(f transform.Factory, values *parameter.ValueGroup) (transform.Transform, error) {
	const tag = "Molodensky.CreateTransform"
	target := p
	if d := values.Optional(p.dim); !math.IsNaN(d) {
		re, err := p.Redimension(int(d), int(d))
		if err != nil {
			return nil, err
		}
		target = re
	}
	sa, err := values.Value(p.srcSemiMajor)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	sb, err := values.Value(p.srcSemiMinor)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	da := values.Optional(p.deltaA)
	df := values.Optional(p.deltaF)
	ta := values.Optional(p.tgtSemiMajor)
	tb := values.Optional(p.tgtSemiMinor)
	if math.IsNaN(da) {
		if math.IsNaN(ta) {
			return nil, providerErrorf(tag, parameter.ErrMissingParameter)
		}
	} else {
		ta = sa + da
	}
	if math.IsNaN(df) {
		if math.IsNaN(tb) {
			return nil, providerErrorf(tag, parameter.ErrMissingParameter)
		}
	} else {
		tb = ta * (sb/sa - df)
	}
	source, err := crs.NewEllipsoid("source", sa, sb)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	targetEll, err := crs.NewEllipsoid("target", ta, tb)
	if err != nil {
		return nil, providerErrorf(tag, err)
	}
	tx := values.Optional(p.tX)
	ty := values.Optional(p.tY)
	tz := values.Optional(p.tZ)
	diff := transform.EllipsoidDifferences{DeltaA: da, DeltaF: df}
	return transform.NewMolodenskyTransform(f, target, source, targetEll,
		diff, tx, ty, tz, p.abridged)
}
