// SPDX-License-Identifier: MIT

package mgrs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shruda/geodesy/crs"
	"github.com/shruda/geodesy/provider"
	"github.com/shruda/geodesy/transform"
)

// Letter tables. I and O are never used; the polar column tables
// additionally exclude D, E, M, N, V and W per the UPS layout.
const (
	utmColumns = "ABCDEFGHJKLMNPQRSTUVWXYZ" // 3 zones × 8 columns
	utmRows    = "ABCDEFGHJKLMNPQRSTUV"     // 20-row cycle

	upsNorthColumns = "RSTUXYZABCFGHJ"           // 7 squares per half
	upsNorthRows    = "ABCDEFGHJKLMNP"           // 14 rows
	upsSouthColumns = "JKLPQRSTUXYZABCFGHJKLPQR" // 12 squares per half
	upsSouthRows    = "ABCDEFGHJKLMNPQRSTUVWXYZ" // 24 rows
)

const squareWidth = 100000.0 // metres per 100 km square

// rowShiftEvenZone offsets the row cycle by 'F'−'A' in even zones.
const rowShiftEvenZone = 5

// kind is the up-front classification of the source CRS.
type kind int

const (
	kindGeneric kind = iota // route positions through geographic coordinates
	kindUTM                 // native UTM easting/northing
	kindPolar               // native UPS easting/northing
)

// Encoder turns positions of one source CRS into grid references.
// Classification happens once at construction; the projections needed for
// re-expressing positions are created lazily and cached. Encoders are
// single-threaded by contract.
type Encoder struct {
	factory   *provider.Factory
	source    crs.CRS
	separator string

	kind       kind
	zone       int  // kindUTM: the native zone
	south      bool // kindUTM: southern-hemisphere grid
	polarSouth bool // kindPolar: south aspect

	toGeographic transform.Transform // source → WGS 84 geographic (nil for kindPolar)
	projections  map[string]transform.Transform
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithSeparator inserts sep between the label components (zone and band,
// 100 km square, easting, northing). The default is no separator.
func WithSeparator(sep string) Option {
	return func(e *Encoder) { e.separator = sep }
}

// NewEncoder builds an encoder for positions expressed in the source CRS.
//
// Errors: crs.ErrNilCRS for nil arguments; ErrUnsupportedCRS when the CRS
// cannot be classified; wrapped factory errors when the route to
// geographic coordinates cannot be built.
func NewEncoder(f *provider.Factory, source crs.CRS, opts ...Option) (*Encoder, error) {
	const tag = "NewEncoder"
	if f == nil || source == nil {
		return nil, mgrsErrorf(tag, crs.ErrNilCRS)
	}
	e := &Encoder{
		factory:     f,
		source:      source,
		projections: make(map[string]transform.Transform),
	}
	for _, opt := range opts {
		opt(e)
	}
	switch s := source.(type) {
	case *crs.Projected:
		if aspect := e.upsAspect(s); aspect != 0 {
			e.kind = kindPolar
			e.polarSouth = aspect < 0
			return e, nil
		}
		if zone, south, ok := e.utmLayout(s); ok {
			e.kind = kindUTM
			e.zone = zone
			e.south = south
		}
	case *crs.Geographic:
		// fine: positions go through the geographic route below
	default:
		return nil, mgrsErrorf(tag, ErrUnsupportedCRS)
	}
	to, err := f.FindOperation(source, f.Registry().Geographic())
	if err != nil {
		return nil, mgrsErrorf(tag, err)
	}
	e.toGeographic = to
	return e, nil
}

// upsAspect classifies a projected CRS as UPS north (+1), south (−1) or
// neither (0) by matching the UPS grid layout: k0 = 0.994, the pole at
// (2 000 000, 2 000 000) m, origin at a pole.
func (e *Encoder) upsAspect(s *crs.Projected) int {
	p, err := e.factory.Method("Polar Stereographic (variant A)")
	if err != nil || s.Method() != p.Name() {
		return 0
	}
	g := p.Parameters()
	v := s.Conversion()
	k0 := v.Optional(g.Find("scale_factor"))
	fe := v.Optional(g.Find("false_easting"))
	fn := v.Optional(g.Find("false_northing"))
	if math.Abs(k0-provider.UPSScaleFactor) > 1e-9 ||
		math.Abs(fe-provider.UPSFalseEasting) > 1e-6 ||
		math.Abs(fn-provider.UPSFalseNorthing) > 1e-6 {
		return 0
	}
	phi0 := v.Optional(g.Find("latitude_of_origin"))
	switch {
	case math.Abs(phi0-90) <= 1e-9:
		return +1
	case math.Abs(phi0+90) <= 1e-9:
		return -1
	}
	return 0
}

// utmLayout recognizes a UTM parameterization and extracts its zone and
// hemisphere.
func (e *Encoder) utmLayout(s *crs.Projected) (zone int, south, ok bool) {
	p, err := e.factory.Method("Transverse Mercator")
	if err != nil || s.Method() != p.Name() {
		return 0, false, false
	}
	g := p.Parameters()
	v := s.Conversion()
	cm := v.Optional(g.Find("central_meridian"))
	phi0 := v.Optional(g.Find("latitude_of_origin"))
	k0 := v.Optional(g.Find("scale_factor"))
	fe := v.Optional(g.Find("false_easting"))
	fn := v.Optional(g.Find("false_northing"))
	zone = int(math.Round((cm + 183) / provider.ZoneWidth))
	if zone < 1 || zone > provider.ZoneCount ||
		math.Abs(cm-provider.CentralMeridian(zone)) > 1e-9 ||
		math.Abs(phi0) > 1e-9 ||
		math.Abs(k0-provider.UTMScaleFactor) > 1e-9 ||
		math.Abs(fe-provider.UTMFalseEasting) > 1e-6 {
		return 0, false, false
	}
	switch {
	case math.Abs(fn) <= 1e-6:
		return zone, false, true
	case math.Abs(fn-provider.UTMFalseNorthing) <= 1e-6:
		return zone, true, true
	}
	return 0, false, false
}

// Encode produces the grid reference of one position at the requested
// resolution: digits pairs of digits, 0 (100 km) to 5 (1 m). Values are
// truncated toward zero so the label names the containing cell.
//
// Errors: ErrIllegalDigits; transform.ErrMismatchedDimensions for a tuple
// of the wrong length; transform.ErrOutsideDomain when the position falls
// outside the grid or its band/square tables.
func (e *Encoder) Encode(position []float64, digits int) (string, error) {
	const tag = "Encode"
	if digits < 0 || digits > 5 {
		return "", mgrsErrorf(tag, ErrIllegalDigits)
	}
	if e.kind == kindPolar {
		if len(position) != 2 {
			return "", mgrsErrorf(tag, transform.ErrMismatchedDimensions)
		}
		return e.polarLabel(position[0], position[1], e.polarSouth, digits)
	}
	geo, err := e.toGeographic.Transform(position)
	if err != nil {
		return "", mgrsErrorf(tag, err)
	}
	lat, lon := geo[0], geo[1]
	if math.IsNaN(lat) || math.IsNaN(lon) || math.Abs(lat) > 90 {
		return "", mgrsErrorf(tag, transform.ErrOutsideDomain)
	}
	switch {
	case lat >= 84:
		return e.polarEncode(lat, lon, false, digits)
	case lat < -80:
		return e.polarEncode(lat, lon, true, digits)
	}
	zone := provider.UTMZone(lat, lon)
	south := lat < 0
	var easting, northing float64
	if e.kind == kindUTM && zone == e.zone && south == e.south {
		easting, northing = position[0], position[1]
	} else {
		proj, err := e.utmProjection(zone, south)
		if err != nil {
			return "", mgrsErrorf(tag, err)
		}
		out, err := proj.Transform([]float64{lat, lon})
		if err != nil {
			return "", mgrsErrorf(tag, err)
		}
		easting, northing = out[0], out[1]
	}
	return e.utmLabel(zone, lat, easting, northing, digits)
}

// utmProjection returns the cached geographic → UTM transform for a zone.
func (e *Encoder) utmProjection(zone int, south bool) (transform.Transform, error) {
	key := fmt.Sprintf("utm:%d:%t", zone, south)
	if tr, ok := e.projections[key]; ok {
		return tr, nil
	}
	geo := e.factory.Registry().Geographic()
	utm, err := e.factory.UTM(geo, zone, !south)
	if err != nil {
		return nil, err
	}
	tr, err := e.factory.FindOperation(geo, utm)
	if err != nil {
		return nil, err
	}
	e.projections[key] = tr
	return tr, nil
}

// upsProjection returns the cached geographic → UPS transform.
func (e *Encoder) upsProjection(south bool) (transform.Transform, error) {
	key := fmt.Sprintf("ups:%t", south)
	if tr, ok := e.projections[key]; ok {
		return tr, nil
	}
	geo := e.factory.Registry().Geographic()
	ups, err := e.factory.UPS(geo, !south)
	if err != nil {
		return nil, err
	}
	tr, err := e.factory.FindOperation(geo, ups)
	if err != nil {
		return nil, err
	}
	e.projections[key] = tr
	return tr, nil
}

// polarEncode projects a geographic position into the UPS grid and labels
// it.
func (e *Encoder) polarEncode(lat, lon float64, south bool, digits int) (string, error) {
	const tag = "Encode"
	proj, err := e.upsProjection(south)
	if err != nil {
		return "", mgrsErrorf(tag, err)
	}
	out, err := proj.Transform([]float64{lat, lon})
	if err != nil {
		return "", mgrsErrorf(tag, err)
	}
	return e.polarLabel(out[0], out[1], south, digits)
}

// utmLabel assembles zone + band + square + digits.
func (e *Encoder) utmLabel(zone int, lat, easting, northing float64, digits int) (string, error) {
	const tag = "Encode"
	col := int(math.Floor(easting / squareWidth))
	if col < 1 || col > 8 || northing < 0 {
		return "", mgrsErrorf(tag, transform.ErrOutsideDomain)
	}
	row := int(math.Floor(northing/squareWidth)) % len(utmRows)
	if zone%2 == 0 {
		row = (row + rowShiftEvenZone) % len(utmRows)
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(zone))
	sb.WriteByte(latitudeBand(lat))
	sb.WriteString(e.separator)
	sb.WriteByte(utmColumns[((zone-1)%3)*8+col-1])
	sb.WriteByte(utmRows[row])
	if err := e.appendDigits(&sb, easting, northing, digits); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// polarLabel assembles band + square + digits for the UPS caps.
func (e *Encoder) polarLabel(easting, northing float64, south bool, digits int) (string, error) {
	const tag = "Encode"
	cols, rows := upsNorthColumns, upsNorthRows
	offset := 13
	band := byte('Y')
	if south {
		cols, rows = upsSouthColumns, upsSouthRows
		offset = 8
		band = 'A'
	}
	if easting >= 2000000 {
		band++ // Y→Z, A→B east of the prime meridian
	}
	colIdx := int(math.Floor(easting/squareWidth)) - offset
	rowIdx := int(math.Floor(northing/squareWidth)) - offset
	if colIdx < 0 || colIdx >= len(cols) || rowIdx < 0 || rowIdx >= len(rows) {
		return "", mgrsErrorf(tag, transform.ErrOutsideDomain)
	}
	var sb strings.Builder
	sb.WriteByte(band)
	sb.WriteString(e.separator)
	sb.WriteByte(cols[colIdx])
	sb.WriteByte(rows[rowIdx])
	if err := e.appendDigits(&sb, easting, northing, digits); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// appendDigits writes the easting and northing fields inside the 100 km
// square, truncated to the requested resolution and zero-padded.
func (e *Encoder) appendDigits(sb *strings.Builder, easting, northing float64, digits int) error {
	if digits == 0 {
		return nil
	}
	for _, v := range []float64{easting, northing} {
		sb.WriteString(e.separator)
		cell := math.Mod(v, squareWidth)
		if cell < 0 {
			return mgrsErrorf("Encode", transform.ErrOutsideDomain)
		}
		scaled := int(math.Floor(cell)) / pow10(5-digits)
		field := strconv.Itoa(scaled)
		if len(field) > digits {
			// the truncated value does not fit the requested width
			return mgrsErrorf("Encode", transform.ErrOutsideDomain)
		}
		sb.WriteString(strings.Repeat("0", digits-len(field)))
		sb.WriteString(field)
	}
	return nil
}

// latitudeBand returns the band letter C…X for a latitude in the UTM
// range; X absorbs 72°N up to 84°N.
func latitudeBand(lat float64) byte {
	i := int(math.Floor((lat + 80) / 8))
	if i < 0 {
		i = 0
	}
	if i > 19 {
		i = 19
	}
	b := byte('C' + i)
	if b >= 'I' {
		b++
	}
	if b >= 'O' {
		b++
	}
	return b
}

// pow10 returns 10^n for small n.
func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
