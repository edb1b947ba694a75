package crs

import (
	"errors"
	"fmt"

	"github.com/pebbe/proj/v5"
)

// Sentinel errors for crs operations.
var (
	// ErrClosed indicates use of a Transformer after Close.
	ErrClosed = errors.New("crs: transformer is closed")
)

// CRS identifiers for the WGS84↔OSGB36 conveniences.
const (
	// WGS84 is the world geodetic system used by GPS, axis order lat/lon.
	WGS84 = "EPSG:4326"
	// OSGB36 is the British National Grid, axis order easting/northing.
	OSGB36 = "EPSG:27700"
)

// Transformer is a reusable transformation between two coordinate
// reference systems. It owns a PROJ context and must be released with
// Close. A Transformer is not safe for concurrent use; create one per
// goroutine.
type Transformer struct {
	ctx *proj.Context
	pj  *proj.Proj
}

// NewTransformer builds a transformation from srcCRS to dstCRS. Both
// arguments accept anything PROJ understands: "EPSG:4326", WKT, or a
// proj-string.
func NewTransformer(srcCRS, dstCRS string) (*Transformer, error) {
	ctx := proj.NewContext()
	pj, err := ctx.CreateCrsToCrs(srcCRS, dstCRS)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("crs: create %s -> %s: %w", srcCRS, dstCRS, err)
	}
	return &Transformer{ctx: ctx, pj: pj}, nil
}

// Transform maps (a, b) from the source CRS to the destination CRS.
// The coordinate order and units are those of each CRS definition.
func (t *Transformer) Transform(a, b float64) (float64, float64, error) {
	if t.pj == nil {
		return 0, 0, ErrClosed
	}
	u, v, err := t.pj.Trans(proj.Fwd, a, b)
	if err != nil {
		return 0, 0, fmt.Errorf("crs: transform: %w", err)
	}
	return u, v, nil
}

// Inverse maps (a, b) from the destination CRS back to the source CRS.
func (t *Transformer) Inverse(a, b float64) (float64, float64, error) {
	if t.pj == nil {
		return 0, 0, ErrClosed
	}
	u, v, err := t.pj.Trans(proj.Inv, a, b)
	if err != nil {
		return 0, 0, fmt.Errorf("crs: inverse transform: %w", err)
	}
	return u, v, nil
}

// Close releases the underlying PROJ objects. Safe to call twice.
func (t *Transformer) Close() {
	if t.pj != nil {
		t.pj.Close()
		t.pj = nil
	}
	if t.ctx != nil {
		t.ctx.Close()
		t.ctx = nil
	}
}

// ToNationalGrid converts a WGS84 longitude/latitude in decimal degrees
// to OSGB36 easting/northing in metres, by way of PROJ. Signature
// matches osgrid.ToNationalGrid.
func ToNationalGrid(lon, lat float64) (easting, northing float64, err error) {
	t, err := NewTransformer(WGS84, OSGB36)
	if err != nil {
		return 0, 0, err
	}
	defer t.Close()

	// EPSG:4326 is latitude-first.
	return t.Transform(lat, lon)
}

// ToLonLat converts an OSGB36 easting/northing in metres to a WGS84
// longitude/latitude in decimal degrees, by way of PROJ. Signature
// matches osgrid.ToLonLat.
func ToLonLat(easting, northing float64) (lon, lat float64, err error) {
	t, err := NewTransformer(WGS84, OSGB36)
	if err != nil {
		return 0, 0, err
	}
	defer t.Close()

	lat, lon, err = t.Inverse(easting, northing)
	if err != nil {
		return 0, 0, err
	}
	return lon, lat, nil
}
