// Package osgrid defines the constant parameter tables, options, and
// sentinel errors for the WGS84↔OSGB36 transform engine.
package osgrid

import (
	"errors"
	"math"
)

// Sentinel errors for osgrid operations.
var (
	// ErrInvalidCoordinate indicates a non-finite or out-of-domain input coordinate.
	ErrInvalidCoordinate = errors.New("osgrid: coordinate is not finite or outside the valid domain")
	// ErrNoConvergence indicates an iterative solver exhausted its iteration cap.
	ErrNoConvergence = errors.New("osgrid: iterative solver failed to converge")
	// ErrBadOptions indicates a negative iteration cap or tolerance.
	ErrBadOptions = errors.New("osgrid: options out of range")
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// arcsecToRad converts an angle in seconds of arc to radians.
	arcsecToRad = math.Pi / (180 * 3600)
)

// ellipsoid holds the semi-major and semi-minor axes, in metres, of a
// reference ellipsoid. Eccentricity² is derived, never stored.
type ellipsoid struct {
	a, b float64
}

// e2 returns the ellipsoid's first eccentricity squared, 1 − (b/a)².
func (e ellipsoid) e2() float64 {
	return 1 - (e.b*e.b)/(e.a*e.a)
}

var (
	// grs80 is the GRS80 ellipsoid underlying the WGS84 datum.
	grs80 = ellipsoid{a: 6378137.000, b: 6356752.3141}
	// airy1830 is the Airy 1830 ellipsoid underlying the OSGB36 datum.
	airy1830 = ellipsoid{a: 6377563.396, b: 6356256.909}
)

// helmert is a seven-parameter similarity transform between two 3D
// Cartesian reference frames: scale offset s (dimensionless), axis
// translations in metres, axis rotations in radians.
type helmert struct {
	s          float64
	tx, ty, tz float64
	rx, ry, rz float64
}

var (
	// wgs84ToOSGB36 maps the GRS80 Cartesian frame onto the Airy 1830 frame.
	wgs84ToOSGB36 = helmert{
		s:  20.4894e-6,
		tx: -446.448, ty: 125.157, tz: -542.060,
		rx: -0.1502 * arcsecToRad, ry: -0.2470 * arcsecToRad, rz: -0.8421 * arcsecToRad,
	}

	// osgb36ToWGS84 is the sign-negated inverse of wgs84ToOSGB36. Negation
	// is a small-angle approximation; it holds for this datum pair's
	// sub-arcsecond rotations but is not generally valid.
	osgb36ToWGS84 = helmert{
		s:  -20.4894e-6,
		tx: 446.448, ty: -125.157, tz: 542.060,
		rx: 0.1502 * arcsecToRad, ry: 0.2470 * arcsecToRad, rz: 0.8421 * arcsecToRad,
	}
)

// National Grid projection constants: transverse Mercator on Airy 1830
// with true origin 49°N 2°W, offset so that all of Great Britain has
// positive easting and northing.
const (
	scaleF0       = 0.9996012717        // scale factor on the central meridian
	originLat     = 49 * math.Pi / 180  // latitude of true origin, radians
	originLon     = -2 * math.Pi / 180  // longitude of true origin, radians
	falseNorthing = -100000.0           // northing of true origin, metres
	falseEasting  = 400000.0            // easting of true origin, metres
)

// Options configures the two iterative solvers inside the transforms.
//
// Fields:
//   - MaxIterations    — cap for the Cartesian→ellipsoidal fixed-point
//     latitude solve. Terrestrial points converge in under ten.
//   - MaxArcIterations — cap for the meridional-arc northing solve in
//     ToLonLat. Each pass removes roughly a·f0 metres of residual.
//   - LatTolerance     — absolute convergence threshold for the
//     latitude solve, in radians.
//   - ArcTolerance     — absolute convergence threshold for the
//     northing solve, in metres.
//
// A zero value selects the default for that field; negative values are
// rejected with ErrBadOptions. The default tolerances (1e-16 rad,
// 1e-5 m) are load-bearing: they reproduce the reference outputs to
// about six decimal places and should not be loosened casually.
type Options struct {
	MaxIterations    int
	MaxArcIterations int
	LatTolerance     float64
	ArcTolerance     float64
}

// DefaultOptions returns the Options used by ToNationalGrid and
// ToLonLat: MaxIterations=50, MaxArcIterations=100,
// LatTolerance=1e-16 rad, ArcTolerance=1e-5 m.
func DefaultOptions() Options {
	return Options{
		MaxIterations:    50,
		MaxArcIterations: 100,
		LatTolerance:     1e-16,
		ArcTolerance:     1e-5,
	}
}

// withDefaults fills zero-valued fields and validates the rest.
func (o Options) withDefaults() (Options, error) {
	if o.MaxIterations < 0 || o.MaxArcIterations < 0 || o.LatTolerance < 0 || o.ArcTolerance < 0 {
		return Options{}, ErrBadOptions
	}
	def := DefaultOptions()
	if o.MaxIterations == 0 {
		o.MaxIterations = def.MaxIterations
	}
	if o.MaxArcIterations == 0 {
		o.MaxArcIterations = def.MaxArcIterations
	}
	if o.LatTolerance == 0 {
		o.LatTolerance = def.LatTolerance
	}
	if o.ArcTolerance == 0 {
		o.ArcTolerance = def.ArcTolerance
	}
	return o, nil
}
