package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Midpoint returns the planar midpoint of p and q. Suitable for
// projected coordinates; for geographic coordinates over long
// distances use GreatCircleMidpoint.
func Midpoint(p, q orb.Point) orb.Point {
	return orb.Point{(p.X() + q.X()) / 2, (p.Y() + q.Y()) / 2}
}

// Midpoints returns the element-wise planar midpoints of two equally
// long point slices.
func Midpoints(ps, qs []orb.Point) ([]orb.Point, error) {
	if len(ps) != len(qs) {
		return nil, ErrLengthMismatch
	}
	mids := make([]orb.Point, len(ps))
	for i := range ps {
		mids[i] = Midpoint(ps[i], qs[i])
	}
	return mids, nil
}

// GreatCircleMidpoint returns the midpoint along the great circle
// between two geographic points given as (longitude, latitude) in
// decimal degrees, on a spherical Earth.
func GreatCircleMidpoint(p, q orb.Point) orb.Point {
	lon1, lat1 := p.X()*degToRad, p.Y()*degToRad
	lon2, lat2 := q.X()*degToRad, q.Y()*degToRad

	bx := math.Cos(lat2) * math.Cos(lon2-lon1)
	by := math.Cos(lat2) * math.Sin(lon2-lon1)

	lat3 := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by),
	)
	lon3 := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return orb.Point{lon3 * radToDeg, lat3 * radToDeg}
}
