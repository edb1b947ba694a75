package geom

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// sphereRadiusMiles is the spherical Earth radius used by
	// UnitSphereDistance.
	sphereRadiusMiles = 3960.0

	// EarthRadiusMeters is the mean Earth radius used by
	// SphericalDistance.
	EarthRadiusMeters = 6371000.0
)

// HypotDistance returns the planar Euclidean distance between p and q,
// in the units of the input coordinates.
func HypotDistance(p, q orb.Point) float64 {
	return math.Hypot(p.X()-q.X(), p.Y()-q.Y())
}

// UnitSphereDistance returns the distance in miles between two
// geographic points given as (longitude, latitude) in decimal degrees,
// assuming a perfectly spherical Earth of radius 3960 miles.
func UnitSphereDistance(p, q orb.Point) float64 {
	// Colatitude/longitude in radians.
	phi1 := (90 - p.Y()) * degToRad
	phi2 := (90 - q.Y()) * degToRad
	theta1 := p.X() * degToRad
	theta2 := q.X() * degToRad

	cosine := math.Sin(phi1)*math.Sin(phi2)*math.Cos(theta1-theta2) +
		math.Cos(phi1)*math.Cos(phi2)
	return math.Acos(cosine) * sphereRadiusMiles
}

// CentralAngle returns the angle subtended at the Earth's centre by
// two geographic points given as (longitude, latitude) in decimal
// degrees.
func CentralAngle(p, q orb.Point) s1.Angle {
	a := s2.LatLngFromDegrees(p.Y(), p.X())
	b := s2.LatLngFromDegrees(q.Y(), q.X())
	return a.Distance(b)
}

// SphericalDistance returns the great-circle distance in metres
// between two geographic points given as (longitude, latitude) in
// decimal degrees, on a sphere of the mean Earth radius.
func SphericalDistance(p, q orb.Point) float64 {
	return CentralAngle(p, q).Radians() * EarthRadiusMeters
}
