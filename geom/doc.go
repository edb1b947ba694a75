// Package geom provides small planar and spherical geometry helpers
// for working with (longitude, latitude) or (easting, northing) pairs.
//
// What:
//
//   - Midpoint / Midpoints: planar midpoints of point pairs.
//   - GreatCircleMidpoint: midpoint along the great circle between two
//     geographic points.
//   - HypotDistance: planar Euclidean distance.
//   - UnitSphereDistance / SphericalDistance / CentralAngle: distance
//     on a spherical Earth, in miles, metres, or as an angle.
//   - ClosestPoint / ClosestPoints: nearest-neighbour lookup against a
//     reference point set.
//   - RotationMatrix / SquareVertices / SquareVerticesCalc: the four
//     vertices of a (possibly rotated) square around a centre.
//
// Points are orb.Point values (github.com/paulmach/orb): index 0 is
// x/longitude/easting, index 1 is y/latitude/northing. Spherical
// angles come from github.com/golang/geo.
//
// Every function is a pure computation over its arguments; there is no
// package state and concurrent use needs no coordination.
//
// Errors:
//
//   - ErrLengthMismatch: paired slices of different lengths.
//   - ErrNoReferencePoints: empty reference set for a nearest lookup.
//   - ErrBadK: k outside [1, len(refs)].
package geom
