// Package osgrid converts coordinates between the WGS84 geographic
// system (longitude/latitude in decimal degrees, GRS80 ellipsoid) and
// the OSGB36 British National Grid (easting/northing in metres, Airy
// 1830 ellipsoid, transverse Mercator projection) by direct
// calculation.
//
// What:
//
//   - ToNationalGrid: WGS84 longitude/latitude → OSGB36 easting/northing.
//   - ToLonLat: OSGB36 easting/northing → WGS84 longitude/latitude.
//   - …WithOptions variants expose the iteration caps and convergence
//     tolerances of the two internal solvers.
//
// How:
//
//	Both directions share the same machinery: ellipsoidal↔Cartesian
//	conversion, a seven-parameter Helmert similarity transform between
//	the GRS80 and Airy 1830 frames, and the transverse Mercator series
//	(meridional arc plus the standard higher-order correction terms).
//	Latitude recovery from Cartesian coordinates and from a grid
//	northing are both iterative; every loop is capped and a failure to
//	converge is reported, never masked.
//
// Accuracy:
//
//	Agreement with a full PROJ datum-grid transformation is within
//	roughly a metre over Great Britain — the Helmert shift between the
//	two datums is itself only accurate to that level. Round-tripping a
//	point through both directions reproduces it to well under 1e-6°.
//
// Errors:
//
//   - ErrInvalidCoordinate: non-finite or out-of-domain input,
//     rejected before any iteration.
//   - ErrNoConvergence: an iterative solver exhausted its cap.
//   - ErrBadOptions: a negative iteration cap or tolerance.
//
// All computation is pure: no package state, no allocation beyond
// return values, safe for unbounded concurrent use.
package osgrid
