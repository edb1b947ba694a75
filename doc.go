// Package geokit is a toolbox of small, independent helpers for
// geospatial data work: coordinate transformation, planar and
// spherical geometry, path management, serialization, and PostgreSQL
// data loading.
//
// What's inside?
//
//	osgrid/   — WGS84 ↔ OSGB36 British National Grid by direct
//	            calculation (Helmert + transverse Mercator, iterative
//	            solvers with bounded iteration)
//	crs/      — PROJ-backed CRS-to-CRS transformation; the accuracy
//	            oracle for osgrid
//	geom/     — midpoints, spherical distances, nearest neighbours,
//	            square vertices over orb.Point values
//	pathutil/ — working-directory and data-directory path building,
//	            guarded directory removal
//	store/    — JSON/YAML/CSV/gob save & load with extension dispatch
//	pgdb/     — PostgreSQL database/schema/table management and bulk
//	            import over pgx
//
// Every package stands on its own: no shared state, no init ordering,
// no cross-package types beyond store.Table feeding pgdb. All numeric
// helpers are pure functions and safe for concurrent use.
//
// Quick example:
//
//	easting, northing, err := osgrid.ToNationalGrid(-0.12772404, 51.507407)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// easting ≈ 530034.001, northing ≈ 180381.008
package geokit
