// Package crs transforms coordinates between arbitrary coordinate
// reference systems through the PROJ library
// (github.com/pebbe/proj, cgo bindings).
//
// What:
//
//   - Transformer: a reusable CRS-to-CRS transformation built from two
//     CRS identifiers (e.g. "EPSG:4326" → "EPSG:27700").
//   - ToNationalGrid / ToLonLat: one-shot WGS84↔OSGB36 conveniences
//     with the same signatures as package osgrid.
//
// Why:
//
//	PROJ applies the full datum-grid machinery (NTv2 shift grids when
//	installed), so this package serves as the accuracy oracle for the
//	closed-form implementation in package osgrid: the two agree to
//	within about a metre over Great Britain.
//
// Axis order follows the CRS definition: EPSG:4326 is latitude first.
// The conveniences take care of the swap.
//
// Building this package requires a PROJ installation (version 5 or
// later) with development headers.
package crs
