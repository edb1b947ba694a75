package osgrid_test

import (
	"math"
	"testing"

	"github.com/kavelaar/geokit/osgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToNationalGrid_KnownPoint checks the forward transform against a
// reference point in central London.
func TestToNationalGrid_KnownPoint(t *testing.T) {
	easting, northing, err := osgrid.ToNationalGrid(-0.12772404, 51.507407)
	require.NoError(t, err, "valid point must transform")

	assert.InDelta(t, 530034.0010, easting, 1e-3, "easting")
	assert.InDelta(t, 180381.0085, northing, 1e-3, "northing")
}

// TestToLonLat_KnownPoint checks the inverse transform against the same
// reference point.
func TestToLonLat_KnownPoint(t *testing.T) {
	lon, lat, err := osgrid.ToLonLat(530034, 180381)
	require.NoError(t, err, "valid grid point must transform")

	assert.InDelta(t, -0.1277240, lon, 1e-6, "longitude")
	assert.InDelta(t, 51.5074068, lat, 1e-6, "latitude")
}

// TestRoundTrip verifies ToLonLat∘ToNationalGrid reproduces the input
// to within 1e-6 degrees across Great Britain.
func TestRoundTrip(t *testing.T) {
	points := []struct {
		name     string
		lon, lat float64
	}{
		{"London", -0.12772404, 51.507407},
		{"Edinburgh", -3.1883, 55.9533},
		{"Cardiff", -3.1791, 51.4816},
		{"Norwich", 1.2928, 52.6309},
		{"Penzance", -5.5376, 50.1186},
		{"Inverness", -4.2247, 57.4778},
	}
	for _, pt := range points {
		t.Run(pt.name, func(t *testing.T) {
			easting, northing, err := osgrid.ToNationalGrid(pt.lon, pt.lat)
			require.NoError(t, err)

			lon, lat, err := osgrid.ToLonLat(easting, northing)
			require.NoError(t, err)

			assert.InDelta(t, pt.lon, lon, 1e-6, "longitude round trip")
			assert.InDelta(t, pt.lat, lat, 1e-6, "latitude round trip")
		})
	}
}

// TestDeterminism verifies repeated calls produce bit-identical output.
func TestDeterminism(t *testing.T) {
	e1, n1, err := osgrid.ToNationalGrid(-2.2426, 53.4808)
	require.NoError(t, err)
	e2, n2, err := osgrid.ToNationalGrid(-2.2426, 53.4808)
	require.NoError(t, err)

	assert.Equal(t, e1, e2, "easting must be bit-identical")
	assert.Equal(t, n1, n2, "northing must be bit-identical")

	lon1, lat1, err := osgrid.ToLonLat(e1, n1)
	require.NoError(t, err)
	lon2, lat2, err := osgrid.ToLonLat(e1, n1)
	require.NoError(t, err)

	assert.Equal(t, lon1, lon2, "longitude must be bit-identical")
	assert.Equal(t, lat1, lat2, "latitude must be bit-identical")
}

// TestToNationalGrid_InvalidInput verifies out-of-domain and non-finite
// geographic coordinates are rejected before any iteration.
func TestToNationalGrid_InvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		lon, lat float64
	}{
		{"latitude above 90", 0, 90.0001},
		{"latitude below -90", 0, -90.0001},
		{"longitude -180 excluded", -180, 51},
		{"longitude above 180", 180.0001, 51},
		{"NaN longitude", math.NaN(), 51},
		{"NaN latitude", 0, math.NaN()},
		{"infinite latitude", 0, math.Inf(1)},
		{"infinite longitude", math.Inf(-1), 51},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := osgrid.ToNationalGrid(tc.lon, tc.lat)
			assert.ErrorIs(t, err, osgrid.ErrInvalidCoordinate)
		})
	}
}

// TestToNationalGrid_DomainBoundaries verifies the inclusive edges of
// the geographic domain are accepted.
func TestToNationalGrid_DomainBoundaries(t *testing.T) {
	for _, pt := range [][2]float64{{180, 0}, {0, 90}, {0, -90}} {
		_, _, err := osgrid.ToNationalGrid(pt[0], pt[1])
		assert.NoError(t, err, "boundary point (%v, %v)", pt[0], pt[1])
	}
}

// TestToLonLat_InvalidInput verifies non-finite grid coordinates are
// rejected.
func TestToLonLat_InvalidInput(t *testing.T) {
	_, _, err := osgrid.ToLonLat(math.NaN(), 180381)
	assert.ErrorIs(t, err, osgrid.ErrInvalidCoordinate)

	_, _, err = osgrid.ToLonLat(530034, math.Inf(1))
	assert.ErrorIs(t, err, osgrid.ErrInvalidCoordinate)
}

// TestBadOptions verifies negative caps and tolerances error rather
// than silently running unbounded.
func TestBadOptions(t *testing.T) {
	_, _, err := osgrid.ToNationalGridWithOptions(-0.1277, 51.5074, osgrid.Options{MaxIterations: -1})
	assert.ErrorIs(t, err, osgrid.ErrBadOptions)

	_, _, err = osgrid.ToLonLatWithOptions(530034, 180381, osgrid.Options{ArcTolerance: -1e-5})
	assert.ErrorIs(t, err, osgrid.ErrBadOptions)
}

// TestNoConvergence verifies an exhausted iteration cap surfaces as
// ErrNoConvergence instead of a stale estimate.
func TestNoConvergence(t *testing.T) {
	// One pass is never enough for the Cartesian latitude solve at the
	// default 1e-16 rad tolerance.
	_, _, err := osgrid.ToNationalGridWithOptions(-0.1277, 51.5074, osgrid.Options{MaxIterations: 1})
	assert.ErrorIs(t, err, osgrid.ErrNoConvergence)

	// A single meridional-arc pass leaves kilometres of residual for a
	// point at the far north of the grid.
	_, _, err = osgrid.ToLonLatWithOptions(400000, 1200000, osgrid.Options{MaxArcIterations: 1})
	assert.ErrorIs(t, err, osgrid.ErrNoConvergence)
}

// TestMeridionalArc_ZeroAtTrueOrigin verifies the arc term vanishes at
// the grid's true-origin latitude (49°N) and changes sign around it.
func TestMeridionalArc_ZeroAtTrueOrigin(t *testing.T) {
	assert.Zero(t, osgrid.MeridionalArc(osgrid.OriginLat), "arc at true origin")

	north := osgrid.MeridionalArc(50 * math.Pi / 180)
	south := osgrid.MeridionalArc(48 * math.Pi / 180)
	assert.Positive(t, north, "arc north of origin")
	assert.Negative(t, south, "arc south of origin")

	// One degree of latitude is about 111 km of arc.
	assert.InDelta(t, 111e3, north, 1e3)
}

// TestDefaultOptions pins the load-bearing convergence constants.
func TestDefaultOptions(t *testing.T) {
	opts := osgrid.DefaultOptions()
	assert.Equal(t, 50, opts.MaxIterations)
	assert.Equal(t, 100, opts.MaxArcIterations)
	assert.Equal(t, 1e-16, opts.LatTolerance)
	assert.Equal(t, 1e-5, opts.ArcTolerance)
}
