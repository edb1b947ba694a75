package crs_test

import (
	"testing"

	"github.com/kavelaar/geokit/crs"
	"github.com/kavelaar/geokit/osgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Oracle tests exercise a system PROJ installation; -short skips them.

// TestOracleAgreement_Forward verifies the closed-form transform agrees
// with PROJ to within a metre over Great Britain. The residual is the
// documented accuracy of the seven-parameter Helmert shift, not a bug
// in either side.
func TestOracleAgreement_Forward(t *testing.T) {
	if testing.Short() {
		t.Skip("requires a PROJ installation")
	}

	points := []struct {
		name     string
		lon, lat float64
	}{
		{"London", -0.12772404, 51.507407},
		{"Edinburgh", -3.1883, 55.9533},
		{"Penzance", -5.5376, 50.1186},
		{"Norwich", 1.2928, 52.6309},
	}
	for _, pt := range points {
		t.Run(pt.name, func(t *testing.T) {
			calcE, calcN, err := osgrid.ToNationalGrid(pt.lon, pt.lat)
			require.NoError(t, err)

			projE, projN, err := crs.ToNationalGrid(pt.lon, pt.lat)
			require.NoError(t, err)

			assert.InDelta(t, projE, calcE, 1.0, "easting")
			assert.InDelta(t, projN, calcN, 1.0, "northing")
		})
	}
}

// TestOracleAgreement_Inverse verifies the inverse direction agrees to
// within 1e-5 degrees.
func TestOracleAgreement_Inverse(t *testing.T) {
	if testing.Short() {
		t.Skip("requires a PROJ installation")
	}

	calcLon, calcLat, err := osgrid.ToLonLat(530034, 180381)
	require.NoError(t, err)

	projLon, projLat, err := crs.ToLonLat(530034, 180381)
	require.NoError(t, err)

	assert.InDelta(t, projLon, calcLon, 1e-5, "longitude")
	assert.InDelta(t, projLat, calcLat, 1e-5, "latitude")
}

// TestTransformer_Reuse verifies a Transformer survives repeated calls
// and refuses use after Close.
func TestTransformer_Reuse(t *testing.T) {
	if testing.Short() {
		t.Skip("requires a PROJ installation")
	}

	tr, err := crs.NewTransformer(crs.WGS84, crs.OSGB36)
	require.NoError(t, err)

	e1, n1, err := tr.Transform(51.507407, -0.12772404)
	require.NoError(t, err)
	e2, n2, err := tr.Transform(51.507407, -0.12772404)
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
	assert.Equal(t, n1, n2)

	tr.Close()
	tr.Close() // idempotent

	_, _, err = tr.Transform(51.5, -0.12)
	assert.ErrorIs(t, err, crs.ErrClosed)
}
