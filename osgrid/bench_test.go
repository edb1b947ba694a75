package osgrid_test

import (
	"testing"

	"github.com/kavelaar/geokit/osgrid"
)

// BenchmarkToNationalGrid measures the forward transform for a point in
// central London.
func BenchmarkToNationalGrid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, err := osgrid.ToNationalGrid(-0.12772404, 51.507407)
		if err != nil {
			b.Fatalf("ToNationalGrid failed: %v", err)
		}
	}
}

// BenchmarkToLonLat measures the inverse transform for the same point.
func BenchmarkToLonLat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, err := osgrid.ToLonLat(530034, 180381)
		if err != nil {
			b.Fatalf("ToLonLat failed: %v", err)
		}
	}
}

// BenchmarkRoundTrip measures a full forward+inverse cycle.
func BenchmarkRoundTrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		easting, northing, err := osgrid.ToNationalGrid(-3.1883, 55.9533)
		if err != nil {
			b.Fatalf("ToNationalGrid failed: %v", err)
		}
		if _, _, err = osgrid.ToLonLat(easting, northing); err != nil {
			b.Fatalf("ToLonLat failed: %v", err)
		}
	}
}
