package osgrid_test

import (
	"fmt"

	"github.com/kavelaar/geokit/osgrid"
)

// ExampleToNationalGrid converts a WGS84 point near Trafalgar Square to
// National Grid easting/northing.
func ExampleToNationalGrid() {
	easting, northing, err := osgrid.ToNationalGrid(-0.12772404, 51.507407)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("easting=%.4f northing=%.4f\n", easting, northing)
	// Output:
	// easting=530034.0010 northing=180381.0085
}

// ExampleToLonLat converts the same grid reference back to WGS84
// longitude/latitude.
func ExampleToLonLat() {
	lon, lat, err := osgrid.ToLonLat(530034, 180381)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("lon=%.7f lat=%.7f\n", lon, lat)
	// Output:
	// lon=-0.1277240 lat=51.5074068
}

// ExampleToLonLatWithOptions tightens the iteration budget while
// keeping the default tolerances.
func ExampleToLonLatWithOptions() {
	opts := osgrid.DefaultOptions()
	opts.MaxArcIterations = 20

	lon, lat, err := osgrid.ToLonLatWithOptions(429157, 623009, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("lon=%.4f lat=%.4f\n", lon, lat)
	// Output:
	// lon=-1.5400 lat=55.5000
}
