package osgrid

import "math"

// ToNationalGrid converts a WGS84 longitude/latitude, in decimal
// degrees, to OSGB36 National Grid easting/northing in metres.
//
// Example:
//
//	easting, northing, err := osgrid.ToNationalGrid(-0.12772404, 51.507407)
//	// (530034.0010…, 180381.0085…)
func ToNationalGrid(lon, lat float64) (easting, northing float64, err error) {
	return ToNationalGridWithOptions(lon, lat, Options{})
}

// ToNationalGridWithOptions is ToNationalGrid with explicit solver
// options. A zero-valued field selects its default.
func ToNationalGridWithOptions(lon, lat float64, opts Options) (easting, northing float64, err error) {
	o, err := opts.withDefaults()
	if err != nil {
		return 0, 0, err
	}
	if err = validateLonLat(lon, lat); err != nil {
		return 0, 0, err
	}

	// Onto the GRS80 ellipsoid in radians, then into its Cartesian frame
	// (height 0), across the Helmert shift into the Airy 1830 frame.
	c := geodeticToCartesian(lon*degToRad, lat*degToRad, grs80)
	c = wgs84ToOSGB36.apply(c)

	lonA, latA, err := cartesianToGeodetic(c, airy1830, o)
	if err != nil {
		return 0, 0, err
	}

	easting, northing = projectForward(lonA, latA)
	return easting, northing, nil
}

// ToLonLat converts an OSGB36 National Grid easting/northing, in
// metres, to a WGS84 longitude/latitude in decimal degrees.
//
// Example:
//
//	lon, lat, err := osgrid.ToLonLat(530034, 180381)
//	// (-0.1277240…, 51.5074068…)
func ToLonLat(easting, northing float64) (lon, lat float64, err error) {
	return ToLonLatWithOptions(easting, northing, Options{})
}

// ToLonLatWithOptions is ToLonLat with explicit solver options.
func ToLonLatWithOptions(easting, northing float64, opts Options) (lon, lat float64, err error) {
	o, err := opts.withDefaults()
	if err != nil {
		return 0, 0, err
	}
	if !isFinite(easting) || !isFinite(northing) {
		return 0, 0, ErrInvalidCoordinate
	}

	a := airy1830.a
	e2 := airy1830.e2()

	// Recover the Airy 1830 latitude by walking the meridional arc up to
	// the target northing. Each pass removes roughly a·f0 metres of
	// residual, so realistic grid coordinates converge within a few
	// iterations.
	latA := originLat
	m := 0.0
	for iter := 0; northing-falseNorthing-m >= o.ArcTolerance; iter++ {
		if iter >= o.MaxArcIterations {
			return 0, 0, ErrNoConvergence
		}
		latA += (northing - falseNorthing - m) / (a * scaleF0)
		m = meridionalArc(latA)
	}

	sinLat := math.Sin(latA)
	tanLat := math.Tan(latA)
	secLat := 1 / math.Cos(latA)
	nu := a * scaleF0 / math.Sqrt(1-e2*sinLat*sinLat)
	rho := a * scaleF0 * (1 - e2) * math.Pow(1-e2*sinLat*sinLat, -1.5)
	eta2 := nu/rho - 1

	// Inverse series terms VII..XIIa.
	vii := tanLat / (2 * rho * nu)
	viii := tanLat / (24 * rho * nu * nu * nu) *
		(5 + 3*tanLat*tanLat + eta2 - 9*tanLat*tanLat*eta2)
	ix := tanLat / (720 * rho * math.Pow(nu, 5)) *
		(61 + 90*tanLat*tanLat + 45*math.Pow(tanLat, 4))
	x := secLat / nu
	xi := secLat / (6 * nu * nu * nu) * (nu/rho + 2*tanLat*tanLat)
	xii := secLat / (120 * math.Pow(nu, 5)) *
		(5 + 28*tanLat*tanLat + 24*math.Pow(tanLat, 4))
	xiia := secLat / (5040 * math.Pow(nu, 7)) *
		(61 + 662*tanLat*tanLat + 1320*math.Pow(tanLat, 4) + 720*math.Pow(tanLat, 6))

	de := easting - falseEasting
	latA = latA - vii*de*de + viii*math.Pow(de, 4) - ix*math.Pow(de, 6)
	lonA := originLon + x*de - xi*de*de*de + xii*math.Pow(de, 5) - xiia*math.Pow(de, 7)

	// The (lon, lat) pair now sits on the Airy 1830 ellipsoid. Into its
	// Cartesian frame (the series nu carries f0, the frame does not),
	// through the inverse Helmert shift, back onto GRS80.
	sinLat, cosLat := math.Sin(latA), math.Cos(latA)
	c := cartesian{
		x: nu / scaleF0 * cosLat * math.Cos(lonA),
		y: nu / scaleF0 * cosLat * math.Sin(lonA),
		z: (1 - e2) * nu / scaleF0 * sinLat,
	}
	c = osgb36ToWGS84.apply(c)

	lonW, latW, err := cartesianToGeodetic(c, grs80, o)
	if err != nil {
		return 0, 0, err
	}
	return lonW * radToDeg, latW * radToDeg, nil
}

// validateLonLat rejects non-finite or out-of-domain geographic input:
// longitude must lie in (-180, 180], latitude in [-90, 90].
func validateLonLat(lon, lat float64) error {
	if !isFinite(lon) || !isFinite(lat) {
		return ErrInvalidCoordinate
	}
	if lon <= -180 || lon > 180 {
		return ErrInvalidCoordinate
	}
	if lat < -90 || lat > 90 {
		return ErrInvalidCoordinate
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// cartesian is a point in a 3D earth-centred Cartesian frame, metres.
type cartesian struct {
	x, y, z float64
}

// geodeticToCartesian converts an ellipsoidal longitude/latitude in
// radians (height 0) to Cartesian coordinates in the ellipsoid's frame.
func geodeticToCartesian(lon, lat float64, e ellipsoid) cartesian {
	e2 := e.e2()
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	// nu is the radius of curvature in the prime vertical.
	nu := e.a / math.Sqrt(1-e2*sinLat*sinLat)
	return cartesian{
		x: nu * cosLat * math.Cos(lon),
		y: nu * cosLat * math.Sin(lon),
		z: (1 - e2) * nu * sinLat,
	}
}

// apply maps c through the Helmert similarity transform h, using the
// standard small-angle rotation matrix.
func (h helmert) apply(c cartesian) cartesian {
	return cartesian{
		x: h.tx + (1+h.s)*c.x - h.rz*c.y + h.ry*c.z,
		y: h.ty + h.rz*c.x + (1+h.s)*c.y - h.rx*c.z,
		z: h.tz - h.ry*c.x + h.rx*c.y + (1+h.s)*c.z,
	}
}

// cartesianToGeodetic converts Cartesian coordinates back to
// ellipsoidal longitude/latitude in radians on ellipsoid e. Longitude
// is closed-form; latitude is the standard fixed-point iteration
//
//	lat ← atan2(z + e²·ν(lat)·sin(lat), p)
//
// seeded with atan2(z, p·(1−e²)) and run to within opts.LatTolerance
// radians, at most opts.MaxIterations passes.
func cartesianToGeodetic(c cartesian, e ellipsoid, opts Options) (lon, lat float64, err error) {
	e2 := e.e2()
	p := math.Hypot(c.x, c.y)

	lat = math.Atan2(c.z, p*(1-e2))
	converged := false
	for i := 0; i < opts.MaxIterations; i++ {
		sinLat := math.Sin(lat)
		nu := e.a / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(c.z+e2*nu*sinLat, p)
		if math.Abs(next-lat) <= opts.LatTolerance {
			lat = next
			converged = true
			break
		}
		lat = next
	}
	if !converged {
		return 0, 0, ErrNoConvergence
	}
	return math.Atan2(c.y, c.x), lat, nil
}

// meridionalArc returns the meridional arc length, in metres, from the
// grid's true-origin latitude to lat (radians, on Airy 1830), using the
// series expansion in the flattening ratio n=(a−b)/(a+b). It is zero at
// the true-origin latitude and negative south of it.
func meridionalArc(lat float64) float64 {
	n := (airy1830.a - airy1830.b) / (airy1830.a + airy1830.b)
	dLat, sLat := lat-originLat, lat+originLat

	m1 := (1 + n + 1.25*n*n + 1.25*n*n*n) * dLat
	m2 := (3*n + 3*n*n + (21.0/8)*n*n*n) * math.Sin(dLat) * math.Cos(sLat)
	m3 := ((15.0/8)*n*n + (15.0/8)*n*n*n) * math.Sin(2*dLat) * math.Cos(2*sLat)
	m4 := (35.0 / 24) * n * n * n * math.Sin(3*dLat) * math.Cos(3*sLat)

	return airy1830.b * scaleF0 * (m1 - m2 + m3 - m4)
}

// projectForward applies the transverse Mercator forward formulas to an
// Airy 1830 longitude/latitude in radians, producing grid easting and
// northing via the correction terms I..VI.
func projectForward(lon, lat float64) (easting, northing float64) {
	e2 := airy1830.e2()
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	tanLat := math.Tan(lat)

	nu := airy1830.a / math.Sqrt(1-e2*sinLat*sinLat)
	rho := airy1830.a * scaleF0 * (1 - e2) * math.Pow(1-e2*sinLat*sinLat, -1.5)
	eta2 := nu*scaleF0/rho - 1

	m := meridionalArc(lat)

	i := m + falseNorthing
	ii := nu * scaleF0 * sinLat * cosLat / 2
	iii := nu * scaleF0 * sinLat * math.Pow(cosLat, 3) *
		(5 - tanLat*tanLat + 9*eta2) / 24
	iiia := nu * scaleF0 * sinLat * math.Pow(cosLat, 5) *
		(61 - 58*tanLat*tanLat + math.Pow(tanLat, 4)) / 720
	iv := nu * scaleF0 * cosLat
	v := nu * scaleF0 * math.Pow(cosLat, 3) * (nu/rho - tanLat*tanLat) / 6
	vi := nu * scaleF0 * math.Pow(cosLat, 5) *
		(5 - 18*tanLat*tanLat + math.Pow(tanLat, 4) + 14*eta2 - 58*eta2*tanLat*tanLat) / 120

	dl := lon - originLon
	northing = i + ii*dl*dl + iii*math.Pow(dl, 4) + iiia*math.Pow(dl, 6)
	easting = falseEasting + iv*dl + v*dl*dl*dl + vi*math.Pow(dl, 5)
	return easting, northing
}
