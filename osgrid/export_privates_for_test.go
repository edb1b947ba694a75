package osgrid

// Test-only exports of internal helpers.
var (
	// MeridionalArc exposes meridionalArc for white-box testing.
	MeridionalArc = meridionalArc
	// OriginLat exposes the true-origin latitude in radians.
	OriginLat = float64(originLat)
)
