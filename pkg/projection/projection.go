// Package projection implements forward and inverse map projections of the
// sphere onto a flat plane.
//
// Four projections are provided: Cartesian (plate carree), Mollweide,
// Eckert IV and Hammer. Each is parameterized by the central longitude of
// the map and implements the same two-operation contract, so callers can
// switch projections without changing any of the surrounding resampling
// logic.
package projection

import "math"

// DefaultCentralLon is the conventional central longitude of the map in
// degrees. Full-sky maps built from pixel longitudes in [0, 360) are
// centered by this value.
const DefaultCentralLon = 180

// Projection maps between (latitude, longitude) pairs in radians and
// unitless plane coordinates.
//
// Forward is defined for the full physical domain lat in [-pi/2, pi/2] and
// lon in [0, 2pi), except at documented projection singularities. Inverse
// is a right inverse of Forward wherever defined. When oob is true the
// plane point has no valid sphere preimage in the projection's canonical
// branch; lat and lon may still hold finite garbage in that case, so
// callers must check the flag before trusting them.
type Projection interface {
	Name() string
	Forward(lat, lon float64) (x, y float64)
	Inverse(x, y float64) (lat, lon float64, oob bool)
}

// inCanonicalRange reports whether recovered angles lie in the canonical
// ranges lon in [0, 2pi), half-open, and lat in [-pi/2, pi/2]. NaN fails
// every comparison and therefore counts as out of range.
func inCanonicalRange(lat, lon float64) bool {
	return lat >= -math.Pi/2 && lat <= math.Pi/2 && lon >= 0 && lon < 2*math.Pi
}
