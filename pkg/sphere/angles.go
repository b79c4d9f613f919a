// Package sphere provides angle and vector math on the unit sphere.
//
// Latitude is measured from the equatorial plane (not colatitude) and
// longitude increases eastward. Functions take radians unless their name
// says degrees.
package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// FromAngles converts a (latitude, longitude) pair in radians to a unit
// vector. Latitude runs from -pi/2 at the south pole to +pi/2 at the north.
func FromAngles(lat, lon float64) r3.Vector {
	cosLat := math.Cos(lat)
	return r3.Vector{
		X: math.Cos(lon) * cosLat,
		Y: math.Sin(lon) * cosLat,
		Z: math.Sin(lat),
	}
}

// ToAngles converts a vector to a (latitude, longitude) pair in radians.
// Longitude is the full four-quadrant angle in (-pi, pi]. A zero vector
// yields NaN latitude; callers must guarantee non-degenerate input.
func ToAngles(v r3.Vector) (lat, lon float64) {
	lat = math.Asin(v.Z / v.Norm())
	lon = math.Atan2(v.Y, v.X)
	return lat, lon
}

// WrapLonDegrees shifts a longitude by delta degrees and wraps the result
// into [0, 360) for any real inputs.
func WrapLonDegrees(lon, delta float64) float64 {
	return floorMod(lon+delta, 360)
}

// WrapLonRadians shifts a longitude by delta radians and wraps the result
// into [0, 2*pi) for any real inputs.
func WrapLonRadians(lon, delta float64) float64 {
	return floorMod(lon+delta, 2*math.Pi)
}

// floorMod returns x mod p in [0, p). math.Mod keeps the sign of x, so
// negative inputs need the period added back.
func floorMod(x, p float64) float64 {
	m := math.Mod(x, p)
	if m < 0 {
		m += p
	}
	return m
}

// ShiftLatLon offsets a (longitude, latitude) pair in degrees without
// wrapping. With clip, longitude is clamped to [0, 360] and latitude to
// [-90, 90] independently. This is a bound-probing helper: points must not
// slide off the map edges, and the seam must not swallow a shift.
func ShiftLatLon(lon, lat, dlon, dlat float64, clip bool) (float64, float64) {
	lon += dlon
	lat += dlat
	if clip {
		lon = clamp(lon, 0, 360)
		lat = clamp(lat, -90, 90)
	}
	return lon, lat
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
