package projection

import "math"

// Cartesian is the plate carree projection: longitude and latitude map
// directly to plane coordinates in degrees. Exact closed form in both
// directions.
type Cartesian struct {
	lam0 float64
}

// NewCartesian returns a Cartesian projection centered on the given
// longitude in degrees.
func NewCartesian(centralLonDegrees float64) *Cartesian {
	return &Cartesian{lam0: centralLonDegrees * math.Pi / 180}
}

// Name returns "cartesian".
func (p *Cartesian) Name() string { return "cartesian" }

// Forward maps (lat, lon) in radians to plane degrees relative to the
// central longitude.
func (p *Cartesian) Forward(lat, lon float64) (x, y float64) {
	x = 180 / math.Pi * (lon - p.lam0)
	y = 180 / math.Pi * lat
	return x, y
}

// Inverse recovers (lat, lon) in radians. Out of bounds only when the
// recovered angles leave the canonical ranges.
func (p *Cartesian) Inverse(x, y float64) (lat, lon float64, oob bool) {
	lon = p.lam0 + math.Pi/180*x
	lat = math.Pi / 180 * y
	return lat, lon, !inCanonicalRange(lat, lon)
}
