package projection

import "math"

// mollweideIterations is the fixed Newton budget for the auxiliary angle.
const mollweideIterations = 15

// Mollweide is a pseudocylindrical equal-area projection. The forward
// direction solves a transcendental equation for an auxiliary angle; the
// inverse is closed form.
type Mollweide struct {
	lam0 float64
}

// NewMollweide returns a Mollweide projection centered on the given
// longitude in degrees.
func NewMollweide(centralLonDegrees float64) *Mollweide {
	return &Mollweide{lam0: centralLonDegrees * math.Pi / 180}
}

// Name returns "mollweide".
func (p *Mollweide) Name() string { return "mollweide" }

// theta solves 2t + sin(2t) = pi*sin(lat) for the auxiliary angle t. At the
// poles the Newton denominator 1+cos(2t) vanishes and the iteration turns
// NaN; the fallback substitutes the exact pole value sign(sin lat)*pi/2.
func (p *Mollweide) theta(lat float64) float64 {
	sinLat := math.Sin(lat)
	return solveFixed(math.Asin(2*lat/math.Pi), mollweideIterations,
		func(t float64) (float64, float64) {
			return 2*t + math.Sin(2*t) - math.Pi*sinLat, 2 + 2*math.Cos(2*t)
		},
		func() float64 {
			return math.Copysign(math.Pi/2, sinLat)
		})
}

// Forward maps (lat, lon) in radians to the plane.
func (p *Mollweide) Forward(lat, lon float64) (x, y float64) {
	t := p.theta(lat)
	x = 2 * math.Sqrt2 * (lon - p.lam0) * math.Cos(t) / math.Pi
	y = math.Sqrt2 * math.Sin(t)
	return x, y
}

// Inverse recovers (lat, lon) in radians, closed form. Points with
// cos(theta) near zero (the poles, |y| near sqrt(2)) divide by a vanishing
// term and lose longitude precision; this is a known precision boundary of
// the parameterization, not an error. |y| beyond sqrt(2) turns the
// recovered angles NaN and is reported out of bounds.
func (p *Mollweide) Inverse(x, y float64) (lat, lon float64, oob bool) {
	t := math.Asin(y / math.Sqrt2)
	lat = math.Asin((2*t + math.Sin(2*t)) / math.Pi)
	lon = p.lam0 + math.Pi*x/(2*math.Sqrt2*math.Cos(t))
	return lat, lon, !inCanonicalRange(lat, lon)
}
