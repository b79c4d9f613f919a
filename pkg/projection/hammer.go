package projection

import "math"

// Hammer is an equal-area projection mapping the sphere onto an ellipse.
// Similar to Mollweide but with curved parallels, reducing distortion at
// the outer limbs. Closed form in both directions; no iteration.
type Hammer struct {
	lam0 float64
}

// NewHammer returns a Hammer projection centered on the given longitude in
// degrees.
func NewHammer(centralLonDegrees float64) *Hammer {
	return &Hammer{lam0: centralLonDegrees * math.Pi / 180}
}

// Name returns "hammer".
func (p *Hammer) Name() string { return "hammer" }

// Forward maps (lat, lon) in radians to the plane using the half-longitude
// formulation with a shared denominator.
func (p *Hammer) Forward(lat, lon float64) (x, y float64) {
	denom := math.Sqrt(1 + math.Cos(lat)*math.Cos((lon-p.lam0)/2))
	x = 2 * math.Sqrt2 * math.Cos(lat) * math.Sin((lon-p.lam0)/2) / denom
	y = math.Sqrt2 * math.Sin(lat) / denom
	return x, y
}

// Inverse recovers (lat, lon) in radians. Out of bounds when the point
// lies outside the ellipse 0.25*x*x + y*y = 2 that bounds the projected
// sphere; outside it the auxiliary term z leaves the canonical branch (and
// eventually turns NaN), so the ellipse test is the authoritative check.
func (p *Hammer) Inverse(x, y float64) (lat, lon float64, oob bool) {
	z := math.Sqrt(1 - (x/4)*(x/4) - (y/2)*(y/2))
	lon = p.lam0 + 2*math.Atan(z*x/(2*(2*z*z-1)))
	lat = math.Asin(z * y)
	return lat, lon, 0.25*x*x+y*y > 2
}
