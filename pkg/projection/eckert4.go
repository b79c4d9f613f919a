package projection

import "math"

// eckert4Iterations is the fixed Newton budget for the auxiliary angle.
const eckert4Iterations = 10

// Plane scale factors normalizing the raw Eckert IV extent to a nominal
// 180x90 degree map.
const (
	eckert4XScale = 180 / 2.65300085635
	eckert4YScale = 90 / 1.32649973731
)

var (
	eckert4A = math.Sqrt(math.Pi * (4 + math.Pi))
	eckert4B = math.Sqrt(math.Pi / (4 + math.Pi))
	eckert4C = 2 + math.Pi/2
)

// EckertIV is a pseudocylindrical equal-area projection. Like Mollweide
// the forward direction solves for an auxiliary angle by Newton iteration;
// near the poles the iteration converges only linearly (the root is
// degenerate there), so pole-adjacent output carries reduced precision
// within the fixed budget.
type EckertIV struct {
	lam0 float64
}

// NewEckertIV returns an Eckert IV projection centered on the given
// longitude in degrees.
func NewEckertIV(centralLonDegrees float64) *EckertIV {
	return &EckertIV{lam0: centralLonDegrees * math.Pi / 180}
}

// Name returns "eckert4".
func (p *EckertIV) Name() string { return "eckert4" }

// theta solves t + sin(2t)/2 + 2*sin(t) = (2+pi/2)*sin(lat) for the
// auxiliary angle t, with the same pole fallback as Mollweide should the
// iterate ever escape to NaN. Newton approaches the pole roots from below,
// so for physical latitudes the fallback stays inert.
func (p *EckertIV) theta(lat float64) float64 {
	sinLat := math.Sin(lat)
	return solveFixed(lat/2, eckert4Iterations,
		func(t float64) (float64, float64) {
			f := t + 0.5*math.Sin(2*t) + 2*math.Sin(t) - eckert4C*sinLat
			df := 2 * math.Cos(t) * (1 + math.Cos(t))
			return f, df
		},
		func() float64 {
			return math.Copysign(math.Pi/2, sinLat)
		})
}

// Forward maps (lat, lon) in radians to the plane.
func (p *EckertIV) Forward(lat, lon float64) (x, y float64) {
	t := p.theta(lat)
	x = eckert4XScale * 2 / eckert4A * (lon - p.lam0) * (1 + math.Cos(t))
	y = eckert4YScale * 2 * eckert4B * math.Sin(t)
	return x, y
}

// Inverse recovers (lat, lon) in radians, closed form.
func (p *EckertIV) Inverse(x, y float64) (lat, lon float64, oob bool) {
	t := math.Asin(y / eckert4YScale / 2 / eckert4B)
	lat = math.Asin((t + 0.5*math.Sin(2*t) + 2*math.Sin(t)) / eckert4C)
	lon = p.lam0 + eckert4A/2*(x/eckert4XScale)/(1+math.Cos(t))
	return lat, lon, !inCanonicalRange(lat, lon)
}
