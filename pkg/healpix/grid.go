// Package healpix adapts the HEALPix equal-area pixelization of the sphere
// to the conventions of the rasterizer: conversions between pixel indices
// and the angular positions of pixel centers, in both the RING and NESTED
// numbering schemes.
//
// The indexing itself comes from github.com/owlpinetech/healpix. This
// package fixes the resolution and numbering scheme once per grid and moves
// between the library's radian angle pairs and the degree convention of the
// callers, with longitude in [0, 360) and latitude in [-90, 90] measured
// from the equatorial plane.
package healpix

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/golang/geo/s1"
	hpx "github.com/owlpinetech/healpix"
)

// Grid is a HEALPix pixelization of fixed resolution and numbering scheme.
// Grids are immutable and safe for concurrent use.
type Grid struct {
	nside  int
	order  hpx.HealpixOrder
	scheme Scheme
}

// NewGrid returns a grid with the given resolution parameter and numbering
// scheme. The pixelization is parameterized by its subdivision order, so
// nside must be a positive power of two.
func NewGrid(nside int, scheme Scheme) (*Grid, error) {
	order := ilog2(nside)
	if order < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNside, nside)
	}
	return &Grid{nside: nside, order: hpx.HealpixOrder(order), scheme: scheme}, nil
}

// Nside returns the resolution parameter.
func (g *Grid) Nside() int { return g.nside }

// Scheme returns the numbering scheme.
func (g *Grid) Scheme() Scheme { return g.scheme }

// Pixels returns the total pixel count, 12*nside*nside.
func (g *Grid) Pixels() int { return g.order.Pixels() }

// Resolution returns the characteristic angular size of a pixel: the
// square root of the per-pixel solid angle 4*pi/npix.
func (g *Grid) Resolution() s1.Angle {
	return s1.Angle(math.Sqrt(4 * math.Pi / float64(g.Pixels())))
}

// PixelCenter returns the center of the pixel in degrees, with longitude
// in [0, 360) and latitude in [-90, 90]. pix must be in [0, Pixels());
// indices outside that range are the caller's bug and yield nonsense.
func (g *Grid) PixelCenter(pix int) (lon, lat float64) {
	var c hpx.SphereCoordinate
	if g.scheme == Nested {
		c = hpx.NestPixel(pix).ToSphereCoordinate(g.order)
	} else {
		c = hpx.RingPixel(pix).ToSphereCoordinate(g.order)
	}
	lon = math.Mod(180/math.Pi*c.Longitude(), 360)
	if lon < 0 {
		lon += 360
	}
	lat = 180 / math.Pi * c.Latitude()
	return lon, lat
}

// PixelAt returns the index of the pixel containing the given angles in
// degrees. Longitude is wrapped into [0, 360); latitude is clamped to
// [-90, 90], never wrapped. NaN input is not defended against.
func (g *Grid) PixelAt(lon, lat float64) int {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	if lat > 90 {
		lat = 90
	} else if lat < -90 {
		lat = -90
	}
	c := hpx.NewLatLonCoordinate(lat*math.Pi/180, lon*math.Pi/180)
	return c.PixelId(g.order, g.hpxScheme())
}

// hpxScheme maps the grid's scheme to the library's numbering constant.
func (g *Grid) hpxScheme() hpx.HealpixScheme {
	if g.scheme == Nested {
		return hpx.NestScheme
	}
	return hpx.RingScheme
}

// ilog2 returns log2(v) for positive powers of two and -1 otherwise.
func ilog2(v int) int {
	if v < 1 || v&(v-1) != 0 {
		return -1
	}
	return bits.TrailingZeros(uint(v))
}
