// Package raster projects sparse pixelized sky samples onto dense images.
//
// The rasterizer works backwards from the output: it probes the plane
// extent of the sampled region, lays a uniform grid over it, inverts the
// projection for every grid cell and gathers the value of the sphere pixel
// the cell lands on. Gathering display-to-sphere guarantees each output
// cell is either filled from exactly one source pixel or explicitly marked
// as holding no data.
package raster

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/golang/geo/s1"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arvenholt/skymap/pkg/projection"
	"github.com/arvenholt/skymap/pkg/sphere"
)

// Rasterizer construction and input errors.
var (
	ErrNilGrid       = errors.New("rasterizer needs a pixel grid")
	ErrNilProjection = errors.New("rasterizer needs a projection")
	ErrBadSize       = errors.New("output size must be positive in both dimensions")
	ErrPixelRange    = errors.New("sample pixel index outside the grid")
)

// PixelGrid is the pixelization consumed by the rasterizer. *healpix.Grid
// satisfies it; any equal-area pixelization using the same angle
// conventions (degrees, longitude in [0,360), latitude in [-90,90]) works.
type PixelGrid interface {
	PixelCenter(pix int) (lon, lat float64)
	PixelAt(lon, lat float64) int
	Pixels() int
	Resolution() s1.Angle
}

// Options configure a Rasterizer.
type Options struct {
	// Width and Height are the output dimensions in cells.
	Width  int
	Height int

	// CenterLon and CenterLat recenter the map on the given point, in
	// degrees. Both zero leaves the native frame untouched.
	CenterLon float64
	CenterLat float64

	// Clip marks cells whose plane point has no sphere preimage as
	// no-data instead of letting projection extrapolation leak in.
	Clip bool

	// NoData is the marker written to cells without a valid sample.
	// Nil selects NaN; the pointer keeps zero itself expressible as a
	// marker.
	NoData *float64

	// Workers splits the render across this many goroutines. Values
	// below 2 keep it serial. The output is identical either way.
	Workers int
}

// Rasterizer renders sample sets into images using one fixed grid,
// projection and option set. It keeps no per-render state, so a single
// instance may rasterize many sample sets.
type Rasterizer struct {
	grid   PixelGrid
	proj   projection.Projection
	opts   Options
	noData float64
	log    *zap.Logger
}

// New builds a Rasterizer. A nil logger disables logging.
func New(grid PixelGrid, proj projection.Projection, opts Options, log *zap.Logger) (*Rasterizer, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if proj == nil {
		return nil, ErrNilProjection
	}
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, opts.Width, opts.Height)
	}
	noData := math.NaN()
	if opts.NoData != nil {
		noData = *opts.NoData
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Rasterizer{grid: grid, proj: proj, opts: opts, noData: noData, log: log}, nil
}

// Rasterize projects the sample set onto a dense image and reports the
// angular envelope of the cells that received a valid value. The envelope
// is measured in the original frame even when the render is recentered; it
// is zero when no cell got a value.
func (r *Rasterizer) Rasterize(s *SampleSet) (*Image, Bounds, error) {
	start := time.Now()
	if err := r.validate(s); err != nil {
		return nil, Bounds{}, err
	}

	// Sample centers in the signed longitude convention (-180, 180].
	n := len(s.Pixels)
	l := make([]float64, n)
	b := make([]float64, n)
	for i, pix := range s.Pixels {
		lon, lat := r.grid.PixelCenter(pix)
		if lon > 180 {
			lon -= 360
		}
		l[i], b[i] = lon, lat
	}

	// Recentering rotates the frame so the requested point lands on the
	// origin; the inverse rotation carries grid cells back to the
	// original frame for the pixel lookup.
	recenter := r.opts.CenterLon != 0 || r.opts.CenterLat != 0
	var unrotate sphere.Rotation
	if recenter {
		rot := sphere.NewRotation(
			s1.Angle(-r.opts.CenterLon)*s1.Degree,
			s1.Angle(r.opts.CenterLat)*s1.Degree,
			0,
		)
		rot.RotateAllDegrees(b, l)
		unrotate = rot.Inverse()
	}

	box := r.probeBounds(l, b)

	// Dense per-layer lookup tables: scattering the sparse values over
	// the full pixel space makes the gather a single index.
	tables := make([][]float64, len(s.Values))
	for li, layer := range s.Values {
		table := make([]float64, r.grid.Pixels())
		for i := range table {
			table[i] = r.noData
		}
		for i, pix := range s.Pixels {
			table[pix] = layer[i]
		}
		tables[li] = table
	}

	img := NewImage(r.opts.Width, r.opts.Height, len(s.Values), r.noData)
	st := &renderState{img: img, tables: tables, box: box, recenter: recenter, unrotate: unrotate}

	var env envelope
	if r.opts.Workers > 1 {
		bands := splitRows(r.opts.Height, r.opts.Workers)
		parts := make([]envelope, len(bands))
		var eg errgroup.Group
		for bi, band := range bands {
			eg.Go(func() error {
				parts[bi] = r.renderRows(st, band.y0, band.y1)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, Bounds{}, err
		}
		env = emptyEnvelope()
		for _, part := range parts {
			env = env.merge(part)
		}
	} else {
		env = r.renderRows(st, 0, r.opts.Height)
	}

	var bounds Bounds
	if env.cells > 0 {
		bounds = Bounds{LonMax: env.lMax, LonMin: env.lMin, LatMin: env.bMin, LatMax: env.bMax}
	}

	r.log.Debug("rasterized sample set",
		zap.String("projection", r.proj.Name()),
		zap.Int("samples", n),
		zap.Int("layers", len(s.Values)),
		zap.Int("width", r.opts.Width),
		zap.Int("height", r.opts.Height),
		zap.Int("valid_cells", env.cells),
		zap.Float64("x_min", box.xMin),
		zap.Float64("x_max", box.xMax),
		zap.Float64("y_min", box.yMin),
		zap.Float64("y_max", box.yMax),
		zap.Duration("elapsed", time.Since(start)),
	)
	return img, bounds, nil
}

func (r *Rasterizer) validate(s *SampleSet) error {
	if err := s.check(); err != nil {
		return err
	}
	npix := r.grid.Pixels()
	for _, pix := range s.Pixels {
		if pix < 0 || pix >= npix {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrPixelRange, pix, npix)
		}
	}
	return nil
}

// planeBox is the probed plane-space extent of a render.
type planeBox struct {
	xMin, xMax float64
	yMin, yMax float64
}

// probeBounds forward-projects a 3x3 neighborhood around every sample
// center and takes the plane envelope. The probe offsets reach 0.75 of the
// pixel scale: near a curved map edge the extreme plane coordinate belongs
// to a pixel corner rather than its center, and a bare center envelope
// would crop it.
func (r *Rasterizer) probeBounds(l, b []float64) planeBox {
	box := planeBox{
		xMin: math.Inf(1), xMax: math.Inf(-1),
		yMin: math.Inf(1), yMax: math.Inf(-1),
	}
	d := r.grid.Resolution().Degrees()
	offsets := [3]float64{-d, 0, d}

	for _, sx := range offsets {
		for _, sy := range offsets {
			for i := range l {
				lam, lat := sphere.ShiftLatLon(180-l[i], b[i], 0.75*sx, 0.75*sy, true)
				x, y := r.proj.Forward(sphere.DegToRad(lat), sphere.DegToRad(lam))
				if x < box.xMin {
					box.xMin = x
				}
				if x > box.xMax {
					box.xMax = x
				}
				if y < box.yMin {
					box.yMin = y
				}
				if y > box.yMax {
					box.yMax = y
				}
			}
		}
	}
	return box
}

// renderState is the shared read-only input of renderRows, except img,
// which concurrent bands write at disjoint rows.
type renderState struct {
	img      *Image
	tables   [][]float64
	box      planeBox
	recenter bool
	unrotate sphere.Rotation
}

// renderRows rasterizes the half-open row range [y0, y1) and returns the
// angular envelope of the cells that received a valid value.
func (r *Rasterizer) renderRows(st *renderState, y0, y1 int) envelope {
	env := emptyEnvelope()
	w, h := r.opts.Width, r.opts.Height
	spanX := st.box.xMax - st.box.xMin
	spanY := st.box.yMax - st.box.yMin

	for iy := y0; iy < y1; iy++ {
		y := st.box.yMin + spanY*(float64(iy)+0.5)/float64(h)
		for ix := 0; ix < w; ix++ {
			x := st.box.xMin + spanX*(float64(ix)+0.5)/float64(w)

			lat, lon, oob := r.proj.Inverse(x, y)
			if oob && r.opts.Clip {
				continue
			}
			cl := 180 - sphere.RadToDeg(lon)
			cb := sphere.RadToDeg(lat)
			if st.recenter {
				cb, cl = st.unrotate.RotateAnglesDegrees(cb, cl)
			}
			// A NaN angle has no pixel, clipping or not.
			if math.IsNaN(cl) || math.IsNaN(cb) {
				continue
			}

			pix := r.grid.PixelAt(cl, cb)
			idx := iy*w + ix
			valid := false
			for li, table := range st.tables {
				v := table[pix]
				st.img.Data[li][idx] = v
				if st.img.Valid(v) {
					valid = true
				}
			}
			if valid {
				env = env.add(cl, cb)
			}
		}
	}
	return env
}

// envelope accumulates the angular extent and count of valid cells.
type envelope struct {
	lMin, lMax float64
	bMin, bMax float64
	cells      int
}

func emptyEnvelope() envelope {
	return envelope{
		lMin: math.Inf(1), lMax: math.Inf(-1),
		bMin: math.Inf(1), bMax: math.Inf(-1),
	}
}

func (e envelope) add(l, b float64) envelope {
	if l < e.lMin {
		e.lMin = l
	}
	if l > e.lMax {
		e.lMax = l
	}
	if b < e.bMin {
		e.bMin = b
	}
	if b > e.bMax {
		e.bMax = b
	}
	e.cells++
	return e
}

func (e envelope) merge(o envelope) envelope {
	if o.cells == 0 {
		return e
	}
	if o.lMin < e.lMin {
		e.lMin = o.lMin
	}
	if o.lMax > e.lMax {
		e.lMax = o.lMax
	}
	if o.bMin < e.bMin {
		e.bMin = o.bMin
	}
	if o.bMax > e.bMax {
		e.bMax = o.bMax
	}
	e.cells += o.cells
	return e
}

// rowBand is a contiguous half-open row range assigned to one worker.
type rowBand struct {
	y0, y1 int
}

// splitRows partitions height rows into at most n contiguous bands of
// near-equal size.
func splitRows(height, n int) []rowBand {
	if n > height {
		n = height
	}
	bands := make([]rowBand, 0, n)
	step := height / n
	extra := height % n
	y := 0
	for i := 0; i < n; i++ {
		h := step
		if i < extra {
			h++
		}
		bands = append(bands, rowBand{y0: y, y1: y + h})
		y += h
	}
	return bands
}
