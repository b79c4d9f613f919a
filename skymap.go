// Package skymap renders HEALPix-sampled sky maps onto dense images through
// configurable map projections.
//
// The heavy lifting lives in the subpackages: pkg/healpix implements the
// pixelization, pkg/projection the sphere-to-plane transforms, pkg/sphere
// the rotation engine and pkg/raster the renderer tying them together. This
// package is the convenience surface: a yaml-backed Config, a logger
// factory and Render, which wires all of it for one call.
package skymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arvenholt/skymap/pkg/healpix"
	"github.com/arvenholt/skymap/pkg/projection"
	"github.com/arvenholt/skymap/pkg/raster"
)

// ErrUnknownProjection reports a projection name with no registered
// constructor.
var ErrUnknownProjection = errors.New("unknown projection")

// NewProjection builds a projection by name, centered on the given
// longitude in degrees. Recognized names are "cartesian" (alias
// "plate-carree"), "mollweide", "eckert4" (alias "eckertiv") and "hammer".
// Matching ignores case.
func NewProjection(name string, centralLon float64) (projection.Projection, error) {
	switch strings.ToLower(name) {
	case "cartesian", "plate-carree":
		return projection.NewCartesian(centralLon), nil
	case "mollweide":
		return projection.NewMollweide(centralLon), nil
	case "eckert4", "eckertiv":
		return projection.NewEckertIV(centralLon), nil
	case "hammer":
		return projection.NewHammer(centralLon), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, name)
}

// Render rasterizes the sample set as the config describes: it builds the
// logger, the pixel grid, the projection and the rasterizer, then runs them
// over the samples. A nil config renders with Default().
func Render(cfg *Config, samples *raster.SampleSet) (*raster.Image, raster.Bounds, error) {
	if cfg == nil {
		cfg = Default()
	}

	log, err := NewLogger(cfg.Logging)
	if err != nil {
		return nil, raster.Bounds{}, fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	scheme, err := healpix.ParseScheme(cfg.Map.Ordering)
	if err != nil {
		return nil, raster.Bounds{}, fmt.Errorf("reading map ordering: %w", err)
	}
	grid, err := healpix.NewGrid(cfg.Map.Nside, scheme)
	if err != nil {
		return nil, raster.Bounds{}, fmt.Errorf("building pixel grid: %w", err)
	}
	proj, err := NewProjection(cfg.Render.Projection, projection.DefaultCentralLon)
	if err != nil {
		return nil, raster.Bounds{}, err
	}

	r, err := raster.New(grid, proj, raster.Options{
		Width:     cfg.Render.Width,
		Height:    cfg.Render.Height,
		CenterLon: cfg.Render.CenterLon,
		CenterLat: cfg.Render.CenterLat,
		Clip:      cfg.Render.Clip,
		Workers:   cfg.Render.Workers,
	}, log)
	if err != nil {
		return nil, raster.Bounds{}, fmt.Errorf("building rasterizer: %w", err)
	}

	return r.Rasterize(samples)
}
