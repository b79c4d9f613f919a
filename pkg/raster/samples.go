package raster

import (
	"errors"
	"fmt"
)

// Sample-set shape errors.
var (
	ErrNoSamples     = errors.New("sample set needs at least one pixel")
	ErrNoLayers      = errors.New("sample set needs at least one value layer")
	ErrLayerMismatch = errors.New("value layer length does not match pixel count")
)

// SampleSet is a sparse pixelized map: pixel indices paired with one or
// more layers of scalar values. Indices may cover any subset of the pixel
// space and are assumed unique; uniqueness is the caller's contract and is
// not checked.
type SampleSet struct {
	// Pixels holds the sampled pixel indices.
	Pixels []int
	// Values holds one slice per layer, each as long as Pixels.
	Values [][]float64
}

// NewSamples builds a single-layer sample set over the given pixels.
func NewSamples(pixels []int, values []float64) (*SampleSet, error) {
	return NewLayeredSamples(pixels, [][]float64{values})
}

// NewLayeredSamples builds a sample set whose layers all share the same
// pixel indices.
func NewLayeredSamples(pixels []int, layers [][]float64) (*SampleSet, error) {
	s := &SampleSet{Pixels: pixels, Values: layers}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// check validates the sample-set shape. The rasterizer calls it on entry,
// so hand-assembled literals get the same screening as constructed sets.
func (s *SampleSet) check() error {
	if s == nil || len(s.Pixels) == 0 {
		return ErrNoSamples
	}
	if len(s.Values) == 0 {
		return ErrNoLayers
	}
	for _, layer := range s.Values {
		if len(layer) != len(s.Pixels) {
			return fmt.Errorf("%w: %d values for %d pixels",
				ErrLayerMismatch, len(layer), len(s.Pixels))
		}
	}
	return nil
}

// Len returns the number of sampled pixels.
func (s *SampleSet) Len() int { return len(s.Pixels) }

// Layers returns the number of value layers.
func (s *SampleSet) Layers() int { return len(s.Values) }
