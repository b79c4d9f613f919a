package raster

import "math"

// Image is a dense render target: one or more layers of Width x Height
// cells in row-major order. Cells that never received a valid sample hold
// the NoData marker.
type Image struct {
	Width  int
	Height int
	// NoData is the marker for cells without a value. NaN by default.
	NoData float64
	// Data holds one slice per layer, each Width*Height long.
	Data [][]float64
}

// NewImage allocates an image with every cell set to the no-data marker.
func NewImage(width, height, layers int, noData float64) *Image {
	data := make([][]float64, layers)
	for i := range data {
		layer := make([]float64, width*height)
		for j := range layer {
			layer[j] = noData
		}
		data[i] = layer
	}
	return &Image{Width: width, Height: height, NoData: noData, Data: data}
}

// Layers returns the number of value layers.
func (im *Image) Layers() int { return len(im.Data) }

// At returns the value of the given layer at cell (x, y).
func (im *Image) At(layer, x, y int) float64 {
	return im.Data[layer][y*im.Width+x]
}

// Set writes v into the given layer at cell (x, y).
func (im *Image) Set(layer, x, y int, v float64) {
	im.Data[layer][y*im.Width+x] = v
}

// Valid reports whether v is real data rather than the no-data marker.
func (im *Image) Valid(v float64) bool {
	return !math.IsNaN(v) && v != im.NoData
}

// HasData reports whether any cell of any layer holds a valid value.
func (im *Image) HasData() bool {
	for _, layer := range im.Data {
		for _, v := range layer {
			if im.Valid(v) {
				return true
			}
		}
	}
	return false
}

// Bounds is the angular envelope, in degrees, of the cells that received a
// valid value, measured in the original (unrotated) frame. Longitude uses
// the signed convention (-180, 180]. The field order matches a display
// extent (left, right, bottom, top) for maps drawn with longitude growing
// leftward.
type Bounds struct {
	LonMax float64
	LonMin float64
	LatMin float64
	LatMax float64
}
