package healpix

import (
	"errors"
	"fmt"
	"strings"
)

// Pixelization errors.
var (
	ErrBadNside      = errors.New("nside must be a positive power of two")
	ErrUnknownScheme = errors.New("unknown ordering scheme")
)

// Scheme selects one of the two canonical pixel numbering conventions.
// The scheme affects only the index assigned to each pixel, never the
// pixel geometry itself.
type Scheme int

// Numbering schemes.
const (
	// Ring numbers pixels along iso-latitude rings from north to south,
	// west to east within each ring.
	Ring Scheme = iota
	// Nested numbers pixels by recursive subdivision of the twelve base
	// faces, so nearby pixels keep nearby indices.
	Nested
)

// String returns the lowercase scheme name.
func (s Scheme) String() string {
	switch s {
	case Ring:
		return "ring"
	case Nested:
		return "nested"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme maps a scheme name to its constant. "ring" and "nested" are
// canonical; "nest" is accepted as a common alias. Matching ignores case.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "ring":
		return Ring, nil
	case "nested", "nest":
		return Nested, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}
