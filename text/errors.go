package text

import (
	"errors"
	"strconv"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilSource is returned when an operation needs a FontSource and got nil.
	ErrNilSource = errors.New("text: nil font source")

	// ErrEmptyBounds is returned when a sequence renders to a bounding box
	// with non-positive width or height.
	ErrEmptyBounds = errors.New("text: empty bounding box")
)

// GlyphError reports a glyph that could not be rasterized.
type GlyphError struct {
	GID GlyphID
	Err error
}

func (e *GlyphError) Error() string {
	return "text: glyph " + strconv.FormatUint(uint64(e.GID), 10) + ": " + e.Err.Error()
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
