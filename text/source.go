package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
//
// The font bytes are read once and kept as a single immutable buffer. The
// parsed forms built from it (a go-text font for shaping, an sfnt font for
// outlines and the color tables) are read-only as well, so one FontSource
// can be shared by any number of concurrent workers without locking.
type FontSource struct {
	data   []byte
	shape  *font.Font
	sfnt   *sfnt.Font
	colors ColorTables
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outlines, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	colors, err := loadColorTables(dataCopy, outlines.NumGlyphs())
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   dataCopy,
		shape:  face.Font,
		sfnt:   outlines,
		colors: colors,
	}

	var buf sfnt.Buffer
	if name, err := outlines.Name(&buf, sfnt.NameIDFull); err == nil {
		s.name = name
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// Name returns the full font name, or "" if the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// Data returns the font bytes. The slice is shared and must not be modified.
func (s *FontSource) Data() []byte {
	return s.data
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	return s.sfnt.NumGlyphs()
}

// UnitsPerEm returns the design units per em.
func (s *FontSource) UnitsPerEm() int {
	return int(s.sfnt.UnitsPerEm())
}

// Colors returns the color glyph tables of the font.
func (s *FontSource) Colors() *ColorTables {
	return &s.colors
}

// shapingFont returns the go-text font used for shaping.
func (s *FontSource) shapingFont() *font.Font {
	return s.shape
}

// outlines returns the sfnt font used for glyph outlines.
func (s *FontSource) outlines() *sfnt.Font {
	return s.sfnt
}
