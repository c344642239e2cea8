package text

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/emojiextract/text/emoji"
)

// GlyphType indicates how a glyph is drawn.
type GlyphType uint8

const (
	// GlyphTypeOutline is a monochrome vector glyph filled with the
	// foreground color.
	GlyphTypeOutline GlyphType = iota

	// GlyphTypeCOLR is a stack of colored outline layers (COLR/CPAL).
	GlyphTypeCOLR

	// GlyphTypeBitmap is an embedded PNG (CBDT/CBLC or sbix).
	GlyphTypeBitmap
)

// String returns the name of the glyph type.
func (t GlyphType) String() string {
	switch t {
	case GlyphTypeOutline:
		return "Outline"
	case GlyphTypeCOLR:
		return "COLR"
	case GlyphTypeBitmap:
		return "Bitmap"
	default:
		return "Unknown"
	}
}

// ColorTables holds the color glyph tables found in a font.
// Any of the fields may be nil.
type ColorTables struct {
	// COLR holds the layered color glyphs.
	COLR *emoji.COLR

	// Palettes holds the CPAL palettes used by COLR layers.
	Palettes []emoji.Palette

	// Bitmaps holds CBDT/CBLC or sbix strikes.
	Bitmaps emoji.BitmapTable
}

// Format returns the name of the preferred color format, or "" for a
// monochrome font.
func (c *ColorTables) Format() string {
	switch {
	case c.COLR != nil:
		return "COLR"
	case c.Bitmaps != nil:
		switch c.Bitmaps.(type) {
		case *emoji.CBDT:
			return "CBDT"
		case *emoji.SBIX:
			return "sbix"
		}
		return "bitmap"
	default:
		return ""
	}
}

// HasColor reports whether any color table is present.
func (c *ColorTables) HasColor() bool {
	return c.COLR != nil || c.Bitmaps != nil
}

// GlyphType determines the rendering path for a glyph.
// COLR layers are preferred over bitmaps since they scale without loss.
func (c *ColorTables) GlyphType(gid GlyphID) GlyphType {
	if gid > 0xFFFF {
		return GlyphTypeOutline
	}
	g := uint16(gid)
	if c.COLR != nil {
		if _, ok := c.COLR.Layers(g); ok {
			return GlyphTypeCOLR
		}
	}
	if c.Bitmaps != nil && c.Bitmaps.HasGlyph(g) {
		return GlyphTypeBitmap
	}
	return GlyphTypeOutline
}

// Palette returns palette i, or nil if the font has fewer palettes.
func (c *ColorTables) Palette(i int) emoji.Palette {
	if i < 0 || i >= len(c.Palettes) {
		return nil
	}
	return c.Palettes[i]
}

// loadColorTables reads the raw color tables through the go-text loader.
// Missing tables are not an error; malformed ones are.
func loadColorTables(data []byte, numGlyphs int) (ColorTables, error) {
	var tables ColorTables

	ld, err := opentype.NewLoader(bytes.NewReader(data))
	if err != nil {
		return tables, fmt.Errorf("text: failed to read font tables: %w", err)
	}
	raw := func(tag string) []byte {
		b, err := ld.RawTable(opentype.MustNewTag(tag))
		if err != nil {
			return nil
		}
		return b
	}

	if colr := raw("COLR"); colr != nil {
		tables.COLR, err = emoji.ParseCOLR(colr)
		if err != nil && !errors.Is(err, emoji.ErrUnsupportedCOLRVersion) {
			return tables, fmt.Errorf("text: COLR: %w", err)
		}
		if cpal := raw("CPAL"); cpal != nil {
			tables.Palettes, err = emoji.ParseCPAL(cpal)
			if err != nil {
				return tables, fmt.Errorf("text: CPAL: %w", err)
			}
		}
	}

	if cbdt, cblc := raw("CBDT"), raw("CBLC"); cbdt != nil && cblc != nil {
		t, err := emoji.ParseCBDT(cbdt, cblc)
		if err != nil {
			return tables, fmt.Errorf("text: CBDT: %w", err)
		}
		tables.Bitmaps = t
	} else if sbix := raw("sbix"); sbix != nil {
		t, err := emoji.ParseSBIX(sbix, numGlyphs)
		if err != nil {
			return tables, fmt.Errorf("text: sbix: %w", err)
		}
		tables.Bitmaps = t
	}

	return tables, nil
}
