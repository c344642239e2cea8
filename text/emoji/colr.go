package emoji

import (
	"encoding/binary"
	"errors"
	"image/color"
)

// COLR/CPAL table format errors.
var (
	// ErrNoCOLRTable indicates the font doesn't have a COLR table.
	ErrNoCOLRTable = errors.New("emoji: font has no COLR table")

	// ErrNoCPALTable indicates the font doesn't have a CPAL table.
	ErrNoCPALTable = errors.New("emoji: font has no CPAL table")

	// ErrInvalidCOLRData indicates the COLR table data is malformed.
	ErrInvalidCOLRData = errors.New("emoji: invalid COLR table data")

	// ErrInvalidCPALData indicates the CPAL table data is malformed.
	ErrInvalidCPALData = errors.New("emoji: invalid CPAL table data")

	// ErrUnsupportedCOLRVersion indicates a COLR version newer than 1.
	ErrUnsupportedCOLRVersion = errors.New("emoji: unsupported COLR version")
)

// ForegroundPalette is the palette index that selects the text color
// instead of a CPAL entry.
const ForegroundPalette = 0xFFFF

// Layer is one colored outline of a COLR glyph.
type Layer struct {
	// GlyphID is the outline glyph to fill.
	GlyphID uint16

	// PaletteIndex selects the CPAL entry, or ForegroundPalette.
	PaletteIndex uint16
}

// IsForeground reports whether the layer uses the text color.
func (l Layer) IsForeground() bool {
	return l.PaletteIndex == ForegroundPalette
}

// baseGlyph is a COLRv0 BaseGlyph record.
type baseGlyph struct {
	glyphID    uint16
	firstLayer uint16
	numLayers  uint16
}

// COLR is a parsed COLR table (v0 records).
type COLR struct {
	version uint16
	bases   []baseGlyph // sorted by glyphID, as required by the format
	layers  []Layer
}

// ParseCOLR parses the v0 base glyph and layer records of a COLR table.
func ParseCOLR(data []byte) (*COLR, error) {
	if len(data) == 0 {
		return nil, ErrNoCOLRTable
	}
	if len(data) < 14 {
		return nil, ErrInvalidCOLRData
	}

	c := &COLR{version: binary.BigEndian.Uint16(data[0:2])}
	if c.version > 1 {
		return nil, ErrUnsupportedCOLRVersion
	}

	numBases := int(binary.BigEndian.Uint16(data[2:4]))
	basesOffset := int(binary.BigEndian.Uint32(data[4:8]))
	layersOffset := int(binary.BigEndian.Uint32(data[8:12]))
	numLayers := int(binary.BigEndian.Uint16(data[12:14]))

	if basesOffset+numBases*6 > len(data) || layersOffset+numLayers*4 > len(data) {
		return nil, ErrInvalidCOLRData
	}

	c.bases = make([]baseGlyph, numBases)
	for i := range c.bases {
		p := basesOffset + i*6
		c.bases[i] = baseGlyph{
			glyphID:    binary.BigEndian.Uint16(data[p:]),
			firstLayer: binary.BigEndian.Uint16(data[p+2:]),
			numLayers:  binary.BigEndian.Uint16(data[p+4:]),
		}
	}

	c.layers = make([]Layer, numLayers)
	for i := range c.layers {
		p := layersOffset + i*4
		c.layers[i] = Layer{
			GlyphID:      binary.BigEndian.Uint16(data[p:]),
			PaletteIndex: binary.BigEndian.Uint16(data[p+2:]),
		}
	}

	return c, nil
}

// Version returns the COLR table version.
func (c *COLR) Version() uint16 {
	return c.version
}

// NumGlyphs returns the number of color base glyphs.
func (c *COLR) NumGlyphs() int {
	return len(c.bases)
}

// Layers returns the layers of a color glyph, bottom to top.
// The returned slice aliases the table and must not be modified.
func (c *COLR) Layers(glyphID uint16) ([]Layer, bool) {
	lo, hi := 0, len(c.bases)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if c.bases[mid].glyphID < glyphID {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(c.bases) || c.bases[lo].glyphID != glyphID {
		return nil, false
	}

	b := c.bases[lo]
	end := int(b.firstLayer) + int(b.numLayers)
	if end > len(c.layers) {
		return nil, false
	}
	return c.layers[b.firstLayer:end], true
}

// Palette is one CPAL color palette.
type Palette []color.NRGBA

// Color returns the palette entry for a layer, or fg for foreground
// layers and out-of-range indices.
func (p Palette) Color(l Layer, fg color.NRGBA) color.NRGBA {
	if l.IsForeground() || int(l.PaletteIndex) >= len(p) {
		return fg
	}
	return p[l.PaletteIndex]
}

// ParseCPAL parses all palettes of a CPAL table.
func ParseCPAL(data []byte) ([]Palette, error) {
	if len(data) == 0 {
		return nil, ErrNoCPALTable
	}
	if len(data) < 12 {
		return nil, ErrInvalidCPALData
	}

	numEntries := int(binary.BigEndian.Uint16(data[2:4]))
	numPalettes := int(binary.BigEndian.Uint16(data[4:6]))
	numRecords := int(binary.BigEndian.Uint16(data[6:8]))
	recordsOffset := int(binary.BigEndian.Uint32(data[8:12]))

	if 12+numPalettes*2 > len(data) || recordsOffset+numRecords*4 > len(data) {
		return nil, ErrInvalidCPALData
	}

	palettes := make([]Palette, numPalettes)
	for i := range palettes {
		first := int(binary.BigEndian.Uint16(data[12+i*2:]))
		if first+numEntries > numRecords {
			return nil, ErrInvalidCPALData
		}

		pal := make(Palette, numEntries)
		for j := range pal {
			p := recordsOffset + (first+j)*4
			// CPAL stores colors as BGRA.
			pal[j] = color.NRGBA{B: data[p], G: data[p+1], R: data[p+2], A: data[p+3]}
		}
		palettes[i] = pal
	}

	return palettes, nil
}
