package emoji

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/png"
)

// sbix table errors.
var (
	// ErrNoSBIXTable indicates the font doesn't have an sbix table.
	ErrNoSBIXTable = errors.New("emoji: font has no sbix table")

	// ErrInvalidSBIXData indicates the sbix table data is malformed.
	ErrInvalidSBIXData = errors.New("emoji: invalid sbix table data")
)

// sbixStrike is one strike of the sbix table.
type sbixStrike struct {
	offset  int
	ppem    uint16
	offsets []uint32 // numGlyphs+1 glyph data offsets, relative to the strike
}

// SBIX reads PNG glyphs from an sbix table.
type SBIX struct {
	data    []byte
	strikes []sbixStrike
}

// ParseSBIX parses an sbix table. numGlyphs comes from the maxp table.
func ParseSBIX(data []byte, numGlyphs int) (*SBIX, error) {
	if len(data) == 0 {
		return nil, ErrNoSBIXTable
	}
	if len(data) < 8 || binary.BigEndian.Uint16(data[0:2]) != 1 {
		return nil, ErrInvalidSBIXData
	}

	numStrikes := int(binary.BigEndian.Uint32(data[4:8]))
	if 8+numStrikes*4 > len(data) {
		return nil, ErrInvalidSBIXData
	}

	t := &SBIX{data: data, strikes: make([]sbixStrike, numStrikes)}
	for i := range t.strikes {
		off := int(binary.BigEndian.Uint32(data[8+i*4:]))
		end := off + 4 + (numGlyphs+1)*4
		if end > len(data) {
			return nil, ErrInvalidSBIXData
		}

		s := sbixStrike{
			offset:  off,
			ppem:    binary.BigEndian.Uint16(data[off:]),
			offsets: make([]uint32, numGlyphs+1),
		}
		for g := range s.offsets {
			s.offsets[g] = binary.BigEndian.Uint32(data[off+4+g*4:])
		}
		t.strikes[i] = s
	}

	return t, nil
}

// PPEMs implements BitmapTable.
func (t *SBIX) PPEMs() []uint16 {
	out := make([]uint16, len(t.strikes))
	for i, s := range t.strikes {
		out[i] = s.ppem
	}
	return out
}

// HasGlyph implements BitmapTable.
func (t *SBIX) HasGlyph(glyphID uint16) bool {
	for _, s := range t.strikes {
		if _, ok := s.span(glyphID); ok {
			return true
		}
	}
	return false
}

// span returns the [start, end) byte range of a glyph record in the strike.
func (s sbixStrike) span(glyphID uint16) ([2]int, bool) {
	g := int(glyphID)
	if g+1 >= len(s.offsets) {
		return [2]int{}, false
	}
	start, end := s.offsets[g], s.offsets[g+1]
	if end <= start {
		return [2]int{}, false
	}
	return [2]int{s.offset + int(start), s.offset + int(end)}, true
}

// Glyph implements BitmapTable.
func (t *SBIX) Glyph(glyphID uint16, ppem uint16) (*BitmapGlyph, error) {
	idx := BestStrike(t.PPEMs(), ppem)
	if idx < 0 {
		return nil, ErrNoStrikeAvailable
	}
	s := t.strikes[idx]

	span, ok := s.span(glyphID)
	if !ok {
		return nil, ErrGlyphNotInBitmap
	}
	if span[1] > len(t.data) || span[1]-span[0] < 8 {
		return nil, ErrInvalidSBIXData
	}

	rec := t.data[span[0]:span[1]]
	originX := int16(binary.BigEndian.Uint16(rec[0:2])) //#nosec G115 -- signed font field
	originY := int16(binary.BigEndian.Uint16(rec[2:4])) //#nosec G115 -- signed font field

	g := &BitmapGlyph{
		GlyphID: glyphID,
		Data:    rec[8:],
		PPEM:    s.ppem,
		OriginX: float64(originX),
	}

	switch string(rec[4:8]) {
	case "png ":
		g.Format = FormatPNG
	case "jpg ":
		g.Format = FormatJPEG
	case "tiff":
		g.Format = FormatTIFF
	default:
		g.Format = FormatOther
	}
	if g.Format != FormatPNG {
		return nil, ErrUnsupportedBitmapFormat
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(g.Data))
	if err != nil {
		return nil, err
	}
	g.Width = cfg.Width
	g.Height = cfg.Height

	// sbix stores the bottom edge; normalize to the top edge.
	g.OriginY = float64(originY) + float64(cfg.Height)
	return g, nil
}
