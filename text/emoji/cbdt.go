package emoji

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// CBDT/CBLC table format errors.
var (
	// ErrNoCBDTTable indicates the font doesn't have a CBDT table.
	ErrNoCBDTTable = errors.New("emoji: font has no CBDT table")

	// ErrNoCBLCTable indicates the font doesn't have a CBLC table.
	ErrNoCBLCTable = errors.New("emoji: font has no CBLC table")

	// ErrInvalidCBDTData indicates the CBDT table data is malformed.
	ErrInvalidCBDTData = errors.New("emoji: invalid CBDT table data")

	// ErrInvalidCBLCData indicates the CBLC table data is malformed.
	ErrInvalidCBLCData = errors.New("emoji: invalid CBLC table data")
)

// CBLC BitmapSize record size in bytes.
const bitmapSizeRecordSize = 48

// cbdtStrike is one BitmapSize record of the CBLC table.
type cbdtStrike struct {
	listOffset   int
	numSubtables int
	firstGlyph   uint16
	lastGlyph    uint16
	ppem         uint16
}

// glyphMetrics holds the parts of Small/BigGlyphMetrics we need.
type glyphMetrics struct {
	width, height      int
	bearingX, bearingY int
}

// CBDT reads PNG glyphs from CBDT/CBLC tables.
type CBDT struct {
	cbdt    []byte
	cblc    []byte
	strikes []cbdtStrike
}

// ParseCBDT parses the CBLC strike list. Index subtables are read on demand.
func ParseCBDT(cbdt, cblc []byte) (*CBDT, error) {
	if len(cbdt) == 0 {
		return nil, ErrNoCBDTTable
	}
	if len(cblc) == 0 {
		return nil, ErrNoCBLCTable
	}
	if len(cblc) < 8 {
		return nil, ErrInvalidCBLCData
	}

	major := binary.BigEndian.Uint16(cblc[0:2])
	if major != 2 && major != 3 {
		return nil, fmt.Errorf("emoji: unsupported CBLC version %d", major)
	}

	numSizes := int(binary.BigEndian.Uint32(cblc[4:8]))
	if 8+numSizes*bitmapSizeRecordSize > len(cblc) {
		return nil, ErrInvalidCBLCData
	}

	t := &CBDT{cbdt: cbdt, cblc: cblc, strikes: make([]cbdtStrike, numSizes)}
	for i := range t.strikes {
		r := cblc[8+i*bitmapSizeRecordSize:]
		t.strikes[i] = cbdtStrike{
			listOffset:   int(binary.BigEndian.Uint32(r[0:4])),
			numSubtables: int(binary.BigEndian.Uint32(r[8:12])),
			firstGlyph:   binary.BigEndian.Uint16(r[40:42]),
			lastGlyph:    binary.BigEndian.Uint16(r[42:44]),
			ppem:         uint16(r[45]), // ppemY
		}
	}

	return t, nil
}

// PPEMs implements BitmapTable.
func (t *CBDT) PPEMs() []uint16 {
	out := make([]uint16, len(t.strikes))
	for i, s := range t.strikes {
		out[i] = s.ppem
	}
	return out
}

// HasGlyph implements BitmapTable.
func (t *CBDT) HasGlyph(glyphID uint16) bool {
	for i := range t.strikes {
		if _, _, _, err := t.locate(i, glyphID); err == nil {
			return true
		}
	}
	return false
}

// Glyph implements BitmapTable.
func (t *CBDT) Glyph(glyphID uint16, ppem uint16) (*BitmapGlyph, error) {
	idx := BestStrike(t.PPEMs(), ppem)
	if idx < 0 {
		return nil, ErrNoStrikeAvailable
	}

	offset, imageFormat, shared, err := t.locate(idx, glyphID)
	if err != nil {
		return nil, err
	}

	g, err := t.readImage(offset, imageFormat, shared)
	if err != nil {
		return nil, err
	}
	g.GlyphID = glyphID
	g.PPEM = t.strikes[idx].ppem
	return g, nil
}

// locate finds the CBDT offset and image format of glyphID in a strike.
// shared is non-nil for index formats with constant metrics.
func (t *CBDT) locate(strikeIdx int, glyphID uint16) (offset int, imageFormat uint16, shared *glyphMetrics, err error) {
	s := t.strikes[strikeIdx]
	if glyphID < s.firstGlyph || glyphID > s.lastGlyph {
		return 0, 0, nil, ErrGlyphNotInBitmap
	}

	data := t.cblc
	if s.listOffset+s.numSubtables*8 > len(data) {
		return 0, 0, nil, ErrInvalidCBLCData
	}

	for i := 0; i < s.numSubtables; i++ {
		rec := data[s.listOffset+i*8:]
		first := binary.BigEndian.Uint16(rec[0:2])
		last := binary.BigEndian.Uint16(rec[2:4])
		if glyphID < first || glyphID > last {
			continue
		}

		sub := s.listOffset + int(binary.BigEndian.Uint32(rec[4:8]))
		if sub+8 > len(data) {
			return 0, 0, nil, ErrInvalidCBLCData
		}
		indexFormat := binary.BigEndian.Uint16(data[sub:])
		imageFormat = binary.BigEndian.Uint16(data[sub+2:])
		base := int(binary.BigEndian.Uint32(data[sub+4:]))
		body := sub + 8
		n := int(glyphID - first)

		switch indexFormat {
		case 1:
			if body+(n+2)*4 > len(data) {
				return 0, 0, nil, ErrInvalidCBLCData
			}
			start := binary.BigEndian.Uint32(data[body+n*4:])
			end := binary.BigEndian.Uint32(data[body+(n+1)*4:])
			if end <= start {
				return 0, 0, nil, ErrGlyphNotInBitmap
			}
			return base + int(start), imageFormat, nil, nil

		case 2:
			if body+12 > len(data) {
				return 0, 0, nil, ErrInvalidCBLCData
			}
			size := int(binary.BigEndian.Uint32(data[body:]))
			m := bigMetrics(data[body+4 : body+12])
			return base + n*size, imageFormat, &m, nil

		case 3:
			if body+(n+2)*2 > len(data) {
				return 0, 0, nil, ErrInvalidCBLCData
			}
			start := binary.BigEndian.Uint16(data[body+n*2:])
			end := binary.BigEndian.Uint16(data[body+(n+1)*2:])
			if end <= start {
				return 0, 0, nil, ErrGlyphNotInBitmap
			}
			return base + int(start), imageFormat, nil, nil

		case 5:
			if body+16 > len(data) {
				return 0, 0, nil, ErrInvalidCBLCData
			}
			size := int(binary.BigEndian.Uint32(data[body:]))
			m := bigMetrics(data[body+4 : body+12])
			count := int(binary.BigEndian.Uint32(data[body+12:]))
			ids := body + 16
			if ids+count*2 > len(data) {
				return 0, 0, nil, ErrInvalidCBLCData
			}
			for j := 0; j < count; j++ {
				if binary.BigEndian.Uint16(data[ids+j*2:]) == glyphID {
					return base + j*size, imageFormat, &m, nil
				}
			}
			return 0, 0, nil, ErrGlyphNotInBitmap

		default:
			return 0, 0, nil, fmt.Errorf("emoji: unsupported CBLC index format %d", indexFormat)
		}
	}

	return 0, 0, nil, ErrGlyphNotInBitmap
}

// readImage decodes the glyph record at offset in the CBDT table.
func (t *CBDT) readImage(offset int, imageFormat uint16, shared *glyphMetrics) (*BitmapGlyph, error) {
	data := t.cbdt
	var m glyphMetrics
	var header int

	switch imageFormat {
	case 17: // smallGlyphMetrics + PNG
		if offset+9 > len(data) {
			return nil, ErrInvalidCBDTData
		}
		m = smallMetrics(data[offset : offset+5])
		header = 5
	case 18: // bigGlyphMetrics + PNG
		if offset+12 > len(data) {
			return nil, ErrInvalidCBDTData
		}
		m = bigMetrics(data[offset : offset+8])
		header = 8
	case 19: // metrics in CBLC + PNG
		if offset+4 > len(data) || shared == nil {
			return nil, ErrInvalidCBDTData
		}
		m = *shared
	default:
		return nil, fmt.Errorf("%w: CBDT image format %d", ErrUnsupportedBitmapFormat, imageFormat)
	}

	lenAt := offset + header
	n := int(binary.BigEndian.Uint32(data[lenAt:]))
	start := lenAt + 4
	if start+n > len(data) {
		return nil, ErrInvalidCBDTData
	}

	return &BitmapGlyph{
		Data:    data[start : start+n],
		Format:  FormatPNG,
		Width:   m.width,
		Height:  m.height,
		OriginX: float64(m.bearingX),
		OriginY: float64(m.bearingY),
	}, nil
}

// smallMetrics parses a 5-byte SmallGlyphMetrics record.
func smallMetrics(b []byte) glyphMetrics {
	return glyphMetrics{
		height:   int(b[0]),
		width:    int(b[1]),
		bearingX: int(int8(b[2])), //#nosec G115 -- signed font field
		bearingY: int(int8(b[3])), //#nosec G115 -- signed font field
	}
}

// bigMetrics parses an 8-byte BigGlyphMetrics record (horizontal part).
func bigMetrics(b []byte) glyphMetrics {
	return glyphMetrics{
		height:   int(b[0]),
		width:    int(b[1]),
		bearingX: int(int8(b[2])), //#nosec G115 -- signed font field
		bearingY: int(int8(b[3])), //#nosec G115 -- signed font field
	}
}
