package emoji

import (
	"bytes"
	"errors"
	"image"
	"image/png"
)

// Bitmap table errors shared by CBDT and sbix.
var (
	// ErrGlyphNotInBitmap indicates the glyph has no bitmap data.
	ErrGlyphNotInBitmap = errors.New("emoji: glyph not found in bitmap table")

	// ErrUnsupportedBitmapFormat indicates image data other than PNG.
	ErrUnsupportedBitmapFormat = errors.New("emoji: unsupported bitmap format")

	// ErrNoStrikeAvailable indicates the table has no bitmap strikes.
	ErrNoStrikeAvailable = errors.New("emoji: no bitmap strike available")
)

// BitmapFormat indicates the encoding of embedded bitmap data.
type BitmapFormat int

const (
	// FormatPNG is PNG-compressed bitmap data.
	FormatPNG BitmapFormat = iota

	// FormatJPEG is JPEG-compressed bitmap data.
	FormatJPEG

	// FormatTIFF is TIFF-compressed bitmap data.
	FormatTIFF

	// FormatOther is anything else (dupe references, raw masks).
	FormatOther
)

// String returns the name of the bitmap format.
func (f BitmapFormat) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatTIFF:
		return "TIFF"
	default:
		return "Other"
	}
}

// BitmapGlyph is an embedded color bitmap for one glyph at one strike.
//
// Placement is normalized across table formats: OriginX is the distance from
// the glyph origin to the left edge and OriginY the distance from the
// baseline up to the top edge, both in strike pixels.
type BitmapGlyph struct {
	GlyphID uint16
	Data    []byte
	Format  BitmapFormat
	Width   int
	Height  int
	OriginX float64
	OriginY float64

	// PPEM is the pixels-per-em of the strike the bitmap was taken from.
	PPEM uint16
}

// Decode decodes the bitmap data. Only PNG is supported.
func (b *BitmapGlyph) Decode() (image.Image, error) {
	if b.Format != FormatPNG {
		return nil, ErrUnsupportedBitmapFormat
	}
	return png.Decode(bytes.NewReader(b.Data))
}

// BitmapTable is implemented by the CBDT and sbix readers.
type BitmapTable interface {
	// HasGlyph reports whether any strike holds a bitmap for glyphID.
	HasGlyph(glyphID uint16) bool

	// Glyph returns the bitmap from the strike best matching ppem.
	Glyph(glyphID uint16, ppem uint16) (*BitmapGlyph, error)

	// PPEMs lists the available strike sizes in table order.
	PPEMs() []uint16
}

// BestStrike returns the index of the smallest strike that is at least want,
// or the largest strike if none is. It returns -1 for an empty list.
func BestStrike(ppems []uint16, want uint16) int {
	best := -1
	largest := -1
	for i, p := range ppems {
		if largest < 0 || p > ppems[largest] {
			largest = i
		}
		if p >= want && (best < 0 || p < ppems[best]) {
			best = i
		}
	}
	if best < 0 {
		return largest
	}
	return best
}
