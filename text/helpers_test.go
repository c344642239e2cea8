package text

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// goRegular loads the Go Regular font, which has plain outlines and no
// color tables.
func goRegular(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(goregular): %v", err)
	}
	return source
}

// glyphsOf builds a shaping result from glyph IDs.
func glyphsOf(ids ...GlyphID) []ShapedGlyph {
	glyphs := make([]ShapedGlyph, len(ids))
	for i, id := range ids {
		glyphs[i] = ShapedGlyph{GID: id, Cluster: i}
	}
	return glyphs
}

// fixedShaper returns the same glyphs for every input.
func fixedShaper(ids ...GlyphID) Shaper {
	return ShaperFunc(func([]rune, Features) ([]ShapedGlyph, error) {
		return glyphsOf(ids...), nil
	})
}

// glyphIDOf shapes a single rune with the real shaper and returns its glyph.
func glyphIDOf(t *testing.T, source *FontSource, r rune) GlyphID {
	t.Helper()

	glyphs, err := NewGoTextShaper(source, 16).Shape([]rune{r}, DefaultFeatures())
	if err != nil || len(glyphs) != 1 {
		t.Fatalf("Shape(%q) = %v, %v; want one glyph", r, glyphs, err)
	}
	return glyphs[0].GID
}

// countColor counts opaque pixels of exactly color c.
func countColor(img *image.NRGBA, c color.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}
