package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

var (
	tagKern = opentype.MustNewTag("kern")
	tagLiga = opentype.MustNewTag("liga")
)

// GoTextShaper provides HarfBuzz-level shaping using go-text/typesetting.
//
// GoTextShaper is safe for concurrent use. The parsed font.Font of the
// source is shared, and a lightweight font.Face is created per Shape call
// (font.Face is NOT safe for concurrent use). HarfbuzzShaper instances are
// pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	source *FontSource
	size   float64

	shaperPool sync.Pool
}

// NewGoTextShaper creates a shaper for source at the given size in pixels
// per em. Coverage checks shape at the font's units per em so positions
// come out in design units.
func NewGoTextShaper(source *FontSource, size float64) *GoTextShaper {
	return &GoTextShaper{
		source: source,
		size:   size,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Size returns the shaping size in pixels per em.
func (s *GoTextShaper) Size() float64 {
	return s.size
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(runes []rune, f Features) ([]ShapedGlyph, error) {
	if s.source == nil {
		return nil, ErrNilSource
	}
	if len(runes) == 0 {
		return nil, nil
	}

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    di.DirectionLTR,
		Face:         font.NewFace(s.source.shapingFont()),
		Size:         floatToFixed(s.size),
		Script:       detectScript(runes),
		Language:     language.NewLanguage("en"),
		FontFeatures: fontFeatures(f),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs), nil
}

// fontFeatures maps Features to explicit on/off switches so a disabled
// feature overrides the shaper's defaults.
func fontFeatures(f Features) []shaping.FontFeature {
	return []shaping.FontFeature{
		{Tag: tagKern, Value: boolValue(f.Kerning)},
		{Tag: tagLiga, Value: boolValue(f.Ligatures)},
	}
}

func boolValue(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// detectScript returns the script of the first rune with a real script.
// Emoji are Common, so this usually falls back to Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		sc := language.LookupScript(r)
		if sc != language.Common && sc != language.Inherited && sc != language.Unknown {
			return sc
		}
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// convertGlyphs converts go-text output glyphs to ShapedGlyph values.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))

	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(g.GlyphID),
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}

	return result
}
