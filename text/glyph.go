package text

// GlyphID is a glyph index in a font.
type GlyphID uint32

// Glyph IDs with a fixed meaning in shaping output.
const (
	// GlyphMissing is the .notdef glyph, emitted for unmapped code points.
	GlyphMissing GlyphID = 0

	// GlyphPlaceholder is emitted for variation selectors the font does not
	// consume.
	GlyphPlaceholder GlyphID = 3
)

// IsSentinel reports whether id is GlyphMissing or GlyphPlaceholder.
func (id GlyphID) IsSentinel() bool {
	return id == GlyphMissing || id == GlyphPlaceholder
}

// ShapedGlyph is one entry of a shaping result.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the index of the first code point of the glyph's cluster.
	Cluster int

	// X is the horizontal pen position relative to the text origin.
	X float64

	// Y is the vertical offset relative to the baseline (positive is up).
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}
