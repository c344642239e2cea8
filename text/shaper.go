package text

// Features selects the OpenType features applied during shaping.
type Features struct {
	// Kerning enables the "kern" feature.
	Kerning bool

	// Ligatures enables the "liga" feature. Emoji ZWJ sequences, flags and
	// keycaps are composed through ligature substitution, so coverage checks
	// need it.
	Ligatures bool
}

// DefaultFeatures enables kerning and ligatures.
func DefaultFeatures() Features {
	return Features{Kerning: true, Ligatures: true}
}

// Shaper converts a code-point sequence to glyphs.
//
// Implementations must be safe for concurrent use.
type Shaper interface {
	// Shape returns the glyphs for runes in visual order.
	Shape(runes []rune, f Features) ([]ShapedGlyph, error)
}

// ShaperFunc adapts a function to the Shaper interface.
type ShaperFunc func(runes []rune, f Features) ([]ShapedGlyph, error)

// Shape calls fn(runes, f).
func (fn ShaperFunc) Shape(runes []rune, f Features) ([]ShapedGlyph, error) {
	return fn(runes, f)
}
