package text

import (
	"fmt"
	"slices"
)

// Verdict is the outcome of a coverage check.
type Verdict uint8

const (
	// VerdictSupported means the sequence shapes to real glyphs only.
	VerdictSupported Verdict = iota

	// VerdictEmpty means nothing was left after trimming placeholders.
	VerdictEmpty

	// VerdictUncombinedModifier means the sequence ends in a stand-alone
	// skin tone swatch: the font did not merge the modifier into its base.
	VerdictUncombinedModifier

	// VerdictMissingGlyph means a code point mapped to .notdef.
	VerdictMissingGlyph

	// VerdictPlaceholder means a placeholder glyph remained inside the run.
	VerdictPlaceholder
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictSupported:
		return "supported"
	case VerdictEmpty:
		return "empty"
	case VerdictUncombinedModifier:
		return "uncombined-modifier"
	case VerdictMissingGlyph:
		return "missing-glyph"
	case VerdictPlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("Verdict(%d)", uint8(v))
	}
}

// Supported reports whether v is VerdictSupported.
func (v Verdict) Supported() bool {
	return v == VerdictSupported
}

// DefaultToneSentinels returns the glyph IDs of the stand-alone skin tone
// swatches (U+1F3FB..U+1F3FF) in Segoe UI Emoji.
func DefaultToneSentinels() []GlyphID {
	return []GlyphID{1076, 1079, 1082, 1085, 1088}
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithToneSentinels replaces the tone sentinel glyph IDs. Passing no IDs
// disables the check.
func WithToneSentinels(ids ...GlyphID) ClassifierOption {
	return func(c *Classifier) {
		c.tones = toneSet(ids)
	}
}

// WithFeatures overrides the shaping features. Kerning and ligatures are
// enabled by default.
func WithFeatures(f Features) ClassifierOption {
	return func(c *Classifier) {
		c.features = f
	}
}

// Classifier decides whether a font renders a sequence as one coherent
// glyph run.
//
// Classifier is safe for concurrent use if its Shaper is.
type Classifier struct {
	shaper   Shaper
	features Features
	tones    map[GlyphID]struct{}
}

// NewClassifier creates a Classifier backed by shaper.
func NewClassifier(shaper Shaper, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		shaper:   shaper,
		features: DefaultFeatures(),
		tones:    toneSet(DefaultToneSentinels()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToneSentinels returns the configured tone sentinel IDs in ascending order.
func (c *Classifier) ToneSentinels() []GlyphID {
	ids := make([]GlyphID, 0, len(c.tones))
	for id := range c.tones {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Classify shapes runes and inspects the glyph IDs.
func (c *Classifier) Classify(runes []rune) (Verdict, error) {
	glyphs, err := c.shaper.Shape(runes, c.features)
	if err != nil {
		return VerdictEmpty, fmt.Errorf("text: shape %U: %w", runes, err)
	}
	return c.ClassifyGlyphs(glyphs), nil
}

// IsSupported reports whether runes render as a single coherent glyph run.
// Shaping errors count as unsupported.
func (c *Classifier) IsSupported(runes []rune) bool {
	v, err := c.Classify(runes)
	return err == nil && v.Supported()
}

// ClassifyGlyphs applies the coverage rules to a shaping result:
//
//  1. trailing placeholder glyphs are dropped
//  2. an empty run is VerdictEmpty
//  3. a run ending in a tone sentinel is VerdictUncombinedModifier
//  4. any remaining .notdef or placeholder rejects the run
func (c *Classifier) ClassifyGlyphs(glyphs []ShapedGlyph) Verdict {
	glyphs = TrimPlaceholders(glyphs)
	if len(glyphs) == 0 {
		return VerdictEmpty
	}

	if _, ok := c.tones[glyphs[len(glyphs)-1].GID]; ok {
		return VerdictUncombinedModifier
	}

	for _, g := range glyphs {
		if !g.GID.IsSentinel() {
			continue
		}
		if g.GID == GlyphMissing {
			return VerdictMissingGlyph
		}
		return VerdictPlaceholder
	}
	return VerdictSupported
}

// TrimPlaceholders returns glyphs without its trailing GlyphPlaceholder
// entries. The result shares the backing array.
func TrimPlaceholders(glyphs []ShapedGlyph) []ShapedGlyph {
	n := len(glyphs)
	for n > 0 && glyphs[n-1].GID == GlyphPlaceholder {
		n--
	}
	return glyphs[:n]
}

func toneSet(ids []GlyphID) map[GlyphID]struct{} {
	set := make(map[GlyphID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
