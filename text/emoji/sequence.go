package emoji

// SequenceType indicates the structure of an emoji sequence.
type SequenceType int

const (
	// SequenceSimple is a single emoji character.
	SequenceSimple SequenceType = iota

	// SequenceZWJ is several emoji joined by U+200D (families, professions).
	SequenceZWJ

	// SequenceFlag is a pair of regional indicators.
	SequenceFlag

	// SequenceKeycap is a base character followed by U+20E3.
	SequenceKeycap

	// SequenceModified is a base emoji with a skin tone modifier.
	SequenceModified

	// SequenceTag is a subdivision flag (U+1F3F4 + tags + U+E007F).
	SequenceTag

	// SequencePresentation is a character with a variation selector.
	SequencePresentation

	// SequenceUnknown is anything that fits none of the above.
	SequenceUnknown
)

var sequenceTypeNames = [...]string{
	SequenceSimple:       "Simple",
	SequenceZWJ:          "ZWJ",
	SequenceFlag:         "Flag",
	SequenceKeycap:       "Keycap",
	SequenceModified:     "Modified",
	SequenceTag:          "Tag",
	SequencePresentation: "Presentation",
	SequenceUnknown:      "Unknown",
}

// String returns the name of the sequence type.
func (t SequenceType) String() string {
	if t >= 0 && int(t) < len(sequenceTypeNames) {
		return sequenceTypeNames[t]
	}
	return "Unknown"
}

// Special code points.
const (
	ZWJ           = 0x200D
	Keycap        = 0x20E3
	TextSelector  = 0xFE0E
	EmojiSelector = 0xFE0F
	CancelTag     = 0xE007F
)

// IsModifier reports whether r is a Fitzpatrick skin tone modifier
// (U+1F3FB..U+1F3FF).
func IsModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsRegionalIndicator reports whether r is a regional indicator letter.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsTag reports whether r is a tag character (U+E0020..U+E007F).
func IsTag(r rune) bool {
	return r >= 0xE0020 && r <= CancelTag
}

// IsVariationSelector reports whether r is U+FE0E or U+FE0F.
func IsVariationSelector(r rune) bool {
	return r == TextSelector || r == EmojiSelector
}

// Kind classifies a single emoji sequence by its structure. The checks are
// ordered from the most to the least specific marker, so a ZWJ sequence of
// toned people is reported as SequenceZWJ.
func Kind(runes []rune) SequenceType {
	switch len(runes) {
	case 0:
		return SequenceUnknown
	case 1:
		return SequenceSimple
	}

	var zwj, tag, keycap, modifier, selector bool
	for _, r := range runes {
		switch {
		case r == ZWJ:
			zwj = true
		case IsTag(r):
			tag = true
		case r == Keycap:
			keycap = true
		case IsModifier(r):
			modifier = true
		case IsVariationSelector(r):
			selector = true
		}
	}

	switch {
	case zwj:
		return SequenceZWJ
	case tag:
		return SequenceTag
	case keycap:
		return SequenceKeycap
	case len(runes) == 2 && IsRegionalIndicator(runes[0]) && IsRegionalIndicator(runes[1]):
		return SequenceFlag
	case modifier:
		return SequenceModified
	case selector:
		return SequencePresentation
	default:
		return SequenceUnknown
	}
}
