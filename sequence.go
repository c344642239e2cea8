package emojiextract

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/emojiextract/text/emoji"
)

// Sequence is an immutable, ordered list of code points.
type Sequence struct {
	runes []rune
}

// NewSequence creates a Sequence from runes. The runes are copied.
func NewSequence(runes ...rune) Sequence {
	return Sequence{runes: append([]rune(nil), runes...)}
}

// ParseSequence parses one sequence from literal text or hex notation.
//
// Hex notation is a list of code points separated by spaces, hyphens,
// commas or underscores. Each code point is either prefixed with "U+" or
// "0x", or written with at least four hex digits:
//
//	1F468 200D 1F469
//	U+1F600
//	1f468-200d-1f469
//
// Anything else is taken literally, one code point per rune. Text that is
// itself valid hex notation, such as "cafe" or "1234", parses as code
// points (U+CAFE, U+1234); write it with a non-hex separator or character
// to keep it literal.
func ParseSequence(s string) (Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sequence{}, ErrEmptySequence
	}

	if runes, ok, err := parseHex(s); ok {
		if err != nil {
			return Sequence{}, err
		}
		return Sequence{runes: runes}, nil
	}

	if !utf8.ValidString(s) {
		return Sequence{}, fmt.Errorf("emojiextract: invalid UTF-8 in %q", s)
	}
	return Sequence{runes: []rune(s)}, nil
}

// parseHex reports ok=false when s is not in hex notation. With ok=true, a
// non-nil error means a token was well-formed but not a valid code point.
func parseHex(s string) ([]rune, bool, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == ',' || r == '_'
	})
	if len(fields) == 0 {
		return nil, false, nil
	}

	runes := make([]rune, 0, len(fields))
	for _, f := range fields {
		digits, prefixed := trimHexPrefix(f)
		if digits == "" || len(digits) > 6 || !isHex(digits) {
			return nil, false, nil
		}
		if !prefixed && len(digits) < 4 {
			return nil, false, nil
		}
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, false, nil
		}
		r := rune(v) //nolint:gosec // at most six hex digits
		if !utf8.ValidRune(r) {
			return nil, true, fmt.Errorf("%w: %s", ErrInvalidCodePoint, f)
		}
		runes = append(runes, r)
	}
	return runes, true, nil
}

func trimHexPrefix(s string) (string, bool) {
	for _, p := range []string{"U+", "u+", "0x", "0X"} {
		if rest, ok := strings.CutPrefix(s, p); ok {
			return rest, true
		}
	}
	return s, false
}

func isHex(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// Runes returns a copy of the code points.
func (s Sequence) Runes() []rune {
	return append([]rune(nil), s.runes...)
}

// Len returns the number of code points.
func (s Sequence) Len() int {
	return len(s.runes)
}

// Key returns the code points as lowercase hex joined with hyphens,
// e.g. "1f468-200d-1f469".
func (s Sequence) Key() string {
	var b strings.Builder
	for i, r := range s.runes {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.FormatInt(int64(r), 16))
	}
	return b.String()
}

// Filename returns Key() + ".png".
func (s Sequence) Filename() string {
	return s.Key() + ".png"
}

// String returns the sequence as text.
func (s Sequence) String() string {
	return string(s.runes)
}

// Kind classifies the structure of the sequence.
func (s Sequence) Kind() emoji.SequenceType {
	return emoji.Kind(s.runes)
}

// Name returns the Unicode names of the code points, joined with ", ".
func (s Sequence) Name() string {
	names := make([]string, len(s.runes))
	for i, r := range s.runes {
		n := runenames.Name(r)
		if n == "" {
			n = fmt.Sprintf("%U", r)
		}
		names[i] = n
	}
	return strings.Join(names, ", ")
}
