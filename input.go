package emojiextract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadSequences reads one sequence per line.
//
// Input may be UTF-8 (with or without BOM) or UTF-16 with a BOM. Lines are
// trimmed and blank lines are skipped, as are comment lines ("#" alone or
// followed by a space, so a "#" keycap is still a sequence). Lines in the
// Unicode data file layout, "1F600 ; fully-qualified # ...", use the first
// field, and "231A..231B" ranges expand to one sequence per code point.
//
// A line whose tokens are all four to six hex digits is hex notation, so
// "cafe" reads as U+CAFE, not as the word.
//
// Malformed lines are skipped and logged. ReadSequences returns every valid
// sequence together with the line errors joined with errors.Join; only a
// read failure returns no sequences.
func ReadSequences(r io.Reader) ([]Sequence, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))

	var (
		seqs    []Sequence
		badLine []error
	)
	line := 0
	for scanner.Scan() {
		line++
		parsed, err := parseLine(scanner.Text())
		if err != nil {
			Logger().Warn("skipping input line", "line", line, "err", err)
			badLine = append(badLine, fmt.Errorf("emojiextract: line %d: %w", line, err))
			continue
		}
		seqs = append(seqs, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("emojiextract: read sequences: %w", err)
	}
	return seqs, errors.Join(badLine...)
}

func parseLine(s string) ([]Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "#" || strings.HasPrefix(s, "# ") {
		return nil, nil
	}

	field, _, isData := strings.Cut(s, ";")
	if !isData {
		seq, err := ParseSequence(s)
		if err != nil {
			return nil, err
		}
		return []Sequence{seq}, nil
	}

	field = strings.TrimSpace(field)
	if lo, hi, ok := strings.Cut(field, ".."); ok {
		return expandRange(lo, hi)
	}
	seq, err := ParseSequence(field)
	if err != nil {
		return nil, err
	}
	return []Sequence{seq}, nil
}

func expandRange(lo, hi string) ([]Sequence, error) {
	first, err := singleCodePoint(lo)
	if err != nil {
		return nil, err
	}
	last, err := singleCodePoint(hi)
	if err != nil {
		return nil, err
	}
	if last < first {
		return nil, fmt.Errorf("%w: range %s..%s", ErrInvalidCodePoint, lo, hi)
	}

	seqs := make([]Sequence, 0, last-first+1)
	for r := first; r <= last; r++ {
		seqs = append(seqs, NewSequence(r))
	}
	return seqs, nil
}

func singleCodePoint(s string) (rune, error) {
	runes, ok, err := parseHex(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if !ok || len(runes) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodePoint, s)
	}
	return runes[0], nil
}

// SequencesFromArg interprets a command-line argument: a path to a regular
// file is read with ReadSequences, anything else is parsed as one sequence.
// As with ReadSequences, a file with bad lines still yields its valid
// sequences alongside the error.
func SequencesFromArg(arg string) ([]Sequence, error) {
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		// #nosec G304 -- the path is provided by the user
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("emojiextract: open %s: %w", arg, err)
		}
		defer func() {
			_ = f.Close()
		}()
		return ReadSequences(f)
	}

	seq, err := ParseSequence(arg)
	if err != nil {
		return nil, err
	}
	return []Sequence{seq}, nil
}
