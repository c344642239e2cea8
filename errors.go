package emojiextract

import (
	"errors"
	"fmt"
)

// Sentinel errors for the emojiextract package.
var (
	// ErrNoFont is returned when a Config names neither a font file nor font data.
	ErrNoFont = errors.New("emojiextract: no font configured")

	// ErrInvalidSize is returned for a non-positive render size.
	ErrInvalidSize = errors.New("emojiextract: render size must be positive")

	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("emojiextract: worker count must not be negative")

	// ErrNoOutputDir is returned when a Config has no output directory.
	ErrNoOutputDir = errors.New("emojiextract: no output directory")

	// ErrEmptySequence is returned when parsing yields no code points.
	ErrEmptySequence = errors.New("emojiextract: empty sequence")

	// ErrInvalidCodePoint is returned for hex notation outside the Unicode range.
	ErrInvalidCodePoint = errors.New("emojiextract: invalid code point")
)

// Stage names the pipeline step where a sequence failed.
type Stage string

// Pipeline stages.
const (
	StageClassify Stage = "classify"
	StageRender   Stage = "render"
	StageSave     Stage = "save"
)

// SequenceError reports a failure to extract one sequence.
type SequenceError struct {
	Key   string
	Stage Stage
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("emojiextract: %s %s: %v", e.Stage, e.Key, e.Err)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}
