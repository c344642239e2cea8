package emojiextract

import (
	"fmt"
	"image/color"
	"runtime"

	"github.com/gogpu/emojiextract/text"
)

// Default configuration values.
const (
	DefaultOutputDir = "output"
	DefaultSize      = text.DefaultSize
)

// Config holds the pipeline settings.
type Config struct {
	// FontPath is the font file to load. Ignored when FontData is set.
	FontPath string

	// FontData is the raw font file.
	FontData []byte

	// OutputDir is the directory PNG files are written to. It is created on
	// the first write.
	OutputDir string

	// Size is the render size in pixels per em.
	Size float64

	// Workers bounds the number of sequences processed in parallel.
	// Zero means runtime.NumCPU().
	Workers int

	// ToneSentinels are the glyph IDs of stand-alone skin tone swatches.
	// Nil selects text.DefaultToneSentinels; an empty slice disables the check.
	ToneSentinels []text.GlyphID

	// Foreground colors plain outlines and foreground COLR layers.
	Foreground color.NRGBA

	// Palette selects the CPAL palette.
	Palette int
}

// DefaultConfig returns the settings of the stock extractor: 256px renders
// into ./output with the Segoe UI Emoji tone sentinels.
func DefaultConfig() Config {
	return Config{
		OutputDir:     DefaultOutputDir,
		Size:          DefaultSize,
		ToneSentinels: text.DefaultToneSentinels(),
		Foreground:    color.NRGBA{A: 0xFF},
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.FontPath == "" && len(c.FontData) == 0 {
		return ErrNoFont
	}
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSize, c.Size)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Option configures a Pipeline during creation.
//
// Example:
//
//	p, err := emojiextract.New(cfg, emojiextract.WithStore(myStore))
type Option func(*pipelineOptions)

// pipelineOptions holds optional dependencies for Pipeline creation.
type pipelineOptions struct {
	store        Store
	shaper       text.Shaper
	renderShaper text.Shaper
}

// WithStore replaces the directory store built from Config.OutputDir.
func WithStore(s Store) Option {
	return func(o *pipelineOptions) {
		o.store = s
	}
}

// WithShaper replaces the shaper used for coverage checks.
func WithShaper(s text.Shaper) Option {
	return func(o *pipelineOptions) {
		o.shaper = s
	}
}

// WithRenderShaper replaces the shaper used to lay out rendered sequences.
func WithRenderShaper(s text.Shaper) Option {
	return func(o *pipelineOptions) {
		o.renderShaper = s
	}
}
