// Command emojiextract writes one PNG per emoji supported by a color font.
//
// Usage:
//
//	emojiextract [flags] <file | sequence>
//
// The argument is either a file with one sequence per line or a single
// sequence, given literally or in hex notation (1F468-200D-1F469).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gogpu/emojiextract"
	"github.com/gogpu/emojiextract/text"
)

func main() {
	defaults := emojiextract.DefaultConfig()

	var (
		fontPath = flag.String("font", "seguiemj.ttf", "color font file")
		output   = flag.String("output", defaults.OutputDir, "output directory")
		size     = flag.Float64("size", defaults.Size, "render size in pixels per em")
		workers  = flag.Int("workers", 0, "parallel workers (0 = number of CPUs)")
		tones    = flag.String("tone-sentinels", joinGlyphIDs(defaults.ToneSentinels), "comma-separated glyph IDs of stand-alone skin tones, or \"none\"")
		fg       = flag.String("fg", "#000000", "foreground color for monochrome glyphs (#rrggbb or #rrggbbaa)")
		palette  = flag.Int("palette", 0, "CPAL palette index")
		verbose  = flag.Bool("v", false, "log every sequence, including unsupported ones")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file | sequence>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	emojiextract.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := defaults
	cfg.FontPath = *fontPath
	cfg.OutputDir = *output
	cfg.Size = *size
	cfg.Workers = *workers
	cfg.Palette = *palette

	var err error
	if cfg.ToneSentinels, err = parseGlyphIDs(*tones); err != nil {
		log.Fatalf("Invalid -tone-sentinels: %v", err)
	}
	if cfg.Foreground, err = parseHexColor(*fg); err != nil {
		log.Fatalf("Invalid -fg: %v", err)
	}

	p, err := emojiextract.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	seqs, err := emojiextract.SequencesFromArg(flag.Arg(0))
	if err != nil {
		if len(seqs) == 0 {
			log.Fatalf("Failed to read sequences: %v", err)
		}
		log.Printf("Skipped invalid input: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := p.Run(ctx, seqs)
	for _, res := range report.Results {
		switch res.Status {
		case emojiextract.StatusExtracted:
			fmt.Printf("%s %s -> %s\n", res.Box, res.Sequence, res.Path)
		case emojiextract.StatusEmpty:
			fmt.Printf("%s -> empty\n", res.Sequence)
		case emojiextract.StatusFailed:
			fmt.Fprintf(os.Stderr, "%s -> %v\n", res.Sequence, res.Err)
		}
	}
	if errors.Is(err, context.Canceled) {
		log.Printf("Interrupted after %d of %d sequences", report.Total(), len(seqs))
		os.Exit(130)
	}

	log.Printf("Extracted %d of %d sequences into %s", report.Extracted, len(seqs), cfg.OutputDir)
	if report.Failed > 0 {
		os.Exit(1)
	}
}

func joinGlyphIDs(ids []text.GlyphID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

func parseGlyphIDs(s string) ([]text.GlyphID, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return []text.GlyphID{}, nil
	}

	var ids []text.GlyphID
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 16)
		if err != nil {
			return nil, err
		}
		ids = append(ids, text.GlyphID(v))
	}
	return ids, nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%q is not #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{
		R: uint8(v >> 24), //nolint:gosec // masked by the shift
		G: uint8(v >> 16), //nolint:gosec // truncation intended
		B: uint8(v >> 8),  //nolint:gosec // truncation intended
		A: uint8(v),       //nolint:gosec // truncation intended
	}, nil
}
