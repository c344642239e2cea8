// Package emojiextract extracts emoji from a color font into PNG files.
//
// # Overview
//
// For each code-point sequence the pipeline asks the font, through shaping,
// whether the sequence is drawn as one coherent glyph run. Supported
// sequences are rendered at a fixed size into a bitmap cropped to the tight
// bounding box, their anti-aliased fringe is alpha-bled to remove dark
// halos, and the result is written as <hex>-<hex>.png.
//
// # Quick Start
//
//	cfg := emojiextract.DefaultConfig()
//	cfg.FontPath = "seguiemj.ttf"
//
//	p, err := emojiextract.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	seqs, err := emojiextract.SequencesFromArg("emoji.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := p.Run(context.Background(), seqs)
//
// # Architecture
//
// The module is organized into:
//   - emojiextract: Sequence, input parsing, Store, Pipeline
//   - text: font loading, shaping, coverage classification, rasterization
//   - text/emoji: COLR/CPAL, CBDT/CBLC and sbix table readers
//   - internal/filter: alpha bleed and clear
//   - internal/cache: LRU cache for glyph masks
//
// # Logging
//
// The package is silent by default. See SetLogger.
package emojiextract
