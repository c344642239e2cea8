package emojiextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/emojiextract/internal/filter"
	"github.com/gogpu/emojiextract/text"
)

// Status is the outcome of extracting one sequence.
type Status uint8

const (
	// StatusExtracted means a PNG was written.
	StatusExtracted Status = iota

	// StatusUnsupported means the font does not draw the sequence as one
	// glyph run.
	StatusUnsupported

	// StatusEmpty means the sequence rendered to an empty bounding box.
	StatusEmpty

	// StatusFailed means classification, rendering or saving failed.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusExtracted:
		return "extracted"
	case StatusUnsupported:
		return "unsupported"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Result describes what happened to one sequence.
type Result struct {
	Sequence Sequence
	Status   Status

	// Verdict is the coverage verdict. Only meaningful once classification
	// succeeded.
	Verdict text.Verdict

	// Box is the pixel bounding box of the render.
	Box text.Box

	// Path is where the PNG was written.
	Path string

	// BleedPasses is the number of productive alpha bleed passes.
	BleedPasses int

	// Err is set for StatusFailed and is always a *SequenceError.
	Err error
}

// Report summarizes a batch run.
type Report struct {
	// Results holds one entry per processed sequence, in input order.
	Results []Result

	Extracted   int
	Unsupported int
	Empty       int
	Failed      int
}

// Total returns the number of processed sequences.
func (r *Report) Total() int {
	return len(r.Results)
}

// Failures returns the errors of the failed sequences.
func (r *Report) Failures() []error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errs
}

func (r *Report) add(res Result) {
	switch res.Status {
	case StatusExtracted:
		r.Extracted++
	case StatusUnsupported:
		r.Unsupported++
	case StatusEmpty:
		r.Empty++
	case StatusFailed:
		r.Failed++
	}
}

// Pipeline extracts sequences from one font.
//
// Pipeline is safe for concurrent use. Every sequence gets its own bitmap;
// the font and glyph caches are shared.
type Pipeline struct {
	cfg        Config
	source     *text.FontSource
	classifier *text.Classifier
	raster     *text.Rasterizer
	store      Store
}

// New loads the configured font and prepares a Pipeline.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o pipelineOptions
	for _, opt := range opts {
		opt(&o)
	}

	var (
		source *text.FontSource
		err    error
	)
	if len(cfg.FontData) > 0 {
		source, err = text.NewFontSource(cfg.FontData)
	} else {
		source, err = text.NewFontSourceFromFile(cfg.FontPath)
	}
	if err != nil {
		return nil, fmt.Errorf("emojiextract: load font: %w", err)
	}

	shaper := o.shaper
	if shaper == nil {
		shaper = text.NewGoTextShaper(source, float64(source.UnitsPerEm()))
	}
	tones := cfg.ToneSentinels
	if tones == nil {
		tones = text.DefaultToneSentinels()
	}

	rasterOpts := []text.RasterOption{
		text.WithForeground(cfg.Foreground),
		text.WithPalette(cfg.Palette),
	}
	if o.renderShaper != nil {
		rasterOpts = append(rasterOpts, text.WithShaper(o.renderShaper))
	}

	store := o.store
	if store == nil {
		store = NewDirStore(cfg.OutputDir)
	}

	p := &Pipeline{
		cfg:        cfg,
		source:     source,
		classifier: text.NewClassifier(shaper, text.WithToneSentinels(tones...)),
		raster:     text.NewRasterizer(source, cfg.Size, rasterOpts...),
		store:      store,
	}

	Logger().Debug("font loaded",
		"name", source.Name(),
		"glyphs", source.NumGlyphs(),
		"upem", source.UnitsPerEm(),
		"color", source.Colors().Format(),
	)
	return p, nil
}

// Source returns the loaded font.
func (p *Pipeline) Source() *text.FontSource {
	return p.source
}

// Extract classifies, renders and saves one sequence.
//
// A sequence the font does not support is not an error. Failures are
// returned both as the error and in Result.Err, wrapped in *SequenceError.
func (p *Pipeline) Extract(ctx context.Context, seq Sequence) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Sequence: seq}, err
	}
	res := p.extract(seq)
	return res, res.Err
}

func (p *Pipeline) extract(seq Sequence) Result {
	res := Result{Sequence: seq}
	log := Logger().With("seq", seq.Key())
	runes := seq.runes

	verdict, err := p.classifier.Classify(runes)
	if err != nil {
		return p.fail(log, res, StageClassify, err)
	}
	res.Verdict = verdict
	if !verdict.Supported() {
		res.Status = StatusUnsupported
		log.Debug("unsupported", "verdict", verdict, "name", seq.Name())
		return res
	}

	layout, err := p.raster.Layout(runes)
	if errors.Is(err, text.ErrEmptyBounds) {
		res.Status = StatusEmpty
		log.Debug("empty bounding box", "name", seq.Name())
		return res
	}
	if err != nil {
		return p.fail(log, res, StageRender, err)
	}
	res.Box = layout.Box()

	img := layout.NewCanvas()
	layout.DrawTo(img)

	// Bleed, clear, then redraw onto the same canvas.
	res.BleedPasses = filter.BleedAll(img)
	filter.Clear(img)
	layout.DrawTo(img)

	path, err := p.store.Save(seq.Filename(), img)
	if err != nil {
		return p.fail(log, res, StageSave, err)
	}
	res.Path = path
	res.Status = StatusExtracted

	log.Info("extracted",
		"text", seq.String(),
		"kind", seq.Kind(),
		"box", res.Box,
		"bleed", res.BleedPasses,
		"path", path,
	)
	return res
}

func (p *Pipeline) fail(log *slog.Logger, res Result, stage Stage, err error) Result {
	res.Status = StatusFailed
	res.Err = &SequenceError{Key: res.Sequence.Key(), Stage: stage, Err: err}
	log.Warn("extraction failed", "stage", stage, "name", res.Sequence.Name(), "err", err)
	return res
}

// Run extracts seqs with up to Config.Workers in parallel.
//
// Failed sequences are recorded in the report and do not stop the batch.
// Cancelling ctx stops new sequences from starting; sequences already
// running finish, and Run returns the partial report with ctx.Err().
//
// Panics in a worker are not recovered: a panicking decoder or rasterizer
// stops the process rather than being reported as a failed sequence.
func (p *Pipeline) Run(ctx context.Context, seqs []Sequence) (Report, error) {
	start := time.Now()
	results := make([]Result, len(seqs))

	var g errgroup.Group
	g.SetLimit(p.cfg.workers())

	started := 0
	for i, seq := range seqs {
		if ctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			results[i] = p.extract(seq)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Results: results[:started]}
	for _, res := range report.Results {
		report.add(res)
	}

	Logger().Info("batch finished",
		"total", report.Total(),
		"extracted", report.Extracted,
		"unsupported", report.Unsupported,
		"empty", report.Empty,
		"failed", report.Failed,
		"elapsed", time.Since(start),
	)

	if started < len(seqs) {
		return report, ctx.Err()
	}
	return report, nil
}
