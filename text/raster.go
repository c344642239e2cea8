package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/emojiextract/internal/filter"
)

// DefaultSize is the default render size in pixels per em.
const DefaultSize = 256

// defaultMaskCacheSize bounds the number of cached outline masks.
const defaultMaskCacheSize = 4096

// Box is a pixel bounding box relative to the text origin, with y growing
// down and the baseline at y = 0. Right and Bottom are exclusive.
type Box struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (b Box) Width() int { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b Box) Height() int { return b.Bottom - b.Top }

// Empty reports whether the box has non-positive width or height.
func (b Box) Empty() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Rect returns the box as an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

func (b Box) String() string {
	return fmt.Sprintf("L=%d T=%d R=%d B=%d %dx%d",
		b.Left, b.Top, b.Right, b.Bottom, b.Width(), b.Height())
}

func boxOf(r image.Rectangle) Box {
	return Box{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}

// RasterOption configures a Rasterizer.
type RasterOption func(*Rasterizer)

// WithForeground sets the color of plain outlines and of COLR layers that
// use the foreground palette entry. Defaults to opaque black.
func WithForeground(c color.NRGBA) RasterOption {
	return func(r *Rasterizer) {
		r.foreground = c
	}
}

// WithPalette selects the CPAL palette. Defaults to 0.
func WithPalette(index int) RasterOption {
	return func(r *Rasterizer) {
		r.palette = index
	}
}

// WithShaper replaces the shaper used for layout. By default a GoTextShaper
// at the render size is used.
func WithShaper(s Shaper) RasterOption {
	return func(r *Rasterizer) {
		r.shaper = s
	}
}

// WithMaskCacheSize bounds the outline mask cache. Zero means unlimited.
func WithMaskCacheSize(n int) RasterOption {
	return func(r *Rasterizer) {
		r.cacheSize = n
	}
}

// Rasterizer renders code-point sequences into bitmaps.
//
// Glyphs are drawn from COLR layers when the font has them, then from
// CBDT/sbix bitmap strikes, and fall back to plain outlines.
//
// Rasterizer is safe for concurrent use.
type Rasterizer struct {
	source     *FontSource
	size       float64
	shaper     Shaper
	foreground color.NRGBA
	palette    int
	cacheSize  int
	outlines   *outliner
}

// NewRasterizer creates a Rasterizer for source at size pixels per em.
// A non-positive size selects DefaultSize.
func NewRasterizer(source *FontSource, size float64, opts ...RasterOption) *Rasterizer {
	if size <= 0 {
		size = DefaultSize
	}
	r := &Rasterizer{
		source:     source,
		size:       size,
		foreground: color.NRGBA{A: 0xFF},
		cacheSize:  defaultMaskCacheSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.shaper == nil {
		r.shaper = NewGoTextShaper(source, size)
	}
	if source != nil {
		r.outlines = newOutliner(source.outlines(), r.cacheSize)
	}
	return r
}

// Size returns the render size in pixels per em.
func (r *Rasterizer) Size() float64 {
	return r.size
}

// drawOp is one positioned piece of a layout: either a mask filled with a
// solid color or a prescaled bitmap. Rectangles are in text coordinates.
type drawOp struct {
	mask   *image.Alpha
	color  color.NRGBA
	bitmap image.Image
	at     image.Point
}

func (op drawOp) bounds() image.Rectangle {
	if op.bitmap != nil {
		return op.bitmap.Bounds().Add(op.at)
	}
	return op.mask.Rect.Add(op.at)
}

// Layout is a shaped and rasterized sequence ready to be drawn.
// A Layout can be drawn any number of times.
type Layout struct {
	glyphs *image.NRGBA
	box    Box
}

// Box returns the tight pixel bounding box of the layout.
func (l *Layout) Box() Box {
	return l.box
}

// NewCanvas returns a transparent bitmap the size of the layout box.
func (l *Layout) NewCanvas() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, l.box.Width(), l.box.Height()))
}

// DrawTo pastes the layout onto dst with the top-left corner of the box at
// dst.Rect.Min. See filter.Paste for how existing pixels are blended.
func (l *Layout) DrawTo(dst *image.NRGBA) {
	l.drawAt(dst, l.box)
}

func (l *Layout) drawAt(dst *image.NRGBA, box Box) {
	r := image.Rectangle{Min: dst.Rect.Min, Max: dst.Rect.Min.Add(image.Pt(box.Width(), box.Height()))}
	filter.Paste(dst, r, l.glyphs, image.Pt(box.Left, box.Top))
}

// compose draws ops over each other into one bitmap covering union.
func compose(ops []drawOp, union image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(union)
	for _, op := range ops {
		rect := op.bounds()
		if op.bitmap != nil {
			draw.Draw(img, rect, op.bitmap, op.bitmap.Bounds().Min, draw.Over)
			continue
		}
		draw.DrawMask(img, rect, image.NewUniform(op.color), image.Point{}, op.mask, op.mask.Rect.Min, draw.Over)
	}
	return img
}

// Layout shapes runes and rasterizes every glyph. It returns ErrEmptyBounds
// if nothing visible was produced.
func (r *Rasterizer) Layout(runes []rune) (*Layout, error) {
	if r.source == nil {
		return nil, ErrNilSource
	}

	glyphs, err := r.shaper.Shape(runes, DefaultFeatures())
	if err != nil {
		return nil, fmt.Errorf("text: shape %U: %w", runes, err)
	}

	var (
		ops   []drawOp
		union image.Rectangle
	)
	for _, g := range glyphs {
		at := image.Pt(int(math.Round(g.X)), -int(math.Round(g.Y)))
		glyphOps, err := r.glyphOps(g.GID)
		if err != nil {
			return nil, err
		}
		for _, op := range glyphOps {
			op.at = at
			b := op.bounds()
			if b.Empty() {
				continue
			}
			union = union.Union(b)
			ops = append(ops, op)
		}
	}

	box := boxOf(union)
	if box.Empty() {
		return nil, ErrEmptyBounds
	}
	return &Layout{glyphs: compose(ops, union), box: box}, nil
}

// glyphOps rasterizes one glyph at the text origin.
func (r *Rasterizer) glyphOps(gid GlyphID) ([]drawOp, error) {
	colors := r.source.Colors()

	switch colors.GlyphType(gid) {
	case GlyphTypeCOLR:
		layers, _ := colors.COLR.Layers(uint16(gid)) //nolint:gosec // GlyphType checked the range
		palette := colors.Palette(r.palette)
		ops := make([]drawOp, 0, len(layers))
		for _, layer := range layers {
			mask, err := r.outlines.mask(GlyphID(layer.GlyphID), r.size)
			if err != nil {
				return nil, err
			}
			if mask == nil {
				continue
			}
			ops = append(ops, drawOp{mask: mask, color: palette.Color(layer, r.foreground)})
		}
		return ops, nil

	case GlyphTypeBitmap:
		op, err := r.bitmapOp(gid)
		if err != nil {
			return nil, err
		}
		return []drawOp{op}, nil
	}

	mask, err := r.outlines.mask(gid, r.size)
	if err != nil || mask == nil {
		return nil, err
	}
	return []drawOp{{mask: mask, color: r.foreground}}, nil
}

// bitmapOp decodes the best strike for gid and scales it to the render size.
func (r *Rasterizer) bitmapOp(gid GlyphID) (drawOp, error) {
	ppem := uint16(min(math.Round(r.size), math.MaxUint16))
	bg, err := r.source.Colors().Bitmaps.Glyph(uint16(gid), ppem) //nolint:gosec // GlyphType checked the range
	if err != nil {
		return drawOp{}, &GlyphError{GID: gid, Err: err}
	}
	img, err := bg.Decode()
	if err != nil {
		return drawOp{}, &GlyphError{GID: gid, Err: err}
	}

	scale := 1.0
	if bg.PPEM > 0 {
		scale = r.size / float64(bg.PPEM)
	}

	src := img.Bounds()
	left := int(math.Round(bg.OriginX * scale))
	top := -int(math.Round(bg.OriginY * scale))
	w := int(math.Round(float64(src.Dx()) * scale))
	h := int(math.Round(float64(src.Dy()) * scale))

	dst := image.NewNRGBA(image.Rect(left, top, left+w, top+h))
	xdraw.CatmullRom.Scale(dst, dst.Rect, img, src, xdraw.Over, nil)
	return drawOp{bitmap: dst}, nil
}

// Measure returns the bounding box runes render to.
func (r *Rasterizer) Measure(runes []rune) (Box, error) {
	l, err := r.Layout(runes)
	if err != nil {
		return Box{}, err
	}
	return l.Box(), nil
}

// Render draws runes into a new bitmap sized to their bounding box.
func (r *Rasterizer) Render(runes []rune) (*image.NRGBA, Box, error) {
	l, err := r.Layout(runes)
	if err != nil {
		return nil, Box{}, err
	}
	img := l.NewCanvas()
	l.DrawTo(img)
	return img, l.Box(), nil
}

// Draw renders runes into dst with the top-left of box at dst.Rect.Min.
// Pass the box returned by Measure or Render to redraw into the same bitmap.
func (r *Rasterizer) Draw(dst *image.NRGBA, runes []rune, box Box) error {
	l, err := r.Layout(runes)
	if err != nil {
		return err
	}
	l.drawAt(dst, box)
	return nil
}
