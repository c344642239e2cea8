package text

import (
	"errors"
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/emojiextract/internal/cache"
)

// maskKey identifies a rasterized outline.
type maskKey struct {
	gid  GlyphID
	ppem fixed.Int26_6
}

// outliner turns glyph outlines into coverage masks.
//
// Masks are positioned relative to the glyph origin: x grows right, y grows
// down and the baseline is y = 0. A glyph without contours yields a nil mask.
type outliner struct {
	font  *sfnt.Font
	masks *cache.Cache[maskKey, *image.Alpha]
}

func newOutliner(f *sfnt.Font, cacheSize int) *outliner {
	return &outliner{
		font:  f,
		masks: cache.New[maskKey, *image.Alpha](cacheSize),
	}
}

// mask returns the coverage mask for gid at ppem pixels per em.
// The returned mask is shared and must not be modified.
func (o *outliner) mask(gid GlyphID, ppem float64) (*image.Alpha, error) {
	key := maskKey{gid: gid, ppem: floatToFixed(ppem)}
	return o.masks.GetOrLoad(key, func() (*image.Alpha, error) {
		return o.rasterize(key)
	})
}

func (o *outliner) rasterize(key maskKey) (*image.Alpha, error) {
	if key.gid > 0xFFFF {
		return nil, &GlyphError{GID: key.gid, Err: sfnt.ErrNotFound}
	}

	var buf sfnt.Buffer
	segments, err := o.font.LoadGlyph(&buf, sfnt.GlyphIndex(key.gid), key.ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, nil
		}
		return nil, &GlyphError{GID: key.gid, Err: err}
	}
	if len(segments) == 0 {
		return nil, nil
	}

	fb := segments.Bounds()
	rect := image.Rect(fb.Min.X.Floor(), fb.Min.Y.Floor(), fb.Max.X.Ceil(), fb.Max.Y.Ceil())
	if rect.Empty() {
		return nil, nil
	}

	var r vector.Rasterizer
	r.Reset(rect.Dx(), rect.Dy())
	r.DrawOp = draw.Src

	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 - ox, float32(p.Y)/64 - oy
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.ClosePath()
			}
			x, y := pt(seg.Args[0])
			r.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			r.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			r.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			r.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(rect.Min)
	return mask, nil
}
