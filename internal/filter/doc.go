// Package filter provides pixel post-processing for extracted glyph bitmaps.
//
// The main entry point is the alpha-bleed pass:
//   - Bleed solidifies anti-aliased fringe pixels next to opaque ones
//   - BleedAll repeats Bleed until the bitmap reaches a fixed point
//   - Clear drops all coverage while keeping color, ready for a re-render
//   - Paste composites a render in straight alpha, so cleared color shows
//     through in the fringe
//
// All functions operate in place on *image.NRGBA (straight alpha). They are
// not safe for concurrent use on the same image.
package filter
