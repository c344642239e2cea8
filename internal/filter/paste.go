package filter

import "image"

// Paste composites src onto dst inside r, using the alpha of src as the
// mask. sp is the point of src aligned with r.Min.
//
// Channels are blended in straight alpha: with m = srcA/255,
//
//	dst.rgb = dst.rgb*(1-m) + src.rgb*m
//	dst.a   = dst.a*(1-m) + 255*m
//
// Unlike Porter-Duff over, the color of a transparent destination pixel
// takes part in the blend, so a Paste after Bleed and Clear keeps the bled
// edge color in the fringe.
func Paste(dst *image.NRGBA, r image.Rectangle, src *image.NRGBA, sp image.Point) {
	if dst == nil || src == nil {
		return
	}

	delta := r.Min.Sub(sp)
	r = r.Intersect(dst.Rect).Intersect(src.Rect.Add(delta))
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X-delta.X, y-delta.Y)
		for x := r.Min.X; x < r.Max.X; x++ {
			m := uint32(src.Pix[si+3])
			switch m {
			case 0:
			case opaque:
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
			default:
				inv := opaque - m
				dst.Pix[di+0] = lerp(dst.Pix[di+0], src.Pix[si+0], m, inv)
				dst.Pix[di+1] = lerp(dst.Pix[di+1], src.Pix[si+1], m, inv)
				dst.Pix[di+2] = lerp(dst.Pix[di+2], src.Pix[si+2], m, inv)
				dst.Pix[di+3] = lerp(dst.Pix[di+3], opaque, m, inv)
			}
			di += 4
			si += 4
		}
	}
}

// lerp returns (d*inv + s*m) / 255, rounded.
func lerp(d, s uint8, m, inv uint32) uint8 {
	return uint8((uint32(d)*inv + uint32(s)*m + 127) / opaque) //nolint:gosec // result is at most 255
}
