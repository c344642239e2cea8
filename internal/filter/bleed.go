package filter

import "image"

// opaque is the alpha value of a fully covered pixel.
const opaque = 0xFF

// Bleed runs one pass of alpha bleeding over img.
//
// Every translucent pixel (0 < alpha < 255) that touches a fully opaque
// pixel in its 8-connected neighborhood is solidified: its color becomes the
// floor average of the RGB of its opaque neighbors and its alpha is forced
// to 255. Pixels that are fully transparent are never touched.
//
// Bleed reports whether any edge pixel was found. Callers repeat it until it
// returns false; each productive pass grows the opaque region by one ring,
// so the loop terminates after at most width*height passes.
func Bleed(img *image.NRGBA) bool {
	if img == nil {
		return false
	}
	b := img.Rect
	if b.Empty() {
		return false
	}

	edge := findEdge(img)

	// Averages are taken against the state at the start of the pass so the
	// result does not depend on the order edge pixels are visited in.
	updates := make([]bleedUpdate, 0, len(edge))
	for p := range edge {
		var r, g, bl, count int
		forNeighbors(b, p.X, p.Y, func(x, y int) {
			i := img.PixOffset(x, y)
			if img.Pix[i+3] != opaque {
				return
			}
			r += int(img.Pix[i+0])
			g += int(img.Pix[i+1])
			bl += int(img.Pix[i+2])
			count++
		})
		if count == 0 {
			continue
		}
		updates = append(updates, bleedUpdate{
			offset: img.PixOffset(p.X, p.Y),
			r:      uint8(r / count),  //nolint:gosec // average of uint8 values
			g:      uint8(g / count),  //nolint:gosec // average of uint8 values
			b:      uint8(bl / count), //nolint:gosec // average of uint8 values
		})
	}

	for _, u := range updates {
		img.Pix[u.offset+0] = u.r
		img.Pix[u.offset+1] = u.g
		img.Pix[u.offset+2] = u.b
		img.Pix[u.offset+3] = opaque
	}

	return len(edge) > 0
}

// bleedUpdate is a pending write for one edge pixel.
type bleedUpdate struct {
	offset  int
	r, g, b uint8
}

// BleedAll repeats Bleed until it reaches a fixed point and returns the
// number of passes that made progress.
func BleedAll(img *image.NRGBA) int {
	passes := 0
	for Bleed(img) {
		passes++
	}
	return passes
}

// Clear sets the alpha of every pixel to zero and leaves RGB untouched.
func Clear(img *image.NRGBA) {
	if img == nil {
		return
	}
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[i+3] = 0
			i += 4
		}
	}
}

// findEdge collects the translucent pixels adjacent to an opaque pixel.
// The search is anchored at opaque pixels so that only fringe touching a
// known-good color source is selected.
func findEdge(img *image.NRGBA) map[image.Point]struct{} {
	b := img.Rect
	edge := make(map[image.Point]struct{})

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] != opaque {
				continue
			}
			forNeighbors(b, x, y, func(nx, ny int) {
				a := img.Pix[img.PixOffset(nx, ny)+3]
				if a > 0 && a < opaque {
					edge[image.Point{X: nx, Y: ny}] = struct{}{}
				}
			})
		}
	}

	return edge
}

// forNeighbors calls fn for (x, y) and its 8 neighbors clipped to b.
func forNeighbors(b image.Rectangle, x, y int, fn func(x, y int)) {
	minX := max(b.Min.X, x-1)
	maxX := min(b.Max.X, x+2)
	minY := max(b.Min.Y, y-1)
	maxY := min(b.Max.Y, y+2)

	for ny := minY; ny < maxY; ny++ {
		for nx := minX; nx < maxX; nx++ {
			fn(nx, ny)
		}
	}
}

// CountOpaque returns the number of fully opaque pixels in img.
func CountOpaque(img *image.NRGBA) int {
	if img == nil {
		return 0
	}
	n := 0
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[i+3] == opaque {
				n++
			}
			i += 4
		}
	}
	return n
}
