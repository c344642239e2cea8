package filter

import (
	"image"
	"image/color"
	"testing"
)

var (
	red       = color.NRGBA{R: 255, A: 255}
	green     = color.NRGBA{G: 255, A: 255}
	halfBlue  = color.NRGBA{B: 255, A: 128}
	invisible = color.NRGBA{R: 10, G: 20, B: 30, A: 0}
)

func TestBleedCenterPixel(t *testing.T) {
	img := newFilled(3, 3, halfBlue)
	img.SetNRGBA(1, 1, red)

	if !Bleed(img) {
		t.Fatal("first Bleed() = false, want true")
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := img.NRGBAAt(x, y); got != red {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, red)
			}
		}
	}
	if Bleed(img) {
		t.Error("second Bleed() = true, want false")
	}
}

func TestBleedAveragesOpaqueNeighbors(t *testing.T) {
	img := newFilled(3, 1, invisible)
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, halfBlue)
	img.SetNRGBA(2, 0, green)

	if !Bleed(img) {
		t.Fatal("Bleed() = false, want true")
	}
	want := color.NRGBA{R: 127, G: 127, B: 0, A: 255}
	if got := img.NRGBAAt(1, 0); got != want {
		t.Errorf("edge pixel = %v, want %v", got, want)
	}
}

func TestBleedLeavesTransparentPixels(t *testing.T) {
	img := newFilled(3, 3, invisible)
	img.SetNRGBA(1, 1, red)

	if Bleed(img) {
		t.Error("Bleed() = true on image without fringe, want false")
	}
	if got := img.NRGBAAt(0, 0); got != invisible {
		t.Errorf("transparent pixel changed to %v", got)
	}
}

func TestBleedIgnoresFringeWithoutOpaqueNeighbor(t *testing.T) {
	img := newFilled(5, 1, invisible)
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(4, 0, halfBlue)

	if Bleed(img) {
		t.Error("Bleed() = true, want false for isolated fringe")
	}
	if got := img.NRGBAAt(4, 0); got != halfBlue {
		t.Errorf("isolated fringe changed to %v", got)
	}
}

func TestBleedGrowsOneRingPerPass(t *testing.T) {
	img := newFilled(5, 1, halfBlue)
	img.SetNRGBA(0, 0, red)

	for pass := 1; pass <= 4; pass++ {
		if !Bleed(img) {
			t.Fatalf("pass %d: Bleed() = false, want true", pass)
		}
		if got := CountOpaque(img); got != pass+1 {
			t.Fatalf("pass %d: opaque = %d, want %d", pass, got, pass+1)
		}
	}
	if Bleed(img) {
		t.Error("Bleed() after full coverage = true, want false")
	}
}

func TestBleedAll(t *testing.T) {
	img := newFilled(4, 4, halfBlue)
	img.SetNRGBA(0, 0, red)

	passes := BleedAll(img)
	if passes != 3 {
		t.Errorf("BleedAll() = %d passes, want 3", passes)
	}
	if got := CountOpaque(img); got != 16 {
		t.Errorf("opaque after BleedAll = %d, want 16", got)
	}
}

func TestBleedIdempotentAtFixedPoint(t *testing.T) {
	img := newFilled(6, 6, halfBlue)
	img.SetNRGBA(2, 3, green)
	img.SetNRGBA(0, 0, invisible)
	BleedAll(img)

	before := clone(img)
	if Bleed(img) {
		t.Error("Bleed() at fixed point = true, want false")
	}
	if !samePixels(before, img) {
		t.Error("Bleed() at fixed point modified the image")
	}
}

func TestBleedMonotonic(t *testing.T) {
	img := newFilled(8, 8, halfBlue)
	img.SetNRGBA(3, 3, red)
	img.SetNRGBA(7, 0, green)
	img.SetNRGBA(0, 7, invisible)

	prev := CountOpaque(img)
	for Bleed(img) {
		got := CountOpaque(img)
		if got < prev {
			t.Fatalf("opaque count decreased from %d to %d", prev, got)
		}
		prev = got
	}
}

func TestBleedDeterministic(t *testing.T) {
	src := newFilled(7, 5, halfBlue)
	src.SetNRGBA(1, 1, red)
	src.SetNRGBA(5, 3, green)
	src.SetNRGBA(3, 2, color.NRGBA{R: 9, G: 99, B: 199, A: 255})

	first := clone(src)
	Bleed(first)
	for i := 0; i < 10; i++ {
		again := clone(src)
		Bleed(again)
		if !samePixels(first, again) {
			t.Fatalf("run %d produced a different image", i)
		}
	}
}

func TestBleedNonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 13, 13))
	for y := 10; y < 13; y++ {
		for x := 10; x < 13; x++ {
			img.SetNRGBA(x, y, halfBlue)
		}
	}
	img.SetNRGBA(11, 11, red)

	if !Bleed(img) {
		t.Fatal("Bleed() = false, want true")
	}
	if got := CountOpaque(img); got != 9 {
		t.Errorf("opaque = %d, want 9", got)
	}
}

func TestBleedNilAndEmpty(t *testing.T) {
	if Bleed(nil) {
		t.Error("Bleed(nil) = true")
	}
	if Bleed(image.NewNRGBA(image.Rectangle{})) {
		t.Error("Bleed(empty) = true")
	}
	Clear(nil)
}

func TestClear(t *testing.T) {
	img := newFilled(4, 3, halfBlue)
	img.SetNRGBA(1, 1, red)
	img.SetNRGBA(2, 2, invisible)
	before := clone(img)

	Clear(img)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			got := img.NRGBAAt(x, y)
			was := before.NRGBAAt(x, y)
			if got.A != 0 {
				t.Errorf("pixel (%d,%d) alpha = %d, want 0", x, y, got.A)
			}
			if got.R != was.R || got.G != was.G || got.B != was.B {
				t.Errorf("pixel (%d,%d) RGB = %v, want %v", x, y, got, was)
			}
		}
	}
	if Bleed(img) {
		t.Error("Bleed() after Clear = true, want false")
	}
}
