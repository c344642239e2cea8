package text

import "testing"

func TestOutlinerMask(t *testing.T) {
	source := goRegular(t)
	o := newOutliner(source.outlines(), 16)
	gid := glyphIDOf(t, source, 'x')

	mask, err := o.mask(gid, 32)
	if err != nil {
		t.Fatalf("mask: %v", err)
	}
	if mask == nil || mask.Rect.Empty() {
		t.Fatal("mask is empty")
	}
	if mask.Rect.Max.Y > 1 || mask.Rect.Min.Y >= 0 {
		t.Errorf("mask rect %v should sit on the baseline", mask.Rect)
	}

	again, err := o.mask(gid, 32)
	if err != nil || again != mask {
		t.Error("second lookup should return the cached mask")
	}
	if st := o.masks.Stats(); st.Hits != 1 || st.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", st)
	}

	bigger, err := o.mask(gid, 64)
	if err != nil {
		t.Fatal(err)
	}
	if bigger.Rect.Dx() <= mask.Rect.Dx() {
		t.Errorf("64px mask %v should be wider than 32px mask %v", bigger.Rect, mask.Rect)
	}
}

func TestOutlinerEmptyGlyph(t *testing.T) {
	source := goRegular(t)
	o := newOutliner(source.outlines(), 0)

	mask, err := o.mask(glyphIDOf(t, source, ' '), 32)
	if err != nil {
		t.Fatalf("mask(space): %v", err)
	}
	if mask != nil {
		t.Errorf("mask(space) = %v, want nil", mask.Rect)
	}
}

func TestOutlinerBadGlyph(t *testing.T) {
	o := newOutliner(goRegular(t).outlines(), 0)
	if _, err := o.mask(0x20000, 32); err == nil {
		t.Error("expected error for out of range glyph")
	}
}
