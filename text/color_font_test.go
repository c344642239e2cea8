package text

import (
	"testing"

	"github.com/gogpu/emojiextract/text/emoji"
)

func TestColorTablesGlyphType(t *testing.T) {
	colr, err := emoji.ParseCOLR(colrV0(100, 7, 0))
	if err != nil {
		t.Fatalf("ParseCOLR: %v", err)
	}
	tables := &ColorTables{
		COLR:    colr,
		Bitmaps: &fakeStrike{glyph: 200, bitmap: emoji.BitmapGlyph{PPEM: 109}},
	}

	tests := []struct {
		gid  GlyphID
		want GlyphType
	}{
		{100, GlyphTypeCOLR},
		{200, GlyphTypeBitmap},
		{7, GlyphTypeOutline},
		{0x10000, GlyphTypeOutline},
	}
	for _, tt := range tests {
		if got := tables.GlyphType(tt.gid); got != tt.want {
			t.Errorf("GlyphType(%d) = %v, want %v", tt.gid, got, tt.want)
		}
	}

	if got := tables.Format(); got != "COLR" {
		t.Errorf("Format() = %q, want COLR", got)
	}
	if !tables.HasColor() {
		t.Error("HasColor() = false")
	}
}

func TestColorTablesFormat(t *testing.T) {
	tests := []struct {
		name   string
		tables ColorTables
		want   string
	}{
		{"none", ColorTables{}, ""},
		{"cbdt", ColorTables{Bitmaps: &emoji.CBDT{}}, "CBDT"},
		{"sbix", ColorTables{Bitmaps: &emoji.SBIX{}}, "sbix"},
		{"other", ColorTables{Bitmaps: &fakeStrike{}}, "bitmap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tables.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorTablesPalette(t *testing.T) {
	tables := &ColorTables{Palettes: []emoji.Palette{{}, {}}}
	if tables.Palette(1) == nil {
		t.Error("Palette(1) = nil")
	}
	if tables.Palette(2) != nil || tables.Palette(-1) != nil {
		t.Error("out of range palette should be nil")
	}
}

func TestGlyphTypeString(t *testing.T) {
	if GlyphTypeBitmap.String() != "Bitmap" || GlyphType(9).String() != "Unknown" {
		t.Error("unexpected GlyphType names")
	}
}
