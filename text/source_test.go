package text

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source := goRegular(t)

	if source.Name() == "" {
		t.Error("Name() is empty")
	}
	if got := source.UnitsPerEm(); got != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", got)
	}
	if source.NumGlyphs() <= 3 {
		t.Errorf("NumGlyphs() = %d, want > 3", source.NumGlyphs())
	}
	if source.Colors().HasColor() {
		t.Error("Go Regular should have no color tables")
	}
	if got := source.Colors().Format(); got != "" {
		t.Errorf("Colors().Format() = %q, want empty", got)
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}

	for i := range data {
		data[i] = 0
	}
	if !bytes.Equal(source.Data(), goregular.TTF) {
		t.Error("FontSource shares the caller's buffer")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"garbage", []byte("definitely not a font file")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFontSource(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	if source.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}
