package emojiextract

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDirStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	store := NewDirStore(dir)

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("directory should not exist before the first Save")
	}

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	path, err := store.Save("1f600.png", img)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != filepath.Join(dir, "1f600.png") {
		t.Errorf("path = %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = f.Close()
	}()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	if got := color.NRGBAModel.Convert(decoded.At(1, 1)); got != img.NRGBAAt(1, 1) {
		t.Errorf("pixel = %v, want %v", got, img.NRGBAAt(1, 1))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (no temp files)", len(entries))
	}
}

func TestDirStoreOverwrites(t *testing.T) {
	store := NewDirStore(t.TempDir())

	for _, w := range []int{4, 7} {
		if _, err := store.Save("x.png", image.NewNRGBA(image.Rect(0, 0, w, 1))); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(store.Dir(), "x.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 7 {
		t.Errorf("width = %d, want 7", cfg.Width)
	}
}

func TestDirStoreRejectsPaths(t *testing.T) {
	store := NewDirStore(t.TempDir())
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	for _, name := range []string{"", "../escape.png", "a/b.png"} {
		if _, err := store.Save(name, img); err == nil {
			t.Errorf("Save(%q) should fail", name)
		}
	}
}

func TestDirStoreConcurrent(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "out"))
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := NewSequence(rune(0x1F600 + i)).Filename()
			if _, err := store.Save(name, img); err != nil {
				t.Errorf("Save(%s): %v", name, err)
			}
		}()
	}
	wg.Wait()

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 16 {
		t.Errorf("got %d files, want 16", len(entries))
	}
}
