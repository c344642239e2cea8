package emojiextract

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
)

// Store persists extracted bitmaps.
type Store interface {
	// Save writes img under name and returns where it was written.
	Save(name string, img image.Image) (string, error)
}

// DirStore writes PNG files into a flat directory. The directory is created
// on the first Save.
//
// DirStore is safe for concurrent use.
type DirStore struct {
	dir     string
	encoder png.Encoder

	mu      sync.Mutex
	created bool
}

// NewDirStore creates a store writing into dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{
		dir:     dir,
		encoder: png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// Dir returns the output directory.
func (s *DirStore) Dir() string {
	return s.dir
}

// Save encodes img as PNG into dir/name, replacing any existing file.
func (s *DirStore) Save(name string, img image.Image) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("emojiextract: invalid file name %q", name)
	}
	if err := s.ensureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("emojiextract: create %s: %w", path, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := s.encoder.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("emojiextract: encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("emojiextract: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("emojiextract: rename %s: %w", path, err)
	}
	return path, nil
}

func (s *DirStore) ensureDir() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.created {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("emojiextract: create output directory: %w", err)
	}
	s.created = true
	return nil
}
