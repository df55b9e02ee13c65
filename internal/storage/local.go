package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage writes rendered screenshots into a flat output directory
type Storage struct {
	dir string
}

// New creates a storage rooted at the given directory. The directory itself
// is created on first write, not here.
func New(dir string) *Storage {
	return &Storage{dir: dir}
}

// Dir returns the output directory path
func (s *Storage) Dir() string {
	return s.dir
}

// EnsureDir creates the output directory if it doesn't exist
func (s *Storage) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Save writes one rendered file into the output directory and returns its
// full path. An existing file with the same name is overwritten.
func (s *Storage) Save(name string, data []byte) (string, error) {
	if err := s.EnsureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}
