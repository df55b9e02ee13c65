package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStorage_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "AppStore_Screenshots")
	s := New(dir)

	if s.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", s.Dir(), dir)
	}

	path, err := s.Save("mainscreen_1280x800.png", []byte("png bytes"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if path != filepath.Join(dir, "mainscreen_1280x800.png") {
		t.Errorf("Save() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(data) != "png bytes" {
		t.Errorf("saved content = %q, want %q", data, "png bytes")
	}
}

func TestStorage_Save_Overwrite(t *testing.T) {
	s := New(t.TempDir())

	if _, err := s.Save("settings_1440x900.png", []byte("first")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	path, err := s.Save("settings_1440x900.png", []byte("second"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("saved content = %q, want %q", data, "second")
	}
}

func TestStorage_EnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := New(dir)

	if err := s.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if err := s.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() second call error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("output directory missing: %v", err)
	}
	if !info.IsDir() {
		t.Error("output path is not a directory")
	}
}

func TestStorage_Save_DirError(t *testing.T) {
	// A regular file where the directory should go makes MkdirAll fail
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	s := New(filepath.Join(blocker, "out"))
	if _, err := s.Save("compact_2560x1600.png", []byte("data")); err == nil {
		t.Error("Save() should fail when the directory cannot be created")
	}
}
