package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "summary.txt")
	content := []byte("Games: 100\n")

	if err := WriteFileAtomic(path, content, 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != string(content) {
		t.Errorf("Expected content %q, got %q", content, data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("Expected mode 644, got %o", info.Mode().Perm())
	}

	// The temp file must not outlive the rename
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "summary.txt" {
			t.Errorf("Leftover file in directory: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summary.txt")

	if err := WriteFileAtomic(path, []byte("first run"), 0o644); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second run"), 0o644); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "second run" {
		t.Errorf("Expected overwritten content, got %q", data)
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic("/nonexistent/dir/summary.txt", []byte("data"), 0o644)
	if err == nil {
		t.Error("Expected error when the target directory does not exist")
	}
}
