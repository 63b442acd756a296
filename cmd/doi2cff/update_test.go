package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CITATION.cff")

	long := []byte("title: Example Tool\nversion: 2.0.0\nextra: trailing content here\n")
	if err := os.WriteFile(path, long, 0600); err != nil {
		t.Fatalf("writing original: %v", err)
	}

	// Shorter replacement must not leave stale trailing bytes.
	short := []byte("title: Example Tool\n")
	if err := writeFileAtomic(path, short); err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result: %v", err)
	}
	if string(got) != string(short) {
		t.Errorf("file content = %q, want %q", got, short)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("permissions = %v, want 0600", info.Mode().Perm())
	}

	// No leftover temporary files.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}
