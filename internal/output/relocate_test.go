package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wadey/thriftc/internal/output"
)

// mkFile creates a file with content, creating parent directories.
func mkFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// readFile reads a file or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestRelocateIntoEmptyDest(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src")
	dest := filepath.Join(tmpDir, "dest")

	mkFile(t, filepath.Join(src, "a.txt"), "a")
	mkFile(t, filepath.Join(src, "sub", "b.txt"), "b")

	if err := output.Relocate(src, dest); err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}

	if got := readFile(t, filepath.Join(dest, "a.txt")); got != "a" {
		t.Errorf("dest/a.txt = %q, want %q", got, "a")
	}
	if got := readFile(t, filepath.Join(dest, "sub", "b.txt")); got != "b" {
		t.Errorf("dest/sub/b.txt = %q, want %q", got, "b")
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("expected src to be removed, stat error = %v", err)
	}
}

func TestRelocateMergesExistingDest(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src")
	dest := filepath.Join(tmpDir, "dest")

	mkFile(t, filepath.Join(src, "a.txt"), "a")
	mkFile(t, filepath.Join(src, "sub", "b.txt"), "b")
	mkFile(t, filepath.Join(dest, "sub", "c.txt"), "c")

	if err := output.Relocate(src, dest); err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}

	// Merge, not replace: the pre-existing entry survives.
	if got := readFile(t, filepath.Join(dest, "sub", "c.txt")); got != "c" {
		t.Errorf("dest/sub/c.txt = %q, want %q", got, "c")
	}
	if got := readFile(t, filepath.Join(dest, "sub", "b.txt")); got != "b" {
		t.Errorf("dest/sub/b.txt = %q, want %q", got, "b")
	}
	if got := readFile(t, filepath.Join(dest, "a.txt")); got != "a" {
		t.Errorf("dest/a.txt = %q, want %q", got, "a")
	}
}

func TestRelocateOverwritesCollidingFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src")
	dest := filepath.Join(tmpDir, "dest")

	mkFile(t, filepath.Join(src, "a.txt"), "new")
	mkFile(t, filepath.Join(dest, "a.txt"), "old")

	if err := output.Relocate(src, dest); err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}

	if got := readFile(t, filepath.Join(dest, "a.txt")); got != "new" {
		t.Errorf("dest/a.txt = %q, want %q", got, "new")
	}
}

func TestRelocateMissingSource(t *testing.T) {
	tmpDir := t.TempDir()

	err := output.Relocate(filepath.Join(tmpDir, "nope"), filepath.Join(tmpDir, "dest"))
	if err == nil {
		t.Fatal("Relocate() expected error for missing source")
	}
}

func TestRelocateSingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "one.txt")
	dest := filepath.Join(tmpDir, "moved.txt")
	mkFile(t, src, "x")

	if err := output.Relocate(src, dest); err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}
	if got := readFile(t, dest); got != "x" {
		t.Errorf("dest = %q, want %q", got, "x")
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("expected src to be removed, stat error = %v", err)
	}
}
