// Package output relocates the compiler's generated source tree into the
// final output directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Relocate recursively merge-moves src into dest.
//
// If src is a directory, dest is created if absent, every entry of src is
// relocated into dest under the same name, and the emptied src is
// removed. If src is a file, it is renamed to dest; an existing file at
// dest is overwritten (os.Rename semantics). Failures are returned with
// both paths for diagnostics. No rollback is attempted; a failed
// relocation may leave a partially moved tree behind.
func Relocate(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("unable to move %s to %s: %w", src, dest, err)
	}

	if !info.IsDir() {
		if err := os.Rename(src, dest); err != nil {
			return fmt.Errorf("unable to move %s to %s: %w", src, dest, err)
		}
		return nil
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("unable to create %s: %w", dest, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", src, err)
	}
	for _, entry := range entries {
		if err := Relocate(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return err
		}
	}

	// src must be empty now; a residual entry means something was skipped.
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("unable to remove %s after moving to %s: %w", src, dest, err)
	}
	return nil
}
