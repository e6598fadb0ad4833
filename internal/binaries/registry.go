// Package binaries holds the embedded thrift compiler payloads and
// materializes them to executable temporary files.
package binaries

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// ErrNotEmbedded is returned when no payload exists for an executable
// identifier. It indicates a distribution/environment mismatch.
var ErrNotEmbedded = errors.New("no binary embedded")

// Compiler binaries are bundled at build time under payloads/, one file
// per executable identifier (see internal/platform).
//
//go:embed payloads
var payloadFS embed.FS

// Registry maps executable identifiers to binary payloads and tracks the
// temporary files it has materialized.
type Registry struct {
	mu        sync.Mutex
	overrides map[string][]byte
	tempFiles []string
}

// NewRegistry creates an empty registry backed by the embedded payloads.
func NewRegistry() *Registry {
	return &Registry{
		overrides: make(map[string][]byte),
	}
}

// Global registry instance for convenience
var globalRegistry = NewRegistry()

// GetRegistry returns the global registry instance.
func GetRegistry() *Registry {
	return globalRegistry
}

// Register adds or replaces a payload under the given identifier. It
// shadows any embedded payload of the same name. This is primarily
// useful for testing.
func (r *Registry) Register(id string, payload []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[id] = payload
}

// Lookup returns the payload for an executable identifier, or
// ErrNotEmbedded if neither a registered nor an embedded payload exists.
func (r *Registry) Lookup(id string) ([]byte, error) {
	r.mu.Lock()
	payload, ok := r.overrides[id]
	r.mu.Unlock()
	if ok {
		return payload, nil
	}

	data, err := fs.ReadFile(payloadFS, "payloads/"+id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotEmbedded, id)
	}
	return data, nil
}

// Materialize writes the payload for id to a new temporary file, marks it
// executable, and returns its absolute path. The file is tracked for
// removal by Cleanup. The returned path is opaque to callers.
func (r *Registry) Materialize(id string) (string, error) {
	payload, err := r.Lookup(id)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", id+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file for %s: %w", id, err)
	}

	if _, err := f.Write(payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close %s: %w", f.Name(), err)
	}

	if err := os.Chmod(f.Name(), 0755); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to make %s executable: %w", f.Name(), err)
	}

	r.mu.Lock()
	r.tempFiles = append(r.tempFiles, f.Name())
	r.mu.Unlock()

	return f.Name(), nil
}

// Cleanup removes all files materialized by this registry. Removal is
// best-effort; missing files are ignored. Callers should defer this at
// process exit.
func (r *Registry) Cleanup() {
	r.mu.Lock()
	files := r.tempFiles
	r.tempFiles = nil
	r.mu.Unlock()

	for _, f := range files {
		_ = os.Remove(f)
	}
}

// Materialize materializes an executable from the global registry.
func Materialize(id string) (string, error) {
	return globalRegistry.Materialize(id)
}

// Cleanup removes files materialized through the global registry.
func Cleanup() {
	globalRegistry.Cleanup()
}
