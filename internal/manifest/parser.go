package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadManifests loads one or more manifests from a YAML file. Supports
// files containing multiple YAML documents separated by `---`. Empty
// documents are ignored. Relative paths in a manifest are resolved
// against the manifest file's directory.
func LoadManifests(path string) ([]Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var ms []Manifest
	for {
		var m Manifest
		if err := dec.Decode(&m); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		// skip completely empty docs
		if m.Name == "" && len(m.Files) == 0 && len(m.Includes) == 0 {
			continue
		}
		m.resolvePaths(baseDir)
		ms = append(ms, m)
	}

	if len(ms) == 0 {
		return nil, fmt.Errorf("no manifests found in %s", path)
	}
	return ms, nil
}

// resolvePaths makes all path fields absolute relative to baseDir.
func (m *Manifest) resolvePaths(baseDir string) {
	for i, dir := range m.Includes {
		m.Includes[i] = resolve(baseDir, dir)
	}
	for i, file := range m.Files {
		m.Files[i] = resolve(baseDir, file)
	}
	if m.Output != "" {
		m.Output = resolve(baseDir, m.Output)
	}
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
