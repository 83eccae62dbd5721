package discovery

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// ManifestFileName is the minimal package manifest model this package
// maintains alongside a Swift package target's sources: a record of
// which generated file belongs to which target, keyed by target name.
const ManifestFileName = ".arrowgen-manifest.json"

// Manifest is the on-disk package manifest model. It carries nothing a
// Swift package manifest itself wouldn't already imply — just enough to
// let a later run, or another tool, find every target this generator
// has ever written a file for.
type Manifest struct {
	GeneratedFiles map[string]string `json:"generatedFiles"`
}

// LoadManifest reads the manifest at path. A missing file is not an
// error — it yields an empty Manifest, the state before any package
// target has been generated for.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{GeneratedFiles: map[string]string{}}, nil
		}
		return nil, err
	}

	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	if m.GeneratedFiles == nil {
		m.GeneratedFiles = map[string]string{}
	}
	return m, nil
}

// Record sets the generated-file reference for targetName, relative to
// the manifest's own directory.
func (m *Manifest) Record(targetName, relPath string) {
	m.GeneratedFiles[targetName] = relPath
}

// Targets returns the manifest's target names in sorted order.
func (m *Manifest) Targets() []string {
	names := make([]string, 0, len(m.GeneratedFiles))
	for name := range m.GeneratedFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes m to path as indented JSON.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// recordGeneratedFile loads the manifest under projectPath (creating an
// empty one in memory if none exists yet), records targetName's
// generated file as a path relative to projectPath, and saves it back.
func recordGeneratedFile(projectPath, targetName, generatedPath string) error {
	manifestPath := filepath.Join(projectPath, ManifestFileName)

	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(projectPath, generatedPath)
	if err != nil {
		rel = generatedPath
	}
	m.Record(targetName, filepath.ToSlash(rel))

	return m.Save(manifestPath)
}
