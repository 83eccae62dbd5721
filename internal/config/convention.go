package config

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arrowgen/arrowgen/internal/model"
)

// ManifestFileName is the Swift package manifest consulted for project
// conventions — the go.mod-equivalent the teacher's BuildConfig reads
// for a module path.
const ManifestFileName = "Package.swift"

// EntryFileName is the generator entry file scanned for "//arrowgen:"
// directive comments — the generate.go-equivalent the teacher's
// parseGenerateFile reads for "//autodi:" directives.
const EntryFileName = "arrowgen.swift"

var packageNamePattern = regexp.MustCompile(`Package\s*\(\s*name:\s*"([^"]+)"`)

// Overrides carries explicit CLI flag values. An empty field means "not
// set by the caller", leaving whatever the conventions/directives layer
// below it produced untouched.
type Overrides struct {
	NamingAttribute        string
	ParameterNameAttribute string
	ContainerImportName    string
	SingletonMarker        string
	TransientMarker        string
}

// Build layers project conventions, then generator-entry-file
// directives, then explicit CLI overrides on top of Default — the same
// three-stage chain as the teacher's BuildConfig (go.mod conventions)
// feeding parseGenerateFile ("//autodi:" directives) feeding main's own
// flag handling. Neither Package.swift nor arrowgen.swift is required to
// exist: a project with neither simply runs on Default's conventions.
func Build(projectPath string, overrides Overrides) (*Config, error) {
	cfg := Default()

	if err := applyManifestConventions(cfg, filepath.Join(projectPath, ManifestFileName)); err != nil {
		return nil, err
	}
	if err := applyEntryFileDirectives(cfg, filepath.Join(projectPath, EntryFileName)); err != nil {
		return nil, err
	}
	applyOverrides(cfg, overrides)

	return cfg, nil
}

// applyManifestConventions reads the package name declared in
// Package.swift, the one project-manifest convention arrowgen has an
// analogue for (the teacher reads go.mod's "module " line the same
// way). A missing manifest is not an error — not every generation
// target is a Swift package.
func applyManifestConventions(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if m := packageNamePattern.FindStringSubmatch(string(data)); m != nil {
		cfg.PackageName = m[1]
	}
	return nil
}

// applyEntryFileDirectives scans the generator entry file for
// "//arrowgen:" directive comments, overriding the corresponding Config
// field. Recognized directives, modeled on the teacher's
// "//autodi:app"/"//autodi:group" line shape (a keyword followed by
// space-separated fields):
//
//	//arrowgen:named <token>             NamingAttribute and ParameterNameAttribute
//	//arrowgen:import <name>             ContainerImportName
//	//arrowgen:scope singleton <marker>  the singleton scope marker
//	//arrowgen:scope transient <marker>  the transient scope marker
//
// A missing entry file is not an error, matching the manifest layer's
// "conventions still apply with zero extra files" rule above.
func applyEntryFileDirectives(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "//arrowgen:") {
			continue
		}
		directive := strings.TrimPrefix(line, "//arrowgen:")
		parts := strings.Fields(directive)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "named":
			if len(parts) >= 2 {
				cfg.NamingAttribute = parts[1]
				cfg.ParameterNameAttribute = parts[1]
			}
		case "import":
			if len(parts) >= 2 {
				cfg.ContainerImportName = parts[1]
			}
		case "scope":
			if len(parts) >= 3 {
				setScopeMarker(cfg, parts[1], parts[2])
			}
		}
	}
	return scanner.Err()
}

// applyOverrides applies the CLI's explicit flag values last, so they
// win over both conventions and directive comments.
func applyOverrides(cfg *Config, o Overrides) {
	if o.NamingAttribute != "" {
		cfg.NamingAttribute = o.NamingAttribute
	}
	if o.ParameterNameAttribute != "" {
		cfg.ParameterNameAttribute = o.ParameterNameAttribute
	}
	if o.ContainerImportName != "" {
		cfg.ContainerImportName = o.ContainerImportName
	}
	if o.SingletonMarker != "" {
		setScopeMarker(cfg, "singleton", o.SingletonMarker)
	}
	if o.TransientMarker != "" {
		setScopeMarker(cfg, "transient", o.TransientMarker)
	}
}

// setScopeMarker replaces whichever marker name currently maps to
// lifecycle with marker, preserving the "exactly one marker name per
// scope value" invariant Default establishes.
func setScopeMarker(cfg *Config, lifecycle, marker string) {
	var scope model.Scope
	switch lifecycle {
	case "singleton":
		scope = model.ScopeSingleton
	case "transient":
		scope = model.ScopeTransient
	default:
		return
	}
	for name, s := range cfg.ScopeMarkers {
		if s == scope {
			delete(cfg.ScopeMarkers, name)
		}
	}
	cfg.ScopeMarkers[marker] = scope
}
