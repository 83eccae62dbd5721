// Package config holds the explicit configuration values the core
// components are parameterized by: the two naming-attribute tokens, the
// two scope marker names, and the container import name. None of these
// live as package-level globals — every component that needs one takes
// a *Config explicitly rather than reading package state.
package config

import "github.com/arrowgen/arrowgen/internal/model"

// Config is the core's explicit configuration surface.
type Config struct {
	// NamingAttribute is the substring that identifies a name-carrying
	// attribute on a provider declaration (e.g. "Named").
	NamingAttribute string
	// ParameterNameAttribute is the substring that identifies a
	// name-carrying attribute on a parameter.
	ParameterNameAttribute string
	// ScopeMarkers maps a recognized inheritance/conformance name to the
	// scope it selects.
	ScopeMarkers map[string]model.Scope
	// ContainerImportName is appended to the import set unconditionally.
	ContainerImportName string
	// PackageName is the package name declared in the project's
	// Package.swift manifest, if one was found by Build. It carries no
	// weight in the core pipeline; cmd/arrowgen uses it as a fallback
	// target name when --target-name is unset.
	PackageName string
}

// Default returns the conventional configuration used when no
// generator entry file overrides it: "Named" / "Named" naming
// attributes, "SingletonModule" / "TransientModule" scope markers, and
// "Swinject" as the fixed container import.
func Default() *Config {
	return &Config{
		NamingAttribute:        "Named",
		ParameterNameAttribute: "Named",
		ScopeMarkers: map[string]model.Scope{
			"SingletonModule": model.ScopeSingleton,
			"TransientModule": model.ScopeTransient,
		},
		ContainerImportName: "Swinject",
	}
}

// ScopeFor returns the scope for the first recognized marker in
// inherits, in source order, and whether one was found.
func (c *Config) ScopeFor(inherits []string) (model.Scope, bool) {
	for _, name := range inherits {
		if scope, ok := c.ScopeMarkers[name]; ok {
			return scope, true
		}
	}
	return "", false
}
