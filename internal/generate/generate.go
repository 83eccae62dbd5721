// Package generate wires the Source Reader, Module/Provider Extractor,
// Graph Resolver, Presentation Mapper, and Code Emitter into the single
// pipeline a generation run executes end to end.
package generate

import (
	"fmt"

	"github.com/arrowgen/arrowgen/internal/config"
	"github.com/arrowgen/arrowgen/internal/discovery"
	"github.com/arrowgen/arrowgen/internal/emitter"
	"github.com/arrowgen/arrowgen/internal/extractor"
	"github.com/arrowgen/arrowgen/internal/model"
	"github.com/arrowgen/arrowgen/internal/presenter"
	"github.com/arrowgen/arrowgen/internal/resolver"
	"github.com/arrowgen/arrowgen/internal/syntax"
)

// Request captures one generation run's CLI-level inputs.
type Request struct {
	ProjectPath       string
	TargetName        string
	IsPackage         bool
	PackageSourcePath []string
	DryRun            bool
}

// Result reports what a run produced, for the CLI to log and for tests
// to assert against without re-reading the filesystem.
type Result struct {
	Output        string
	WrittenPath   string
	SourceFiles   int
	ModuleCount   int
	ProviderCount int
}

// Run executes one full generation pass.
func Run(req Request, cfg *config.Config) (*Result, error) {
	ignorePatterns, err := discovery.LoadIgnoreFile(req.ProjectPath + "/.arrowgenignore")
	if err != nil {
		return nil, fmt.Errorf("loading .arrowgenignore: %w", err)
	}

	files, err := discovery.FindSources(req.PackageSourcePath, ignorePatterns)
	if err != nil {
		return nil, fmt.Errorf("finding sources: %w", err)
	}

	var modules []model.Module
	for _, f := range files {
		tree, err := syntax.Parse(f.Contents)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Path, err)
		}
		modules = append(modules, extractor.ExtractModules(tree, cfg)...)
	}

	var providers []model.Provider
	for _, m := range modules {
		providers = append(providers, m.Providers...)
	}

	g, err := resolver.Build(providers)
	if err != nil {
		return nil, err
	}

	order, err := g.Resolve()
	if err != nil {
		return nil, err
	}

	doc := presenter.Present(modules, order, cfg)
	output := emitter.Emit(doc)

	result := &Result{
		Output:        output,
		SourceFiles:   len(files),
		ModuleCount:   len(modules),
		ProviderCount: len(providers),
	}

	if req.DryRun {
		return result, nil
	}

	path, err := discovery.Write(req.ProjectPath, req.TargetName, req.IsPackage, output)
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", discovery.GeneratedFileName, err)
	}
	result.WrittenPath = path

	return result, nil
}
