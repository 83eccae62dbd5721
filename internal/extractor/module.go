// Package extractor implements the two-level syntactic recognizer over
// parsed source trees: module discovery and, for each discovered module,
// provider discovery. Both levels are pure functions of a *syntax.File
// and a *config.Config — no semantic failures, only empty results for
// malformed or non-conforming input.
package extractor

import (
	"github.com/arrowgen/arrowgen/internal/config"
	"github.com/arrowgen/arrowgen/internal/model"
	"github.com/arrowgen/arrowgen/internal/syntax"
)

// ExtractModules walks a single parsed file and returns every top-level
// class/struct/extension declaration whose inheritance list mentions a
// recognized scope marker. Nested type declarations are never visited —
// the parser already omits them from a TypeDecl's Members.
func ExtractModules(file *syntax.File, cfg *config.Config) []model.Module {
	var modules []model.Module

	for _, decl := range file.Declarations {
		td, ok := decl.(*syntax.TypeDecl)
		if !ok {
			continue
		}

		scope, ok := cfg.ScopeFor(td.Inherits)
		if !ok {
			continue
		}

		modules = append(modules, model.Module{
			Kind:      kindOf(td.Keyword),
			Scope:     scope,
			Name:      td.Name,
			Imports:   file.Imports,
			Providers: ExtractProviders(td.Members, cfg),
		})
	}

	return modules
}

func kindOf(kw syntax.TypeKeyword) model.Kind {
	switch kw {
	case syntax.KeywordClass:
		return model.KindClass
	case syntax.KeywordStruct:
		return model.KindStruct
	case syntax.KeywordExtension:
		return model.KindExtension
	default:
		return model.Kind(kw)
	}
}
