// Package presenter maps the resolved dependency graph onto the flat,
// emitter-ready view the Code Emitter walks to produce Swift source. It
// performs no validation of its own — Present assumes the graph has
// already passed resolver.Build/Resolve.
package presenter

import (
	"sort"

	"github.com/arrowgen/arrowgen/internal/config"
	"github.com/arrowgen/arrowgen/internal/model"
)

// ParameterView is a single constructor/function parameter as the
// emitter will render it: a resolver lookup for its dependency id, with
// its original label preserved unless it was the "_" sentinel.
type ParameterView struct {
	Label          string
	HasLabel       bool
	ReferencedName string
	Type           string
	ID             model.ID
}

// ProviderView is one provider, fully resolved against its owning
// module, ready for the emitter's register() block.
type ProviderView struct {
	ID               model.ID
	ModuleName       string
	ModuleInstance   string
	Form             model.Form
	ReturnType       string
	RegistrationName string
	HasName          bool
	Body             string
	Scope            model.Scope
	Parameters       []ParameterView
}

// Document is the complete emitter input: the import list, the distinct
// module instantiations, and every provider in dependency order.
type Document struct {
	Imports     []string
	ModuleNames []string
	Providers   []ProviderView
}

type providerEntry struct {
	provider model.Provider
	module   model.Module
}

// Present builds the Document for the given modules, walking providers
// in the order the resolver produced. order must name every provider id
// found across modules exactly once (the resolver's post-validation
// invariant); Present does not re-check that.
func Present(modules []model.Module, order []model.ID, cfg *config.Config) *Document {
	byID := make(map[model.ID]providerEntry)
	for _, m := range modules {
		for _, p := range m.Providers {
			byID[p.ID()] = providerEntry{provider: p, module: m}
		}
	}

	doc := &Document{
		Imports:     collectImports(modules, cfg),
		ModuleNames: collectModuleNames(order, byID),
	}

	for _, id := range order {
		entry, ok := byID[id]
		if !ok {
			continue
		}
		doc.Providers = append(doc.Providers, providerView(entry))
	}

	return doc
}

func providerView(entry providerEntry) ProviderView {
	p, m := entry.provider, entry.module
	return ProviderView{
		ID:               p.ID(),
		ModuleName:       m.Name,
		ModuleInstance:   m.InstanceName(),
		Form:             p.Form,
		ReturnType:       p.ReturnType,
		RegistrationName: p.RegistrationName(),
		HasName:          p.OptionalName != "",
		Body:             p.Body,
		Scope:            m.Scope,
		Parameters:       parameterViews(p.Parameters),
	}
}

func parameterViews(params []model.Parameter) []ParameterView {
	var out []ParameterView
	for _, param := range params {
		// A defaulted parameter takes its own default at the call site.
		if param.HasDefault() {
			continue
		}
		out = append(out, ParameterView{
			Label:          param.Label,
			HasLabel:       !param.IsUnlabeled(),
			ReferencedName: param.ReferencedName,
			Type:           param.Type,
			ID:             param.ID(),
		})
	}
	return out
}

// collectModuleNames returns the distinct module names in the order
// their first provider appears in the resolved registration order, so
// the emitter can declare each module instance exactly once, before its
// first use.
func collectModuleNames(order []model.ID, byID map[model.ID]providerEntry) []string {
	seen := make(map[string]bool)
	var names []string
	for _, id := range order {
		entry, ok := byID[id]
		if !ok {
			continue
		}
		if seen[entry.module.Name] {
			continue
		}
		seen[entry.module.Name] = true
		names = append(names, entry.module.Name)
	}
	return names
}

// collectImports returns the sorted, deduplicated union of every
// module's source imports together with the container framework's own
// import, which is always present regardless of what the source files
// declared.
func collectImports(modules []model.Module, cfg *config.Config) []string {
	set := map[string]bool{cfg.ContainerImportName: true}
	for _, m := range modules {
		for _, imp := range m.Imports {
			set[imp] = true
		}
	}

	out := make([]string, 0, len(set))
	for imp := range set {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}
