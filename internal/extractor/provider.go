package extractor

import (
	"github.com/arrowgen/arrowgen/internal/config"
	"github.com/arrowgen/arrowgen/internal/model"
	"github.com/arrowgen/arrowgen/internal/syntax"
)

// ExtractProviders enumerates the computed properties and return-typed
// functions in a module body, producing one Provider per recognized
// member. Members are returned in declaration order; duplicate
// (name, returnType) pairs are not filtered here — the graph resolver is
// responsible for reporting duplicates across the whole provider set.
func ExtractProviders(members []syntax.Declaration, cfg *config.Config) []model.Provider {
	var providers []model.Provider

	for _, m := range members {
		switch decl := m.(type) {
		case *syntax.VariableDecl:
			if p, ok := propertyProvider(decl, cfg); ok {
				providers = append(providers, p)
			}
		case *syntax.FunctionDecl:
			if p, ok := functionProvider(decl, cfg); ok {
				providers = append(providers, p)
			}
		}
	}

	return providers
}

// propertyProvider recognizes a variable declaration as a provider: a
// single binding, no initializer expression, and an explicit type
// annotation.
func propertyProvider(v *syntax.VariableDecl, cfg *config.Config) (model.Provider, bool) {
	if len(v.Bindings) != 1 {
		return model.Provider{}, false
	}
	b := v.Bindings[0]
	if b.HasInitializer || !b.HasType {
		return model.Provider{}, false
	}

	name, _ := syntax.FirstAttributeArg(v.Attributes, cfg.NamingAttribute)

	return model.Provider{
		Form:         model.FormProperty,
		OptionalName: name,
		ReturnType:   b.TypeAnnotation,
		Body:         b.Pattern,
	}, true
}

// functionProvider recognizes a function declaration as a provider: it
// must declare an explicit, non-void return type.
func functionProvider(fn *syntax.FunctionDecl, cfg *config.Config) (model.Provider, bool) {
	if !fn.HasReturn {
		return model.Provider{}, false
	}

	name, _ := syntax.FirstAttributeArg(fn.Attributes, cfg.NamingAttribute)

	return model.Provider{
		Form:         model.FormFunction,
		OptionalName: name,
		ReturnType:   fn.ReturnType,
		Body:         fn.Name,
		Parameters:   parametersOf(fn.Parameters, cfg),
	}, true
}

func parametersOf(params []syntax.Parameter, cfg *config.Config) []model.Parameter {
	if len(params) == 0 {
		return nil
	}

	out := make([]model.Parameter, len(params))
	for i, p := range params {
		referenced, _ := syntax.FirstAttributeArg(p.Attributes, cfg.ParameterNameAttribute)
		out[i] = model.Parameter{
			Type:           p.Type,
			Label:          p.Label,
			DefaultValue:   p.DefaultValue,
			ReferencedName: referenced,
		}
	}
	return out
}
