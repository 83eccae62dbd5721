// Package model defines the entities extracted from source: modules,
// providers, and parameters, plus the dependency identifiers that tie
// them into a graph.
package model

import "fmt"

// Kind is the syntactic category of a declaration that carries providers.
type Kind string

const (
	KindClass     Kind = "class"
	KindStruct    Kind = "struct"
	KindExtension Kind = "extension"
)

// Scope is the lifecycle of every provider declared inside a module.
type Scope string

const (
	ScopeSingleton Scope = "singleton"
	ScopeTransient Scope = "transient"
)

// Form is the syntactic shape of a provider member.
type Form string

const (
	FormProperty Form = "property"
	FormFunction Form = "function"
)

// unlabeled is the sentinel external parameter label meaning "no label
// at the call site".
const unlabeled = "_"

// ID is a dependency identifier of the form "{name ?? '_'}:{type}". It is
// a distinct nominal type over string so provider ids and parameter ids
// are never compared or concatenated with raw strings by accident.
type ID string

// NewID builds a dependency id from an optional name and a type spelling.
func NewID(name, typeSpelling string) ID {
	if name == "" {
		name = unlabeled
	}
	return ID(fmt.Sprintf("%s:%s", name, typeSpelling))
}

// Parameter is one entry in a provider's parameter list.
type Parameter struct {
	// Type is the textual type spelling, with any leading parameter
	// attribute wrapper already stripped.
	Type string
	// Label is the external parameter label; the "_" sentinel means no
	// label appears at the call site.
	Label string
	// DefaultValue is the default expression's source text, if any. Its
	// presence removes this parameter from dependency edges entirely.
	DefaultValue string
	// ReferencedName comes from a recognized naming attribute on the
	// parameter.
	ReferencedName string
}

// IsUnlabeled reports whether Label is the "_" sentinel.
func (p Parameter) IsUnlabeled() bool {
	return p.Label == unlabeled
}

// HasDefault reports whether this parameter carries a default value.
func (p Parameter) HasDefault() bool {
	return p.DefaultValue != ""
}

// ID derives this parameter's dependency identifier.
func (p Parameter) ID() ID {
	return NewID(p.ReferencedName, p.Type)
}

// Provider is a module member that produces an instance of some type.
type Provider struct {
	Form Form
	// OptionalName comes from the first recognized naming attribute on
	// the declaration.
	OptionalName string
	// ReturnType is the textual spelling of the declared type.
	ReturnType string
	// Body is the identifier invoked on the module instance: the
	// binding's pattern text for a property, the function name for a
	// function.
	Body string
	// Parameters is the ordered parameter list; empty for properties.
	Parameters []Parameter
}

// ID derives this provider's dependency identifier.
func (p Provider) ID() ID {
	return NewID(p.OptionalName, p.ReturnType)
}

// RegistrationName is the provider's optional name if present, otherwise
// its return type. The emitter passes it as the registration's name
// argument only when OptionalName is set; a provider without one is
// registered unnamed, under its type alone, and its dependents resolve
// it without a name.
func (p Provider) RegistrationName() string {
	if p.OptionalName != "" {
		return p.OptionalName
	}
	return p.ReturnType
}

// DependencyEdges is the ordered list of parameter ids for parameters
// that carry no default value.
func (p Provider) DependencyEdges() []ID {
	var edges []ID
	for _, param := range p.Parameters {
		if param.HasDefault() {
			continue
		}
		edges = append(edges, param.ID())
	}
	return edges
}

// Module is a type declaration marked as providing dependencies under a
// single scope.
type Module struct {
	Kind Kind
	// Scope is the lifecycle applied to every provider inside. It is set
	// by the first recognized scope marker encountered in the
	// declaration's inheritance list.
	Scope Scope
	// Name is the module's declared type name; for an extension, the
	// extended type's name.
	Name string
	// Imports is the set of import names visible in the file declaring
	// this module.
	Imports []string
	// Providers is the set of providers declared in this module's body,
	// unique per (OptionalName, ReturnType) pair.
	Providers []Provider
}

// InstanceName is the module instance identifier used at call sites:
// the module's type name, lowercased. No reserved-word handling is
// performed; inputs are expected to be well-formed identifiers.
func (m Module) InstanceName() string {
	if m.Name == "" {
		return m.Name
	}
	return string(toLowerASCII(m.Name[0])) + m.Name[1:]
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
