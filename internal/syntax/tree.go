// Package syntax models the syntactic surface the core operates on: a
// small tagged-variant tree over a Swift-like declaration language
// (imports, class/struct/extension declarations, attributes, computed
// properties, and functions with typed parameters).
//
// There is no inheritance hierarchy here by design: Declaration is a
// closed set of concrete node types, and callers type-switch on the
// concrete type rather than dispatching through virtual methods.
package syntax

// Attribute is one "@Name" or "@Name(\"value\")" annotation attached to a
// declaration or a parameter.
type Attribute struct {
	Name     string
	HasArg   bool
	StringArg string
}

// File is a single parsed source unit: its imports and its top-level
// declarations.
type File struct {
	Imports      []string
	Declarations []Declaration
}

// Declaration is the closed set of top-level and member declaration
// shapes the parser recognizes: *TypeDecl, *VariableDecl, and
// *FunctionDecl. Imports are not declarations; they are surfaced
// separately as File.Imports.
type Declaration interface {
	declNode()
}

// TypeKeyword is the concrete keyword used to introduce a TypeDecl.
type TypeKeyword string

const (
	KeywordClass     TypeKeyword = "class"
	KeywordStruct    TypeKeyword = "struct"
	KeywordExtension TypeKeyword = "extension"
)

// TypeDecl is a class, struct, or extension declaration: a name (for
// extension, the extended type), an inheritance/conformance list, and a
// body of member declarations. A nested type declaration is consumed by
// the parser but never recorded in Members — nested types are opaque.
type TypeDecl struct {
	Keyword    TypeKeyword
	Attributes []Attribute
	Name       string
	Inherits   []string
	Members    []Declaration
}

func (*TypeDecl) declNode() {}

// Binding is one "name: Type = expr" entry in a variable declaration; a
// var statement may declare several comma-separated bindings.
type Binding struct {
	Pattern        string
	TypeAnnotation string
	HasType        bool
	HasInitializer bool
}

// VariableDecl is a "var ..." declaration with one or more bindings.
type VariableDecl struct {
	Attributes []Attribute
	Bindings   []Binding
}

func (*VariableDecl) declNode() {}

// Parameter is one entry in a function's parameter list. Attributes
// collects every "@Name(...)" found either before the parameter's label
// or immediately before its type annotation — the naming-attribute
// lookup treats both positions the same way.
type Parameter struct {
	Attributes   []Attribute
	Label        string
	Name         string
	Type         string
	DefaultValue string
}

// FunctionDecl is a "func name(params) -> ReturnType" declaration.
// ReturnType is empty for a void-returning function.
type FunctionDecl struct {
	Attributes []Attribute
	Name       string
	Parameters []Parameter
	ReturnType string
	HasReturn  bool
}

func (*FunctionDecl) declNode() {}

// FirstAttributeArg returns the first string-literal argument of the
// first attribute whose name contains token, and whether one was found.
// The match is a substring check, not equality, so a project's own
// naming attribute (e.g. "@Named", "@Qualifier") is recognized without
// requiring an exact spelling.
func FirstAttributeArg(attrs []Attribute, token string) (string, bool) {
	for _, a := range attrs {
		if containsToken(a.Name, token) && a.HasArg {
			return a.StringArg, true
		}
	}
	return "", false
}

func containsToken(name, token string) bool {
	if token == "" {
		return false
	}
	if len(token) > len(name) {
		return false
	}
	for i := 0; i+len(token) <= len(name); i++ {
		if name[i:i+len(token)] == token {
			return true
		}
	}
	return false
}
