// Package emitter renders a presenter.Document into the single generated
// Swift source file wiring the Swinject container. Emission is pure
// string assembly: every ordering and naming decision has already been
// made by the presenter, so this package only has to be faithful to the
// target syntax.
package emitter

import (
	"fmt"
	"strings"

	"github.com/arrowgen/arrowgen/internal/model"
	"github.com/arrowgen/arrowgen/internal/presenter"
)

// unit is one level of indentation. Four levels are in play: the
// extension body, the register() function body, a closure body, and an
// argument list — each nested two spaces deeper than its parent.
const unit = "  "

func indentN(levels int) string {
	return strings.Repeat(unit, levels)
}

// Emit renders doc as a complete Swift source file.
func Emit(doc *presenter.Document) string {
	var b strings.Builder

	for _, imp := range doc.Imports {
		fmt.Fprintf(&b, "import %s\n", imp)
	}
	b.WriteString("\n")

	b.WriteString("extension Container {\n")
	fmt.Fprintf(&b, "%sfunc register() {\n", indentN(1))

	for _, name := range doc.ModuleNames {
		instance := model.Module{Name: name}.InstanceName()
		fmt.Fprintf(&b, "%slet %s = %s()\n", indentN(2), instance, name)
	}
	if len(doc.ModuleNames) > 0 {
		b.WriteString("\n")
	}

	for i, p := range doc.Providers {
		writeRegistration(&b, p)
		if i < len(doc.Providers)-1 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "%s}\n", indentN(1))
	b.WriteString("}\n")

	return b.String()
}

// writeRegistration renders one self.register(...) { resolver in ... }
// block. The registration name argument, when present, carries the
// provider's optional name; scope is always rendered.
func writeRegistration(b *strings.Builder, p presenter.ProviderView) {
	fmt.Fprintf(b, "%sself.register(%s.self", indentN(2), p.ReturnType)
	if p.HasName {
		fmt.Fprintf(b, ", name: %q", p.RegistrationName)
	}
	fmt.Fprintf(b, ", objectScope: %s) { resolver in\n", objectScope(p.Scope))

	writeCallSite(b, p)

	fmt.Fprintf(b, "%s}\n", indentN(2))
}

// writeCallSite renders the closure body: a bare property access, a
// parenthesized call with no arguments, or a multi-line argument list
// with one resolver.resolve(...) per non-defaulted parameter and the
// closing paren back at the call expression's own indent.
func writeCallSite(b *strings.Builder, p presenter.ProviderView) {
	receiver := p.ModuleInstance + "." + p.Body

	if p.Form == model.FormProperty {
		fmt.Fprintf(b, "%s%s\n", indentN(3), receiver)
		return
	}

	if len(p.Parameters) == 0 {
		fmt.Fprintf(b, "%s%s()\n", indentN(3), receiver)
		return
	}

	fmt.Fprintf(b, "%s%s(\n", indentN(3), receiver)
	last := len(p.Parameters) - 1
	for i, param := range p.Parameters {
		arg := argument(param)
		if i != last {
			arg += ","
		}
		fmt.Fprintf(b, "%s%s\n", indentN(4), arg)
	}
	fmt.Fprintf(b, "%s)\n", indentN(3))
}

func argument(param presenter.ParameterView) string {
	lookup := resolveExpr(param)
	if !param.HasLabel {
		return lookup
	}
	return param.Label + ": " + lookup
}

func resolveExpr(param presenter.ParameterView) string {
	if param.ReferencedName != "" {
		return fmt.Sprintf("resolver.resolve(%s.self, name: %q)!", param.Type, param.ReferencedName)
	}
	return fmt.Sprintf("resolver.resolve(%s.self)!", param.Type)
}

func objectScope(scope model.Scope) string {
	return "." + string(scope)
}
