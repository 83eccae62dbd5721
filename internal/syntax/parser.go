package syntax

import (
	"fmt"
	"strings"
)

// Parse lexes and parses source text into a File. Parsing never fails on
// malformed input in a way that would halt a multi-file generation run:
// unrecognized top-level tokens are skipped until the next declaration
// keyword, matching the extractor's "malformed trees simply yield no
// modules" contract. A hard syntax error inside a declaration the parser
// has already committed to (an unterminated parameter list, a missing
// brace) is still reported, since recovering from it silently would risk
// swallowing a providers's parameter list.
func Parse(src string) (*File, error) {
	p := &parser{toks: lex(src)}
	return p.parseFile()
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) atEOF() bool {
	return p.cur().kind == tokEOF
}

func (p *parser) isPunct(s string) bool {
	return p.cur().kind == tokPunct && p.cur().text == s
}

func (p *parser) isKeyword(s string) bool {
	return p.cur().kind == tokIdent && p.cur().text == s
}

func (p *parser) expectPunct(s string) error {
	if !p.isPunct(s) {
		return fmt.Errorf("expected %q, got %q", s, p.cur().text)
	}
	p.advance()
	return nil
}

func (p *parser) parseFile() (*File, error) {
	f := &File{}
	for !p.atEOF() {
		switch {
		case p.isKeyword("import"):
			p.advance()
			var name strings.Builder
			if p.cur().kind == tokIdent {
				name.WriteString(p.advance().text)
				for p.isPunct(".") {
					name.WriteString(p.advance().text)
					if p.cur().kind == tokIdent {
						name.WriteString(p.advance().text)
					}
				}
			}
			if name.Len() > 0 {
				f.Imports = append(f.Imports, name.String())
			}

		case p.isPunct("@") || p.isKeyword("class") || p.isKeyword("struct") || p.isKeyword("extension"):
			decl, err := p.parseTypeDecl()
			if err != nil {
				return nil, err
			}
			if decl != nil {
				f.Declarations = append(f.Declarations, decl)
			}

		default:
			p.advance()
		}
	}
	return f, nil
}

func (p *parser) parseAttributes() []Attribute {
	var attrs []Attribute
	for p.isPunct("@") {
		p.advance()
		if p.cur().kind != tokIdent {
			break
		}
		name := p.advance().text
		attr := Attribute{Name: name}
		if p.isPunct("(") {
			p.advance()
			if p.cur().kind == tokString {
				attr.StringArg = p.advance().text
				attr.HasArg = true
			}
			for !p.isPunct(")") && !p.atEOF() {
				p.advance()
			}
			if p.isPunct(")") {
				p.advance()
			}
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func (p *parser) parseTypeDecl() (*TypeDecl, error) {
	attrs := p.parseAttributes()

	var kw TypeKeyword
	switch {
	case p.isKeyword("class"):
		kw = KeywordClass
	case p.isKeyword("struct"):
		kw = KeywordStruct
	case p.isKeyword("extension"):
		kw = KeywordExtension
	default:
		return nil, nil
	}
	p.advance()

	if p.cur().kind != tokIdent {
		return nil, fmt.Errorf("expected type name after %q", kw)
	}
	name := p.advance().text

	var inherits []string
	if p.isPunct(":") {
		p.advance()
		for {
			typeName := p.parseTypeSpelling(map[string]bool{",": true, "{": true})
			if typeName != "" {
				inherits = append(inherits, typeName)
			}
			if p.isPunct(",") {
				p.advance()
				continue
			}
			break
		}
	}

	// Skip a "where" clause, if present, up to the opening brace.
	for !p.isPunct("{") && !p.atEOF() {
		p.advance()
	}

	if err := p.expectPunct("{"); err != nil {
		return nil, fmt.Errorf("%s %s: %w", kw, name, err)
	}

	members, err := p.parseMembers()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", kw, name, err)
	}

	return &TypeDecl{Keyword: kw, Attributes: attrs, Name: name, Inherits: inherits, Members: members}, nil
}

func (p *parser) parseMembers() ([]Declaration, error) {
	var members []Declaration
	depth := 1
	for depth > 0 && !p.atEOF() {
		switch {
		case p.isPunct("{"):
			depth++
			p.advance()
		case p.isPunct("}"):
			depth--
			p.advance()
		case depth == 1 && (p.isPunct("@") || p.isKeyword("var") || p.isKeyword("let") || p.isKeyword("func")):
			decl, err := p.parseMember()
			if err != nil {
				return nil, err
			}
			if decl != nil {
				members = append(members, decl)
			}
		case depth == 1 && (p.isKeyword("class") || p.isKeyword("struct") || p.isKeyword("extension")):
			// Nested type declarations are parsed only to consume
			// them; the result is discarded and never becomes a member.
			if _, err := p.parseTypeDecl(); err != nil {
				return nil, err
			}
		default:
			p.advance()
		}
	}
	return members, nil
}

// parseMember parses a single attribute-prefixed member declaration
// (a variable or a function) inside a type body.
func (p *parser) parseMember() (Declaration, error) {
	attrs := p.parseAttributes()

	switch {
	case p.isKeyword("var") || p.isKeyword("let"):
		return p.parseVariableDecl(attrs)
	case p.isKeyword("func"):
		return p.parseFunctionDecl(attrs)
	default:
		// Attributes with no recognized declaration following; nothing
		// to record.
		return nil, nil
	}
}

func (p *parser) parseVariableDecl(attrs []Attribute) (*VariableDecl, error) {
	p.advance() // "var" or "let"

	var bindings []Binding
	for {
		if p.cur().kind != tokIdent {
			return nil, fmt.Errorf("expected binding name in var declaration")
		}
		b := Binding{Pattern: p.advance().text}

		if p.isPunct(":") {
			p.advance()
			b.TypeAnnotation = p.parseTypeSpelling(map[string]bool{",": true, "=": true, "{": true})
			b.HasType = true
		}

		if p.isPunct("=") {
			p.advance()
			p.skipExpression(map[string]bool{",": true})
			b.HasInitializer = true
		}

		bindings = append(bindings, b)

		if p.isPunct(",") {
			p.advance()
			continue
		}
		break
	}

	// A computed property's accessor block ("{ get { ... } }" or a bare
	// "{ ... }" getter) follows the last binding; consume it without
	// treating it as an initializer.
	if p.isPunct("{") {
		p.skipBalancedBraces()
	}

	return &VariableDecl{Attributes: attrs, Bindings: bindings}, nil
}

func (p *parser) parseFunctionDecl(attrs []Attribute) (*FunctionDecl, error) {
	p.advance() // "func"

	if p.cur().kind != tokIdent {
		return nil, fmt.Errorf("expected function name after 'func'")
	}
	name := p.advance().text

	if err := p.expectPunct("("); err != nil {
		return nil, fmt.Errorf("func %s: %w", name, err)
	}

	var params []Parameter
	for !p.isPunct(")") && !p.atEOF() {
		param, err := p.parseParameter()
		if err != nil {
			return nil, fmt.Errorf("func %s: %w", name, err)
		}
		params = append(params, param)
		if p.isPunct(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, fmt.Errorf("func %s: %w", name, err)
	}

	// Skip "throws"/"async"/"rethrows" modifiers before an arrow.
	for p.cur().kind == tokIdent && !p.isPunct("->") && !p.isPunct("{") {
		p.advance()
	}

	fn := &FunctionDecl{Attributes: attrs, Name: name, Parameters: params}
	if p.isPunct("->") {
		p.advance()
		fn.ReturnType = p.parseTypeSpelling(map[string]bool{"{": true})
		fn.HasReturn = fn.ReturnType != ""
	}

	if p.isPunct("{") {
		p.skipBalancedBraces()
	}

	return fn, nil
}

func (p *parser) parseParameter() (Parameter, error) {
	var attrs []Attribute
	attrs = append(attrs, p.parseAttributes()...)

	if p.cur().kind != tokIdent {
		return Parameter{}, fmt.Errorf("expected parameter name")
	}
	first := p.advance().text

	label := first
	name := first
	if p.cur().kind == tokIdent {
		// "label name: Type" form.
		name = p.advance().text
	}

	if err := p.expectPunct(":"); err != nil {
		return Parameter{}, err
	}

	attrs = append(attrs, p.parseAttributes()...)

	typ := p.parseTypeSpelling(map[string]bool{",": true, ")": true, "=": true})

	param := Parameter{Attributes: attrs, Label: label, Name: name, Type: typ}

	if p.isPunct("=") {
		p.advance()
		param.DefaultValue = p.captureExpression(map[string]bool{",": true, ")": true})
	}

	return param, nil
}

// parseTypeSpelling concatenates tokens into a textual type spelling
// until hitting a stop punctuation at bracket depth 0.
func (p *parser) parseTypeSpelling(stop map[string]bool) string {
	var sb strings.Builder
	depth := 0
	for !p.atEOF() {
		t := p.cur()
		if t.kind == tokPunct {
			if depth == 0 && stop[t.text] {
				break
			}
			switch t.text {
			case "(", "[", "<":
				depth++
			case ")", "]", ">":
				if depth > 0 {
					depth--
				} else if stop[t.text] {
					return sb.String()
				}
			}
		}
		sb.WriteString(t.text)
		p.advance()
	}
	return sb.String()
}

// captureExpression returns the raw source text of a default-value
// expression, stopping at a top-level stop token.
func (p *parser) captureExpression(stop map[string]bool) string {
	var sb strings.Builder
	depth := 0
	first := true
	for !p.atEOF() {
		t := p.cur()
		if t.kind == tokPunct {
			if depth == 0 && stop[t.text] {
				return sb.String()
			}
			switch t.text {
			case "(", "[":
				depth++
			case ")", "]":
				if depth > 0 {
					depth--
				}
			}
		}
		if !first && t.kind == tokIdent {
			sb.WriteString(" ")
		}
		sb.WriteString(t.text)
		first = false
		p.advance()
	}
	return sb.String()
}

func (p *parser) skipExpression(stop map[string]bool) {
	p.captureExpression(stop)
}

func (p *parser) skipBalancedBraces() {
	if !p.isPunct("{") {
		return
	}
	depth := 0
	for !p.atEOF() {
		if p.isPunct("{") {
			depth++
		} else if p.isPunct("}") {
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}
