package parser

import (
	"strings"

	"github.com/efficios/tsdl-go/internal/ast"
	"github.com/efficios/tsdl-go/internal/token"
)

// parseTypeAliasDecl recognizes `typealias <type> := <name>;` (spec.md
// §4.2/§4.3), usable at file level, scope level, and struct/variant
// level alike.
func (p *Parser) parseTypeAliasDecl() (ast.Entry, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	if err := p.expectKeyword("typealias"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ColonEq); err != nil {
		return nil, err
	}
	name, err := p.parseAliasName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.TypeAliasDecl{Type: typ, Name: name, Pos: pos}, nil
}

// parseBareTypeDecl parses a struct or variant constructor, assumed
// already known (by the caller) to begin at the current token, and
// requires it be followed immediately by ';' with no declarator — a
// named declaration entry on its own (spec.md §4.2 "nested struct/variant
// declarations").
func (p *Parser) parseBareTypeDecl() (ast.Entry, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.BareTypeDecl{Type: typ, Pos: pos}, nil
}

// parseStructEntries parses the body of a struct or variant: an ordered
// sequence of type aliases, bare struct/variant declarations, and fields
// (spec.md §4.2), stopping at terminator without consuming it.
func (p *Parser) parseStructEntries(terminator token.Kind) ([]ast.Entry, error) {
	var out []ast.Entry
	for p.cur.Kind != terminator {
		entry, err := p.parseStructEntry()
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func (p *Parser) parseStructEntry() (ast.Entry, error) {
	switch {
	case p.atKeyword("typealias"):
		return p.parseTypeAliasDecl()

	case p.atKeyword("struct") || p.atKeyword("variant"):
		pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind == token.Semicolon {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.BareTypeDecl{Type: typ, Pos: pos}, nil
		}
		decl, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.Field{Type: typ, Decl: decl, Pos: pos}, nil

	case p.atKeyword("enum") || p.atKeyword("integer") || p.atKeyword("floating_point") || p.atKeyword("string"):
		pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		decl, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.Field{Type: typ, Decl: decl, Pos: pos}, nil

	case p.freeIdent():
		return p.parseIdentLedField()

	default:
		return nil, p.errorf("expected a type, alias, or field, got %s", p.cur)
	}
}

// parseIdentLedField recognizes the "identifier-led" field form (spec.md
// §4.2): one or more identifiers forming an alias name, whose final
// token is reinterpreted as the field name, followed by zero or more
// subscripts. Parsing is greedy: every identifier up to (but not
// including) the subscript/terminator slides the window, so the very
// last identifier read becomes the field name.
func (p *Parser) parseIdentLedField() (ast.Entry, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	var tokens []string
	for p.cur.Kind == token.Ident {
		tokens = append(tokens, p.cur.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if len(tokens) < 2 {
		return nil, p.errorf("identifier-led field needs both a type alias and a field name, got only %q", strings.Join(tokens, " "))
	}
	aliasName := strings.Join(tokens[:len(tokens)-1], " ")
	fieldName := tokens[len(tokens)-1]

	subs, err := p.parseSubscripts()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Field{
		Type: &ast.AliasRef{Name: aliasName, Pos: pos},
		Decl: ast.Declarator{Name: fieldName, Subscripts: subs, Pos: pos},
		Pos:  pos,
	}, nil
}

// parseScopeEntries parses the body of a trace/env/clock/stream/event
// block: value assignments, type assignments, type aliases, and bare
// struct/variant declarations (spec.md §4.2), stopping at terminator
// without consuming it.
func (p *Parser) parseScopeEntries(terminator token.Kind) ([]ast.Entry, error) {
	var out []ast.Entry
	for p.cur.Kind != terminator {
		entry, err := p.parseScopeEntry()
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func (p *Parser) parseScopeEntry() (ast.Entry, error) {
	switch {
	case p.atKeyword("typealias"):
		return p.parseTypeAliasDecl()

	case p.atKeyword("struct") || p.atKeyword("variant"):
		return p.parseBareTypeDecl()

	case p.cur.Kind == token.Ident:
		pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		switch p.cur.Kind {
		case token.Equals:
			if err := p.advance(); err != nil {
				return nil, err
			}
			value, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Semicolon); err != nil {
				return nil, err
			}
			return &ast.ValueAssign{Key: path, Value: value, Pos: pos}, nil
		case token.ColonEq:
			if err := p.advance(); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Semicolon); err != nil {
				return nil, err
			}
			return &ast.TypeAssign{Key: path, Type: typ, Pos: pos}, nil
		default:
			return nil, p.errorf("expected '=' or ':=' after %q, got %s", strings.Join(path, "."), p.cur)
		}

	default:
		return nil, p.errorf("expected an assignment or declaration, got %s", p.cur)
	}
}
