package parser

import (
	"github.com/efficios/tsdl-go/internal/ast"
	"github.com/efficios/tsdl-go/internal/token"
)

// parseType dispatches on the leading keyword to recognize one of
// TSDL's type constructors (spec.md §4.2). Dispatch order follows the
// original grammar's [Struct, Variant, Enum, Integer, FloatingPoint,
// String] preference (DESIGN.md), though here it is an explicit keyword
// switch rather than an ordered alternation.
func (p *Parser) parseType() (ast.Type, error) {
	switch {
	case p.atKeyword("struct"):
		return p.parseStructType()
	case p.atKeyword("variant"):
		return p.parseVariantType()
	case p.atKeyword("enum"):
		return p.parseEnumType()
	case p.atKeyword("integer"):
		return p.parseIntegerType()
	case p.atKeyword("floating_point"):
		return p.parseFloatingPointType()
	case p.atKeyword("string"):
		return p.parseStringType()
	case p.freeIdent():
		return p.parseAliasRef()
	default:
		return nil, p.errorf("expected a type, got %s", p.cur)
	}
}

func (p *Parser) parseAliasRef() (ast.Type, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.AliasRef{Name: name, Pos: pos}, nil
}

func (p *Parser) parseAssignments() ([]ast.Assignment, error) {
	var out []ast.Assignment
	for p.cur.Kind != token.RBrace {
		pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
		if p.cur.Kind != token.Ident {
			return nil, p.errorf("expected assignment key, got %s", p.cur)
		}
		key := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Equals); err != nil {
			return nil, err
		}
		value, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		out = append(out, ast.Assignment{Key: key, Value: value, Pos: pos})
	}
	return out, nil
}

func (p *Parser) parseIntegerType() (ast.Type, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	if err := p.expectKeyword("integer"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	assigns, err := p.parseAssignments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.IntegerType{Assignments: assigns, Pos: pos}, nil
}

func (p *Parser) parseFloatingPointType() (ast.Type, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	if err := p.expectKeyword("floating_point"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	assigns, err := p.parseAssignments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.FloatingPointType{Assignments: assigns, Pos: pos}, nil
}

func (p *Parser) parseStringType() (ast.Type, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	if err := p.expectKeyword("string"); err != nil {
		return nil, err
	}
	if p.cur.Kind != token.LBrace {
		return &ast.StringType{Pos: pos}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	assigns, err := p.parseAssignments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.StringType{Assignments: assigns, Pos: pos}, nil
}

// parseOptionalName consumes a single non-reserved identifier, if
// present, as the Name of a struct/variant/enum constructor.
func (p *Parser) parseOptionalName() (*string, error) {
	if !p.freeIdent() {
		return nil, nil
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &name, nil
}

func (p *Parser) parseEnumType() (ast.Type, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.parseOptionalName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	intTypeName, err := p.parseAliasName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	enumerators, err := p.parseEnumerators()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.EnumType{Name: name, IntTypeName: intTypeName, Enumerators: enumerators, Pos: pos}, nil
}

// parseAliasName gathers one or more space-joined identifiers naming a
// type alias (spec.md §4.3 "Multi-token alias names"), stopping at the
// first token that cannot continue an alias name.
func (p *Parser) parseAliasName() (string, error) {
	if p.cur.Kind != token.Ident {
		return "", p.errorf("expected type alias name, got %s", p.cur)
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return "", err
	}
	for p.cur.Kind == token.Ident {
		name += " " + p.cur.Text
		if err := p.advance(); err != nil {
			return "", err
		}
	}
	return name, nil
}

func (p *Parser) parseEnumLabel() (string, error) {
	switch p.cur.Kind {
	case token.Ident:
		label := p.cur.Text
		return label, p.advance()
	case token.QuotedString:
		decoded, err := token.Unescape(p.cur.Text)
		if err != nil {
			return "", p.errorf("%s", err)
		}
		return decoded, p.advance()
	default:
		return "", p.errorf("expected enumerator label, got %s", p.cur)
	}
}

func (p *Parser) parseEnumerators() ([]ast.Enumerator, error) {
	var out []ast.Enumerator
	for p.cur.Kind != token.RBrace {
		pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
		label, err := p.parseEnumLabel()
		if err != nil {
			return nil, err
		}
		e := ast.Enumerator{Label: label, Pos: pos}
		if p.cur.Kind == token.Equals {
			if err := p.advance(); err != nil {
				return nil, err
			}
			low, err := p.parseIntLiteral()
			if err != nil {
				return nil, err
			}
			if p.cur.Kind == token.Ellipsis {
				if err := p.advance(); err != nil {
					return nil, err
				}
				high, err := p.parseIntLiteral()
				if err != nil {
					return nil, err
				}
				e.HasRange = true
				e.Low, e.High = low, high
			} else {
				e.HasValue = true
				e.Value = low
			}
		}
		out = append(out, e)
		if p.cur.Kind == token.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return out, nil
}

// parseStructType recognizes both the defining form (struct [Name]
// { entries } [align(N)]) and the reference form (struct Name), per
// spec.md §4.2/§4.3.
func (p *Parser) parseStructType() (ast.Type, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	if err := p.expectKeyword("struct"); err != nil {
		return nil, err
	}
	name, err := p.parseOptionalName()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.LBrace {
		if name == nil {
			return nil, p.errorf("expected '{' or a struct name, got %s", p.cur)
		}
		return &ast.StructRef{Name: *name, Pos: pos}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	entries, err := p.parseStructEntries(token.RBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	var align *int64
	if p.atKeyword("align") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		n, err := p.parseIntLiteral()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		align = &n
	}
	return &ast.StructFull{Name: name, Entries: entries, Align: align, Pos: pos}, nil
}

// parseVariantType recognizes both the defining form (variant [Name]
// [<tag>] { entries }) and the reference form (variant Name <tag>), per
// spec.md §4.2/§4.3.
func (p *Parser) parseVariantType() (ast.Type, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	if err := p.expectKeyword("variant"); err != nil {
		return nil, err
	}
	name, err := p.parseOptionalName()
	if err != nil {
		return nil, err
	}

	var tag []string
	if p.cur.Kind == token.LAngle {
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RAngle); err != nil {
			return nil, err
		}
		tag = t
	}

	if p.cur.Kind != token.LBrace {
		if name == nil {
			return nil, p.errorf("expected '{' or a variant name, got %s", p.cur)
		}
		if tag == nil {
			return nil, p.errorf("variant reference %q requires a <tag>", *name)
		}
		return &ast.VariantRef{Name: *name, Tag: tag, Pos: pos}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	entries, err := p.parseStructEntries(token.RBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.VariantFull{Name: name, Tag: tag, Entries: entries, Pos: pos}, nil
}
