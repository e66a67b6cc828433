package parser

import (
	"github.com/efficios/tsdl-go/internal/ast"
	"github.com/efficios/tsdl-go/internal/token"
)

// parseDeclarator consumes a field name followed by zero or more
// subscripts (spec.md §4.2, Glossary "Declarator"). Each subscript is
// `[ unary ]`; whether it denotes an Array or a Sequence is decided later
// by internal/materialize from the subscript's shape (constant integer or
// dotted path). Path subscripts are not checked against any scope.
func (p *Parser) parseDeclarator() (ast.Declarator, error) {
	if p.cur.Kind != token.Ident {
		return ast.Declarator{}, p.errorf("expected a field name, got %s", p.cur)
	}
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return ast.Declarator{}, err
	}
	subs, err := p.parseSubscripts()
	if err != nil {
		return ast.Declarator{}, err
	}
	return ast.Declarator{Name: name, Subscripts: subs, Pos: pos}, nil
}

// parseSubscripts consumes zero or more `[ unary ]` subscripts trailing a
// declarator name (spec.md §4.2).
func (p *Parser) parseSubscripts() ([]ast.Expr, error) {
	var subs []ast.Expr
	for p.cur.Kind == token.LBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
