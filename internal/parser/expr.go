package parser

import (
	"strconv"

	"github.com/efficios/tsdl-go/internal/ast"
	"github.com/efficios/tsdl-go/internal/token"
)

// parsePath consumes a dotted identifier chain (spec.md §9: `.` and `->`
// are interchangeable separators and flatten identically), returning its
// components.
func (p *Parser) parsePath() ([]string, error) {
	if p.cur.Kind != token.Ident {
		return nil, p.errorf("expected identifier, got %s", p.cur)
	}
	path := []string{p.cur.Text}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Dot || p.cur.Kind == token.Arrow {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind != token.Ident {
			return nil, p.errorf("expected identifier after path separator, got %s", p.cur)
		}
		path = append(path, p.cur.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return path, nil
}

// parseIntLiteral consumes a Decimal, Octal, or Hexadecimal token and
// returns its numeric value.
func (p *Parser) parseIntLiteral() (int64, error) {
	tok := p.cur
	var v int64
	var err error
	switch tok.Kind {
	case token.Decimal:
		v, err = strconv.ParseInt(tok.Text, 10, 64)
	case token.Octal:
		v, err = strconv.ParseInt(tok.Text, 8, 64)
	case token.Hexadecimal:
		v, err = strconv.ParseInt(tok.Text[2:], 16, 64)
	default:
		return 0, p.errorf("expected integer literal, got %s", tok)
	}
	if err != nil {
		return 0, p.errorf("invalid integer literal %q: %s", tok.Text, err)
	}
	if aerr := p.advance(); aerr != nil {
		return 0, aerr
	}
	return v, nil
}

// parseUnary consumes a Unary expression (spec.md §4.1): a signed or
// unsigned integer literal, a string literal, a dotted path, or a
// parenthesized sub-expression.
func (p *Parser) parseUnary() (ast.Expr, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}

	if p.cur.Kind == token.Plus || p.cur.Kind == token.Minus {
		neg := p.cur.Kind == token.Minus
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.SignedExpr{Negative: neg, Inner: inner, Pos: pos}, nil
	}

	switch p.cur.Kind {
	case token.Decimal, token.Octal, token.Hexadecimal:
		v, err := p.parseIntLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.IntLiteral{Value: v, Pos: pos}, nil
	case token.QuotedString:
		text := p.cur.Text
		decoded, err := token.Unescape(text)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Value: decoded, Pos: pos}, nil
	case token.LParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Inner: inner, Pos: pos}, nil
	case token.Ident:
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		return &ast.PathExpr{Path: path, Pos: pos}, nil
	default:
		return nil, p.errorf("expected value, got %s", p.cur)
	}
}
