// Package parser implements recursive-descent grammar recognition over
// internal/token, producing an internal/ast syntax tree (spec.md §4.1,
// §4.2).
//
// Grounded on kdl-go's internal/parser.ParseContext in spirit — a single
// cursor object threaded through the grammar functions, reporting errors
// through a single error-producing convention — but reshaped from kdl-go's
// flat per-token state-transition table into genuine recursive-descent
// functions, because TSDL's scopes and types nest arbitrarily (struct
// inside struct, variant inside struct, ...) where KDL's grammar does not
// need mutual recursion of that depth.
package parser

import (
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
	"github.com/efficios/tsdl-go/internal/token"
)

// Parser holds a one-token lookahead cursor over a Scanner.
type Parser struct {
	sc  *token.Scanner
	cur token.Token
}

// New creates a Parser over src. StrictOctal governs the scanner's
// handling of spec.md §9's octal open question.
func New(src string, strictOctal bool) (*Parser, error) {
	sc := token.New(src)
	sc.StrictOctal = strictOctal
	p := &Parser{sc: sc}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.sc.Next()
	if err != nil {
		return errs.New(errs.SyntaxError, "%s", err)
	}
	p.cur = tok
	return nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return errs.NewAt(errs.SyntaxError, p.cur.Line, p.cur.Column, format, args...)
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.cur.Kind != k {
		return token.Token{}, p.errorf("expected %s, got %s %q", k, p.cur.Kind, p.cur.Text)
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// expectKeyword consumes an Ident token whose text is exactly kw.
func (p *Parser) expectKeyword(kw string) error {
	if p.cur.Kind != token.Ident || p.cur.Text != kw {
		return p.errorf("expected keyword %q, got %q", kw, p.cur.Text)
	}
	return p.advance()
}

// atKeyword reports whether the current token is the identifier-shaped
// keyword kw.
func (p *Parser) atKeyword(kw string) bool {
	return p.cur.Kind == token.Ident && p.cur.Text == kw
}

// freeIdent reports whether the current token is a non-reserved
// identifier usable as a name (spec.md §4.1 Identifier production).
func (p *Parser) freeIdent() bool {
	return p.cur.Kind == token.Ident && !token.IsReservedWord(p.cur.Text)
}

// Parse runs the grammar over the whole input and returns the resulting
// Program (spec.md §4.2's top-level list), or an error on the first
// malformed construct (spec.md §7's fail-fast policy).
func Parse(src string, strictOctal bool) (*ast.Program, error) {
	p, err := New(src, strictOctal)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}
