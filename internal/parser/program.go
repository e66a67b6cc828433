package parser

import (
	"github.com/efficios/tsdl-go/internal/ast"
	"github.com/efficios/tsdl-go/internal/token"
)

var scopeKeywords = map[string]ast.ScopeKind{
	"trace":  ast.TraceScope,
	"env":    ast.EnvScope,
	"clock":  ast.ClockScope,
	"stream": ast.StreamScope,
	"event":  ast.EventScope,
}

// parseProgram recognizes the file level: an ordered list of top-scope
// blocks interleaved with file-level type aliases and named struct/
// variant declarations (spec.md §4.2).
func (p *Parser) parseProgram() (*ast.Program, error) {
	var items []ast.TopLevelItem
	for p.cur.Kind != token.EOF {
		item, err := p.parseTopLevelItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &ast.Program{Items: items}, nil
}

func (p *Parser) parseTopLevelItem() (ast.TopLevelItem, error) {
	if p.cur.Kind == token.Ident {
		if kind, ok := scopeKeywords[p.cur.Text]; ok {
			return p.parseScope(kind)
		}
	}
	switch {
	case p.atKeyword("typealias"):
		entry, err := p.parseTypeAliasDecl()
		if err != nil {
			return nil, err
		}
		return entry.(*ast.TypeAliasDecl), nil
	case p.atKeyword("struct") || p.atKeyword("variant"):
		entry, err := p.parseBareTypeDecl()
		if err != nil {
			return nil, err
		}
		return entry.(*ast.BareTypeDecl), nil
	default:
		return nil, p.errorf("expected a top-level block, type alias, or declaration, got %s", p.cur)
	}
}

// parseScope recognizes one `trace{...}`, `env{...}`, `clock{...}`,
// `stream{...}`, or `event{...}` block (spec.md §4.2).
func (p *Parser) parseScope(kind ast.ScopeKind) (*ast.Scope, error) {
	pos := ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
	if err := p.advance(); err != nil { // consume the scope keyword
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	entries, err := p.parseScopeEntries(token.RBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.Scope{Kind: kind, Entries: entries, Pos: pos}, nil
}
