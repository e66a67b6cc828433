package materialize

import (
	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// materializeEnvScope fills in m.doc.Env from an `env { ... }` block
// (spec.md §3, §4.4): a flat set of value assignments, each a string or
// a signed integer.
func (m *materializer) materializeEnvScope(entries []ast.Entry) error {
	if m.doc.Env == nil {
		m.doc.Env = document.NewEnv()
	}
	for _, entry := range entries {
		if _, ok := entry.(*ast.TypeAliasDecl); ok {
			continue
		}
		if _, ok := entry.(*ast.BareTypeDecl); ok {
			continue
		}
		va, ok := entry.(*ast.ValueAssign)
		if !ok {
			return errs.New(errs.SyntaxError, "unhandled env entry %T", entry)
		}
		key := dottedKey(va.Key)
		if s, ok := exprAsString(va.Value); ok {
			m.doc.Env.Set(key, s)
			continue
		}
		if n, ok := evalInt(va.Value); ok {
			m.doc.Env.Set(key, n)
			continue
		}
		return errs.New(errs.SyntaxError, "env.%s must be a string or an integer", key)
	}
	return nil
}
