// Package materialize implements pass 2 of the two-pass semantic
// analyzer (spec.md §2, §4.4): it walks the resolved syntax tree and
// builds the typed document model, enforcing every semantic invariant
// spec.md §7/§8 names.
//
// Grounded on pytsdl/tsdl.py's per-class `__init__` validation (which
// field is required, which has a default) and on spec.md §4.4's explicit
// dispatch tables; the visitor-by-class-name idiom collapses into the Go
// type switches below (spec.md §9).
package materialize

import (
	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// materializer carries the state pass 2 needs across the whole tree: the
// growing Doc, plus a cache from a named struct's declaration node to its
// materialized *document.Struct, so that every reference to the same
// struct (spec.md Lifecycle: "Named structures ... may be shared by
// identity") yields the identical object rather than a fresh copy.
type materializer struct {
	doc         *document.Doc
	structCache map[*ast.StructFull]*document.Struct

	// pendingEvents holds events materialized before their target stream
	// was declared, keyed by stream id, until that stream shows up
	// (spec.md does not require streams to precede the events that
	// reference them).
	pendingEvents map[int64][]*document.Event
}

// Materialize runs pass 2 over a resolved Program (the output of
// internal/resolve.Resolve) and returns the finished, finalized Doc, or
// the first semantic violation encountered (spec.md §4.6 fail-fast).
func Materialize(prog *ast.Program) (*document.Doc, error) {
	m := &materializer{
		doc:           document.New(),
		structCache:   make(map[*ast.StructFull]*document.Struct),
		pendingEvents: make(map[int64][]*document.Event),
	}
	for _, item := range prog.Items {
		if err := m.materializeTopLevelItem(item); err != nil {
			return nil, err
		}
	}
	for streamID := range m.pendingEvents {
		return nil, errs.New(errs.UnknownStream, "event references undeclared stream id %d", streamID)
	}
	if err := m.doc.Finalize(); err != nil {
		return nil, err
	}
	return m.doc, nil
}

func (m *materializer) materializeTopLevelItem(item ast.TopLevelItem) error {
	scope, ok := item.(*ast.Scope)
	if !ok {
		// *ast.TypeAliasDecl and *ast.BareTypeDecl are pure declarations:
		// their effect was already felt during resolution (spec.md §4.3)
		// and they contribute no document object on their own.
		return nil
	}
	switch scope.Kind {
	case ast.TraceScope:
		return m.materializeTraceScope(scope.Entries)
	case ast.EnvScope:
		return m.materializeEnvScope(scope.Entries)
	case ast.ClockScope:
		return m.materializeClockScope(scope.Entries)
	case ast.StreamScope:
		return m.materializeStreamScope(scope.Entries)
	case ast.EventScope:
		return m.materializeEventScope(scope.Entries)
	default:
		return errs.New(errs.SyntaxError, "unhandled scope kind %v", scope.Kind)
	}
}
