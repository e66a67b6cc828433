package materialize

import (
	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// materializeStreamScope builds a *document.Stream from a `stream { ... }`
// block (spec.md §3, §4.4) and registers it on m.doc. Any events already
// pending for this stream's id (an event scope materialized before its
// stream, or after, spec.md does not order the two) are attached once the
// stream itself is built; see materializeEventScope.
func (m *materializer) materializeStreamScope(entries []ast.Entry) error {
	st := &document.Stream{}

	for _, entry := range entries {
		switch e := entry.(type) {
		case *ast.ValueAssign:
			key := dottedKey(e.Key)
			if key != "id" {
				return errs.New(errs.SyntaxError, "unknown stream key %q", key)
			}
			n, ok := evalInt(e.Value)
			if !ok {
				return errs.New(errs.SyntaxError, "stream.id must be a constant integer")
			}
			st.ID = n
		case *ast.TypeAssign:
			key := dottedKey(e.Key)
			typ, err := m.materializeType(e.Type)
			if err != nil {
				return err
			}
			strct, ok := typ.(*document.Struct)
			if !ok {
				return errs.New(errs.SyntaxError, "stream.%s must be a struct", key)
			}
			switch key {
			case "packet.context":
				st.PacketContext = strct
			case "event.header":
				st.EventHeader = strct
			case "event.context":
				st.EventContext = strct
			default:
				return errs.New(errs.SyntaxError, "unknown stream type assignment %q", key)
			}
		case *ast.TypeAliasDecl, *ast.BareTypeDecl:
			// pure declarations
		default:
			return errs.New(errs.SyntaxError, "unhandled stream entry %T", entry)
		}
	}

	if err := m.doc.AddStream(st); err != nil {
		return err
	}
	if pending := m.pendingEvents[st.ID]; len(pending) > 0 {
		for _, ev := range pending {
			st.AddEvent(ev)
		}
		delete(m.pendingEvents, st.ID)
	}
	return nil
}
