package materialize

import (
	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// materializeEventScope builds a *document.Event from an `event { ... }`
// block (spec.md §3, §4.4) and attaches it to its target stream. id and
// name are required; stream_id defaults to 0.
func (m *materializer) materializeEventScope(entries []ast.Entry) error {
	ev := &document.Event{}
	var idSet, nameSet bool

	for _, entry := range entries {
		switch e := entry.(type) {
		case *ast.ValueAssign:
			key := dottedKey(e.Key)
			switch key {
			case "id":
				n, ok := evalInt(e.Value)
				if !ok {
					return errs.New(errs.SyntaxError, "event.id must be a constant integer")
				}
				ev.ID = n
				idSet = true
			case "name":
				s, ok := exprAsIdentOrString(e.Value)
				if !ok {
					return errs.New(errs.SyntaxError, "event.name must be an identifier or string")
				}
				ev.Name = s
				nameSet = true
			case "stream_id":
				n, ok := evalInt(e.Value)
				if !ok {
					return errs.New(errs.SyntaxError, "event.stream_id must be a constant integer")
				}
				ev.StreamID = n
			case "loglevel":
				n, ok := evalInt(e.Value)
				if !ok {
					return errs.New(errs.SyntaxError, "event.loglevel must be a constant integer")
				}
				ev.LogLevel = n
				ev.HasLogLevel = true
			default:
				return errs.New(errs.SyntaxError, "unknown event key %q", key)
			}
		case *ast.TypeAssign:
			key := dottedKey(e.Key)
			typ, err := m.materializeType(e.Type)
			if err != nil {
				return err
			}
			strct, ok := typ.(*document.Struct)
			if !ok {
				return errs.New(errs.SyntaxError, "event.%s must be a struct", key)
			}
			switch key {
			case "fields":
				ev.Fields = strct
			case "context":
				ev.Context = strct
			default:
				return errs.New(errs.SyntaxError, "unknown event type assignment %q", key)
			}
		case *ast.TypeAliasDecl, *ast.BareTypeDecl:
			// pure declarations
		default:
			return errs.New(errs.SyntaxError, "unhandled event entry %T", entry)
		}
	}

	if !idSet || !nameSet {
		return errs.New(errs.MissingRequired, "event is missing required field(s) \"id\"/\"name\"")
	}

	if st, ok := m.doc.Stream(ev.StreamID); ok {
		st.AddEvent(ev)
		return nil
	}
	m.pendingEvents[ev.StreamID] = append(m.pendingEvents[ev.StreamID], ev)
	return nil
}
