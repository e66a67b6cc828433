package materialize

import (
	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// materializeTraceScope fills in m.doc.Trace from a `trace { ... }` block
// (spec.md §3, §4.4). major and minor are required; uuid, byte_order, and
// packet.header are optional.
func (m *materializer) materializeTraceScope(entries []ast.Entry) error {
	if m.doc.Trace == nil {
		m.doc.Trace = &document.Trace{}
	}
	tr := m.doc.Trace
	var majorSet, minorSet bool

	for _, entry := range entries {
		switch e := entry.(type) {
		case *ast.ValueAssign:
			key := dottedKey(e.Key)
			switch key {
			case "major":
				n, ok := evalInt(e.Value)
				if !ok {
					return errs.New(errs.SyntaxError, "trace.major must be a constant integer")
				}
				tr.Major = n
				majorSet = true
			case "minor":
				n, ok := evalInt(e.Value)
				if !ok {
					return errs.New(errs.SyntaxError, "trace.minor must be a constant integer")
				}
				tr.Minor = n
				minorSet = true
			case "uuid":
				u, err := decodeUUID(e.Value)
				if err != nil {
					return err
				}
				tr.UUID = &u
			case "byte_order":
				bo, err := decodeByteOrder(e.Value)
				if err != nil {
					return err
				}
				tr.ByteOrder = bo
			default:
				return errs.New(errs.SyntaxError, "unknown trace key %q", key)
			}
		case *ast.TypeAssign:
			key := dottedKey(e.Key)
			if key != "packet.header" {
				return errs.New(errs.SyntaxError, "unknown trace type assignment %q", key)
			}
			typ, err := m.materializeType(e.Type)
			if err != nil {
				return err
			}
			st, ok := typ.(*document.Struct)
			if !ok {
				return errs.New(errs.SyntaxError, "trace.packet.header must be a struct")
			}
			tr.PacketHeader = st
		case *ast.TypeAliasDecl, *ast.BareTypeDecl:
			// pure declarations, already handled by resolution
		default:
			return errs.New(errs.SyntaxError, "unhandled trace entry %T", entry)
		}
	}

	if !majorSet || !minorSet {
		return errs.New(errs.MissingRequired, "trace is missing required field(s) \"major\"/\"minor\"")
	}
	return nil
}

func dottedKey(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}
