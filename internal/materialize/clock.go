package materialize

import (
	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// materializeClockScope builds a *document.Clock from a `clock { ... }`
// block (spec.md §3, §4.4) and registers it on m.doc. name and freq are
// required.
func (m *materializer) materializeClockScope(entries []ast.Entry) error {
	clk := &document.Clock{}
	var nameSet, freqSet bool

	for _, entry := range entries {
		if _, ok := entry.(*ast.TypeAliasDecl); ok {
			continue
		}
		if _, ok := entry.(*ast.BareTypeDecl); ok {
			continue
		}
		va, ok := entry.(*ast.ValueAssign)
		if !ok {
			return errs.New(errs.SyntaxError, "unhandled clock entry %T", entry)
		}
		key := dottedKey(va.Key)
		switch key {
		case "name":
			s, ok := exprAsIdent(va.Value)
			if !ok {
				return errs.New(errs.SyntaxError, "clock.name must be an identifier")
			}
			clk.Name = s
			nameSet = true
		case "freq":
			n, ok := evalInt(va.Value)
			if !ok {
				return errs.New(errs.SyntaxError, "clock.freq must be a constant integer")
			}
			clk.Freq = n
			freqSet = true
		case "description":
			s, ok := exprAsString(va.Value)
			if !ok {
				return errs.New(errs.SyntaxError, "clock.description must be a string")
			}
			clk.Description = s
		case "precision":
			n, ok := evalInt(va.Value)
			if !ok {
				return errs.New(errs.SyntaxError, "clock.precision must be a constant integer")
			}
			clk.Precision = n
		case "offset_s":
			n, ok := evalInt(va.Value)
			if !ok {
				return errs.New(errs.SyntaxError, "clock.offset_s must be a constant integer")
			}
			clk.OffsetS = n
		case "offset":
			n, ok := evalInt(va.Value)
			if !ok {
				return errs.New(errs.SyntaxError, "clock.offset must be a constant integer")
			}
			clk.Offset = n
		case "absolute":
			b, err := decodeBool(va.Value)
			if err != nil {
				return err
			}
			clk.Absolute = b
		case "uuid":
			u, err := decodeUUID(va.Value)
			if err != nil {
				return err
			}
			clk.UUID = &u
		default:
			return errs.New(errs.SyntaxError, "unknown clock key %q", key)
		}
	}

	if !nameSet || !freqSet {
		return errs.New(errs.MissingRequired, "clock is missing required field(s) \"name\"/\"freq\"")
	}
	return m.doc.AddClock(clk)
}
