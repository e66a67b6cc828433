package materialize

import (
	"strings"

	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// evalInt reduces a constant-integer Expr (possibly signed or
// parenthesized) to its value.
func evalInt(e ast.Expr) (int64, bool) {
	switch v := e.(type) {
	case *ast.IntLiteral:
		return v.Value, true
	case *ast.SignedExpr:
		n, ok := evalInt(v.Inner)
		if !ok {
			return 0, false
		}
		if v.Negative {
			return -n, true
		}
		return n, true
	case *ast.ParenExpr:
		return evalInt(v.Inner)
	default:
		return 0, false
	}
}

// exprAsIdent returns the text of a single bare identifier expression
// (a one-component PathExpr), such as the `le` in `byte_order = le;`.
func exprAsIdent(e ast.Expr) (string, bool) {
	p, ok := e.(*ast.PathExpr)
	if !ok || len(p.Path) != 1 {
		return "", false
	}
	return p.Path[0], true
}

// exprAsString returns the value of a string-literal expression.
func exprAsString(e ast.Expr) (string, bool) {
	s, ok := e.(*ast.StringLiteral)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// exprAsIdentOrString accepts either a bare identifier or a string
// literal (spec.md §4.4: Clock.name is "identifier"; Event.name is
// "identifier or string").
func exprAsIdentOrString(e ast.Expr) (string, bool) {
	if s, ok := exprAsString(e); ok {
		return s, true
	}
	return exprAsIdent(e)
}

// exprAsPath returns a dotted-path expression's components.
func exprAsPath(e ast.Expr) ([]string, bool) {
	p, ok := e.(*ast.PathExpr)
	if !ok {
		return nil, false
	}
	return p.Path, true
}

// decodeBool accepts the boolean forms spec.md §4.4 lists: the
// identifiers true/false, or the integers 1/0.
func decodeBool(e ast.Expr) (bool, error) {
	if ident, ok := exprAsIdent(e); ok {
		switch ident {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	if n, ok := evalInt(e); ok {
		switch n {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
	}
	return false, errs.New(errs.InvalidBoolean, "expected true/false/1/0")
}

// decodeByteOrder accepts le/be/network(=BE)/native (spec.md §4.4).
func decodeByteOrder(e ast.Expr) (document.ByteOrder, error) {
	ident, ok := exprAsIdent(e)
	if !ok {
		return 0, errs.New(errs.InvalidByteOrder, "byte_order must be an identifier")
	}
	switch strings.ToLower(ident) {
	case "le":
		return document.LittleEndian, nil
	case "be", "network":
		return document.BigEndian, nil
	case "native":
		return document.NativeByteOrder, nil
	default:
		return 0, errs.New(errs.InvalidByteOrder, "unrecognized byte_order %q", ident)
	}
}

// decodeBase accepts a numeric base (2/8/10/16) or one of the accepted
// identifier aliases (spec.md §4.4).
func decodeBase(e ast.Expr) (int, error) {
	if n, ok := evalInt(e); ok {
		switch n {
		case 2, 8, 10, 16:
			return int(n), nil
		}
		return 0, errs.New(errs.InvalidBase, "unrecognized integer base %d", n)
	}
	ident, ok := exprAsIdent(e)
	if !ok {
		return 0, errs.New(errs.InvalidBase, "base must be an integer or an identifier")
	}
	switch ident {
	case "decimal", "dec", "d", "i", "u":
		return 10, nil
	case "hexadecimal", "hex", "x", "X", "p":
		return 16, nil
	case "octal", "oct", "o":
		return 8, nil
	case "binary", "bin", "b":
		return 2, nil
	default:
		return 0, errs.New(errs.InvalidBase, "unrecognized integer base %q", ident)
	}
}

// decodeEncoding accepts none/UTF8/ASCII (spec.md §4.4).
func decodeEncoding(e ast.Expr) (document.Encoding, error) {
	ident, ok := exprAsIdent(e)
	if !ok {
		return 0, errs.New(errs.InvalidEncoding, "encoding must be an identifier")
	}
	switch ident {
	case "none":
		return document.NoEncoding, nil
	case "UTF8":
		return document.UTF8, nil
	case "ASCII":
		return document.ASCII, nil
	default:
		return 0, errs.New(errs.InvalidEncoding, "unrecognized encoding %q", ident)
	}
}

// decodeUUID accepts a string-literal UUID (spec.md §4.4).
func decodeUUID(e ast.Expr) (document.UUID, error) {
	s, ok := exprAsString(e)
	if !ok {
		return document.UUID{}, errs.New(errs.InvalidUUID, "uuid must be a literal string")
	}
	u, err := document.ParseUUID(s)
	if err != nil {
		return document.UUID{}, errs.New(errs.InvalidUUID, "invalid uuid %q: %s", s, err)
	}
	return u, nil
}
