// Package errs defines the single error type surfaced by the tsdl parsing
// pipeline (spec.md §7). Every failure — grammar recognition or semantic
// validation — is reported as a *ParseError carrying a Kind so callers can
// branch on it with errors.Is, the way kdl-go's tokenizer exposes
// sentinel errors (ErrInvalidRune, ErrEndOfToken) for the same reason.
package errs

import "fmt"

// Kind enumerates the failure categories named in spec.md §7. Kind values
// are not type names: several Go types can fail with the same Kind (e.g.
// both an Integer missing size and a FloatingPoint missing exp_dig/mant_dig
// raise MissingRequired).
type Kind int

const (
	_ Kind = iota
	SyntaxError
	UnresolvedAlias
	UnresolvedStruct
	UnresolvedVariant
	MissingRequired
	InvalidByteOrder
	InvalidBase
	InvalidEncoding
	InvalidClockMap
	InvalidUUID
	InvalidBoolean
	InvalidEnumRange
	DuplicateClock
	DuplicateStream
	DuplicateEvent
	DuplicateEnumLabel
	UnknownStream
	NoClocks
	NoStreams
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UnresolvedAlias:
		return "UnresolvedAlias"
	case UnresolvedStruct:
		return "UnresolvedStruct"
	case UnresolvedVariant:
		return "UnresolvedVariant"
	case MissingRequired:
		return "MissingRequired"
	case InvalidByteOrder:
		return "InvalidByteOrder"
	case InvalidBase:
		return "InvalidBase"
	case InvalidEncoding:
		return "InvalidEncoding"
	case InvalidClockMap:
		return "InvalidClockMap"
	case InvalidUUID:
		return "InvalidUUID"
	case InvalidBoolean:
		return "InvalidBoolean"
	case InvalidEnumRange:
		return "InvalidEnumRange"
	case DuplicateClock:
		return "DuplicateClock"
	case DuplicateStream:
		return "DuplicateStream"
	case DuplicateEvent:
		return "DuplicateEvent"
	case DuplicateEnumLabel:
		return "DuplicateEnumLabel"
	case UnknownStream:
		return "UnknownStream"
	case NoClocks:
		return "NoClocks"
	case NoStreams:
		return "NoStreams"
	default:
		return "(unknown)"
	}
}

// ParseError is the single error type returned by tsdl.Parse and
// tsdl.GetAST (spec.md §7). Policy is fail-fast: the first violation
// aborts the whole parse, and no partial document is returned.
type ParseError struct {
	Kind Kind
	// Line and Column locate the error in the source, when known; both
	// are 0 for errors that aren't tied to a single token (e.g.
	// finalization errors like NoClocks).
	Line, Column int
	Msg          string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is a *ParseError with the same Kind, so
// callers can write errors.Is(err, &errs.ParseError{Kind: errs.NoClocks}).
func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs a ParseError with no position information.
func New(kind Kind, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewAt constructs a ParseError at the given source position.
func NewAt(kind Kind, line, column int, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Line: line, Column: column, Msg: fmt.Sprintf(format, args...)}
}
