// Package token defines the lexical tokens of TSDL (spec.md §4.1) and the
// Scanner that produces them.
//
// Grounded on kdl-go's internal/tokenizer/token.go (Token/TokenID struct
// shape, the String() switch idiom).
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	Invalid Kind = iota
	EOF

	Ident // bare identifier; keyword-ness is checked by the parser against the token's text
	Decimal
	Octal
	Hexadecimal
	QuotedString

	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	LAngle    // <
	RAngle    // >
	Semicolon // ;
	Comma     // ,
	Equals    // =
	ColonEq   // :=
	Colon     // :
	Ellipsis  // ...
	Dot       // .
	Arrow     // ->
	Plus      // +
	Minus     // -
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "Identifier"
	case Decimal:
		return "Decimal"
	case Octal:
		return "Octal"
	case Hexadecimal:
		return "Hexadecimal"
	case QuotedString:
		return "QuotedString"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LAngle:
		return "'<'"
	case RAngle:
		return "'>'"
	case Semicolon:
		return "';'"
	case Comma:
		return "','"
	case Equals:
		return "'='"
	case ColonEq:
		return "':='"
	case Colon:
		return "':'"
	case Ellipsis:
		return "'...'"
	case Dot:
		return "'.'"
	case Arrow:
		return "'->'"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	default:
		return "(invalid)"
	}
}

// Token is a single lexical token (spec.md §4.1).
type Token struct {
	Kind Kind
	// Text is the token's literal source text. For QuotedString, this
	// still includes the surrounding quotes and escape sequences;
	// Unescape decodes it.
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
	return t.Kind.String()
}

// IsKeyword reports whether t is an identifier whose text matches kw
// exactly. TSDL keywords are recognized this way rather than as distinct
// token kinds, since (outside the reserved-word exclusion on Identifier,
// spec.md §4.1) they are ordinary identifier-shaped words.
func (t Token) IsKeyword(kw string) bool {
	return t.Kind == Ident && t.Text == kw
}
