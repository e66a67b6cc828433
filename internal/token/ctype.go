package token

// TSDL identifiers are plain ASCII (spec.md §4.1), unlike KDL's Unicode
// bare identifiers (kdl-go/internal/tokenizer/ctype.go), so the character
// classes here are correspondingly narrower.

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// reservedWords are the keyword-shaped identifiers spec.md §4.1 excludes
// from the generic Identifier production. They remain valid as keywords
// in their own grammar position (e.g. the leading `struct` of a struct
// declaration); IsReservedWord is consulted only where the grammar calls
// for a free-form Identifier (a name, a field, an alias target, ...).
var reservedWords = map[string]bool{
	"struct":         true,
	"variant":        true,
	"enum":           true,
	"integer":        true,
	"floating_point": true,
	"string":         true,
	"typealias":      true,
}

// IsReservedWord reports whether s is one of TSDL's reserved words.
func IsReservedWord(s string) bool {
	return reservedWords[s]
}
