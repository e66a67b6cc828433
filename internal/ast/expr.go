package ast

// Expr is a value-position expression: the right-hand side of a value
// assignment, or a declarator subscript (spec.md §4.1 "Primary / Postfix
// / Unary expressions"). The full primary/postfix/unary grammar collapses
// here into the handful of shapes spec.md's semantics actually examine:
// integers, strings, dotted paths, and parenthesized wrappers.
type Expr interface{ isExpr() }

// IntLiteral is a decimal, octal, or hexadecimal integer literal,
// already base-resolved by the parser (spec.md §4.1).
type IntLiteral struct {
	Value int64
	Pos   Pos
}

func (*IntLiteral) isExpr() {}

// StringLiteral is a quoted string literal with escapes already decoded
// (spec.md §4.1, internal/token.Unescape).
type StringLiteral struct {
	Value string
	Pos   Pos
}

func (*StringLiteral) isExpr() {}

// PathExpr is a dotted identifier chain, e.g. `stream.packet_context` or
// a bare `foo` (spec.md §9: `.` and `->` are equivalent path separators
// and flatten identically here).
type PathExpr struct {
	Path []string
	Pos  Pos
}

func (*PathExpr) isExpr() {}

// ParenExpr wraps a parenthesized sub-expression (spec.md §4.1's Unary
// production allows `( unary )`).
type ParenExpr struct {
	Inner Expr
	Pos   Pos
}

func (*ParenExpr) isExpr() {}

// SignedExpr wraps a unary `-` or `+` applied to an integer literal
// (spec.md §8 boundary case "negative signed integers").
type SignedExpr struct {
	Negative bool
	Inner    Expr
	Pos      Pos
}

func (*SignedExpr) isExpr() {}
