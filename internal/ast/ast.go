// Package ast defines the syntax tree produced by grammar recognition
// (spec.md §4.1/§4.2), before scope resolution or materialization.
//
// spec.md §9 notes that the original pytsdl source models each grammar
// rule as its own mixin-derived Python class, dispatched by a
// visit_<ClassName> method; here that collapses into a small closed set
// of tagged-variant Go types, dispatched with ordinary type switches.
package ast

// Pos locates a node in the source, for error reporting.
type Pos struct {
	Line, Column int
}

// Program is the root of a parsed TSDL document: an ordered list of
// top-level items (spec.md §4.2 "The top level is an ordered list of
// top-scope blocks ... interleaved with file-level type aliases and named
// struct/variant declarations").
type Program struct {
	Items []TopLevelItem
}

// TopLevelItem is a file-level construct: a scope block, a type alias, or
// a bare named struct/variant declaration.
type TopLevelItem interface{ isTopLevelItem() }

// ScopeKind identifies which of the five top-scope block kinds a Scope
// represents (spec.md §4.2).
type ScopeKind int

const (
	TraceScope ScopeKind = iota
	EnvScope
	ClockScope
	StreamScope
	EventScope
)

func (k ScopeKind) String() string {
	switch k {
	case TraceScope:
		return "trace"
	case EnvScope:
		return "env"
	case ClockScope:
		return "clock"
	case StreamScope:
		return "stream"
	case EventScope:
		return "event"
	default:
		return "(scope)"
	}
}

// Scope is one `trace{...}`, `env{...}`, `clock{...}`, `stream{...}`, or
// `event{...}` block (spec.md §4.2).
type Scope struct {
	Kind    ScopeKind
	Entries []Entry
	Pos     Pos
}

func (*Scope) isTopLevelItem() {}

// Entry is a single member of a Scope body or a Struct/Variant's entry
// list (spec.md §4.2: "value assignments, type assignments, nested type
// aliases, and nested named struct/variant declarations" for scopes;
// "nested type aliases, nested struct/variant declarations, or fields"
// for struct/variant bodies).
type Entry interface{ isEntry() }

// ValueAssign is `key = unary;` (spec.md §4.2/§4.4). Key is a dotted
// path — most value assignments use a single-component key (e.g. `major`),
// but the grammar permits a dotted chain uniformly.
type ValueAssign struct {
	Key   []string
	Value Expr
	Pos   Pos
}

func (*ValueAssign) isEntry() {}

// TypeAssign is `dotted.path := type;` (spec.md §4.2/§4.4), e.g.
// `packet.header := struct { ... };`.
type TypeAssign struct {
	Key  []string
	Type Type
	Pos  Pos
}

func (*TypeAssign) isEntry() {}

// TypeAliasDecl is `typealias <type> := <name>;` (spec.md §4.2/§4.3).
// Name may be space-joined from multiple identifier tokens (spec.md §4.3
// "Multi-token alias names").
type TypeAliasDecl struct {
	Type Type
	Name string
	Pos  Pos
}

func (*TypeAliasDecl) isEntry()       {}
func (*TypeAliasDecl) isTopLevelItem() {}

// BareTypeDecl is a named struct or variant declaration that appears as
// its own entry, not attached to a field (spec.md §4.2 "nested struct/
// variant declarations"), e.g. `struct foo { ... };` with no trailing
// declarator.
type BareTypeDecl struct {
	Type Type // *StructFull or *VariantFull, always with a non-nil Name
	Pos  Pos
}

func (*BareTypeDecl) isEntry()       {}
func (*BareTypeDecl) isTopLevelItem() {}

// Declarator is a field name plus its ordered subscript list (spec.md
// §4.2, Glossary "Declarator").
type Declarator struct {
	Name       string
	Subscripts []Expr
	Pos        Pos
}

// Field is a single struct/variant member (spec.md §4.2). Type is either
// a full type constructor (type-led field) or an *AliasRef built from one
// or more leading identifiers, whose last token became Decl.Name
// (identifier-led field, spec.md §4.2/§8 boundary case).
type Field struct {
	Type Type
	Decl Declarator
	Pos  Pos
}

func (*Field) isEntry() {}
