package ast

// Type is a type constructor node: one of the built-in scalar
// constructors, a struct/variant definition or reference, or an alias
// reference (spec.md §4.2 "Type constructors").
type Type interface{ isType() }

// Assignment is one `key = value;` pair inside an Integer, FloatingPoint,
// or String body (spec.md §4.4's per-keyword assignment tables). Parsing
// stays generic here; internal/materialize owns the keyword semantics.
type Assignment struct {
	Key   string
	Value Expr
	Pos   Pos
}

// IntegerType is `integer { assignments };` (spec.md §4.2/§4.4).
type IntegerType struct {
	Assignments []Assignment
	Pos         Pos
}

func (*IntegerType) isType() {}

// FloatingPointType is `floating_point { assignments };` (spec.md §4.2/§4.4).
type FloatingPointType struct {
	Assignments []Assignment
	Pos         Pos
}

func (*FloatingPointType) isType() {}

// StringType is `string;` or `string { assignments };` (spec.md §4.2/§4.4).
type StringType struct {
	Assignments []Assignment
	Pos         Pos
}

func (*StringType) isType() {}

// Enumerator is one member of an enum body: a bare label (auto-valued
// from the previous member), a label with an explicit value, or a label
// with an explicit range (spec.md §4.2 "enum").
type Enumerator struct {
	Label    string
	HasValue bool
	Value    int64
	HasRange bool
	Low      int64
	High     int64
	Pos      Pos
}

// EnumType is `enum [Name] : <int-type-name> { enumerators };` (spec.md
// §4.2). IntTypeName names a previously declared integer typealias;
// ResolvedInt is filled in by internal/resolve once that alias lookup
// happens (spec.md §4.3: "the Enum's integer field is replaced by the
// resolved Integer"), and is always an *IntegerType once resolution has
// run successfully.
type EnumType struct {
	Name        *string
	IntTypeName string
	ResolvedInt Type
	Enumerators []Enumerator
	Pos         Pos
}

func (*EnumType) isType() {}

// StructFull is a struct definition with a body: `struct [Name] { entries }
// [align(N)];` (spec.md §4.2). A non-nil Name registers the struct in the
// enclosing struct frame (spec.md §4.3).
type StructFull struct {
	Name    *string
	Entries []Entry
	Align   *int64
	Pos     Pos
}

func (*StructFull) isType() {}

// StructRef is a reference to a previously declared named struct:
// `struct Name;` used in type position (spec.md §4.2/§4.3).
type StructRef struct {
	Name string
	Pos  Pos
}

func (*StructRef) isType() {}

// VariantFull is a variant definition with a body: `variant [Name]
// [<tag>] { entries };` (spec.md §4.2). Tag is nil when the definition
// supplies no discriminant of its own (the common case for a named
// template later used via VariantRef); when non-nil it is the dotted
// path selecting which option is active. A non-nil Name registers the
// variant in the enclosing variant frame (spec.md §4.3).
type VariantFull struct {
	Name    *string
	Tag     []string
	Entries []Entry
	Pos     Pos
}

func (*VariantFull) isType() {}

// VariantRef is a reference to a previously declared named variant,
// supplying a new tag: `variant Name < tag >;` (spec.md §4.2/§4.3,
// invariant 7 — each reference resolves to its own deep copy).
type VariantRef struct {
	Name string
	Tag  []string
	Pos  Pos
}

func (*VariantRef) isType() {}

// AliasRef is a reference to a previously declared type alias, by one or
// more space-joined identifier tokens (spec.md §4.2/§4.3). Used both for
// `typealias <alias-name>` type positions and for the type half of an
// identifier-led field.
type AliasRef struct {
	Name string
	Pos  Pos
}

func (*AliasRef) isType() {}
