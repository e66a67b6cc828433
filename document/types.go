package document

// ByteOrder is the byte order of an Integer or FloatingPoint field
// (spec.md §3).
type ByteOrder int

const (
	// NativeByteOrder uses the trace's default (or the host's, if the
	// trace specifies none).
	NativeByteOrder ByteOrder = iota
	LittleEndian
	BigEndian
)

func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "le"
	case BigEndian:
		return "be"
	default:
		return "native"
	}
}

// Encoding is the text encoding of an Integer or String field.
type Encoding int

const (
	NoEncoding Encoding = iota
	UTF8
	ASCII
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF8"
	case ASCII:
		return "ASCII"
	default:
		return "none"
	}
}

// Type is the tagged variant of every TSDL type constructor (spec.md §3,
// §9). Concrete implementations collapse pypeg2's mixin grammar-class
// hierarchy (original_source/pytsdl/parser.py) into a closed set of Go
// structs; callers dispatch with a type switch rather than the original's
// class-name-keyed visitor methods.
type Type interface {
	typeTag() string
}

// Integer is a fixed-width integer field (spec.md §3).
type Integer struct {
	Size      int
	Signed    bool
	Align     int
	ByteOrder ByteOrder
	Base      int
	Encoding  Encoding
	// Map is the dotted path of a `clock.<name>.value` reference, or nil
	// if this integer does not map to a clock.
	Map Path
}

func (*Integer) typeTag() string { return "integer" }

// FloatingPoint is an IEEE-754-shaped floating point field (spec.md §3).
type FloatingPoint struct {
	ExpDig    int
	MantDig   int
	Align     int
	ByteOrder ByteOrder
}

func (*FloatingPoint) typeTag() string { return "floating_point" }

// String is a NUL-terminated byte string field (spec.md §3).
type String struct {
	Encoding Encoding
}

func (*String) typeTag() string { return "string" }

// Range is an inclusive enumerator value range (spec.md §3 Enum, §8
// invariant 4).
type Range struct {
	Low, High int64
}

// Enum is an enumeration over an underlying Integer (spec.md §3).
type Enum struct {
	Integer *Integer
	// Labels maps label -> inclusive value range, in declaration order.
	Labels *OrderedMap[string, Range]
}

func (*Enum) typeTag() string { return "enum" }

// Struct is an ordered, named field list with optional bit alignment
// (spec.md §3). Named structs referenced from multiple sites are shared
// by identity (spec.md Lifecycle) since they carry no per-reference
// parameter.
type Struct struct {
	Align  int // 0 means unset/default
	Fields *OrderedMap[string, Type]
}

func (*Struct) typeTag() string { return "struct" }

// Variant is a tagged union discriminated by a dotted path naming a
// sibling field (spec.md §3). Every reference to a named variant carries
// its own Tag; the Options list must be deep-copied per reference so that
// assigning one reference's Tag never mutates another's (spec.md §3
// Lifecycle, §8 invariant 7, §9).
type Variant struct {
	Tag     Path
	Options *OrderedMap[string, Type]
}

func (*Variant) typeTag() string { return "variant" }

// Clone returns a deep copy of v, including a fresh Options map whose
// Type values are themselves cloned if they are Structs/Variants that
// require independence. The materializer reaches it through CloneType
// when inserting field types; the resolver's own per-reference copy is
// made on the syntax tree (internal/resolve, cloneVariantFull).
func (v *Variant) Clone() *Variant {
	clone := &Variant{
		Tag:     append(Path(nil), v.Tag...),
		Options: NewOrderedMap[string, Type](),
	}
	if v.Options != nil {
		v.Options.Each(func(name string, t Type) {
			clone.Options.Set(name, CloneType(t))
		})
	}
	return clone
}

// CloneType returns an independent copy of t if t (or any type it
// contains) is a Variant, since Variants carry reference-specific state
// (their Tag). Structs, being shared by identity per spec.md Lifecycle,
// are not copied, and scalar types are returned as-is. Arrays and
// Sequences are always rebuilt around a CloneType of their Element, so a
// nested Variant stays independent.
func CloneType(t Type) Type {
	switch x := t.(type) {
	case *Variant:
		return x.Clone()
	case *Array:
		return &Array{Length: x.Length, Element: CloneType(x.Element)}
	case *Sequence:
		return &Sequence{Length: x.Length, Element: CloneType(x.Element)}
	default:
		return t
	}
}

// Array is a fixed-length homogeneous sequence (spec.md §3).
type Array struct {
	Length  int64
	Element Type
}

func (*Array) typeTag() string { return "array" }

// Sequence is a dynamically-length homogeneous sequence whose length is
// given by a previously declared integer field (spec.md §3).
type Sequence struct {
	Length  Path
	Element Type
}

func (*Sequence) typeTag() string { return "sequence" }
