package document

// Trace carries the trace-wide metadata declared in a `trace { ... }`
// block (spec.md §3).
type Trace struct {
	// Major and Minor are the TSDL format version; both required.
	Major, Minor int64
	// UUID is the trace's unique identifier, or nil if unset.
	UUID *UUID
	// ByteOrder is the trace's default byte order, used by any Integer or
	// FloatingPoint field that does not specify its own; zero value is
	// NativeByteOrder.
	ByteOrder ByteOrder
	// PacketHeader is the structure describing every packet's header, or
	// nil if unset. Must be a Struct (spec.md §3).
	PacketHeader *Struct
}

// Env is a flat mapping from identifier to either a string or a signed
// integer (spec.md §3). Both value kinds live in the same namespace, so a
// single ordered map of interface{} values is sufficient; callers type-
// assert to string or int64 as needed.
type Env struct {
	values *OrderedMap[string, interface{}]
}

// NewEnv creates an empty Env.
func NewEnv() *Env {
	return &Env{values: NewOrderedMap[string, interface{}]()}
}

// Set stores a string or int64 value under name.
func (e *Env) Set(name string, value interface{}) {
	e.values.Set(name, value)
}

// Get returns the value stored under name.
func (e *Env) Get(name string) (interface{}, bool) {
	return e.values.Get(name)
}

// Names returns the environment's keys in declaration order.
func (e *Env) Names() []string {
	return e.values.Keys()
}
