package document

// Clock describes a single `clock { ... }` block (spec.md §3). Name and
// Freq are required; everything else defaults to its zero value when
// absent.
type Clock struct {
	Name        string
	Freq        int64
	Description string
	Precision   int64
	OffsetS     int64
	Offset      int64
	Absolute    bool
	UUID        *UUID
}
