package document

// Event describes a single `event { ... }` block (spec.md §3). ID and
// Name are required; StreamID defaults to 0 when the source omits it.
type Event struct {
	ID       int64
	Name     string
	StreamID int64
	LogLevel int64
	HasLogLevel bool
	Context  Type // must resolve to a Struct when non-nil
	Fields   Type // must resolve to a Struct when non-nil
}
