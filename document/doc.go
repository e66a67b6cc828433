// Package document defines the typed, immutable-once-finalized document
// model produced by the tsdl parsing pipeline: the sole consumer-facing
// product described in spec.md §1/§3.
package document

import "github.com/efficios/tsdl-go/errs"

// Doc is the root materialized object produced by a successful parse
// (spec.md §3, Glossary). It is built once, during pass 2, and treated as
// immutable thereafter (spec.md Lifecycle).
type Doc struct {
	Trace *Trace
	Env   *Env

	clocks  *OrderedMap[string, *Clock]
	streams *OrderedMap[int64, *Stream]
}

// New creates an empty Doc ready to be populated during materialization.
func New() *Doc {
	return &Doc{
		clocks:  NewOrderedMap[string, *Clock](),
		streams: NewOrderedMap[int64, *Stream](),
	}
}

// AddClock registers a clock. Clock names must be unique (spec.md §7
// DuplicateClock).
func (d *Doc) AddClock(c *Clock) error {
	if d.clocks.Has(c.Name) {
		return errs.New(errs.DuplicateClock, "duplicate clock name %q", c.Name)
	}
	d.clocks.Set(c.Name, c)
	return nil
}

// AddStream registers a stream. Stream ids must be unique (spec.md §7
// DuplicateStream).
func (d *Doc) AddStream(s *Stream) error {
	if d.streams.Has(s.ID) {
		return errs.New(errs.DuplicateStream, "duplicate stream id %d", s.ID)
	}
	d.streams.Set(s.ID, s)
	return nil
}

// Clock returns the clock registered under name.
func (d *Doc) Clock(name string) (*Clock, bool) {
	return d.clocks.Get(name)
}

// Clocks returns every clock in declaration order.
func (d *Doc) Clocks() []*Clock {
	return d.clocks.Values()
}

// Stream returns the stream registered under id.
func (d *Doc) Stream(id int64) (*Stream, bool) {
	return d.streams.Get(id)
}

// Streams returns every stream in declaration order.
func (d *Doc) Streams() []*Stream {
	return d.streams.Values()
}

// Finalize enforces the document-level invariants of spec.md §3/§8: at
// least one clock, at least one stream, and (via each Stream.Finalize)
// unique event names/ids within every stream. It is called once, at the
// end of materialization (spec.md §4.4 Finalization).
func (d *Doc) Finalize() error {
	if d.clocks.Len() == 0 {
		return errs.New(errs.NoClocks, "document declares no clocks")
	}
	if d.streams.Len() == 0 {
		return errs.New(errs.NoStreams, "document declares no streams")
	}
	for _, s := range d.streams.Values() {
		if err := s.Finalize(); err != nil {
			return err
		}
	}
	return nil
}
