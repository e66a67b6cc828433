package document

import (
	"github.com/efficios/tsdl-go/errs"
)

// Stream describes a single `stream { ... }` block (spec.md §3). ID
// defaults to 0 when the source omits it.
type Stream struct {
	ID int64

	PacketContext Type // must resolve to a Struct when non-nil
	EventHeader   Type // must resolve to a Struct when non-nil
	EventContext  Type // must resolve to a Struct when non-nil

	// Events is the ordered sequence of events attached to this stream
	// (spec.md §4.4 "Event attachment").
	Events []*Event

	byID   map[int64]*Event
	byName map[string]*Event
}

// AddEvent appends ev to the stream's event list. Finalize must be called
// afterward to build the id/name lookup map and check uniqueness (spec.md
// §3 invariants, §4.4 Finalization).
func (s *Stream) AddEvent(ev *Event) {
	s.Events = append(s.Events, ev)
}

// Finalize validates that event names and ids are unique within the
// stream (spec.md §8 invariant 1) and builds the combined id/name lookup
// map (spec.md §3 Stream, §4.4 Finalization).
func (s *Stream) Finalize() error {
	s.byID = make(map[int64]*Event, len(s.Events))
	s.byName = make(map[string]*Event, len(s.Events))
	for _, ev := range s.Events {
		if _, dup := s.byID[ev.ID]; dup {
			return errs.New(errs.DuplicateEvent, "duplicate event id %d in stream %d", ev.ID, s.ID)
		}
		if _, dup := s.byName[ev.Name]; dup {
			return errs.New(errs.DuplicateEvent, "duplicate event name %q in stream %d", ev.Name, s.ID)
		}
		s.byID[ev.ID] = ev
		s.byName[ev.Name] = ev
	}
	return nil
}

// EventByID returns the event with the given id, if any.
func (s *Stream) EventByID(id int64) (*Event, bool) {
	ev, ok := s.byID[id]
	return ev, ok
}

// EventByName returns the event with the given name, if any.
func (s *Stream) EventByName(name string) (*Event, bool) {
	ev, ok := s.byName[name]
	return ev, ok
}
