package document

import "github.com/google/uuid"

// UUID is a 128-bit trace or clock identifier (spec.md Trace.uuid,
// Clock.uuid).
type UUID = uuid.UUID

// ParseUUID parses the canonical string form of a UUID, as found in a
// trace or clock's uuid value assignment.
func ParseUUID(s string) (UUID, error) {
	return uuid.Parse(s)
}
