package domain

// ChangeType is the kind of a single change delivered by the change feed
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// Change is one delta of the appointments collection.
// Appointment is nil for removals; ID is always set.
type Change struct {
	Type        ChangeType
	ID          string
	Appointment *Appointment
}

// ChangeBatch is an ordered group of changes.
// A snapshot batch carries the whole collection as added changes.
type ChangeBatch struct {
	Snapshot bool
	Changes  []Change
}
