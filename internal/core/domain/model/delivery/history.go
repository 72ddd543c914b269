package delivery

import (
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
)

// HistoryEntry is one immutable record of a workflow transition. The
// aggregate appends exactly one entry per transition and never mutates or
// removes prior entries, so the ordered entries form the canonical timeline
// of the delivery for audit reconstruction.
type HistoryEntry struct {
	fromStatus Status
	toStatus   Status
	actor      kernel.UUID
	notes      string
	occurredAt time.Time
}

// NewHistoryEntry creates a transition record. The creation transition uses
// Unknown as its from-status.
func NewHistoryEntry(fromStatus, toStatus Status, actor kernel.UUID, notes string, occurredAt time.Time) (HistoryEntry, error) {
	if err := actor.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		fromStatus: fromStatus,
		toStatus:   toStatus,
		actor:      actor,
		notes:      notes,
		occurredAt: occurredAt,
	}, nil
}

// FromStatus returns the status the delivery left.
func (h HistoryEntry) FromStatus() Status {
	return h.fromStatus
}

// ToStatus returns the status the delivery entered.
func (h HistoryEntry) ToStatus() Status {
	return h.toStatus
}

// Actor returns who performed the transition.
func (h HistoryEntry) Actor() kernel.UUID {
	return h.actor
}

// Notes returns the free-form notes recorded with the transition.
func (h HistoryEntry) Notes() string {
	return h.notes
}

// OccurredAt returns when the transition happened.
func (h HistoryEntry) OccurredAt() time.Time {
	return h.occurredAt
}
