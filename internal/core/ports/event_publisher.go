package ports

import (
	"context"
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
)

// TransitionEvent describes one committed workflow transition of a delivery.
type TransitionEvent struct {
	DeliveryID kernel.UUID
	Code       string
	From       delivery.Status
	To         delivery.Status
	Actor      kernel.UUID
	Notes      string
	OccurredAt time.Time
}

// AuditEvent describes one audited action on an entity. Committed mutations
// carry the changed values in OldValues/NewValues; rejected sensitive
// operations, such as a segregation violation, carry the rejection in Reason
// instead, so the attempt itself leaves a trace.
type AuditEvent struct {
	Entity     string
	EntityID   kernel.UUID
	Action     string
	Actor      kernel.UUID
	OldValues  map[string]any
	NewValues  map[string]any
	Reason     string
	OccurredAt time.Time
}

// EventPublisher emits workflow events after the owning transaction commits.
// Publishing is fire-and-forget: implementations must not fail the business
// operation, so the methods return no error.
type EventPublisher interface {
	// PublishTransition emits a committed workflow transition.
	PublishTransition(ctx context.Context, event TransitionEvent)

	// PublishAudit emits an audit record: every committed mutation and every
	// rejected sensitive operation.
	PublishAudit(ctx context.Context, event AuditEvent)
}
