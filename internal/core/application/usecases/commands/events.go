package commands

import (
	"context"
	"errors"
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/ports"
)

// publishLastTransition emits the delivery's most recent history entry as a
// transition event, plus the matching audit record with the old and new
// status. Call it only after the owning transaction committed.
func publishLastTransition(ctx context.Context, publisher ports.EventPublisher, d *delivery.Delivery) {
	if publisher == nil || len(d.History()) == 0 {
		return
	}

	entry := d.History()[len(d.History())-1]
	publisher.PublishTransition(ctx, ports.TransitionEvent{
		DeliveryID: d.ID(),
		Code:       d.Code(),
		From:       entry.FromStatus(),
		To:         entry.ToStatus(),
		Actor:      entry.Actor(),
		Notes:      entry.Notes(),
		OccurredAt: entry.OccurredAt(),
	})

	publisher.PublishAudit(ctx, ports.AuditEvent{
		Entity:     "delivery",
		EntityID:   d.ID(),
		Action:     actionFor(entry.ToStatus()),
		Actor:      entry.Actor(),
		OldValues:  map[string]any{"status": entry.FromStatus().String()},
		NewValues:  map[string]any{"status": entry.ToStatus().String(), "version": d.Version()},
		OccurredAt: entry.OccurredAt(),
	})
}

// actionFor names the workflow operation that produces the given status.
func actionFor(to delivery.Status) string {
	switch to {
	case delivery.PendingAuthorization:
		return "create"
	case delivery.Authorized:
		return "authorize"
	case delivery.ReceivedWarehouse:
		return "receiveWarehouse"
	case delivery.InPreparation:
		return "prepare"
	case delivery.Ready:
		return "markReady"
	case delivery.Delivered:
		return "deliver"
	case delivery.Cancelled:
		return "cancel"
	default:
		return "unknown"
	}
}

// auditSegregation emits an audit event for a rejected sensitive operation
// when the failure was a segregation violation. Other failures leave no
// audit trace here; they surface only as errors.
func auditSegregation(
	ctx context.Context,
	publisher ports.EventPublisher,
	d *delivery.Delivery,
	operation string,
	err error,
	occurredAt time.Time,
) {
	if publisher == nil {
		return
	}

	var segErr *delivery.SegregationViolationError
	if !errors.As(err, &segErr) {
		return
	}
	if len(segErr.Violations) == 0 {
		return
	}

	publisher.PublishAudit(ctx, ports.AuditEvent{
		Entity:     "delivery",
		EntityID:   d.ID(),
		Action:     operation,
		Actor:      segErr.Violations[0].Actor,
		Reason:     segErr.Error(),
		OccurredAt: occurredAt,
	})
}
