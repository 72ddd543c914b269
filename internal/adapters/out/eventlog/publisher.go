// Package eventlog publishes workflow events to the structured log.
// Notification and audit consumers are external systems; the log stream is
// the outbound edge they tail.
package eventlog

import (
	"context"
	"log/slog"

	"aiddelivery/internal/core/ports"
)

// SlogEventPublisher implements ports.EventPublisher on top of slog.
// Publishing never fails the calling operation.
type SlogEventPublisher struct {
	logger *slog.Logger
}

// NewSlogEventPublisher creates a publisher writing to the given logger.
func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{
		logger: logger.With("component", "event_publisher"),
	}
}

// PublishTransition logs a committed workflow transition.
func (p *SlogEventPublisher) PublishTransition(ctx context.Context, event ports.TransitionEvent) {
	p.logger.InfoContext(ctx, "delivery transition",
		"event", "delivery.transition",
		"delivery_id", event.DeliveryID.String(),
		"code", event.Code,
		"from", event.From.String(),
		"to", event.To.String(),
		"actor", event.Actor.String(),
		"notes", event.Notes,
		"occurred_at", event.OccurredAt,
	)
}

// PublishAudit logs an audit record. Committed mutations log at Info with
// their old and new values; rejected operations log at Warn with the reason.
func (p *SlogEventPublisher) PublishAudit(ctx context.Context, event ports.AuditEvent) {
	if event.Reason != "" {
		p.logger.WarnContext(ctx, "operation rejected",
			"event", "delivery.audit",
			"entity", event.Entity,
			"entity_id", event.EntityID.String(),
			"action", event.Action,
			"actor", event.Actor.String(),
			"reason", event.Reason,
			"occurred_at", event.OccurredAt,
		)
		return
	}

	p.logger.InfoContext(ctx, "entity changed",
		"event", "delivery.audit",
		"entity", event.Entity,
		"entity_id", event.EntityID.String(),
		"action", event.Action,
		"actor", event.Actor.String(),
		"old_values", event.OldValues,
		"new_values", event.NewValues,
		"occurred_at", event.OccurredAt,
	)
}
