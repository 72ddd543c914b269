package eventlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"aiddelivery/internal/adapters/out/eventlog"
	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogEventPublisher_PublishTransition(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := eventlog.NewSlogEventPublisher(logger)

	deliveryID := kernel.NewUUID()
	actor := kernel.NewUUID()

	publisher.PublishTransition(context.Background(), ports.TransitionEvent{
		DeliveryID: deliveryID,
		Code:       "DLV-001",
		From:       delivery.PendingAuthorization,
		To:         delivery.Authorized,
		Actor:      actor,
		Notes:      "looks good",
		OccurredAt: time.Now(),
	})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "delivery.transition", record["event"])
	assert.Equal(t, deliveryID.String(), record["delivery_id"])
	assert.Equal(t, "DLV-001", record["code"])
	assert.Equal(t, "PendingAuthorization", record["from"])
	assert.Equal(t, "Authorized", record["to"])
	assert.Equal(t, actor.String(), record["actor"])
	assert.Equal(t, "event_publisher", record["component"])
}

func TestSlogEventPublisher_PublishAudit_RejectedOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := eventlog.NewSlogEventPublisher(logger)

	deliveryID := kernel.NewUUID()
	actor := kernel.NewUUID()

	publisher.PublishAudit(context.Background(), ports.AuditEvent{
		Entity:     "delivery",
		EntityID:   deliveryID,
		Action:     "authorize",
		Actor:      actor,
		Reason:     "creator cannot authorize their own delivery",
		OccurredAt: time.Now(),
	})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "delivery.audit", record["event"])
	assert.Equal(t, "delivery", record["entity"])
	assert.Equal(t, deliveryID.String(), record["entity_id"])
	assert.Equal(t, "authorize", record["action"])
	assert.Equal(t, actor.String(), record["actor"])
	assert.Contains(t, record["reason"], "cannot authorize")
}

func TestSlogEventPublisher_PublishAudit_CommittedMutation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := eventlog.NewSlogEventPublisher(logger)

	deliveryID := kernel.NewUUID()
	actor := kernel.NewUUID()

	publisher.PublishAudit(context.Background(), ports.AuditEvent{
		Entity:     "delivery",
		EntityID:   deliveryID,
		Action:     "authorize",
		Actor:      actor,
		OldValues:  map[string]any{"status": "PendingAuthorization"},
		NewValues:  map[string]any{"status": "Authorized", "version": 1},
		OccurredAt: time.Now(),
	})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "delivery.audit", record["event"])
	assert.Equal(t, "delivery", record["entity"])
	assert.Equal(t, "authorize", record["action"])

	oldValues, ok := record["old_values"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PendingAuthorization", oldValues["status"])

	newValues, ok := record["new_values"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Authorized", newValues["status"])
}
