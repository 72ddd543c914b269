package jobs

import (
	"context"
	"log/slog"
	"time"

	"aiddelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingAuthorizationReminderJob periodically lists deliveries that have
// been waiting for authorization longer than the staleness threshold and
// logs a reminder for each. The job only reads; the workflow moves through
// the command handlers alone.
type PendingAuthorizationReminderJob struct {
	handler   queries.ListPendingAuthorizationsQueryHandler
	cron      *cron.Cron
	logger    *slog.Logger
	staleness time.Duration
}

// NewPendingAuthorizationReminderJob creates the reminder job. Deliveries
// pending longer than staleness are reported on every run.
func NewPendingAuthorizationReminderJob(
	handler queries.ListPendingAuthorizationsQueryHandler,
	staleness time.Duration,
	logger *slog.Logger,
) *PendingAuthorizationReminderJob {
	return &PendingAuthorizationReminderJob{
		handler:   handler,
		cron:      cron.New(),
		logger:    logger.With("component", "pending_authorization_reminder_job"),
		staleness: staleness,
	}
}

// Start begins the reminder job, running every 15 minutes.
func (j *PendingAuthorizationReminderJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewListPendingAuthorizationsQuery(time.Now().Add(-j.staleness))
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Pending authorization reminder query invalid", "error", queryErr)
			return
		}

		result, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Pending authorization reminder job failed", "error", handleErr)
			return
		}

		for _, pending := range result.Deliveries {
			j.logger.WarnContext(ctx, "delivery awaiting authorization",
				"event", "delivery.authorization_reminder",
				"delivery_id", pending.ID.String(),
				"code", pending.Code,
				"created_by", pending.CreatedBy.String(),
				"pending_since", pending.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending authorization reminder job started (running every 15 minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingAuthorizationReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending authorization reminder job stopped")
}
