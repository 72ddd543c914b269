package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"aiddelivery/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reminderJob *PendingAuthorizationReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pendingAuthorizationsHandler queries.ListPendingAuthorizationsQueryHandler,
	reminderStaleness time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reminderJob: NewPendingAuthorizationReminderJob(pendingAuthorizationsHandler, reminderStaleness, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending authorization reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reminderJob.Stop()
}
