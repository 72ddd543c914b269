// Package jobs provides scheduled background tasks for the aid delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required around the delivery workflow.
//
// # Available Jobs
//
// 1. PendingAuthorizationReminderJob - Runs every 15 minutes and logs a
// reminder for every delivery that has been waiting for authorization
// longer than the configured staleness threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingAuthorizationsHandler, 24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Constraints
//
// Jobs never mutate workflow state. Every delivery transition goes through
// a command handler invoked by a user; the jobs only read and report.
package jobs
