package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementReminderJob *SettlementReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	unsettledHandler unsettledShipmentsHandler,
	maxPendingAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementReminderJob: NewSettlementReminderJob(unsettledHandler, maxPendingAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementReminderJob.Stop()
}
