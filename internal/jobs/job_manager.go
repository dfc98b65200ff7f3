package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationRetryJob *NotificationRetryJob
}

// NewJobManager creates a job manager. An empty schedule selects
// DefaultRetrySchedule.
func NewJobManager(retrier NotificationRetrier, retrySchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		notificationRetryJob: NewNotificationRetryJob(retrier, retrySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification retry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRetryJob.Stop()
}
