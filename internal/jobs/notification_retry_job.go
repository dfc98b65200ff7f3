package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultRetrySchedule runs the retry every thirty seconds.
const DefaultRetrySchedule = "*/30 * * * * *"

// NotificationRetrier resends notifications whose delivery failed.
type NotificationRetrier interface {
	RetryFailed(ctx context.Context) int
	Pending() int
}

// NotificationRetryJob periodically hands failed notifications back to their
// sinks.
type NotificationRetryJob struct {
	retrier  NotificationRetrier
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewNotificationRetryJob(retrier NotificationRetrier, schedule string, logger *slog.Logger) *NotificationRetryJob {
	if schedule == "" {
		schedule = DefaultRetrySchedule
	}
	return &NotificationRetryJob{
		retrier:  retrier,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_retry_job"),
	}
}

// Start registers the job on its schedule.
func (j *NotificationRetryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running retry to finish.
func (j *NotificationRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}

func (j *NotificationRetryJob) run() {
	if j.retrier.Pending() == 0 {
		return
	}
	ctx := context.Background()
	delivered := j.retrier.RetryFailed(ctx)
	j.logger.InfoContext(ctx, "Retried failed notifications",
		"delivered", delivered,
		"still_pending", j.retrier.Pending(),
	)
}
