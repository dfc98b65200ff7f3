// Package jobs provides scheduled background tasks of the ReCo service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field expressions with
// seconds) and log through log/slog with a per job component attribute.
//
// # Available Jobs
//
// NotificationRetryJob resends notifications that a sink failed to deliver.
// Workflow operations never fail because of a notification, so failed
// messages are parked in the dispatcher's bounded retry queue and this job
// drains it, by default every thirty seconds.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dispatcher, cfg.NotificationRetrySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
