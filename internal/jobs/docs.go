// Package jobs provides scheduled background tasks for the fulfillment
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path should not pay for.
//
// # Available Jobs
//
// 1. AttemptCleanupJob - Periodically purges stale delivery code attempt
// counters so abandoned tasks do not accumulate rows forever.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cleanupHandler, attemptTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job runs at the top of every hour. Attempt counters only
// matter while a courier is actively standing at a door, so hourly
// housekeeping is more than fresh enough.
package jobs
