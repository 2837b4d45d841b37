// Package jobs provides scheduled background tasks over the entity collection.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision and log
// through log/slog.
//
// # Available Jobs
//
// 1. CollectionAuditJob - snapshots the collection, compares the snapshot size
// with the previous run and tracks the newest creation time seen so far
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getEntitiesHandler, "*/10 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Failed audits are logged and retried on the next tick
// - A panicking audit is recovered and logged by the cron chain
// - Overlapping runs are skipped while the previous one is still running
package jobs
