// Package jobs provides scheduled background tasks for the zone delivery service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and run the same command handlers the HTTP API uses.
//
// # Available Jobs
//
// CourierAssignmentJob assigns every unassigned courier with a known position
// to the active zone containing that position. Couriers outside all active
// zones are left alone.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(autoAssignHandler, "0 */5 * * * *", metrics.AutoAssigned, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the job. Overlapping runs are skipped, and a
// failing pass is logged and retried on the next tick.
package jobs
