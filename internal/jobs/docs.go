// Package jobs provides scheduled background tasks for the planner service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order distribution.
//
// # Available Jobs
//
// 1. PlanRebuildJob - Periodically distributes unplanned orders over the registered riders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(buildPlanHandler, uowFactory, "*/5 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The rebuild job skips ticks with no orders in Created status
// - Expected business errors (no riders registered yet) are not logged as failures
// - Failed job starts surface through StartAll
package jobs
