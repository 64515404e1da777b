// Package jobs provides scheduled background tasks for the refill station.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. SalesReportJob - Runs hourly to log the current month's sales summary
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(monthlySalesHandler, clk, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sales report job uses the cron expression "0 * * * *", firing at the
// top of every hour. Reports are informational; a failed run is logged and
// the next run retries from scratch.
package jobs
