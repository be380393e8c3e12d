// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order management.
//
// # Available Jobs
//
// 1. DailyStatsJob - Runs hourly to log the number of orders placed today
//
// # Usage
//
//	job := jobs.NewDailyStatsJob(dailyCountHandler, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start job:", err)
//	}
//	defer job.Stop()
//
// # Error Handling
//
// Job failures are logged and never crash the process; the next scheduled
// run retries from scratch.
package jobs
