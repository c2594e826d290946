// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the shipment lifecycle.
//
// # Available Jobs
//
// 1. SettlementReminderJob - Runs every minute to surface shipments that have
// been pending longer than the configured age with no settlement transaction
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(unsettledShipmentsHandler, maxPendingAge, logger)
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
// The reminder job uses the cron expression "0 * * * * *", running at the
// top of every minute. Stale bookings are an operational concern, not a
// real-time one, so a minute of slack is fine.
//
// # Error Handling
//
// The reminder job is read-only; failures are logged and the next tick tries
// again. Failed job starts stop any already running jobs.
package jobs
