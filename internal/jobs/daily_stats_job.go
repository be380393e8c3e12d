package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailyStatsJob periodically logs how many orders were placed today.
// Gives operators a heartbeat metric without querying the database by hand.
type DailyStatsJob struct {
	handler queries.GetDailyOrderCountQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyStatsJob creates a job that reports the daily order count every hour.
func NewDailyStatsJob(handler queries.GetDailyOrderCountQueryHandler, logger *slog.Logger) *DailyStatsJob {
	return &DailyStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_stats_job"),
	}
}

// Start begins the daily stats job, running at the top of every hour.
func (j *DailyStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		count, err := j.handler.Handle(ctx, queries.NewGetDailyOrderCountQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily stats job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily order stats",
			"date", count.Date,
			"order_count", count.OrderCount)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily stats job started (running hourly)")
	return nil
}

// Stop stops the daily stats job.
func (j *DailyStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily stats job stopped")
}
