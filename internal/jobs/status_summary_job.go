package jobs

import (
	"context"
	"log/slog"

	"butchermarket/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusSummaryJob periodically logs the per-status order counts.
// Runs every minute so the process log carries a heartbeat of the order book.
type StatusSummaryJob struct {
	handler queries.StatusSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusSummaryJob creates the summary heartbeat job.
func NewStatusSummaryJob(handler queries.StatusSummaryQueryHandler, logger *slog.Logger) *StatusSummaryJob {
	return &StatusSummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_summary_job"),
	}
}

// Start begins the summary job to run once a minute.
func (j *StatusSummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		summary, err := j.handler.Handle(ctx, queries.NewStatusSummaryQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Status summary job failed", "error", err)
			return
		}

		attrs := make([]any, 0, 2*len(summary.Counts)+2)
		attrs = append(attrs, "total", summary.Total)
		for status, count := range summary.Counts {
			attrs = append(attrs, status.String(), count)
		}
		j.logger.InfoContext(ctx, "Order book summary", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status summary job started (running every minute)")
	return nil
}

// Stop stops the summary job.
func (j *StatusSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status summary job stopped")
}
