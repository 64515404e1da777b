package jobs

import (
	"context"
	"log/slog"

	"refillstation/internal/core/application/usecases/queries"
	"refillstation/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// SalesReportJob periodically logs the running sales summary for the current
// calendar month. Runs hourly so staff can watch revenue without querying the
// admin API.
type SalesReportJob struct {
	handler queries.GetMonthlySalesQueryHandler
	clock   clock.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSalesReportJob creates a new job for reporting monthly sales.
// Uses GetMonthlySalesQueryHandler to compute the summary every hour.
func NewSalesReportJob(handler queries.GetMonthlySalesQueryHandler, clk clock.Clock, logger *slog.Logger) *SalesReportJob {
	return &SalesReportJob{
		handler: handler,
		clock:   clk,
		cron:    cron.New(),
		logger:  logger.With("component", "sales_report_job"),
	}
}

// Start begins the sales report job to run at the top of every hour.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		now := j.clock.Now()

		query, err := queries.NewGetMonthlySalesQuery(now.Year(), now.Month())
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed to build query", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Monthly sales report",
			"year", report.Year,
			"month", report.Month.String(),
			"totalSales", report.TotalSales,
			"orderCount", report.OrderCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started (running hourly)")
	return nil
}

// Stop stops the sales report job.
func (j *SalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
