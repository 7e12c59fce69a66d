package services

import (
	"fmt"
	"log/slog"
	"time"

	"finmentor/internal/models"
	"finmentor/internal/repositories"

	"github.com/robfig/cron/v3"
)

type reportScheduler struct {
	spec           string
	cron           *cron.Cron
	preferenceRepo repositories.PreferenceRepositoryInterface
	aggregation    AggregationServiceInterface
	notifications  NotificationServiceInterface
	metrics        MetricsRecorderInterface
	now            func() time.Time
}

// NewReportScheduler wires the monthly report sweep. spec is a cron
// expression; the production default fires at 09:00 on the first day of
// each month.
func NewReportScheduler(
	spec string,
	preferenceRepo repositories.PreferenceRepositoryInterface,
	aggregation AggregationServiceInterface,
	notifications NotificationServiceInterface,
	metrics MetricsRecorderInterface,
) ReportSchedulerInterface {
	return &reportScheduler{
		spec:           spec,
		cron:           cron.New(),
		preferenceRepo: preferenceRepo,
		aggregation:    aggregation,
		notifications:  notifications,
		metrics:        metrics,
		now:            time.Now,
	}
}

func (s *reportScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		if err := s.RunMonthlySweep(); err != nil {
			slog.Error("monthly report sweep failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule monthly report sweep: %w", err)
	}

	s.cron.Start()
	slog.Info("monthly report sweep scheduled", "spec", s.spec)
	return nil
}

func (s *reportScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("monthly report sweep stopped")
}

// RunMonthlySweep computes the previous month's summary for every user
// with monthly reports enabled and drops a MONTHLY_REPORT notification
// into their feed. A failure for one user is logged and the sweep moves
// on to the next.
func (s *reportScheduler) RunMonthlySweep() error {
	userIDs, err := s.preferenceRepo.ListUserIDsWithMonthlyReports()
	if err != nil {
		return fmt.Errorf("failed to list monthly report recipients: %w", err)
	}

	// Step back from the first of the current month. Subtracting a month
	// from the current instant normalizes on short months, e.g. Mar 31
	// minus one month lands in March again.
	nowUTC := s.now().UTC()
	prevMonth := time.Date(nowUTC.Year(), nowUTC.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	year, month := prevMonth.Year(), prevMonth.Month()

	var failed int
	for _, userID := range userIDs {
		summary, err := s.aggregation.SummarizeRange(userID, year, month)
		if err != nil {
			failed++
			slog.Error("monthly sweep: summary failed",
				"user_id", userID,
				"month", fmt.Sprintf("%d-%02d", year, month),
				"error", err)
			continue
		}

		title := fmt.Sprintf("Your %s %d report is ready", month.String(), year)
		message := fmt.Sprintf(
			"Income %.2f, expenses %.2f, net savings %.2f across %d transactions.",
			summary.TotalIncome, summary.TotalExpenses, summary.NetSavings, summary.TransactionCount)

		if _, err := s.notifications.Create(userID,
			models.NotificationTypeMonthlyReport, title, message, models.PriorityNormal); err != nil {
			failed++
			slog.Error("monthly sweep: notification failed",
				"user_id", userID,
				"error", err)
			continue
		}
	}

	s.metrics.IncrementCounter("monthly_sweep_completed", map[string]string{"status": "success"})
	s.metrics.RecordGauge("monthly_sweep_failures", float64(failed), nil)

	slog.Info("monthly report sweep completed",
		"recipients", len(userIDs),
		"failed", failed,
		"month", fmt.Sprintf("%d-%02d", year, month))

	return nil
}
