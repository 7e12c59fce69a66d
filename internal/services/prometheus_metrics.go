package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportExports             *prometheus.CounterVec
	reportExportDuration      prometheus.Histogram
	reportBuildDuration       prometheus.Histogram
	monthlySummariesTotal     *prometheus.CounterVec
	monthlySweepTotal         *prometheus.CounterVec
	monthlySweepFailures      prometheus.Gauge
	notificationsCreated      *prometheus.CounterVec
	preferenceUpdatesTotal    *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		reportExports: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_exports_total",
				Help: "Total number of report exports by format and status",
			},
			[]string{"format", "status"},
		),
		reportExportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_export_duration_milliseconds",
				Help:    "Report export encoding duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_build_duration_milliseconds",
				Help:    "Financial report assembly duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		monthlySummariesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monthly_summaries_total",
				Help: "Total number of monthly summaries generated",
			},
			[]string{"status"},
		),
		monthlySweepTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monthly_sweep_runs_total",
				Help: "Total number of monthly report sweep runs",
			},
			[]string{"status"},
		),
		monthlySweepFailures: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "monthly_sweep_failures",
				Help: "Per-user failures in the last monthly report sweep",
			},
		),
		notificationsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_created_total",
				Help: "Total number of notifications created by type",
			},
			[]string{"type"},
		),
		preferenceUpdatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preference_updates_total",
				Help: "Total number of notification preference updates",
			},
			[]string{"status"},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "report_export":
		m.reportExports.WithLabelValues(tags["format"], status).Inc()
	case "monthly_summary_generated":
		if status != "" {
			m.monthlySummariesTotal.WithLabelValues(status).Inc()
		}
	case "monthly_sweep_completed":
		if status != "" {
			m.monthlySweepTotal.WithLabelValues(status).Inc()
		}
	case "notification_created":
		if notificationType := tags["type"]; notificationType != "" {
			m.notificationsCreated.WithLabelValues(notificationType).Inc()
		}
	case "preference_update":
		if status != "" {
			m.preferenceUpdatesTotal.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_export":
		m.reportExportDuration.Observe(float64(duration.Milliseconds()))
	case "report_build":
		m.reportBuildDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "monthly_sweep_failures":
		m.monthlySweepFailures.Set(value)
	}
}
