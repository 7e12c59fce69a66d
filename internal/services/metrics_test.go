package services

import "time"

// noopMetrics satisfies MetricsRecorderInterface for tests without
// touching the global Prometheus registry.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)      {}
func (noopMetrics) RecordProcessingTime(name string, duration time.Duration) {}
func (noopMetrics) RecordGauge(name string, value float64, tags map[string]string) {
}
