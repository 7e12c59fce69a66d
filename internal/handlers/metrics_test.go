package handlers

import "time"

// noopHandlerMetrics satisfies services.MetricsRecorderInterface without
// touching the global Prometheus registry
type noopHandlerMetrics struct{}

func (noopHandlerMetrics) IncrementCounter(name string, tags map[string]string)        {}
func (noopHandlerMetrics) RecordProcessingTime(name string, duration time.Duration)    {}
func (noopHandlerMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
