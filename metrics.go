package oxymap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each load attempt. loaded is the number of
	// events installed, skipped the number of non-point features dropped,
	// err is nil if successful.
	RecordLoad(loaded, skipped int, duration time.Duration, err error)

	// RecordFilter is called after each filter operation.
	RecordFilter(matched int, duration time.Duration)

	// RecordExport is called after each export operation. format is "json"
	// or "csv", size the number of bytes produced.
	RecordExport(format string, size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordFilter(int, time.Duration)                {}
func (NoopMetricsCollector) RecordExport(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadedEvents     atomic.Int64
	SkippedFeatures  atomic.Int64
	LoadTotalNanos   atomic.Int64
	FilterCount      atomic.Int64
	FilterMatched    atomic.Int64
	FilterTotalNanos atomic.Int64
	ExportCount      atomic.Int64
	ExportErrors     atomic.Int64
	ExportBytes      atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(loaded, skipped int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadedEvents.Add(int64(loaded))
	b.SkippedFeatures.Add(int64(skipped))
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(matched int, duration time.Duration) {
	b.FilterCount.Add(1)
	b.FilterMatched.Add(int64(matched))
	b.FilterTotalNanos.Add(duration.Nanoseconds())
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(format string, size int, duration time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
		return
	}
	b.ExportBytes.Add(int64(size))
}

// BasicMetricsStats is a snapshot of collected metrics.
type BasicMetricsStats struct {
	LoadCount       int64
	LoadErrors      int64
	LoadedEvents    int64
	SkippedFeatures int64
	LoadAvgNanos    int64
	FilterCount     int64
	FilterMatched   int64
	FilterAvgNanos  int64
	ExportCount     int64
	ExportErrors    int64
	ExportBytes     int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		LoadCount:       b.LoadCount.Load(),
		LoadErrors:      b.LoadErrors.Load(),
		LoadedEvents:    b.LoadedEvents.Load(),
		SkippedFeatures: b.SkippedFeatures.Load(),
		FilterCount:     b.FilterCount.Load(),
		FilterMatched:   b.FilterMatched.Load(),
		ExportCount:     b.ExportCount.Load(),
		ExportErrors:    b.ExportErrors.Load(),
		ExportBytes:     b.ExportBytes.Load(),
	}
	if s.LoadCount > 0 {
		s.LoadAvgNanos = b.LoadTotalNanos.Load() / s.LoadCount
	}
	if s.FilterCount > 0 {
		s.FilterAvgNanos = b.FilterTotalNanos.Load() / s.FilterCount
	}
	return s
}
