package interleave

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInterleave is called after each two-list interleave.
	// k is the requested result cap, duration is the time taken,
	// err is nil if successful.
	RecordInterleave(k int, duration time.Duration, err error)

	// RecordMultileave is called after each multileave.
	// rankers is the number of input lists.
	RecordMultileave(k, rankers int, duration time.Duration, err error)

	// RecordEvaluate is called after each click evaluation.
	// clicks is the number of click positions credited.
	RecordEvaluate(clicks int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInterleave(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordMultileave(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEvaluate(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InterleaveCount      atomic.Int64
	InterleaveErrors     atomic.Int64
	InterleaveTotalNanos atomic.Int64
	MultileaveCount      atomic.Int64
	MultileaveErrors     atomic.Int64
	MultileaveTotalNanos atomic.Int64
	EvaluateCount        atomic.Int64
	EvaluateErrors       atomic.Int64
	EvaluateClicks       atomic.Int64
}

// RecordInterleave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInterleave(k int, duration time.Duration, err error) {
	b.InterleaveCount.Add(1)
	b.InterleaveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InterleaveErrors.Add(1)
	}
}

// RecordMultileave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMultileave(k, rankers int, duration time.Duration, err error) {
	b.MultileaveCount.Add(1)
	b.MultileaveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MultileaveErrors.Add(1)
	}
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(clicks int, duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateClicks.Add(int64(clicks))
	if err != nil {
		b.EvaluateErrors.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	InterleaveCount    int64
	InterleaveErrors   int64
	InterleaveAvgNanos int64
	MultileaveCount    int64
	MultileaveErrors   int64
	MultileaveAvgNanos int64
	EvaluateCount      int64
	EvaluateErrors     int64
	EvaluateClicks     int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InterleaveCount:    b.InterleaveCount.Load(),
		InterleaveErrors:   b.InterleaveErrors.Load(),
		InterleaveAvgNanos: avgNanos(b.InterleaveTotalNanos.Load(), b.InterleaveCount.Load()),
		MultileaveCount:    b.MultileaveCount.Load(),
		MultileaveErrors:   b.MultileaveErrors.Load(),
		MultileaveAvgNanos: avgNanos(b.MultileaveTotalNanos.Load(), b.MultileaveCount.Load()),
		EvaluateCount:      b.EvaluateCount.Load(),
		EvaluateErrors:     b.EvaluateErrors.Load(),
		EvaluateClicks:     b.EvaluateClicks.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
