package alloc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting allocation metrics.
// Implement this interface to integrate with monitoring systems; the prom
// sub-package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordAlloc is called after each allocation attempt.
	// bytes is the rounded size, duration the time taken, err nil on success.
	RecordAlloc(backend Backend, bytes int, duration time.Duration, err error)

	// RecordFree is called when a block is released, explicitly or by the
	// runtime cleanup (reclaimed is true in that case).
	RecordFree(backend Backend, bytes int, reclaimed bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(Backend, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFree(Backend, int, bool)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	AllocCount       atomic.Int64
	AllocErrors      atomic.Int64
	AllocBytes       atomic.Int64
	AllocTotalNanos  atomic.Int64
	FreeCount        atomic.Int64
	FreeBytes        atomic.Int64
	ReclaimedCount   atomic.Int64
	MappedAllocCount atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(backend Backend, bytes int, duration time.Duration, err error) {
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocCount.Add(1)
	b.AllocBytes.Add(int64(bytes))
	b.AllocTotalNanos.Add(duration.Nanoseconds())
	if backend == Mapped {
		b.MappedAllocCount.Add(1)
	}
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(_ Backend, bytes int, reclaimed bool) {
	b.FreeCount.Add(1)
	b.FreeBytes.Add(int64(bytes))
	if reclaimed {
		b.ReclaimedCount.Add(1)
	}
}

// MetricsStats is a snapshot of BasicMetricsCollector.
type MetricsStats struct {
	AllocCount     int64
	AllocErrors    int64
	AllocBytes     int64
	AllocAvgNanos  int64
	FreeCount      int64
	FreeBytes      int64
	ReclaimedCount int64
	MappedAllocs   int64
	LiveBlocks     int64
	LiveBytes      int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	s := MetricsStats{
		AllocCount:     b.AllocCount.Load(),
		AllocErrors:    b.AllocErrors.Load(),
		AllocBytes:     b.AllocBytes.Load(),
		FreeCount:      b.FreeCount.Load(),
		FreeBytes:      b.FreeBytes.Load(),
		ReclaimedCount: b.ReclaimedCount.Load(),
		MappedAllocs:   b.MappedAllocCount.Load(),
	}
	if s.AllocCount > 0 {
		s.AllocAvgNanos = b.AllocTotalNanos.Load() / s.AllocCount
	}
	s.LiveBlocks = s.AllocCount - s.FreeCount
	s.LiveBytes = s.AllocBytes - s.FreeBytes
	return s
}
