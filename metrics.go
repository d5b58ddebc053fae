package mvector

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting buffer metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by many vectors, so implementations must be safe
// for concurrent use.
type MetricsCollector interface {
	// RecordAlloc is called after each buffer allocation attempt.
	// bytes is the requested size, err is nil if successful.
	RecordAlloc(bytes int64, err error)

	// RecordRealloc is called when a live buffer is replaced by one of a
	// different capacity.
	RecordRealloc(oldCap, newCap int)

	// RecordRelease is called when a buffer is given back.
	RecordRelease(bytes int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int64, error) {}
func (NoopMetricsCollector) RecordRealloc(int, int)   {}
func (NoopMetricsCollector) RecordRelease(int64)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount    atomic.Int64
	AllocErrors   atomic.Int64
	AllocBytes    atomic.Int64
	ReallocCount  atomic.Int64
	GrowCount     atomic.Int64
	ShrinkCount   atomic.Int64
	ReleaseCount  atomic.Int64
	ReleasedBytes atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(bytes int64, err error) {
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocCount.Add(1)
	b.AllocBytes.Add(bytes)
}

// RecordRealloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRealloc(oldCap, newCap int) {
	b.ReallocCount.Add(1)
	if newCap > oldCap {
		b.GrowCount.Add(1)
	} else {
		b.ShrinkCount.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(bytes int64) {
	b.ReleaseCount.Add(1)
	b.ReleasedBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocBytes := b.AllocBytes.Load()
	releasedBytes := b.ReleasedBytes.Load()
	return BasicMetricsStats{
		AllocCount:    b.AllocCount.Load(),
		AllocErrors:   b.AllocErrors.Load(),
		AllocBytes:    allocBytes,
		ReallocCount:  b.ReallocCount.Load(),
		GrowCount:     b.GrowCount.Load(),
		ShrinkCount:   b.ShrinkCount.Load(),
		ReleaseCount:  b.ReleaseCount.Load(),
		ReleasedBytes: releasedBytes,
		LiveBytes:     allocBytes - releasedBytes,
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount    int64
	AllocErrors   int64
	AllocBytes    int64
	ReallocCount  int64
	GrowCount     int64
	ShrinkCount   int64
	ReleaseCount  int64
	ReleasedBytes int64
	LiveBytes     int64
}
