package brepgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordTessellation is called after each shell or face tessellation.
	// faces is the number of faces meshed, duration is the total time
	// taken, err is nil if successful.
	RecordTessellation(faces int, duration time.Duration, err error)

	// RecordTrace is called after each intersection trace. points is the
	// number of curve points produced, ok reports whether the trace
	// reached its requested length.
	RecordTrace(points int, duration time.Duration, ok bool)

	// RecordSnapshotSave is called after each snapshot save.
	RecordSnapshotSave(duration time.Duration, err error)

	// RecordSnapshotLoad is called after each snapshot load.
	RecordSnapshotLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTessellation(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTrace(int, time.Duration, bool)         {}
func (NoopMetricsCollector) RecordSnapshotSave(time.Duration, error)      {}
func (NoopMetricsCollector) RecordSnapshotLoad(time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TessellationCount      atomic.Int64
	TessellationErrors     atomic.Int64
	TessellationFaces      atomic.Int64
	TessellationTotalNanos atomic.Int64
	TraceCount             atomic.Int64
	TraceStalled           atomic.Int64
	TracePoints            atomic.Int64
	SnapshotSaveCount      atomic.Int64
	SnapshotSaveErrors     atomic.Int64
	SnapshotLoadCount      atomic.Int64
	SnapshotLoadErrors     atomic.Int64
}

// RecordTessellation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTessellation(faces int, duration time.Duration, err error) {
	b.TessellationCount.Add(1)
	b.TessellationFaces.Add(int64(faces))
	b.TessellationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TessellationErrors.Add(1)
	}
}

// RecordTrace implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrace(points int, duration time.Duration, ok bool) {
	b.TraceCount.Add(1)
	b.TracePoints.Add(int64(points))
	if !ok {
		b.TraceStalled.Add(1)
	}
}

// RecordSnapshotSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotSave(duration time.Duration, err error) {
	b.SnapshotSaveCount.Add(1)
	if err != nil {
		b.SnapshotSaveErrors.Add(1)
	}
}

// RecordSnapshotLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotLoad(duration time.Duration, err error) {
	b.SnapshotLoadCount.Add(1)
	if err != nil {
		b.SnapshotLoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TessellationCount:    b.TessellationCount.Load(),
		TessellationErrors:   b.TessellationErrors.Load(),
		TessellationFaces:    b.TessellationFaces.Load(),
		TessellationAvgNanos: b.avgTessellationNanos(),
		TraceCount:           b.TraceCount.Load(),
		TraceStalled:         b.TraceStalled.Load(),
		TracePoints:          b.TracePoints.Load(),
		SnapshotSaveCount:    b.SnapshotSaveCount.Load(),
		SnapshotSaveErrors:   b.SnapshotSaveErrors.Load(),
		SnapshotLoadCount:    b.SnapshotLoadCount.Load(),
		SnapshotLoadErrors:   b.SnapshotLoadErrors.Load(),
	}
}

func (b *BasicMetricsCollector) avgTessellationNanos() int64 {
	count := b.TessellationCount.Load()
	if count == 0 {
		return 0
	}
	return b.TessellationTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TessellationCount    int64
	TessellationErrors   int64
	TessellationFaces    int64
	TessellationAvgNanos int64
	TraceCount           int64
	TraceStalled         int64
	TracePoints          int64
	SnapshotSaveCount    int64
	SnapshotSaveErrors   int64
	SnapshotLoadCount    int64
	SnapshotLoadErrors   int64
}
