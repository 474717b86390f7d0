package brepgo

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/brepgo/codec"
	"github.com/hupe1980/brepgo/numeric"
	"github.com/hupe1980/brepgo/snapshot"
)

type options struct {
	codec            codec.Codec
	compression      snapshot.Compression
	metricsCollector MetricsCollector
	logger           *Logger
	tolerance        float64
	trials           int
	workers          int
}

// Option configures the tessellator and the snapshot save/load helpers.
//
// Options exist to avoid exploding the API surface with per-knob
// constructor variants; the zero configuration is always usable.
type Option func(*options)

// WithCodec configures the codec used for snapshot payloads.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the snapshot payload compression.
func WithCompression(c snapshot.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithTolerance overrides the sampling tolerance used by tessellation.
// The kernel-wide coincidence tolerance is fixed; this only controls
// how finely curves and surfaces are sampled.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithTrials configures the iteration budget of the Newton searches run
// during tessellation and intersection tracking.
func WithTrials(trials int) Option {
	return func(o *options) {
		if trials > 0 {
			o.trials = trials
		}
	}
}

// WithWorkers configures the maximum number of faces tessellated
// concurrently by TessellateShellParallel. Defaults to GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &brepgo.BasicMetricsCollector{}
//	tess := brepgo.NewTessellator(brepgo.WithMetricsCollector(metrics))
//	// ... tessellate ...
//	stats := metrics.GetStats()
//	fmt.Printf("Faces: %d, Avg latency: %dns\n", stats.TessellationFaces, stats.TessellationAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := brepgo.NewJSONLogger(slog.LevelInfo)
//	tess := brepgo.NewTessellator(brepgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            nil,
		compression:      snapshot.CompressionZstd,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		tolerance:        DefaultMeshTolerance,
		trials:           numeric.DefaultTrials,
		workers:          runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
