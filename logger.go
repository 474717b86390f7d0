package brepgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with brepgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithID adds a topology identity field to the logger.
func (l *Logger) WithID(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithName adds a model name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// WithFaces adds a face count field to the logger.
func (l *Logger) WithFaces(faces int) *Logger {
	return &Logger{
		Logger: l.Logger.With("faces", faces),
	}
}

// WithTolerance adds a tolerance field to the logger.
func (l *Logger) WithTolerance(tol float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("tolerance", tol),
	}
}

// LogTessellate logs a tessellation operation over a number of faces.
func (l *Logger) LogTessellate(faces int, err error) {
	if err != nil {
		l.Error("tessellation failed",
			"faces", faces,
			"error", err,
		)
	} else {
		l.Debug("tessellation completed",
			"faces", faces,
		)
	}
}

// LogTrace logs an intersection-trace operation.
func (l *Logger) LogTrace(points int, ok bool) {
	if !ok {
		l.Warn("intersection trace stopped early",
			"points", points,
		)
	} else {
		l.Debug("intersection trace completed",
			"points", points,
		)
	}
}

// LogSnapshotSave logs a snapshot save operation.
func (l *Logger) LogSnapshotSave(name string, err error) {
	if err != nil {
		l.Error("snapshot save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.Info("snapshot saved",
			"name", name,
		)
	}
}

// LogSnapshotLoad logs a snapshot load operation.
func (l *Logger) LogSnapshotLoad(name string, err error) {
	if err != nil {
		l.Error("snapshot load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.Info("snapshot loaded",
			"name", name,
		)
	}
}
