package gasket

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled is false, so callers skip attribute
// construction and the Debug line in Step costs a single atomic load.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current is the package logger. Packings created on any goroutine read it.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes gasket and draw log records to l. The package is quiet
// until this is called; nil makes it quiet again.
//
// Records by level:
//   - [slog.LevelDebug]: one "gasket: step" record per Step with its StepStats
//   - [slog.LevelInfo]: packing created, packing complete
//   - [slog.LevelWarn]: a step rolled back after a zero curvature
//
// Example:
//
//	gasket.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return current.Load()
}
