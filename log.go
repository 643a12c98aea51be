package guide

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is a slog.Handler which drops every record.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger sets the logger used by package guide. By default nothing
// is logged; a nil l restores that.
//
// Tick rebuilds and scene renders are logged at slog.LevelDebug.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the logger used by package guide.
func Logger() *slog.Logger {
	return logger.Load()
}
