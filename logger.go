package ninescale

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// nopHandler discards all records and reports every level as disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(defaultLogger())
}

// defaultLogger is silent unless NINESCALE_DEBUG is set.
func defaultLogger() *slog.Logger {
	if os.Getenv("NINESCALE_DEBUG") != "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(nopHandler{})
}

// SetLogger sets the logger used by ninescale and its sub-packages. Passing
// nil restores the default.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = defaultLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
