package filesystem

import (
	"log/slog"
	"sync/atomic"
)

var (
	logger        atomic.Pointer[slog.Logger]
	defaultLogger atomic.Pointer[slog.Logger]
)

// Logger returns the package-level logger. Without a call to SetLogger it is
// slog.Default() with a component attribute, derived once and cached.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}

	l := slog.Default().With("component", "filesystem")
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}

// SetLogger replaces the package-level logger. Passing nil restores the
// default, re-derived from slog.Default() on the next Logger call.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}
