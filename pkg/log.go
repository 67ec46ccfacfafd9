package pkg

import (
	"log/slog"
	"sync/atomic"
)

var (
	pkgLogger     atomic.Pointer[slog.Logger]
	defaultLogger atomic.Pointer[slog.Logger]
)

// Logger returns the logger used by plans. Without a call to SetLogger it is
// slog.Default() with component=pkg.
func Logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}

	l := slog.Default().With("component", "pkg")
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	return defaultLogger.Load()
}

// SetLogger replaces the plan logger. Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
	defaultLogger.Store(nil)
}
