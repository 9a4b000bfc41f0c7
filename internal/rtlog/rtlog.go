// Package rtlog provides the structured logger threaded through scene
// loading, the tile scheduler, and CLI startup/shutdown messages.
package rtlog

import "go.uber.org/zap"

// Logger wraps a *zap.SugaredLogger with constructors tuned for the two
// places this program runs: a developer's terminal (human-readable) and
// a render farm (JSON, for log aggregation).
type Logger struct {
	*zap.SugaredLogger
}

// New builds a human-readable (console-encoded) development logger.
func New() *Logger {
	base, err := zap.NewDevelopment()
	if err != nil {
		// zap.NewDevelopment only fails on a broken encoder config; the
		// default config is a package constant and cannot fail.
		panic(err)
	}
	return &Logger{SugaredLogger: base.Sugar()}
}

// NewProduction builds a JSON logger suitable for unattended batch runs.
func NewProduction() *Logger {
	base, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return &Logger{SugaredLogger: base.Sugar()}
}

// Sync flushes any buffered log entries. Callers defer this in main.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}
