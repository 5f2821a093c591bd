package bridge

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.Mutex
	logger   *zap.Logger
)

// Logger returns the package logger used by Contexts constructed without
// an explicit one. It is a no-op logger by default.
func Logger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger installs log as the package logger. Call before constructing
// a Context; already-live Contexts keep the logger they were built with.
func SetLogger(log *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = log
}
