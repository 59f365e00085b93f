// Package logger builds the structured zap logger used across the service.
package logger

import (
	"errors"
	"os"
	"syscall"

	"go.uber.org/zap"
)

// New returns a production JSON logger writing at the given level
// ("debug", "info", "warn", "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

// Sync flushes buffered entries. Errors from syncing a terminal or pipe
// are ignored.
func Sync(log *zap.Logger) error {
	err := log.Sync()
	if err == nil || errors.Is(err, os.ErrInvalid) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
