// Package logger constructs the process-wide structured logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a zap logger for the given gin mode: JSON in release,
// human-readable otherwise.
func New(mode string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if mode == "release" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
