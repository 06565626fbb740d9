// Package logging provides the zap logger setup and helpers for keeping
// user messages and secrets out of logs.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the service logger. Production environments get JSON
// output at info level; everything else gets the human-readable development
// config at debug level.
func NewLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" || env == "staging" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
