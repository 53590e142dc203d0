package app

import (
	"fmt"
	"io"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
)

// NewLogger builds the application logger from the log section of the config.
func NewLogger(w io.Writer, cfg LogConfig) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	opts := []log.Option{log.LevelOption(level)}
	if cfg.Format == "json" {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}
