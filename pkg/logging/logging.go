// Package logging configures the charmbracelet logger used across the server.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New builds a logger writing to w at the given level ("debug", "info",
// "warn", "error") using the "text" or "json" formatter.
func New(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "glue-mcp",
	})

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(log.TextFormatter)
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return logger, nil
}

// Setup builds a logger with New and installs it as the package default,
// so log.Info and friends go through it.
func Setup(w io.Writer, level, format string) (*log.Logger, error) {
	logger, err := New(w, level, format)
	if err != nil {
		return nil, err
	}
	log.SetDefault(logger)
	return logger, nil
}
