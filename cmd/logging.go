package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/config"
	"github.com/sirupsen/logrus"
)

const (
	logFormatJSON = "json"
	logFormatText = "text"
)

// configureLogging applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
// Text output is meant for local runs; deployments keep JSON.
func configureLogging(cfg *config.Config) error {
	parsed, err := logrus.ParseLevel(defaultString(cfg.Log.Level, "info"))
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}

	formatter, err := newLogFormatter(defaultString(cfg.Log.Format, logFormatJSON))
	if err != nil {
		return err
	}

	logrus.SetLevel(parsed)
	logrus.SetFormatter(formatter)
	return nil
}

func newLogFormatter(format string) (logrus.Formatter, error) {
	switch strings.ToLower(format) {
	case logFormatJSON:
		return &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano}, nil
	case logFormatText:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}, nil
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", format)
	}
}

func defaultString(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
