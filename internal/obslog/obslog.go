// Package obslog provides the CLI's structured logging, wrapping
// logrus.Logger the way r3e-network-service_layer's infrastructure/logging
// package wraps it for its services. The derivation packages never import
// this; logging is strictly an outer-surface concern (SPEC_FULL.md §2).
package obslog

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with the fields hdkeytool attaches to every
// entry.
type Logger struct {
	*logrus.Logger
	component string
}

// New builds a Logger at the given level ("debug", "info", "warn", "error")
// and format ("text" or "json").
func New(component, level, format string) *Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		l.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.RFC3339, FullTimestamp: true})
	}
	l.SetOutput(os.Stderr)

	return &Logger{Logger: l, component: component}
}

// NewFromEnv builds a Logger using HDKEY_LOG_LEVEL / HDKEY_LOG_FORMAT,
// defaulting to "info" and "text".
func NewFromEnv(component string) *Logger {
	level := strings.TrimSpace(os.Getenv("HDKEY_LOG_LEVEL"))
	if level == "" {
		level = "info"
	}
	format := strings.TrimSpace(os.Getenv("HDKEY_LOG_FORMAT"))
	if format == "" {
		format = "text"
	}
	return New(component, level, format)
}

// WithOperation tags a log entry with the derivation operation name
// ("master", "derive", "address").
func (l *Logger) WithOperation(op string) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields{
		"component": l.component,
		"operation": op,
	})
}

// WithCurve further tags an entry with the curve and specification in use.
func WithCurve(entry *logrus.Entry, curveName, spec string) *logrus.Entry {
	return entry.WithFields(logrus.Fields{
		"curve":         curveName,
		"specification": spec,
	})
}
