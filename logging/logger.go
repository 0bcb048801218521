// Package logging provides pre-configured logrus loggers for redux-lite
// components. Loggers are quiet at info level by default and tune
// themselves from environment variables, so the library never reads
// configuration files on its own; embedding applications that want
// config-driven logging wire it up explicitly via Configure.
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific
// component. It uses a singleton pattern per component to avoid
// re-initializing.
//
// Environment variables:
//
//	REDUX_LOG_LEVEL  - trace, debug, info, warn, error (default info)
//	REDUX_LOG_FORMAT - text, json (default text)
//	REDUX_LOG_CALLER - "true" to report the calling function
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	levelStr := "info"
	if env := os.Getenv("REDUX_LOG_LEVEL"); env != "" {
		levelStr = env
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("REDUX_LOG_CALLER") == "true" {
		logger.SetReportCaller(true)
	}

	switch os.Getenv("REDUX_LOG_FORMAT") {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&TextFormatter{})
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// Configure overrides level and format on an existing entry's logger.
// Empty values leave the current setting untouched. Used by embedding
// applications that resolve logging settings from their own config.
func Configure(entry *logrus.Entry, level, format string) {
	if level != "" {
		if parsed, err := logrus.ParseLevel(level); err == nil {
			entry.Logger.SetLevel(parsed)
		}
	}
	switch format {
	case "json":
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		entry.Logger.SetFormatter(&TextFormatter{})
	}
}
