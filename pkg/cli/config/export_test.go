package config

import (
	"io"
	"log/slog"
	"time"
)

// NewEndpointForTest creates an Endpoint config for testing purposes
func NewEndpointForTest(url, source string, proxiedTimeout time.Duration) *Endpoint {
	return &Endpoint{
		url:            url,
		source:         source,
		proxiedTimeout: proxiedTimeout,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewLogHandler is exported for testing
func NewLogHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	return newLogHandler(w, format, level, false)
}

// EndpointLog is exported for testing
type EndpointLog = endpointLog
