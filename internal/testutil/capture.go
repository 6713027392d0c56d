package testutil

import (
	"fmt"
	"strings"
)

// CaptureLogger implements logging.Logger and records formatted entries per
// level so tests can assert that recoverable failures were logged (and usage
// errors were not).
type CaptureLogger struct {
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

func format(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Debug records a debug entry.
func (l *CaptureLogger) Debug(msg string, args ...any) {
	l.Debugs = append(l.Debugs, format(msg, args...))
}

// Info records an info entry.
func (l *CaptureLogger) Info(msg string, args ...any) {
	l.Infos = append(l.Infos, format(msg, args...))
}

// Warn records a warn entry.
func (l *CaptureLogger) Warn(msg string, args ...any) {
	l.Warns = append(l.Warns, format(msg, args...))
}

// Error records an error entry.
func (l *CaptureLogger) Error(msg string, args ...any) {
	l.Errors = append(l.Errors, format(msg, args...))
}

// HasWarnContaining reports whether any warn entry contains substr.
func (l *CaptureLogger) HasWarnContaining(substr string) bool {
	for _, entry := range l.Warns {
		if strings.Contains(entry, substr) {
			return true
		}
	}
	return false
}

// HasDebugContaining reports whether any debug entry contains substr.
func (l *CaptureLogger) HasDebugContaining(substr string) bool {
	for _, entry := range l.Debugs {
		if strings.Contains(entry, substr) {
			return true
		}
	}
	return false
}
