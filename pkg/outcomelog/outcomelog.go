// Package outcomelog appends validation results to a plain-text log file.
//
// Each result is one line:
//
//	[2026-10-19T14:03:27.123456] [PASS] /work/data.csv: Valid CSV: 3 rows, 2 columns
//
// The file is append-only. Lines are written with a single write call so that
// concurrent hook processes rely on O_APPEND atomicity instead of locking.
package outcomelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultPath is the log location used when none is configured.
const DefaultPath = "~/.claude/logs/csv-validator.log"

// Timestamp layouts, ISO-8601 local time. The fraction is left out when the
// microseconds are zero.
const (
	TimestampLayout       = "2006-01-02T15:04:05.000000"
	TimestampLayoutSecond = "2006-01-02T15:04:05"
)

// Status tags written into each line.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Logger appends result lines to Path.
type Logger struct {
	Path string
	Now  func() time.Time
}

// New creates a Logger for the given, already expanded, path.
func New(path string) *Logger {
	return &Logger{Path: path, Now: time.Now}
}

// FormatLine renders a single newline-terminated log line.
func FormatLine(ts time.Time, ok bool, filePath, message string) string {
	status := StatusFail
	if ok {
		status = StatusPass
	}
	return fmt.Sprintf("[%s] [%s] %s: %s\n", FormatTimestamp(ts), status, filePath, message)
}

// FormatTimestamp renders ts with microsecond precision.
func FormatTimestamp(ts time.Time) string {
	if ts.Nanosecond()/int(time.Microsecond) == 0 {
		return ts.Format(TimestampLayoutSecond)
	}
	return ts.Format(TimestampLayout)
}

// Record appends the outcome for filePath.
func (l *Logger) Record(ok bool, filePath, message string) error {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return l.Append(FormatLine(now(), ok, filePath, message))
}

// Append writes line to the log, creating parent directories as needed.
func (l *Logger) Append(line string) (err error) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	if err := os.MkdirAll(filepath.Dir(l.Path), 0o750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(l.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing log file: %w", closeErr)
		}
	}()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("writing log file: %w", err)
	}
	return nil
}
