package core

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a problem that stops a run before any row is
// processed: an unknown profile, a missing chapter column, an unreadable or
// malformed mapping file.
type ConfigurationError struct {
	Subject string // profile, chapter or file the problem is about
	Reason  string
	cause   error
}

// NewConfigurationError creates a ConfigurationError. cause may be nil.
func NewConfigurationError(subject, reason string, cause error) *ConfigurationError {
	return &ConfigurationError{Subject: subject, Reason: reason, cause: cause}
}

func (e *ConfigurationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Subject, e.Reason, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Subject, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.cause
}

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// SkipReason explains why a row was not sent.
type SkipReason string

const (
	SkipNoEmail      SkipReason = "no email"
	SkipUnsubscribed SkipReason = "unsubscribed"
)

// ErrRowSkipped matches any RowSkippedError via errors.Is.
var ErrRowSkipped = errors.New("row skipped")

// RowSkippedError is a per-row, recoverable condition. The run continues.
type RowSkippedError struct {
	Row    int
	Reason SkipReason
}

func (e *RowSkippedError) Error() string {
	return fmt.Sprintf("row %d skipped: %s", e.Row, e.Reason)
}

func (e *RowSkippedError) Is(target error) bool {
	return target == ErrRowSkipped
}

// ExternalCallError wraps a failure from the remote CRM for one row.
// The cause is surfaced untouched; no retry or cleanup is attempted.
type ExternalCallError struct {
	Row   int
	Op    string // "create" or "upsert"
	cause error
}

// NewExternalCallError creates an ExternalCallError for a row.
func NewExternalCallError(row int, op string, cause error) *ExternalCallError {
	return &ExternalCallError{Row: row, Op: op, cause: cause}
}

func (e *ExternalCallError) Error() string {
	return fmt.Sprintf("row %d: %s person: %v", e.Row, e.Op, e.cause)
}

func (e *ExternalCallError) Unwrap() error {
	return e.cause
}
