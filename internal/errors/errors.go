// Package errors provides custom error types for the antigravity CLI.
// It distinguishes between recoverable errors (missing optional resources,
// handled by graceful degradation) and fatal errors (the process must
// report them and exit non-zero, e.g. a failed project.json write).
package errors

import (
	"errors"
	"fmt"

	"github.com/antigravity-core/antigravity/internal/i18n"
)

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityRecoverable indicates an error that can be reported and execution can continue
	SeverityRecoverable Severity = iota
	// SeverityFatal indicates an error that must halt execution
	SeverityFatal
)

// DispatcherError is the base interface for all CLI errors
type DispatcherError interface {
	error
	Severity() Severity
	Unwrap() error
}

// RecoverableError represents an error that can be reported and execution can continue
type RecoverableError struct {
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *RecoverableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RecoverableError) Severity() Severity {
	return SeverityRecoverable
}

func (e *RecoverableError) Unwrap() error {
	return e.Err
}

// FatalError represents an error that must halt execution
type FatalError struct {
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *FatalError) Severity() Severity {
	return SeverityFatal
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// NewRecoverable creates a new recoverable error
func NewRecoverable(op, message string, err error) *RecoverableError {
	return &RecoverableError{Op: op, Message: message, Err: err}
}

// NewFatal creates a new fatal error
func NewFatal(op, message string, err error) *FatalError {
	return &FatalError{Op: op, Message: message, Err: err}
}

// IsRecoverable checks if an error is recoverable
func IsRecoverable(err error) bool {
	var dispErr DispatcherError
	if errors.As(err, &dispErr) {
		return dispErr.Severity() == SeverityRecoverable
	}
	return false
}

// IsFatal checks if an error is fatal. Unknown errors are treated as fatal.
func IsFatal(err error) bool {
	var dispErr DispatcherError
	if errors.As(err, &dispErr) {
		return dispErr.Severity() == SeverityFatal
	}
	return err != nil
}

// Common error constructors

// ErrWriteProject creates a fatal error for project.json write failures
func ErrWriteProject(err error) *FatalError {
	return NewFatal(i18n.ErrOpProject, i18n.ErrMsgWriteProject, err)
}

// ErrLoadProject creates a recoverable error for project.json read failures
func ErrLoadProject(err error) *RecoverableError {
	return NewRecoverable(i18n.ErrOpProject, i18n.ErrMsgLoadProject, err)
}

// ErrScriptFailed creates a recoverable error for a delegated script failure
func ErrScriptFailed(name string, err error) *RecoverableError {
	return NewRecoverable(i18n.ErrOpScript, fmt.Sprintf(i18n.ErrMsgScriptFailed, name), err)
}
