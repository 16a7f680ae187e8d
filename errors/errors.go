// Package errors provides unified error handling for the content pipeline.
// It implements structured error types with machine-readable codes, retryable
// detection, and constructors for every failure kind the stage graph can
// produce.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf extracts the ErrorCode from err, walking the error chain.
// Non-AppError values classify as ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsRetryable reports whether err carries a retryable error code.
func IsRetryable(err error) bool {
	return IsRetryableCode(CodeOf(err))
}

// --- Graph construction errors ---

// DuplicateWrite creates an AppError for two writers declaring the same slot.
func DuplicateWrite(slot string, stages ...string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateWrite,
		Message: fmt.Sprintf("slot %q has more than one writer", slot),
		Details: map[string]any{"slot": slot, "stages": stages},
	}
}

// CyclicGraph creates an AppError for a dependency cycle in the stage graph.
func CyclicGraph(detail string) *AppError {
	return &AppError{
		Code:    ErrCodeCyclicGraph,
		Message: "stage graph contains a dependency cycle",
		Details: map[string]any{"detail": detail},
	}
}

// MissingDependency creates an AppError for a slot read before it was written.
func MissingDependency(slot string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingDependency,
		Message: fmt.Sprintf("slot %q has not been written", slot),
		Details: map[string]any{"slot": slot},
	}
}

// --- Stage run-time errors ---

// MalformedGeneration creates an AppError for a reasoning response that failed
// structural validation. No fallback content may be substituted for it.
func MalformedGeneration(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedGeneration,
		Message: fmt.Sprintf("generated content failed structural validation: %s", reason),
	}
}

// ExternalService creates an AppError for a failure calling the reasoning
// service.
func ExternalService(service string, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeExternalService,
		Message:   fmt.Sprintf("the %s service call failed", service),
		Retryable: true,
		Details:   map[string]any{"service": service},
		Cause:     cause,
	}
}

// Timeout creates an AppError for an external call that exceeded its deadline.
func Timeout(operation string) *AppError {
	return &AppError{
		Code:      ErrCodeTimeout,
		Message:   fmt.Sprintf("operation %s exceeded its deadline", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// IncompleteAssembly creates an AppError for an assembler whose required input
// is absent.
func IncompleteAssembly(page string, missing ...string) *AppError {
	return &AppError{
		Code:    ErrCodeIncompleteAssembly,
		Message: fmt.Sprintf("cannot assemble %s page: missing %s", page, strings.Join(missing, ", ")),
		Details: map[string]any{"page": page, "missing": missing},
	}
}

// SinkWrite creates an AppError for a persistence failure of one artifact.
func SinkWrite(artifact string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeSinkWrite,
		Message: fmt.Sprintf("failed to persist artifact %q", artifact),
		Details: map[string]any{"artifact": artifact},
		Cause:   cause,
	}
}

// StageSkipped creates an AppError recording that a stage was not attempted
// because an upstream producer did not complete.
func StageSkipped(stage, upstream string) *AppError {
	return &AppError{
		Code:    ErrCodeStageSkipped,
		Message: fmt.Sprintf("stage %q skipped: upstream %q did not complete", stage, upstream),
		Details: map[string]any{"stage": stage, "upstream": upstream},
	}
}

// --- Input errors ---

// InvalidInput creates an AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates an AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// MissingField creates an AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// Internal creates an AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "an unexpected error occurred",
		Cause:   cause,
	}
}
