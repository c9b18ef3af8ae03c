// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package errors defines the typed errors produced while discovering editor
// instances, workspaces and remote machines.
//
// Discovery never aborts on a single bad source. Instead every per-source
// problem is returned as an *Error value and a single aggregation point
// decides whether to log it and at which level.
package errors

import (
	"errors"
	"fmt"
)

// Error types
const (
	// ErrMissingSource is returned when an optional source (settings, history
	// file, database) does not exist. It is informational.
	ErrMissingSource = "missing_source"

	// ErrMalformedSource is returned when a source exists but cannot be parsed
	ErrMalformedSource = "malformed_source"

	// ErrUnreadableSource is returned when a source exists but cannot be read
	ErrUnreadableSource = "unreadable_source"

	// ErrLaunchFailed is returned when an editor process cannot be started
	ErrLaunchFailed = "launch_failed"

	// ErrInvalidArgument is returned when an invalid argument is provided
	ErrInvalidArgument = "invalid_argument"
)

// Error represents an error in the application
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Path is the file the error relates to, if any
	Path string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message, path string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// NewMissingSourceError creates a new missing source error
func NewMissingSourceError(message, path string) *Error {
	return NewError(ErrMissingSource, message, path, nil)
}

// NewMalformedSourceError creates a new malformed source error
func NewMalformedSourceError(message, path string, cause error) *Error {
	return NewError(ErrMalformedSource, message, path, cause)
}

// NewUnreadableSourceError creates a new unreadable source error
func NewUnreadableSourceError(message, path string, cause error) *Error {
	return NewError(ErrUnreadableSource, message, path, cause)
}

// NewLaunchFailedError creates a new launch failed error
func NewLaunchFailedError(message, path string, cause error) *Error {
	return NewError(ErrLaunchFailed, message, path, cause)
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(message string, cause error) *Error {
	return NewError(ErrInvalidArgument, message, "", cause)
}

func isType(err error, errorType string) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errorType
}

// IsMissingSource checks if the error is a missing source error
func IsMissingSource(err error) bool {
	return isType(err, ErrMissingSource)
}

// IsMalformedSource checks if the error is a malformed source error
func IsMalformedSource(err error) bool {
	return isType(err, ErrMalformedSource)
}

// IsUnreadableSource checks if the error is an unreadable source error
func IsUnreadableSource(err error) bool {
	return isType(err, ErrUnreadableSource)
}

// IsLaunchFailed checks if the error is a launch failed error
func IsLaunchFailed(err error) bool {
	return isType(err, ErrLaunchFailed)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return isType(err, ErrInvalidArgument)
}
