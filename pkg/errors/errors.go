/*
 * Copyright 2026 The Yorkie Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package errors provides errors that carry a status code, so callers can
// branch on the kind of failure without matching on messages.
package errors

import (
	"errors"
)

// StatusError represents an error that carries an error status.
type StatusError interface {
	error
	Status() StatusCode
	Code() string
	WithCode(code string) StatusError
}

// errorWithStatus is the internal implementation of StatusError.
type errorWithStatus struct {
	err    error
	status StatusCode
	code   string
}

// Error returns the error message.
func (e errorWithStatus) Error() string {
	return e.err.Error()
}

// Status returns the error status.
func (e errorWithStatus) Status() StatusCode {
	return e.status
}

// Code returns the string representation of the error code.
func (e errorWithStatus) Code() string {
	return e.code
}

// Unwrap returns the underlying error for error chain compatibility.
func (e errorWithStatus) Unwrap() error {
	return e.err
}

// WithCode returns a new StatusError with the specified custom code.
func (e errorWithStatus) WithCode(code string) StatusError {
	return errorWithStatus{
		err:    e.err,
		status: e.status,
		code:   code,
	}
}

func newErrorWithStatus(err error, status StatusCode) StatusError {
	return errorWithStatus{
		err:    err,
		status: status,
	}
}

// InvalidArgument creates a new "invalid argument" error.
// Use this when the caller provides an unusable capacity, comparator or input.
func InvalidArgument(message string) StatusError {
	return newErrorWithStatus(errors.New(message), ErrCodeInvalidArgument)
}

// NotFound creates a new "not found" error.
func NotFound(message string) StatusError {
	return newErrorWithStatus(errors.New(message), ErrCodeNotFound)
}

// ResourceExhausted creates a new "resource exhausted" error.
// Use this when a fixed capacity has been reached.
func ResourceExhausted(message string) StatusError {
	return newErrorWithStatus(errors.New(message), ErrCodeResourceExhausted)
}

// FailedPrecond creates a new "failed precondition" error.
// Use this when the structure is not in the state the operation requires.
func FailedPrecond(message string) StatusError {
	return newErrorWithStatus(errors.New(message), ErrCodeFailedPrecondition)
}

// Internal creates a new "internal" error.
// Use this when an invariant of a data structure has been broken.
func Internal(message string) StatusError {
	return newErrorWithStatus(errors.New(message), ErrCodeInternal)
}

// StatusOf extracts the error status from an error, unwrapping as needed.
// It returns 0 when no status is found.
func StatusOf(err error) StatusCode {
	if err == nil {
		return 0
	}

	if statusErr, ok := err.(StatusError); ok {
		return statusErr.Status()
	}

	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status()
	}

	return 0
}

// IsStatus checks if the given error has the specified error status.
func IsStatus(err error, code StatusCode) bool {
	return StatusOf(err) == code
}

// IsClientError checks if the error was caused by the caller.
func IsClientError(err error) bool {
	return StatusOf(err).IsClientError()
}

// ErrorInfo provides detailed information about an error.
type ErrorInfo struct {
	Status       StatusCode
	Code         string
	Message      string
	IsClient     bool
	StatusString string
	Metadata     map[string]string
}

// ErrorInfoOf extracts comprehensive information from an error.
// This is useful for logging and for rendering errors in the CLI.
func ErrorInfoOf(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	code := ""
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		code = statusErr.Code()
	}

	status := StatusOf(err)

	return ErrorInfo{
		Status:       status,
		Code:         code,
		Message:      err.Error(),
		IsClient:     status.IsClientError(),
		StatusString: status.String(),
		Metadata:     Metadata(err),
	}
}
