// Copyright (c) 2026, the hailodash authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies probe and tool failures so log consumers can
// tell a dead device from a slow tool without parsing messages.
type ErrorCode string

const (
	// ErrCodeTimeout indicates an external tool exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeNotFound indicates a binary, device node, or file is absent.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeExecFailed indicates a tool ran but exited non-zero.
	ErrCodeExecFailed ErrorCode = "EXEC_FAILED"
	// ErrCodeUnavailable indicates a peer service or device did not respond.
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"
	// ErrCodeParse indicates tool output could not be interpreted.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
)

// StructuredError carries a classification code alongside the message
// and underlying cause.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a classification code.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with a code and extra context values.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// Code extracts the classification from err, walking the wrap chain.
// Unclassified errors report ErrCodeExecFailed; nil reports "".
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeExecFailed
}

// Is reports whether err carries the given classification code.
func Is(err error, code ErrorCode) bool {
	return Code(err) == code
}
