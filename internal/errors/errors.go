// Package errors provides structured error handling for the relcut CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error that occurred.
type Category int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument Category = iota
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
	// Repository errors come from the underlying git repository.
	Repository
	// Version errors mean an existing tag or manifest string could not be
	// parsed as a semantic version.
	Version
	// Runtime errors occur during release execution.
	Runtime
)

// String returns a human-readable name for the error category.
func (c Category) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Repository:
		return "Repository Error"
	case Version:
		return "Version Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, Repository, etc.)
	Category Category
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Err is the wrapped underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates a new argument error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewRepositoryError creates a new repository error.
func NewRepositoryError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Repository, Message: message, Remediation: remediation}
}

// NewVersionError creates a new version-format error.
func NewVersionError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Version, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap wraps an existing error with a CLIError, preserving the original
// error for errors.As chains.
func Wrap(err error, category Category, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Err: err, Remediation: remediation}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category Category, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Err:         err,
		Remediation: remediation,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
