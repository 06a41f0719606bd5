// Package errors provides structured error handling for the shiplog CLI.
// Errors carry a category from the tool's failure taxonomy plus actionable
// remediation steps shown to the user.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category classifies a failure for exit-code mapping and display.
type Category int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument Category = iota
	// Credential errors mean a required API token or key is missing or invalid.
	Credential
	// Fetch errors occur while listing commits from the hosting API.
	Fetch
	// Provider errors mean the text-generation call failed after retries.
	Provider
	// File errors occur reading or writing the changelog file.
	File
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Credential:
		return "Credential Error"
	case Fetch:
		return "Fetch Error"
	case Provider:
		return "Provider Error"
	case File:
		return "File Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the failure class (Argument, Credential, ...).
	Category Category
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewArgumentError creates an argument error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewCredentialError creates a credential error.
func NewCredentialError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Credential, Message: message, Remediation: remediation}
}

// NewFetchError creates a fetch error.
func NewFetchError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Fetch, Message: message, Remediation: remediation}
}

// NewProviderError creates a provider error.
func NewProviderError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Provider, Message: message, Remediation: remediation}
}

// NewFileError creates a file error.
func NewFileError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: File, Message: message, Remediation: remediation}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category Category, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Cause:       err,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category Category, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		Cause:       err,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not (or does not wrap) a CLIError.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// CategoryOf returns the category of err, or defaultCategory when err
// is not a CLIError.
func CategoryOf(err error, defaultCategory Category) Category {
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr.Category
	}
	return defaultCategory
}
