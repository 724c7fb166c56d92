package util

import (
	"errors"
	"fmt"
)

// Error conventions for this project:
//
//   - Sentinel errors (errors.New) for well-known, stable conditions
//     that callers check with errors.Is(). Example: ErrNotFound.
//   - Structured error types for context-rich errors that carry
//     additional fields (e.g., RegistrationError). Each type
//     implements Error(), Unwrap() (if wrapping), and Is().
//   - fmt.Errorf with %w for ad-hoc wrapping that adds context to an
//     existing error without introducing a new type.

// Common sentinel errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfigInvalid = errors.New("invalid configuration")
)

// RegistrationError reports a route definition that cannot be
// installed. Registration is all-or-nothing: a single bad definition
// aborts the whole set-routes call.
type RegistrationError struct {
	Template string
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	if e.Template != "" {
		return fmt.Sprintf("route registration failed for %q: %s", e.Template, e.Message)
	}
	return fmt.Sprintf("route registration failed: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *RegistrationError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *RegistrationError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	_, ok := target.(*RegistrationError)
	return ok || errors.Is(e.Cause, target)
}

// NewRegistrationError creates a new RegistrationError.
func NewRegistrationError(template, message string) *RegistrationError {
	return &RegistrationError{Template: template, Message: message}
}

// NewRegistrationErrorWithCause creates a new RegistrationError with a cause.
func NewRegistrationErrorWithCause(template, message string, cause error) *RegistrationError {
	return &RegistrationError{Template: template, Message: message, Cause: cause}
}

// RouteNotFoundError reports that no registered route matched a path.
// It is the designed trigger for 404 dispatch, not a failure.
type RouteNotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route found for %s", e.Path)
}

// Is checks if the error matches the target.
func (e *RouteNotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	_, ok := target.(*RouteNotFoundError)
	return ok
}

// NewRouteNotFoundError creates a new RouteNotFoundError.
func NewRouteNotFoundError(path string) *RouteNotFoundError {
	return &RouteNotFoundError{Path: path}
}

// ConfigError represents a configuration-related error.
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error at %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *ConfigError) Is(target error) bool {
	if target == ErrConfigInvalid {
		return true
	}
	_, ok := target.(*ConfigError)
	return ok || errors.Is(e.Cause, target)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with a cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
