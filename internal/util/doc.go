// Package util provides shared utilities for the router.
//
// This package contains context helpers and the error types used
// across the module.
//
// # Context Helpers
//
// Context utilities for request-scoped data:
//
//	ctx = util.ContextWithRequestID(ctx, "req-123")
//	requestID := util.RequestIDFromContext(ctx)
//
// # Error Types
//
// Structured error types for consistent error handling:
//
//   - RegistrationError: invalid route definitions at registration time
//   - RouteNotFoundError: no route matched a request path
//   - ConfigError: configuration loading and validation errors
//   - Common sentinel errors: ErrNotFound, ErrConfigInvalid
package util
