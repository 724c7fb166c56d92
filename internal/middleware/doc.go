// Package middleware provides transport-level HTTP middleware wrapped
// around the dispatcher: request ID assignment, panic recovery,
// access logging, and rate limiting. The route-matching core knows
// nothing about these; they are composed in the server wiring only.
package middleware
