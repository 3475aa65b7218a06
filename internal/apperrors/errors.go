// Package apperrors defines the error taxonomy surfaced by the pipeline.
// Services wrap these sentinels with %w; the HTTP layer maps them to
// status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation - malformed or missing required input. Never retried.
	ErrValidation = errors.New("validation error")
	// ErrNotFound - unknown camera, incident, responder or tenant.
	ErrNotFound = errors.New("not found")
	// ErrForbidden - caller acting outside their own assignment.
	ErrForbidden = errors.New("forbidden")
)
