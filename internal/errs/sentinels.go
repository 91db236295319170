// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across store/session/screen layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing or rejected bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation indicates field-level input problems (local or reported by the server).
	ErrValidation = errors.New("validation failed")

	// ErrNetwork indicates a transport failure: timeout, DNS, connection reset, cancellation.
	ErrNetwork = errors.New("network error")

	// ErrPersistence indicates the local preference storage could not be read or written.
	ErrPersistence = errors.New("persistence error")

	// ErrUnexpectedResponse indicates a response body that does not match the endpoint schema.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrIncompleteCode indicates an OTP submission before all slots are filled.
	ErrIncompleteCode = errors.New("incomplete code")

	// ErrCooldownActive indicates a resend attempt while the cooldown is still running.
	ErrCooldownActive = errors.New("cooldown active")

	// ErrInvalidInput indicates a programming-level misuse (empty key, empty value, bad argument).
	ErrInvalidInput = errors.New("invalid input")
)
