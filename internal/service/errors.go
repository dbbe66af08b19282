package service

import "errors"

// Error taxonomy. Handlers match these with errors.Is and map them to HTTP
// statuses; all are detected before any persistence write.
var (
	// ErrNotFound: a referenced entity or invite code does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: the actor is not allowed to perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState: a lifecycle transition was attempted from the wrong
	// source state. The operation is a no-op; nothing is mutated.
	ErrInvalidState = errors.New("invalid state")

	// ErrEmailTaken: signup with an email that is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrValidation: request payload fails a domain rule (for example
	// endDate before startDate).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials: login with a wrong email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
