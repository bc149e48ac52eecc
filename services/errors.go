package services

import "errors"

// Business-rule failure categories raised at the service boundary. The API
// layer maps them onto HTTP status codes with errors.Is.
var (
	// ErrNotFound covers both genuinely missing records and records the
	// caller has no visibility of. The two are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks callers acting on records they do not own and lack
	// the role to touch.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict marks validation and business-rule conflicts such as
	// duplicate emails or deleting entities with dependents.
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials marks failed authentication. Unknown email and
	// wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// serviceError pairs a failure category with a user-facing message. The
// category stays reachable through errors.Is while Error() returns only the
// message.
type serviceError struct {
	kind    error
	message string
}

func (e *serviceError) Error() string { return e.message }

func (e *serviceError) Unwrap() error { return e.kind }

func notFound(message string) error {
	return &serviceError{kind: ErrNotFound, message: message}
}

func forbidden(message string) error {
	return &serviceError{kind: ErrForbidden, message: message}
}

func conflict(message string) error {
	return &serviceError{kind: ErrConflict, message: message}
}
