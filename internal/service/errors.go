package service

import "errors"

// Failure kinds. Callers classify with errors.Is; the transport layer maps
// each kind to a status code.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupported         = errors.New("unsupported")
	ErrTooLarge            = errors.New("too large")
	ErrConflict            = errors.New("conflict")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrServerMisconfigured = errors.New("server misconfigured")
	ErrUploadFailed        = errors.New("upload failed")
)

// Error pairs a failure kind with a human-readable detail. Error() returns
// just the detail so transport responses stay clean, while Unwrap keeps the
// kind reachable for errors.Is.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, detail string) error {
	return &Error{Kind: kind, Detail: detail}
}
