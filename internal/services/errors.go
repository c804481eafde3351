package services

import "errors"

// Error kinds. Every error returned by a service either wraps one of these
// or is an unexpected store failure.
var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("authentication failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrMissingFields      = newKindError(ErrValidation, "All fields are required")
	ErrMissingCredentials = newKindError(ErrValidation, "Email and password are required")
	ErrTitleRequired      = newKindError(ErrValidation, "Title is required")
	ErrTitleEmpty         = newKindError(ErrValidation, "Title cannot be empty")
	ErrInvalidFilter      = newKindError(ErrValidation, "Status must be one of all, active, completed")

	ErrInvalidCredentials = newKindError(ErrAuth, "Invalid credentials")

	ErrEmailTaken    = newKindError(ErrConflict, "Email already registered")
	ErrUsernameTaken = newKindError(ErrConflict, "Username already taken")

	ErrUserNotFound = newKindError(ErrNotFound, "User not found")
	ErrTodoNotFound = newKindError(ErrNotFound, "Todo not found")
)

// kindError is a client-facing error that matches its kind with errors.Is
type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
