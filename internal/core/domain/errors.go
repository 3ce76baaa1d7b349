package domain

import "errors"

// Error kinds. Every specific error below wraps exactly one of them, so
// callers can branch on the kind with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Auth.
var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid email or password")
	ErrInvalidToken       = newError(ErrUnauthorized, "invalid or expired token")
	ErrEmailTaken         = newError(ErrConflict, "email is already registered")
	ErrUserNotFound       = newError(ErrNotFound, "user not found")
)

// Input.
var (
	ErrInvalidInput      = newError(ErrValidation, "invalid input")
	ErrInvalidCity       = newError(ErrValidation, "invalid city")
	ErrInvalidCategory   = newError(ErrValidation, "invalid category")
	ErrInvalidRole       = newError(ErrValidation, "invalid role")
	ErrDeadlineNotFuture = newError(ErrValidation, "deadline must be in the future")
	ErrInvalidBudget     = newError(ErrValidation, "budget must be greater than 0")
	ErrInvalidPrice      = newError(ErrValidation, "offered price must be greater than 0")
	ErrInvalidPagination = newError(ErrValidation, "limit and skip must not be negative")
)

// Tasks and applications.
var (
	ErrTaskNotFound         = newError(ErrNotFound, "task not found")
	ErrSelfApplication      = newError(ErrForbidden, "cannot apply to your own task")
	ErrNotTaskOwner         = newError(ErrForbidden, "only the task poster can view its applications")
	ErrRoleNotSelected      = newError(ErrForbidden, "current role does not allow this operation")
	ErrDuplicateApplication = newError(ErrConflict, "you have already applied to this task")
)
