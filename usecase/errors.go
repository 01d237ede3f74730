package usecase

import "errors"

// ErrInvalidCredentials covers both unknown-username and wrong-password
// logins so the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError is a request-level validation failure. Its message is safe
// to return to the caller.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(msg string) error {
	return &ValidationError{msg: msg}
}
