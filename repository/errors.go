package repository

import "errors"

var (
	// ErrNotFound means no record matched the (id, owner) pair. Foreign-owner
	// lookups surface this too; existence is never leaked.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID means the identifier is not a well-formed ObjectID hex.
	ErrInvalidID = errors.New("invalid record id")

	// ErrDuplicateUsername means the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)
