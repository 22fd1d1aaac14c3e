package domain

import "errors"

var (
	// ErrNotFound signals a lookup by id or location matched nothing.
	ErrNotFound = errors.New("cafe not found")
	// ErrDuplicateName signals the unique index on name rejected an insert.
	ErrDuplicateName = errors.New("cafe name already exists")
	// ErrEmptyStore signals a random pick was requested from zero records.
	ErrEmptyStore = errors.New("no cafes available")
	// ErrInvalidKey signals the delete secret did not match.
	ErrInvalidKey = errors.New("invalid api key")
)
