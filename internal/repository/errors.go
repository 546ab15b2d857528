package repository

import "errors"

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user insert or update collides
	// with an existing email.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername is returned when an administrator insert collides
	// with an existing username.
	ErrDuplicateUsername = errors.New("username already exists")
)
