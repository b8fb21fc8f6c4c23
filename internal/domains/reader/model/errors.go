package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrReaderNotFound is returned when the referenced reader does not exist.
	ErrReaderNotFound = errors.New("reader not found")

	// ErrEmailAlreadyExists is returned when registering with an email that
	// another reader already uses.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// NewReaderNotFoundError creates a detailed not found error.
func NewReaderNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrReaderNotFound, id)
}

// NewDuplicateEmailError creates a detailed duplicate email error.
func NewDuplicateEmailError(email string) error {
	return fmt.Errorf("%w: %s", ErrEmailAlreadyExists, email)
}
