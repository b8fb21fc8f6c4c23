package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrBookNotFound is returned when the referenced book does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrISBNAlreadyExists is returned when another book already uses the ISBN.
	ErrISBNAlreadyExists = errors.New("ISBN already exists")

	// ErrBookHasItems is returned when deleting a book that still has
	// library items referencing it.
	ErrBookHasItems = errors.New("book has library items and cannot be deleted")

	// ErrInvalidSort is returned for an unknown sort column.
	ErrInvalidSort = errors.New("invalid sort parameter")
)

// NewBookNotFoundError creates a detailed not found error.
func NewBookNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrBookNotFound, id)
}

// NewDuplicateISBNError creates a detailed duplicate ISBN error.
func NewDuplicateISBNError(isbn string) error {
	return fmt.Errorf("%w: isbn=%s", ErrISBNAlreadyExists, isbn)
}

// IsNotFoundError checks if err is a book not found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrBookNotFound)
}
