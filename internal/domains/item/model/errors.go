package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrItemNotFound is returned when the referenced library item does not exist.
	ErrItemNotFound = errors.New("library item not found")

	// ErrItemNotAvailable is returned when a checkout is attempted with no
	// available copies left.
	ErrItemNotAvailable = errors.New("library item is not available")

	// ErrInvalidTotalCopies is returned when an item is created with a
	// non-positive copy count.
	ErrInvalidTotalCopies = errors.New("total copies must be greater than zero")
)

// NewItemNotFoundError creates a detailed not found error.
func NewItemNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrItemNotFound, id)
}

// NewItemNotAvailableError creates a detailed availability error.
func NewItemNotAvailableError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrItemNotAvailable, id)
}
