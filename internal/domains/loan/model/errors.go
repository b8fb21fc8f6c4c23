package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrLoanNotFound is returned when the referenced loan does not exist.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrLoanAlreadyReturned is returned when returning a loan that is
	// already closed.
	ErrLoanAlreadyReturned = errors.New("loan already returned")
)

// NewLoanNotFoundError creates a detailed not found error.
func NewLoanNotFoundError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrLoanNotFound, id)
}

// NewLoanAlreadyReturnedError creates a detailed already returned error.
func NewLoanAlreadyReturnedError(id uuid.UUID) error {
	return fmt.Errorf("%w: id=%s", ErrLoanAlreadyReturned, id)
}
