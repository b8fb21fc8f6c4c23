package model

import (
	"time"

	"github.com/google/uuid"
)

// Reader is a registered borrower. Email is unique across readers.
type Reader struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	RegisteredAt time.Time `db:"registered_at"`
}
