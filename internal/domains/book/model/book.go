package model

import (
	"github.com/google/uuid"
)

// Book represents the database entity for the books table.
type Book struct {
	ID            uuid.UUID `db:"id"`
	Title         string    `db:"title"`
	Author        string    `db:"author"`
	ISBN          string    `db:"isbn"`
	PublishedYear int       `db:"published_year"`
}
