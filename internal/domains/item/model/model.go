package model

import (
	"github.com/google/uuid"

	bookModel "library-manager/internal/domains/book/model"
)

// LibraryItem is the pool of physical copies of one book.
// total_copies is fixed at creation; available_copies is mutated only by
// the loan service during checkout and return.
type LibraryItem struct {
	ID              uuid.UUID `db:"id"`
	BookID          uuid.UUID `db:"book_id"`
	TotalCopies     int       `db:"total_copies"`
	AvailableCopies int       `db:"available_copies"`
}

// LibraryItemWithBook is the denormalized read view for listings: each
// item carries its book's current fields so no follow-up lookup is needed.
type LibraryItemWithBook struct {
	LibraryItem
	Book bookModel.Book
}
