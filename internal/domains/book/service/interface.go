package service

import (
	"context"

	"github.com/google/uuid"

	"library-manager/internal/domains/book/model"
)

// ServiceInterface defines the book catalog business logic.
type ServiceInterface interface {
	// CreateBook persists a new book.
	// Fails with model.ErrISBNAlreadyExists when the ISBN is taken.
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error)

	// ListBooks returns one deterministically ordered page.
	ListBooks(ctx context.Context, req model.ListBooksRequest) (*model.ListBooksResponse, error)

	// UpdateBook overwrites all fields of an existing book. The ISBN
	// uniqueness check is re-run only when the ISBN actually changed.
	UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) error

	// DeleteBook removes a book. Deletion is refused with
	// model.ErrBookHasItems while library items reference it.
	DeleteBook(ctx context.Context, id uuid.UUID) error
}
