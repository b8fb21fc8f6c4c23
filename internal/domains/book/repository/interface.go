package repository

import (
	"context"

	"github.com/google/uuid"

	"library-manager/internal/domains/book/model"
)

// RepositoryInterface defines data access for the book catalog.
type RepositoryInterface interface {
	// Create inserts a new book. Returns model.ErrISBNAlreadyExists when
	// the unique constraint on isbn fires.
	Create(ctx context.Context, book *model.Book) error

	// GetByID returns the book or model.ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// List returns one page of books plus the total count.
	// Ordering is deterministic: the requested sort column, then id.
	List(ctx context.Context, req model.ListBooksRequest) ([]model.Book, int, error)

	// ExistsByISBN reports whether any book uses the ISBN.
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// ExistsByISBNExcept reports whether a different book uses the ISBN.
	ExistsByISBNExcept(ctx context.Context, isbn string, excludeID uuid.UUID) (bool, error)

	// HasLibraryItems reports whether any library item references the book.
	HasLibraryItems(ctx context.Context, id uuid.UUID) (bool, error)

	// Update overwrites all fields. Returns model.ErrBookNotFound when the
	// id is unknown, model.ErrISBNAlreadyExists on a unique violation.
	Update(ctx context.Context, book *model.Book) error

	// Delete removes the book. Returns model.ErrBookNotFound when the id is
	// unknown, model.ErrBookHasItems when library items still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
