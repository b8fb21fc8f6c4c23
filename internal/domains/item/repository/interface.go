package repository

import (
	"context"

	"github.com/google/uuid"

	"library-manager/internal/domains/item/model"
)

// RepositoryInterface defines library item data access operations.
type RepositoryInterface interface {
	Create(ctx context.Context, item *model.LibraryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.LibraryItem, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, req model.ListLibraryItemsRequest) ([]model.LibraryItemWithBook, int, error)
}
