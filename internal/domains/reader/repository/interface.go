package repository

import (
	"context"

	"github.com/google/uuid"

	"library-manager/internal/domains/reader/model"
)

// RepositoryInterface defines reader data access operations.
type RepositoryInterface interface {
	Create(ctx context.Context, reader *model.Reader) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, req model.ListReadersRequest) ([]model.Reader, int, error)
}
