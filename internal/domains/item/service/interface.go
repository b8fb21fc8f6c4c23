package service

import (
	"context"

	"library-manager/internal/domains/item/model"
)

// ServiceInterface defines library item business operations.
type ServiceInterface interface {
	CreateLibraryItem(ctx context.Context, req model.CreateLibraryItemRequest) (*model.LibraryItemResponse, error)
	ListLibraryItems(ctx context.Context, req model.ListLibraryItemsRequest) (*model.ListLibraryItemsResponse, error)
}
