package service

import (
	"context"

	"library-manager/internal/domains/reader/model"
)

// ServiceInterface defines reader business operations.
type ServiceInterface interface {
	CreateReader(ctx context.Context, req model.CreateReaderRequest) (*model.ReaderResponse, error)
	ListReaders(ctx context.Context, req model.ListReadersRequest) (*model.ListReadersResponse, error)
}
