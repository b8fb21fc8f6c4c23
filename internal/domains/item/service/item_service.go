package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	bookRepository "library-manager/internal/domains/book/repository"
	"library-manager/internal/domains/item/model"
	"library-manager/internal/domains/item/repository"
	"library-manager/pkg/logger"
)

// ItemService implements ServiceInterface.
type ItemService struct {
	repo     repository.RepositoryInterface
	bookRepo bookRepository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface, bookRepo bookRepository.RepositoryInterface) ServiceInterface {
	return &ItemService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

// CreateLibraryItem registers a pool of copies for an existing book.
// Every copy starts available.
func (s *ItemService) CreateLibraryItem(ctx context.Context, req model.CreateLibraryItemRequest) (*model.LibraryItemResponse, error) {
	if req.TotalCopies <= 0 {
		return nil, model.ErrInvalidTotalCopies
	}

	book, err := s.bookRepo.GetByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	item := &model.LibraryItem{
		ID:              uuid.New(),
		BookID:          req.BookID,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create library item: %w", err)
	}

	logger.Info("library item created", map[string]interface{}{
		"item_id": item.ID.String(),
		"book_id": book.ID.String(),
		"copies":  item.TotalCopies,
	})

	resp := model.LibraryItemWithBook{LibraryItem: *item, Book: *book}.ToResponse()
	return &resp, nil
}

// ListLibraryItems returns a page of items with their book snapshots.
func (s *ItemService) ListLibraryItems(ctx context.Context, req model.ListLibraryItemsRequest) (*model.ListLibraryItemsResponse, error) {
	items, totalCount, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list library items: %w", err)
	}

	totalPages := (totalCount + req.Limit - 1) / req.Limit

	return &model.ListLibraryItemsResponse{
		Items:      model.ToResponseList(items),
		TotalItems: totalCount,
		TotalPages: totalPages,
		Page:       req.Page,
		Limit:      req.Limit,
	}, nil
}
