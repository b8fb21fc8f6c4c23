package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-manager/internal/domains/book/model"
	"library-manager/internal/domains/book/repository"
)

type BookService struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &BookService{
		repo: repo,
	}
}

// CreateBook implements ServiceInterface.CreateBook.
func (s *BookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.BookResponse, error) {
	exists, err := s.repo.ExistsByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, fmt.Errorf("failed to check ISBN: %w", err)
	}
	if exists {
		return nil, model.NewDuplicateISBNError(req.ISBN)
	}

	book := req.ToEntity()
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	resp := book.ToResponse()
	return &resp, nil
}

// ListBooks implements ServiceInterface.ListBooks.
func (s *BookService) ListBooks(ctx context.Context, req model.ListBooksRequest) (*model.ListBooksResponse, error) {
	books, totalItems, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	totalPages := (totalItems + req.Limit - 1) / req.Limit

	return &model.ListBooksResponse{
		Items:      model.ToResponseList(books),
		TotalItems: totalItems,
		TotalPages: totalPages,
		Page:       req.Page,
		Limit:      req.Limit,
	}, nil
}

// UpdateBook implements ServiceInterface.UpdateBook.
func (s *BookService) UpdateBook(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if current.ISBN != req.ISBN {
		taken, err := s.repo.ExistsByISBNExcept(ctx, req.ISBN, id)
		if err != nil {
			return fmt.Errorf("failed to check ISBN: %w", err)
		}
		if taken {
			return model.NewDuplicateISBNError(req.ISBN)
		}
	}

	updated := &model.Book{
		ID:            id,
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
	}

	return s.repo.Update(ctx, updated)
}

// DeleteBook implements ServiceInterface.DeleteBook.
// Policy: deleting a book is forbidden while library items reference it;
// the caller has to retire the items first.
func (s *BookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	hasItems, err := s.repo.HasLibraryItems(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check library items: %w", err)
	}
	if hasItems {
		return model.ErrBookHasItems
	}

	return s.repo.Delete(ctx, id)
}
