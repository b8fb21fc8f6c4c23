package service

import (
	"context"
	"fmt"
	"time"

	"library-manager/internal/domains/reader/model"
	"library-manager/internal/domains/reader/repository"
	"library-manager/pkg/logger"
)

// ReaderService implements ServiceInterface.
type ReaderService struct {
	repo repository.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &ReaderService{repo: repo}
}

// CreateReader registers a new reader. The registration timestamp is
// assigned server-side.
func (s *ReaderService) CreateReader(ctx context.Context, req model.CreateReaderRequest) (*model.ReaderResponse, error) {
	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return nil, model.NewDuplicateEmailError(req.Email)
	}

	reader := req.ToEntity(time.Now().UTC())

	if err := s.repo.Create(ctx, reader); err != nil {
		return nil, err
	}

	logger.Info("reader registered", map[string]interface{}{
		"reader_id": reader.ID.String(),
	})

	resp := reader.ToResponse()
	return &resp, nil
}

// ListReaders returns a page of readers ordered by registration time.
func (s *ReaderService) ListReaders(ctx context.Context, req model.ListReadersRequest) (*model.ListReadersResponse, error) {
	readers, totalCount, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list readers: %w", err)
	}

	totalPages := (totalCount + req.Limit - 1) / req.Limit

	return &model.ListReadersResponse{
		Items:      model.ToResponseList(readers),
		TotalItems: totalCount,
		TotalPages: totalPages,
		Page:       req.Page,
		Limit:      req.Limit,
	}, nil
}
