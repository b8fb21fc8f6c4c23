package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-manager/internal/domains/loan/model"
	"library-manager/internal/domains/loan/repository"
	readerModel "library-manager/internal/domains/reader/model"
	readerRepository "library-manager/internal/domains/reader/repository"
	"library-manager/pkg/logger"
)

// LoanService implements ServiceInterface.
type LoanService struct {
	repo       repository.RepositoryInterface
	readerRepo readerRepository.RepositoryInterface
}

func NewService(
	repo repository.RepositoryInterface,
	readerRepo readerRepository.RepositoryInterface,
) ServiceInterface {
	return &LoanService{
		repo:       repo,
		readerRepo: readerRepo,
	}
}

// CreateLoan checks out one copy of an item to a reader. The reader
// lookup runs up front; the item existence and availability checks happen
// with the counter decrement inside the repository transaction.
func (s *LoanService) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (*model.LoanResponse, error) {
	exists, err := s.readerRepo.ExistsByID(ctx, req.ReaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reader: %w", err)
	}
	if !exists {
		return nil, readerModel.NewReaderNotFoundError(req.ReaderID)
	}

	loan := &model.Loan{
		ID:            uuid.New(),
		ReaderID:      req.ReaderID,
		LibraryItemID: req.LibraryItemID,
		LoanDate:      time.Now().UTC(),
	}

	if err := s.repo.Checkout(ctx, loan); err != nil {
		return nil, err
	}

	logger.Info("loan created", map[string]interface{}{
		"loan_id":   loan.ID.String(),
		"reader_id": loan.ReaderID.String(),
		"item_id":   loan.LibraryItemID.String(),
	})

	resp := loan.ToResponse()
	return &resp, nil
}

// ReturnLoan closes an active loan and releases its copy. Returning a
// loan that is already closed fails; the closed loan keeps its original
// return date.
func (s *LoanService) ReturnLoan(ctx context.Context, loanID uuid.UUID) (*model.LoanResponse, error) {
	loan, err := s.repo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	if loan.Returned() {
		return nil, model.NewLoanAlreadyReturnedError(loanID)
	}

	returnedAt := time.Now().UTC()
	if err := s.repo.MarkReturned(ctx, loanID, loan.LibraryItemID, returnedAt); err != nil {
		return nil, err
	}

	logger.Info("loan returned", map[string]interface{}{
		"loan_id": loan.ID.String(),
		"item_id": loan.LibraryItemID.String(),
	})

	loan.ReturnDate = &returnedAt
	resp := loan.ToResponse()
	return &resp, nil
}

// ListLoansForReader returns the reader's loan history, active and closed.
func (s *LoanService) ListLoansForReader(ctx context.Context, req model.ListLoansRequest) (*model.ListLoansResponse, error) {
	exists, err := s.readerRepo.ExistsByID(ctx, req.ReaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reader: %w", err)
	}
	if !exists {
		return nil, readerModel.NewReaderNotFoundError(req.ReaderID)
	}

	loans, totalCount, err := s.repo.ListByReader(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	totalPages := (totalCount + req.Limit - 1) / req.Limit

	return &model.ListLoansResponse{
		Items:      model.ToResponseList(loans),
		TotalItems: totalCount,
		TotalPages: totalPages,
		Page:       req.Page,
		Limit:      req.Limit,
	}, nil
}
