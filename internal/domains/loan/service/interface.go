package service

import (
	"context"

	"github.com/google/uuid"

	"library-manager/internal/domains/loan/model"
)

// ServiceInterface defines loan business operations.
type ServiceInterface interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (*model.LoanResponse, error)
	ReturnLoan(ctx context.Context, loanID uuid.UUID) (*model.LoanResponse, error)
	ListLoansForReader(ctx context.Context, req model.ListLoansRequest) (*model.ListLoansResponse, error)
}
