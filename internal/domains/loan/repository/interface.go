package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-manager/internal/domains/loan/model"
)

// RepositoryInterface defines loan data access operations. Checkout and
// MarkReturned run inside transactions that serialize on the item row, so
// the availability counter and the loan record always move together.
type RepositoryInterface interface {
	Checkout(ctx context.Context, loan *model.Loan) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error)
	MarkReturned(ctx context.Context, loanID, itemID uuid.UUID, returnedAt time.Time) error
	ListByReader(ctx context.Context, req model.ListLoansRequest) ([]model.Loan, int, error)
}
