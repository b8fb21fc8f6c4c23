package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	itemModel "library-manager/internal/domains/item/model"
	"library-manager/internal/domains/loan/model"
	readerModel "library-manager/internal/domains/reader/model"
)

// fakeLoanRepo keeps loans and item availability in memory, mirroring the
// transactional behavior of the real repository: the availability check,
// the counter move and the loan write happen as one step.
type fakeLoanRepo struct {
	loans     map[uuid.UUID]model.Loan
	available map[uuid.UUID]int
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{
		loans:     make(map[uuid.UUID]model.Loan),
		available: make(map[uuid.UUID]int),
	}
}

func (f *fakeLoanRepo) Checkout(_ context.Context, loan *model.Loan) error {
	available, ok := f.available[loan.LibraryItemID]
	if !ok {
		return itemModel.NewItemNotFoundError(loan.LibraryItemID)
	}
	if available <= 0 {
		return itemModel.NewItemNotAvailableError(loan.LibraryItemID)
	}
	f.available[loan.LibraryItemID] = available - 1
	f.loans[loan.ID] = *loan
	return nil
}

func (f *fakeLoanRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Loan, error) {
	loan, ok := f.loans[id]
	if !ok {
		return nil, model.NewLoanNotFoundError(id)
	}
	return &loan, nil
}

func (f *fakeLoanRepo) MarkReturned(_ context.Context, loanID, itemID uuid.UUID, returnedAt time.Time) error {
	if _, ok := f.available[itemID]; !ok {
		return itemModel.NewItemNotFoundError(itemID)
	}
	loan, ok := f.loans[loanID]
	if !ok {
		return model.NewLoanNotFoundError(loanID)
	}
	if loan.ReturnDate != nil {
		return model.NewLoanAlreadyReturnedError(loanID)
	}
	loan.ReturnDate = &returnedAt
	f.loans[loanID] = loan
	f.available[itemID]++
	return nil
}

func (f *fakeLoanRepo) ListByReader(_ context.Context, req model.ListLoansRequest) ([]model.Loan, int, error) {
	matched := make([]model.Loan, 0)
	for _, loan := range f.loans {
		if loan.ReaderID == req.ReaderID {
			matched = append(matched, loan)
		}
	}

	total := len(matched)
	start := (req.Page - 1) * req.Limit
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// fakeReaderRepo tracks a set of known reader ids.
type fakeReaderRepo struct {
	ids map[uuid.UUID]bool
}

func (f *fakeReaderRepo) Create(_ context.Context, _ *readerModel.Reader) error { return nil }

func (f *fakeReaderRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return f.ids[id], nil
}

func (f *fakeReaderRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeReaderRepo) List(_ context.Context, _ readerModel.ListReadersRequest) ([]readerModel.Reader, int, error) {
	return nil, 0, nil
}

func setupLoanService(copies int) (ServiceInterface, *fakeLoanRepo, uuid.UUID, uuid.UUID) {
	loanRepo := newFakeLoanRepo()
	itemID := uuid.New()
	loanRepo.available[itemID] = copies

	readerID := uuid.New()
	readerRepo := &fakeReaderRepo{ids: map[uuid.UUID]bool{readerID: true}}

	return NewService(loanRepo, readerRepo), loanRepo, readerID, itemID
}

func TestCreateLoan(t *testing.T) {
	svc, loanRepo, readerID, itemID := setupLoanService(2)

	resp, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      readerID,
		LibraryItemID: itemID,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, readerID, resp.ReaderID)
	assert.False(t, resp.LoanDate.IsZero())
	assert.Nil(t, resp.ReturnDate)
	assert.Equal(t, 1, loanRepo.available[itemID])
}

func TestCreateLoan_UnknownReader(t *testing.T) {
	svc, _, _, itemID := setupLoanService(1)

	_, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      uuid.New(),
		LibraryItemID: itemID,
	})
	assert.ErrorIs(t, err, readerModel.ErrReaderNotFound)
}

func TestCreateLoan_UnknownItem(t *testing.T) {
	svc, _, readerID, _ := setupLoanService(1)

	_, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      readerID,
		LibraryItemID: uuid.New(),
	})
	assert.ErrorIs(t, err, itemModel.ErrItemNotFound)
}

func TestCreateLoan_NoAvailableCopies(t *testing.T) {
	svc, loanRepo, readerID, itemID := setupLoanService(1)

	_, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      readerID,
		LibraryItemID: itemID,
	})
	require.NoError(t, err)

	// The last copy is out, so the next checkout must fail.
	_, err = svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      readerID,
		LibraryItemID: itemID,
	})
	assert.ErrorIs(t, err, itemModel.ErrItemNotAvailable)
	assert.Equal(t, 0, loanRepo.available[itemID])
	assert.Len(t, loanRepo.loans, 1)
}

func TestReturnLoan(t *testing.T) {
	svc, loanRepo, readerID, itemID := setupLoanService(1)

	created, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      readerID,
		LibraryItemID: itemID,
	})
	require.NoError(t, err)

	returned, err := svc.ReturnLoan(context.Background(), created.ID)
	require.NoError(t, err)

	assert.NotNil(t, returned.ReturnDate)
	assert.Equal(t, 1, loanRepo.available[itemID])

	// The released copy can be checked out again.
	_, err = svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      readerID,
		LibraryItemID: itemID,
	})
	assert.NoError(t, err)
}

func TestReturnLoan_Twice(t *testing.T) {
	svc, loanRepo, readerID, itemID := setupLoanService(1)

	created, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      readerID,
		LibraryItemID: itemID,
	})
	require.NoError(t, err)

	first, err := svc.ReturnLoan(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.ReturnLoan(context.Background(), created.ID)
	assert.ErrorIs(t, err, model.ErrLoanAlreadyReturned)

	// Availability is released exactly once and the original return
	// date is untouched.
	assert.Equal(t, 1, loanRepo.available[itemID])
	stored := loanRepo.loans[created.ID]
	require.NotNil(t, stored.ReturnDate)
	assert.Equal(t, *first.ReturnDate, *stored.ReturnDate)
}

func TestReturnLoan_ItemVanished(t *testing.T) {
	svc, loanRepo, readerID, itemID := setupLoanService(1)

	created, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      readerID,
		LibraryItemID: itemID,
	})
	require.NoError(t, err)

	// The item row disappearing mid-loan should not occur under normal
	// operation, but the return must fail loudly rather than close the
	// loan against nothing.
	delete(loanRepo.available, itemID)

	_, err = svc.ReturnLoan(context.Background(), created.ID)
	assert.ErrorIs(t, err, itemModel.ErrItemNotFound)

	stored := loanRepo.loans[created.ID]
	assert.Nil(t, stored.ReturnDate)
}

func TestReturnLoan_NotFound(t *testing.T) {
	svc, _, _, _ := setupLoanService(1)

	_, err := svc.ReturnLoan(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrLoanNotFound)
}

func TestListLoansForReader(t *testing.T) {
	loanRepo := newFakeLoanRepo()
	itemID := uuid.New()
	loanRepo.available[itemID] = 10

	readerID := uuid.New()
	otherReaderID := uuid.New()
	readerRepo := &fakeReaderRepo{ids: map[uuid.UUID]bool{readerID: true, otherReaderID: true}}
	svc := NewService(loanRepo, readerRepo)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
			ReaderID:      readerID,
			LibraryItemID: itemID,
		})
		require.NoError(t, err)
	}

	other, err := svc.CreateLoan(context.Background(), model.CreateLoanRequest{
		ReaderID:      otherReaderID,
		LibraryItemID: itemID,
	})
	require.NoError(t, err)

	// Closed loans stay in the history.
	_, err = svc.ReturnLoan(context.Background(), other.ID)
	require.NoError(t, err)

	resp, err := svc.ListLoansForReader(context.Background(), model.ListLoansRequest{
		ReaderID: readerID,
		Page:     1,
		Limit:    20,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalItems)
	for _, loan := range resp.Items {
		assert.Equal(t, readerID, loan.ReaderID)
	}

	otherResp, err := svc.ListLoansForReader(context.Background(), model.ListLoansRequest{
		ReaderID: otherReaderID,
		Page:     1,
		Limit:    20,
	})
	require.NoError(t, err)
	require.Len(t, otherResp.Items, 1)
	assert.NotNil(t, otherResp.Items[0].ReturnDate)
}

func TestListLoansForReader_UnknownReader(t *testing.T) {
	svc, _, _, _ := setupLoanService(1)

	_, err := svc.ListLoansForReader(context.Background(), model.ListLoansRequest{
		ReaderID: uuid.New(),
		Page:     1,
		Limit:    20,
	})
	assert.ErrorIs(t, err, readerModel.ErrReaderNotFound)
}
