package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	itemModel "library-manager/internal/domains/item/model"
	"library-manager/internal/domains/loan/model"
	"library-manager/pkg/database"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// Checkout atomically claims one available copy and records the loan.
// The item row is locked first, so concurrent checkouts of the last copy
// serialize and exactly one of them wins.
func (r *postgresRepository) Checkout(ctx context.Context, loan *model.Loan) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var available int
		err := tx.QueryRow(ctx,
			"SELECT available_copies FROM library_items WHERE id = $1 FOR UPDATE",
			loan.LibraryItemID,
		).Scan(&available)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return itemModel.NewItemNotFoundError(loan.LibraryItemID)
			}
			return fmt.Errorf("failed to lock library item: %w", err)
		}

		if available <= 0 {
			return itemModel.NewItemNotAvailableError(loan.LibraryItemID)
		}

		_, err = tx.Exec(ctx,
			"UPDATE library_items SET available_copies = available_copies - 1 WHERE id = $1",
			loan.LibraryItemID,
		)
		if err != nil {
			return fmt.Errorf("failed to decrement available copies: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO loans (id, reader_id, library_item_id, loan_date, return_date)
			VALUES ($1, $2, $3, $4, NULL)
		`,
			loan.ID,
			loan.ReaderID,
			loan.LibraryItemID,
			loan.LoanDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert loan: %w", err)
		}

		return nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error) {
	query := `
		SELECT id, reader_id, library_item_id, loan_date, return_date
		FROM loans
		WHERE id = $1
	`

	var loan model.Loan
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&loan.ID,
		&loan.ReaderID,
		&loan.LibraryItemID,
		&loan.LoanDate,
		&loan.ReturnDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewLoanNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get loan by id: %w", err)
	}

	return &loan, nil
}

// MarkReturned atomically closes the loan and releases its copy. The item
// row is locked in the same order as Checkout to avoid deadlocks; a
// vanished item surfaces as not found before the loan is touched. The
// conditional update on return_date is the backstop against double
// returns racing past the service-level check.
func (r *postgresRepository) MarkReturned(ctx context.Context, loanID, itemID uuid.UUID, returnedAt time.Time) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var locked int
		err := tx.QueryRow(ctx,
			"SELECT 1 FROM library_items WHERE id = $1 FOR UPDATE",
			itemID,
		).Scan(&locked)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return itemModel.NewItemNotFoundError(itemID)
			}
			return fmt.Errorf("failed to lock library item: %w", err)
		}

		result, err := tx.Exec(ctx,
			"UPDATE loans SET return_date = $2 WHERE id = $1 AND return_date IS NULL",
			loanID,
			returnedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to close loan: %w", err)
		}

		if result.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx,
				"SELECT EXISTS(SELECT 1 FROM loans WHERE id = $1)",
				loanID,
			).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check loan existence: %w", err)
			}
			if exists {
				return model.NewLoanAlreadyReturnedError(loanID)
			}
			return model.NewLoanNotFoundError(loanID)
		}

		_, err = tx.Exec(ctx,
			"UPDATE library_items SET available_copies = available_copies + 1 WHERE id = $1",
			itemID,
		)
		if err != nil {
			return fmt.Errorf("failed to increment available copies: %w", err)
		}

		return nil
	})
}

func (r *postgresRepository) ListByReader(ctx context.Context, req model.ListLoansRequest) ([]model.Loan, int, error) {
	var totalCount int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM loans WHERE reader_id = $1",
		req.ReaderID,
	).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	query := `
		SELECT id, reader_id, library_item_id, loan_date, return_date
		FROM loans
		WHERE reader_id = $1
		ORDER BY loan_date DESC, id ASC
		LIMIT $2 OFFSET $3
	`

	offset := (req.Page - 1) * req.Limit
	rows, err := r.pool.Query(ctx, query, req.ReaderID, req.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]model.Loan, 0, req.Limit)
	for rows.Next() {
		var loan model.Loan
		err := rows.Scan(
			&loan.ID,
			&loan.ReaderID,
			&loan.LibraryItemID,
			&loan.LoanDate,
			&loan.ReturnDate,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating loan rows: %w", err)
	}

	return loans, totalCount, nil
}
