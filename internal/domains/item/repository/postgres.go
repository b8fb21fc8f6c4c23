package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	bookModel "library-manager/internal/domains/book/model"
	"library-manager/internal/domains/item/model"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, item *model.LibraryItem) error {
	query := `
		INSERT INTO library_items (id, book_id, total_copies, available_copies)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.BookID,
		item.TotalCopies,
		item.AvailableCopies,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			// Datastore backstop for the service-level book lookup.
			return bookModel.NewBookNotFoundError(item.BookID)
		}
		return fmt.Errorf("failed to insert library item: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LibraryItem, error) {
	query := `
		SELECT id, book_id, total_copies, available_copies
		FROM library_items
		WHERE id = $1
	`

	var item model.LibraryItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.BookID,
		&item.TotalCopies,
		&item.AvailableCopies,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewItemNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get library item by id: %w", err)
	}

	return &item, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM library_items WHERE id = $1)"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check library item existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context, req model.ListLibraryItemsRequest) ([]model.LibraryItemWithBook, int, error) {
	var totalCount int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM library_items").Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count library items: %w", err)
	}

	query := `
		SELECT i.id, i.book_id, i.total_copies, i.available_copies,
		       b.id, b.title, b.author, b.isbn, b.published_year
		FROM library_items i
		JOIN books b ON b.id = i.book_id
		ORDER BY b.title ASC, i.id ASC
		LIMIT $1 OFFSET $2
	`

	offset := (req.Page - 1) * req.Limit
	rows, err := r.pool.Query(ctx, query, req.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list library items: %w", err)
	}
	defer rows.Close()

	items := make([]model.LibraryItemWithBook, 0, req.Limit)
	for rows.Next() {
		var item model.LibraryItemWithBook
		err := rows.Scan(
			&item.ID,
			&item.BookID,
			&item.TotalCopies,
			&item.AvailableCopies,
			&item.Book.ID,
			&item.Book.Title,
			&item.Book.Author,
			&item.Book.ISBN,
			&item.Book.PublishedYear,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan library item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating library item rows: %w", err)
	}

	return items, totalCount, nil
}
