package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-manager/internal/domains/reader/model"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, reader *model.Reader) error {
	query := `
		INSERT INTO readers (id, name, email, registered_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		reader.ID,
		reader.Name,
		reader.Email,
		reader.RegisteredAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.NewDuplicateEmailError(reader.Email)
		}
		return fmt.Errorf("failed to insert reader: %w", err)
	}

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM readers WHERE id = $1)"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check reader existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM readers WHERE email = $1)"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check reader email existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context, req model.ListReadersRequest) ([]model.Reader, int, error) {
	var totalCount int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM readers").Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count readers: %w", err)
	}

	query := `
		SELECT id, name, email, registered_at
		FROM readers
		ORDER BY registered_at ASC, id ASC
		LIMIT $1 OFFSET $2
	`

	offset := (req.Page - 1) * req.Limit
	rows, err := r.pool.Query(ctx, query, req.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list readers: %w", err)
	}
	defer rows.Close()

	readers := make([]model.Reader, 0, req.Limit)
	for rows.Next() {
		var reader model.Reader
		if err := rows.Scan(&reader.ID, &reader.Name, &reader.Email, &reader.RegisteredAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan reader row: %w", err)
		}
		readers = append(readers, reader)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating reader rows: %w", err)
	}

	return readers, totalCount, nil
}
