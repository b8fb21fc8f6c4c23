package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-manager/internal/domains/book/model"
	"library-manager/pkg/cache"
	"library-manager/pkg/logger"
)

const (
	listCacheKeyFormat = "books:list:p%d:l%d:%s:%s"
	listCachePattern   = "books:list:*"
	listCacheTTL       = 60 * time.Second
)

// sortColumns whitelists the columns exposed for sorting.
var sortColumns = map[string]string{
	"title":          "title",
	"author":         "author",
	"published_year": "published_year",
}

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool,
// with a read-aside Redis cache in front of the paged list query.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (id, title, author, isbn, published_year)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.ISBN,
		book.PublishedYear,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.NewDuplicateISBNError(book.ISBN)
		}
		return fmt.Errorf("failed to insert book: %w", err)
	}

	r.invalidateListCache(ctx)
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `
		SELECT id, title, author, isbn, published_year
		FROM books
		WHERE id = $1
	`

	var book model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.PublishedYear,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewBookNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &book, nil
}

type cachedBookPage struct {
	Books []model.Book `json:"books"`
	Total int          `json:"total"`
}

func (r *postgresRepository) List(ctx context.Context, req model.ListBooksRequest) ([]model.Book, int, error) {
	sortColumn, ok := sortColumns[req.SortBy]
	if !ok {
		return nil, 0, model.ErrInvalidSort
	}

	direction := "ASC"
	if req.Order == "desc" {
		direction = "DESC"
	}

	cacheKey := fmt.Sprintf(listCacheKeyFormat, req.Page, req.Limit, sortColumn, direction)

	var cached cachedBookPage
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Error("book list cache read failed", err)
	} else if found {
		return cached.Books, cached.Total, nil
	}

	var totalCount int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	// Tie-break on id so pages stay stable when sort keys collide.
	query := fmt.Sprintf(`
		SELECT id, title, author, isbn, published_year
		FROM books
		ORDER BY %s %s, id ASC
		LIMIT $1 OFFSET $2
	`, sortColumn, direction)

	offset := (req.Page - 1) * req.Limit
	rows, err := r.pool.Query(ctx, query, req.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0, req.Limit)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishedYear); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating book rows: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, cachedBookPage{Books: books, Total: totalCount}, listCacheTTL); err != nil {
		logger.Error("book list cache write failed", err)
	}

	return books, totalCount, nil
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ISBN existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) ExistsByISBNExcept(ctx context.Context, isbn string, excludeID uuid.UUID) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1 AND id != $2)"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, isbn, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ISBN existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) HasLibraryItems(ctx context.Context, id uuid.UUID) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM library_items WHERE book_id = $1)"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check library items for book: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
		UPDATE books
		SET title = $2, author = $3, isbn = $4, published_year = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.ISBN,
		book.PublishedYear,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.NewDuplicateISBNError(book.ISBN)
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.NewBookNotFoundError(book.ID)
	}

	r.invalidateListCache(ctx)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM books WHERE id = $1"

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			// Datastore backstop for the service-level check.
			return model.ErrBookHasItems
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.NewBookNotFoundError(id)
	}

	r.invalidateListCache(ctx)
	return nil
}

// invalidateListCache drops every cached list page after a catalog write.
// Cache failures are non-fatal: the TTL bounds staleness.
func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, listCachePattern); err != nil {
		logger.Error("book list cache invalidation failed", err)
	}
}
