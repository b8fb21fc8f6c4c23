package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Constants for validation
const (
	MaxTitleLength  = 255
	MaxAuthorLength = 100
	MinYear         = 1
	MaxYear         = 9999
)

// isbnPattern accepts ISBN-10 ("0451524934") and ISBN-13 ("9780451524935")
// in canonical digits-only form, with "X" allowed as the ISBN-10 check digit.
var isbnPattern = regexp.MustCompile(`^(?:[0-9]{9}[0-9Xx]|97[89][0-9]{10})$`)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"publishedYear"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author cannot be empty"),
			validation.Length(1, MaxAuthorLength),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn cannot be empty"),
			validation.Match(isbnPattern).Error("invalid ISBN"),
		),
		validation.Field(&r.PublishedYear,
			validation.Required.Error("publication year is required"),
			validation.Min(MinYear).Error("publication year must be positive"),
			validation.Max(MaxYear).Error("publication year must be valid"),
		),
	)
}

// UpdateBookRequest - PUT /v1/books/:id
// The update overwrites every field; all of them are required.
type UpdateBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"publishedYear"`
}

func (r UpdateBookRequest) Validate() error {
	return CreateBookRequest(r).Validate()
}

// BookResponse - basic book information
type BookResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	PublishedYear int       `json:"publishedYear"`
}

// ListBooksRequest - query parameters for GET /v1/books
type ListBooksRequest struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	SortBy string `form:"sort_by"` // title, author, published_year
	Order  string `form:"order"`  // asc, desc
}

// ListBooksResponse - paginated list response
type ListBooksResponse struct {
	Items      []BookResponse `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPages int            `json:"total_pages"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

// MessageResponse - plain confirmation payload (delete)
type MessageResponse struct {
	Message string `json:"message"`
}

// Conversion methods

// ToResponse converts a Book entity to its response DTO.
func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		PublishedYear: b.PublishedYear,
	}
}

// ToResponseList converts a slice of entities to response DTOs.
func ToResponseList(books []Book) []BookResponse {
	items := make([]BookResponse, len(books))
	for i, b := range books {
		items[i] = b.ToResponse()
	}
	return items
}

// ToEntity converts CreateBookRequest to a Book entity with a fresh id.
func (r CreateBookRequest) ToEntity() *Book {
	return &Book{
		ID:            uuid.New(),
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		PublishedYear: r.PublishedYear,
	}
}
