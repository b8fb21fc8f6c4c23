package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	bookModel "library-manager/internal/domains/book/model"
)

// CreateLibraryItemRequest - POST /v1/library-items
type CreateLibraryItemRequest struct {
	BookID      uuid.UUID `json:"bookId"`
	TotalCopies int       `json:"totalCopies"`
}

func (r CreateLibraryItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID,
			validation.By(requiredUUID("book id is required")),
		),
		validation.Field(&r.TotalCopies,
			validation.Required.Error("total copies is required"),
			validation.Min(1).Error("total copies must be greater than zero"),
		),
	)
}

// requiredUUID rejects the zero UUID, which ozzo's Required rule does not
// catch for fixed-size array types.
func requiredUUID(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		id, ok := value.(uuid.UUID)
		if !ok || id == uuid.Nil {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}

// LibraryItemResponse embeds the book snapshot so listing clients do not
// need a follow-up lookup.
type LibraryItemResponse struct {
	ID              uuid.UUID              `json:"id"`
	Book            bookModel.BookResponse `json:"book"`
	TotalCopies     int                    `json:"totalCopies"`
	AvailableCopies int                    `json:"availableCopies"`
}

// ListLibraryItemsRequest - query parameters for GET /v1/library-items
type ListLibraryItemsRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// ListLibraryItemsResponse - paginated list response
type ListLibraryItemsResponse struct {
	Items      []LibraryItemResponse `json:"items"`
	TotalItems int                   `json:"total_items"`
	TotalPages int                   `json:"total_pages"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}

// ToResponse converts the joined read view to its response DTO.
func (i LibraryItemWithBook) ToResponse() LibraryItemResponse {
	return LibraryItemResponse{
		ID:              i.ID,
		Book:            i.Book.ToResponse(),
		TotalCopies:     i.TotalCopies,
		AvailableCopies: i.AvailableCopies,
	}
}

// ToResponseList converts a slice of read views to response DTOs.
func ToResponseList(items []LibraryItemWithBook) []LibraryItemResponse {
	out := make([]LibraryItemResponse, len(items))
	for i, item := range items {
		out[i] = item.ToResponse()
	}
	return out
}
