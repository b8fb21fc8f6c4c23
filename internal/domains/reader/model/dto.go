package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateReaderRequest - POST /v1/readers
type CreateReaderRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r CreateReaderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100).Error("name must be between 2 and 100 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Length(0, 255).Error("email must be at most 255 characters"),
			is.EmailFormat.Error("email must be a valid address"),
		),
	)
}

// ReaderResponse - reader payload returned to clients
type ReaderResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// ListReadersRequest - query parameters for GET /v1/readers
type ListReadersRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// ListReadersResponse - paginated list response
type ListReadersResponse struct {
	Items      []ReaderResponse `json:"items"`
	TotalItems int              `json:"total_items"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// ToEntity builds a new Reader from the create request.
func (r CreateReaderRequest) ToEntity(registeredAt time.Time) *Reader {
	return &Reader{
		ID:           uuid.New(),
		Name:         r.Name,
		Email:        r.Email,
		RegisteredAt: registeredAt,
	}
}

// ToResponse converts the entity to its response DTO.
func (r Reader) ToResponse() ReaderResponse {
	return ReaderResponse{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		RegisteredAt: r.RegisteredAt,
	}
}

// ToResponseList converts a slice of entities to response DTOs.
func ToResponseList(readers []Reader) []ReaderResponse {
	out := make([]ReaderResponse, len(readers))
	for i, reader := range readers {
		out[i] = reader.ToResponse()
	}
	return out
}
