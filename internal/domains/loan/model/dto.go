package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateLoanRequest - POST /v1/loans
type CreateLoanRequest struct {
	ReaderID      uuid.UUID `json:"readerId"`
	LibraryItemID uuid.UUID `json:"libraryItemId"`
}

func (r CreateLoanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReaderID,
			validation.By(requiredUUID("reader id is required")),
		),
		validation.Field(&r.LibraryItemID,
			validation.By(requiredUUID("library item id is required")),
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

// LoanResponse - loan payload returned to clients
type LoanResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReaderID      uuid.UUID  `json:"readerId"`
	LibraryItemID uuid.UUID  `json:"libraryItemId"`
	LoanDate      time.Time  `json:"loanDate"`
	ReturnDate    *time.Time `json:"returnDate"`
}

// ListLoansRequest - query parameters for GET /v1/readers/:id/loans
type ListLoansRequest struct {
	ReaderID uuid.UUID
	Page     int `form:"page"`
	Limit    int `form:"limit"`
}

// ListLoansResponse - paginated list response
type ListLoansResponse struct {
	Items      []LoanResponse `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPages int            `json:"total_pages"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

// ToResponse converts the entity to its response DTO.
func (l Loan) ToResponse() LoanResponse {
	return LoanResponse{
		ID:            l.ID,
		ReaderID:      l.ReaderID,
		LibraryItemID: l.LibraryItemID,
		LoanDate:      l.LoanDate,
		ReturnDate:    l.ReturnDate,
	}
}

// ToResponseList converts a slice of entities to response DTOs.
func ToResponseList(loans []Loan) []LoanResponse {
	out := make([]LoanResponse, len(loans))
	for i, loan := range loans {
		out[i] = loan.ToResponse()
	}
	return out
}
