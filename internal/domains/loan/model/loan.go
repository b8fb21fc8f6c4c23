package model

import (
	"time"

	"github.com/google/uuid"
)

// Loan records one reader borrowing one copy of a library item.
// ReturnDate is nil while the loan is active; once set it never changes,
// and the copy it held is back in the item's available pool.
type Loan struct {
	ID            uuid.UUID  `db:"id"`
	ReaderID      uuid.UUID  `db:"reader_id"`
	LibraryItemID uuid.UUID  `db:"library_item_id"`
	LoanDate      time.Time  `db:"loan_date"`
	ReturnDate    *time.Time `db:"return_date"`
}

// Returned reports whether the loan has been closed.
func (l *Loan) Returned() bool {
	return l.ReturnDate != nil
}
