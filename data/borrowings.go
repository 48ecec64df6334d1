package data

import (
	"encoding/json"
	"time"

	"github.com/emzola/biblioadmin/internal/validator"
)

// BookSnapshot is the copy of the borrowed book's fields taken when a borrowing
// is created. It is intentionally stale afterwards: the snapshot records the
// book as it was at creation time, with the stock value already decremented.
type BookSnapshot struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	PublicationYear int32  `json:"publicationYear"`
	Stock           int32  `json:"stock"`
}

// Borrowing defines a borrowing record. An unset ReturnDate means the loan is
// still open.
type Borrowing struct {
	ID            int64
	BorrowerName  string
	BorrowerMail  string
	BorrowingDate string
	ReturnDate    string
	Book          BookSnapshot
}

func (b Borrowing) EntityID() int64 { return b.ID }

// The borrow API takes the book snapshot under a different key than it returns
// it: requests carry bookForBorrowingRequest, responses carry book. The
// marshaller pair below encodes that asymmetry so the resource client can stay
// single-typed.

func (b Borrowing) MarshalJSON() ([]byte, error) {
	aux := struct {
		ID            int64        `json:"id,omitempty"`
		BorrowerName  string       `json:"borrowerName"`
		BorrowerMail  string       `json:"borrowerMail"`
		BorrowingDate string       `json:"borrowingDate"`
		ReturnDate    string       `json:"returnDate,omitempty"`
		Book          BookSnapshot `json:"bookForBorrowingRequest"`
	}{
		ID:            b.ID,
		BorrowerName:  b.BorrowerName,
		BorrowerMail:  b.BorrowerMail,
		BorrowingDate: b.BorrowingDate,
		ReturnDate:    b.ReturnDate,
		Book:          b.Book,
	}
	return json.Marshal(aux)
}

func (b *Borrowing) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID            int64        `json:"id"`
		BorrowerName  string       `json:"borrowerName"`
		BorrowerMail  string       `json:"borrowerMail"`
		BorrowingDate string       `json:"borrowingDate"`
		ReturnDate    string       `json:"returnDate"`
		Book          BookSnapshot `json:"book"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*b = Borrowing{
		ID:            aux.ID,
		BorrowerName:  aux.BorrowerName,
		BorrowerMail:  aux.BorrowerMail,
		BorrowingDate: aux.BorrowingDate,
		ReturnDate:    aux.ReturnDate,
		Book:          aux.Book,
	}
	return nil
}

// ValidateBorrowing checks the borrower form fields. The book reference is
// checked separately by the borrowing page so that the "choose a book" and
// "out of stock" notices keep their own messages.
func ValidateBorrowing(v *validator.Validator, borrowing *Borrowing) {
	v.Check(borrowing.BorrowerName != "", "borrowerName", "must be provided")
	v.Check(borrowing.BorrowerMail != "", "borrowerMail", "must be provided")
	if borrowing.BorrowerMail != "" {
		v.Check(validator.Matches(borrowing.BorrowerMail, validator.EmailRX), "borrowerMail", "must be a valid email address")
	}
	v.Check(borrowing.BorrowingDate != "", "borrowingDate", "must be provided")
	if borrowing.BorrowingDate != "" {
		_, err := time.Parse(DateLayout, borrowing.BorrowingDate)
		v.Check(err == nil, "borrowingDate", "must be a valid date in YYYY-MM-DD format")
	}
	if borrowing.ReturnDate != "" {
		_, err := time.Parse(DateLayout, borrowing.ReturnDate)
		v.Check(err == nil, "returnDate", "must be a valid date in YYYY-MM-DD format")
	}
}
