package stubserver

import (
	"errors"
	"net/http"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/validator"
)

// borrowInput matches the request shape for borrowings, where the book
// snapshot travels under a different key than in responses.
type borrowInput struct {
	BorrowerName  string            `json:"borrowerName"`
	BorrowerMail  string            `json:"borrowerMail"`
	BorrowingDate string            `json:"borrowingDate"`
	ReturnDate    string            `json:"returnDate"`
	Book          data.BookSnapshot `json:"bookForBorrowingRequest"`
}

func (s *Server) listBorrowsHandler(w http.ResponseWriter, r *http.Request) {
	err := s.encodeJSON(w, http.StatusOK, s.store.listBorrows(), nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) createBorrowHandler(w http.ResponseWriter, r *http.Request) {
	var input borrowInput
	if err := s.decodeJSON(w, r, &input); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	borrowing := data.Borrowing{
		BorrowerName:  input.BorrowerName,
		BorrowerMail:  input.BorrowerMail,
		BorrowingDate: input.BorrowingDate,
		ReturnDate:    input.ReturnDate,
	}
	v := validator.New()
	data.ValidateBorrowing(v, &borrowing)
	v.Check(input.Book.ID != 0, "book", "must be provided")
	v.Check(input.Book.Stock >= 0, "book", "stock must not be negative")
	if !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	// The snapshot carries the already-decremented stock. Mirror it onto the
	// book record like the real backend does.
	s.store.setBookStock(input.Book.ID, input.Book.Stock)
	created := s.store.createBorrow(borrowRecord{
		BorrowerName:  input.BorrowerName,
		BorrowerMail:  input.BorrowerMail,
		BorrowingDate: input.BorrowingDate,
		ReturnDate:    input.ReturnDate,
		Book:          input.Book,
	})
	err := s.encodeJSON(w, http.StatusCreated, created, nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) updateBorrowHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "borrowId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	var input borrowInput
	if err := s.decodeJSON(w, r, &input); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	borrowing := data.Borrowing{
		BorrowerName:  input.BorrowerName,
		BorrowerMail:  input.BorrowerMail,
		BorrowingDate: input.BorrowingDate,
		ReturnDate:    input.ReturnDate,
	}
	v := validator.New()
	if data.ValidateBorrowing(v, &borrowing); !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	updated, err := s.store.updateBorrow(id, borrowRecord{
		BorrowerName:  input.BorrowerName,
		BorrowerMail:  input.BorrowerMail,
		BorrowingDate: input.BorrowingDate,
		ReturnDate:    input.ReturnDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errStoreNotFound):
			s.notFoundResponse(w, r)
		default:
			s.serverErrorResponse(w, r, err)
		}
		return
	}
	err = s.encodeJSON(w, http.StatusOK, updated, nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) deleteBorrowHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "borrowId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	if err := s.store.deleteBorrow(id); err != nil {
		switch {
		case errors.Is(err, errStoreNotFound):
			s.notFoundResponse(w, r)
		default:
			s.serverErrorResponse(w, r, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
