package stubserver

import (
	"errors"
	"net/http"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/validator"
)

func (s *Server) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	err := s.encodeJSON(w, http.StatusOK, s.store.listBooks(), nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var book data.Book
	if err := s.decodeJSON(w, r, &book); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	data.ValidateBook(v, &book)
	if v.Valid() {
		s.resolveBookRefs(&book, v)
	}
	if !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	created := s.store.createBook(book)
	err := s.encodeJSON(w, http.StatusCreated, created, nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "bookId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	var book data.Book
	if err := s.decodeJSON(w, r, &book); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	data.ValidateBook(v, &book)
	if v.Valid() {
		s.resolveBookRefs(&book, v)
	}
	if !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	updated, err := s.store.updateBook(id, book)
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

func (s *Server) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "bookId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	if err := s.store.deleteBook(id); err != nil {
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

// resolveBookRefs swaps the id-only author, publisher and category references
// in an incoming book for the full stored records, collecting a validation
// error for any reference that does not exist.
func (s *Server) resolveBookRefs(book *data.Book, v *validator.Validator) {
	if author, ok := s.store.findAuthor(book.Author.ID); ok {
		book.Author = author
	} else {
		v.AddError("author", "referenced author does not exist")
	}
	if publisher, ok := s.store.findPublisher(book.Publisher.ID); ok {
		book.Publisher = publisher
	} else {
		v.AddError("publisher", "referenced publisher does not exist")
	}
	for i := range book.Categories {
		if category, ok := s.store.findCategory(book.Categories[i].ID); ok {
			book.Categories[i] = category
		} else {
			v.AddError("categories", "a referenced category does not exist")
		}
	}
}
