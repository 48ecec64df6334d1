package stubserver

import (
	"errors"
	"net/http"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/validator"
)

func (s *Server) listAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	err := s.encodeJSON(w, http.StatusOK, s.store.listAuthors(), nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) createAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var author data.Author
	if err := s.decodeJSON(w, r, &author); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	if data.ValidateAuthor(v, &author); !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	created := s.store.createAuthor(author)
	err := s.encodeJSON(w, http.StatusCreated, created, nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) updateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "authorId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	var author data.Author
	if err := s.decodeJSON(w, r, &author); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	if data.ValidateAuthor(v, &author); !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	updated, err := s.store.updateAuthor(id, author)
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

func (s *Server) deleteAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "authorId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	if err := s.store.deleteAuthor(id); err != nil {
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
