package stubserver

import (
	"errors"
	"net/http"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/validator"
)

func (s *Server) listPublishersHandler(w http.ResponseWriter, r *http.Request) {
	err := s.encodeJSON(w, http.StatusOK, s.store.listPublishers(), nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) createPublisherHandler(w http.ResponseWriter, r *http.Request) {
	var publisher data.Publisher
	if err := s.decodeJSON(w, r, &publisher); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	if data.ValidatePublisher(v, &publisher); !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	created := s.store.createPublisher(publisher)
	err := s.encodeJSON(w, http.StatusCreated, created, nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) updatePublisherHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "publisherId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	var publisher data.Publisher
	if err := s.decodeJSON(w, r, &publisher); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	if data.ValidatePublisher(v, &publisher); !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	updated, err := s.store.updatePublisher(id, publisher)
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

func (s *Server) deletePublisherHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "publisherId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	if err := s.store.deletePublisher(id); err != nil {
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
