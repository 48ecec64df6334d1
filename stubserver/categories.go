package stubserver

import (
	"errors"
	"net/http"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/validator"
)

func (s *Server) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	err := s.encodeJSON(w, http.StatusOK, s.store.listCategories(), nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var category data.Category
	if err := s.decodeJSON(w, r, &category); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	if data.ValidateCategory(v, &category); !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	created := s.store.createCategory(category)
	err := s.encodeJSON(w, http.StatusCreated, created, nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}

func (s *Server) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "categoryId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	var category data.Category
	if err := s.decodeJSON(w, r, &category); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	v := validator.New()
	if data.ValidateCategory(v, &category); !v.Valid() {
		s.failedValidationResponse(w, r, v.Errors)
		return
	}
	updated, err := s.store.updateCategory(id, category)
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

func (s *Server) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.readIDParam(r, "categoryId")
	if err != nil {
		s.notFoundResponse(w, r)
		return
	}
	if err := s.store.deleteCategory(id); err != nil {
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
