// Package stubserver implements an in-memory stand-in for the remote library
// catalog API, used for local development and hermetic tests. It serves the
// same five-resource REST surface the admin client consumes.
package stubserver

import (
	"net/http"

	"github.com/emzola/biblioadmin/config"
	"github.com/emzola/biblioadmin/internal/jsonlog"
	"github.com/julienschmidt/httprouter"
)

// BasePath is the prefix all resource routes are mounted under.
const BasePath = "/api/v1"

// Server holds the stub's configuration, logger and in-memory store.
type Server struct {
	config config.Config
	logger *jsonlog.Logger
	store  *store
}

// New creates a stub server with an empty store.
func New(cfg config.Config, logger *jsonlog.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		store:  newStore(),
	}
}

// Routes returns the stub's handler with its middleware chain applied.
func (s *Server) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(s.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(s.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, BasePath+"/authors", s.listAuthorsHandler)
	router.HandlerFunc(http.MethodPost, BasePath+"/authors", s.createAuthorHandler)
	router.HandlerFunc(http.MethodPut, BasePath+"/authors/:authorId", s.updateAuthorHandler)
	router.HandlerFunc(http.MethodDelete, BasePath+"/authors/:authorId", s.deleteAuthorHandler)

	router.HandlerFunc(http.MethodGet, BasePath+"/publishers", s.listPublishersHandler)
	router.HandlerFunc(http.MethodPost, BasePath+"/publishers", s.createPublisherHandler)
	router.HandlerFunc(http.MethodPut, BasePath+"/publishers/:publisherId", s.updatePublisherHandler)
	router.HandlerFunc(http.MethodDelete, BasePath+"/publishers/:publisherId", s.deletePublisherHandler)

	router.HandlerFunc(http.MethodGet, BasePath+"/categories", s.listCategoriesHandler)
	router.HandlerFunc(http.MethodPost, BasePath+"/categories", s.createCategoryHandler)
	router.HandlerFunc(http.MethodPut, BasePath+"/categories/:categoryId", s.updateCategoryHandler)
	router.HandlerFunc(http.MethodDelete, BasePath+"/categories/:categoryId", s.deleteCategoryHandler)

	router.HandlerFunc(http.MethodGet, BasePath+"/books", s.listBooksHandler)
	router.HandlerFunc(http.MethodPost, BasePath+"/books", s.createBookHandler)
	router.HandlerFunc(http.MethodPut, BasePath+"/books/:bookId", s.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, BasePath+"/books/:bookId", s.deleteBookHandler)

	router.HandlerFunc(http.MethodGet, BasePath+"/borrows", s.listBorrowsHandler)
	router.HandlerFunc(http.MethodPost, BasePath+"/borrows", s.createBorrowHandler)
	router.HandlerFunc(http.MethodPut, BasePath+"/borrows/:borrowId", s.updateBorrowHandler)
	router.HandlerFunc(http.MethodDelete, BasePath+"/borrows/:borrowId", s.deleteBorrowHandler)

	router.HandlerFunc(http.MethodGet, BasePath+"/healthcheck", s.healthcheckHandler)

	return s.recoverPanic(s.logRequest(s.rateLimit(router)))
}

func (s *Server) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	health := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": s.config.Server.Env,
		},
	}
	err := s.encodeJSON(w, http.StatusOK, health, nil)
	if err != nil {
		s.serverErrorResponse(w, r, err)
	}
}
