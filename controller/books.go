package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/data/dto"
	"github.com/emzola/biblioadmin/internal/jsonlog"
	"github.com/emzola/biblioadmin/internal/validator"
)

// BookController is the book page: the generic controller plus the author,
// publisher and category reference lists its form needs, and a flat form
// buffer that folds back into nested references on submit.
type BookController struct {
	*Controller[data.Book]

	authorsClient    ResourceClient[data.Author]
	publishersClient ResourceClient[data.Publisher]
	categoriesClient ResourceClient[data.Category]

	authors    []data.Author
	publishers []data.Publisher
	categories []data.Category
	form       dto.BookForm
}

// NewBookController creates the book page controller.
func NewBookController(
	books ResourceClient[data.Book],
	authors ResourceClient[data.Author],
	publishers ResourceClient[data.Publisher],
	categories ResourceClient[data.Category],
	notifier Notifier,
	confirm ConfirmationPrompt,
	logger *jsonlog.Logger,
) *BookController {
	return &BookController{
		Controller:       New(BookSpec(), books, notifier, confirm, logger),
		authorsClient:    authors,
		publishersClient: publishers,
		categoriesClient: categories,
	}
}

// Authors returns the loaded author reference list.
func (bc *BookController) Authors() []data.Author { return bc.authors }

// Publishers returns the loaded publisher reference list.
func (bc *BookController) Publishers() []data.Publisher { return bc.publishers }

// Categories returns the loaded category reference list.
func (bc *BookController) Categories() []data.Category { return bc.categories }

// Form returns the flat form buffer for in-place editing by the page.
func (bc *BookController) Form() *dto.BookForm { return &bc.form }

// LoadInitial fetches the three reference lists concurrently (they are
// independent and read-only), builds the book seed samples from them, then
// loads the primary book list with the generic seeding policy applied.
func (bc *BookController) LoadInitial(ctx context.Context) error {
	var wg sync.WaitGroup
	var authorsErr, publishersErr, categoriesErr error
	wg.Add(3)
	go func() {
		defer wg.Done()
		bc.authors, authorsErr = bc.authorsClient.List(ctx)
	}()
	go func() {
		defer wg.Done()
		bc.publishers, publishersErr = bc.publishersClient.List(ctx)
	}()
	go func() {
		defer wg.Done()
		bc.categories, categoriesErr = bc.categoriesClient.List(ctx)
	}()
	wg.Wait()
	if err := errors.Join(authorsErr, publishersErr, categoriesErr); err != nil {
		bc.reportError("failed to fetch reference data", err)
		return err
	}
	bc.SetSamples(data.SampleBooks(bc.authors, bc.publishers, bc.categories))
	return bc.Controller.LoadInitial(ctx)
}

// BeginEdit selects a book for editing and re-derives the flat form fields
// from its reference fields.
func (bc *BookController) BeginEdit(book data.Book) {
	bc.Controller.BeginEdit(book)
	bc.form = dto.BookFormFromEntity(book)
}

// CancelEdit clears the edit selection and the form buffer.
func (bc *BookController) CancelEdit() {
	bc.Controller.CancelEdit()
	bc.form = dto.BookForm{}
}

// SubmitCreate validates the form, folds it into a book draft and creates it.
func (bc *BookController) SubmitCreate(ctx context.Context) error {
	v := validator.New()
	bc.form.Validate(v)
	if !v.Valid() {
		bc.reportValidation(v)
		return ErrFailedValidation
	}
	*bc.Draft() = bc.form.Apply(data.Book{})
	if err := bc.Controller.SubmitCreate(ctx); err != nil {
		return err
	}
	bc.form = dto.BookForm{}
	return nil
}

// SubmitUpdate validates the form, merges it over a copy of the record being
// edited (preserving the id and any fields the form does not expose) and
// replaces the remote record.
func (bc *BookController) SubmitUpdate(ctx context.Context) error {
	if bc.Editing() == nil {
		bc.notifier.Warning("no book selected for update")
		return ErrFailedValidation
	}
	v := validator.New()
	bc.form.Validate(v)
	if !v.Valid() {
		bc.reportValidation(v)
		return ErrFailedValidation
	}
	prev := *bc.Editing()
	*bc.Editing() = bc.form.Apply(prev)
	if err := bc.Controller.SubmitUpdate(ctx); err != nil {
		// Keep the edit buffer at what the user last saw, not the failed merge.
		if bc.Editing() != nil {
			*bc.Editing() = prev
		}
		return err
	}
	bc.form = dto.BookForm{}
	return nil
}
