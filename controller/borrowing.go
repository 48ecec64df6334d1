package controller

import (
	"context"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/jsonlog"
	"github.com/emzola/biblioadmin/internal/validator"
)

// BorrowingController is the borrowing page: the generic controller plus a
// snapshot of the book list and the stock rule layered over create.
//
// Stock is only ever adjusted at creation time in this client. Setting a
// return date via update does not restore it; the backend owns that ledger.
type BorrowingController struct {
	*Controller[data.Borrowing]

	booksClient ResourceClient[data.Book]
	books       []data.Book
	selected    *data.Book
}

// NewBorrowingController creates the borrowing page controller.
func NewBorrowingController(
	borrowings ResourceClient[data.Borrowing],
	books ResourceClient[data.Book],
	notifier Notifier,
	confirm ConfirmationPrompt,
	logger *jsonlog.Logger,
) *BorrowingController {
	return &BorrowingController{
		Controller:  New(BorrowingSpec(), borrowings, notifier, confirm, logger),
		booksClient: books,
	}
}

// Books returns the page's book list snapshot.
func (bc *BorrowingController) Books() []data.Book { return bc.books }

// SelectedBook returns the book currently chosen for borrowing, or nil.
func (bc *BorrowingController) SelectedBook() *data.Book { return bc.selected }

// LoadInitial fetches the book list snapshot and then the borrowing list.
func (bc *BorrowingController) LoadInitial(ctx context.Context) error {
	books, err := bc.booksClient.List(ctx)
	if err != nil {
		bc.reportError("failed to fetch books", err)
		return err
	}
	bc.books = books
	return bc.Controller.LoadInitial(ctx)
}

// SelectBook chooses a book from the loaded snapshot (never re-fetched).
// An unknown id clears the selection and reports false.
func (bc *BorrowingController) SelectBook(id int64) bool {
	for i := range bc.books {
		if bc.books[i].ID == id {
			book := bc.books[i]
			bc.selected = &book
			return true
		}
	}
	bc.selected = nil
	return false
}

// SubmitCreate applies the stock rule on top of the generic create contract.
// Preconditions, in order: borrower fields present, a book chosen, that book
// in stock. The create payload embeds the book snapshot with its stock already
// decremented; on success the matching book's local stock drops by one.
func (bc *BorrowingController) SubmitCreate(ctx context.Context) error {
	draft := bc.Draft()
	v := validator.New()
	data.ValidateBorrowing(v, draft)
	if !v.Valid() {
		bc.reportValidation(v)
		return ErrFailedValidation
	}
	if bc.selected == nil {
		bc.notifier.Warning("please choose a book")
		return ErrNoBookSelected
	}
	if bc.selected.Stock <= 0 {
		bc.notifier.Warning("this book is out of stock")
		return ErrBookOutOfStock
	}
	payload := *draft
	payload.Book = data.BookSnapshot{
		ID:              bc.selected.ID,
		Name:            bc.selected.Name,
		PublicationYear: bc.selected.PublicationYear,
		Stock:           bc.selected.Stock - 1,
	}
	created, err := bc.client.Create(ctx, payload)
	if err != nil {
		bc.reportError("failed to add borrowing", err)
		return err
	}
	bc.items = append(bc.items, created)
	for i := range bc.books {
		if bc.books[i].ID == bc.selected.ID {
			bc.books[i].Stock--
			break
		}
	}
	bc.draft = bc.spec.EmptyDraft()
	bc.selected = nil
	bc.notifier.Success("borrowing added successfully")
	return nil
}
