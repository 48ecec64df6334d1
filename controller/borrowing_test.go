package controller

import (
	"context"
	"testing"

	"github.com/emzola/biblioadmin/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBorrowingResource() *fakeResource[data.Borrowing] {
	return &fakeResource[data.Borrowing]{
		assignID: func(borrowing data.Borrowing, id int64) data.Borrowing {
			borrowing.ID = id
			return borrowing
		},
	}
}

func newBookResource(books ...data.Book) *fakeResource[data.Book] {
	f := &fakeResource[data.Book]{
		assignID: func(book data.Book, id int64) data.Book {
			book.ID = id
			return book
		},
	}
	for _, book := range books {
		f.nextID++
		book.ID = f.nextID
		f.items = append(f.items, book)
	}
	return f
}

func validBorrowingDraft() data.Borrowing {
	return data.Borrowing{
		BorrowerName:  "Jane Reader",
		BorrowerMail:  "jane@example.com",
		BorrowingDate: "2026-08-30",
	}
}

func newBorrowingPage(t *testing.T, books *fakeResource[data.Book], notify *spyNotifier) (*BorrowingController, *fakeResource[data.Borrowing]) {
	t.Helper()
	borrowings := newBorrowingResource()
	bc := NewBorrowingController(borrowings, books, notify, &stubPrompt{answer: true}, testLogger())
	require.NoError(t, bc.LoadInitial(context.Background()))
	return bc, borrowings
}

func TestBorrowingCreateDecrementsStock(t *testing.T) {
	books := newBookResource(data.Book{Name: "Kafka on the Shore", PublicationYear: 2002, Stock: 2})
	notify := &spyNotifier{}
	bc, borrowings := newBorrowingPage(t, books, notify)

	*bc.Draft() = validBorrowingDraft()
	require.True(t, bc.SelectBook(1))

	err := bc.SubmitCreate(context.Background())
	require.NoError(t, err)

	// The payload carries the snapshot with stock already decremented.
	assert.Equal(t, data.BookSnapshot{
		ID:              1,
		Name:            "Kafka on the Shore",
		PublicationYear: 2002,
		Stock:           1,
	}, borrowings.lastCreated.Book)

	require.Len(t, bc.Items(), 1)
	assert.Equal(t, "Jane Reader", bc.Items()[0].BorrowerName)
	assert.Equal(t, int32(1), bc.Books()[0].Stock)
	assert.Equal(t, data.Borrowing{}, *bc.Draft())
	assert.Nil(t, bc.SelectedBook())
	assert.Equal(t, []string{"borrowing added successfully"}, notify.successes)
}

func TestBorrowingCreateRejectsOutOfStock(t *testing.T) {
	books := newBookResource(data.Book{Name: "A Game of Thrones", PublicationYear: 1996, Stock: 0})
	notify := &spyNotifier{}
	bc, borrowings := newBorrowingPage(t, books, notify)

	*bc.Draft() = validBorrowingDraft()
	require.True(t, bc.SelectBook(1))

	err := bc.SubmitCreate(context.Background())
	require.ErrorIs(t, err, ErrBookOutOfStock)

	assert.Equal(t, 0, borrowings.creates)
	assert.Empty(t, bc.Items())
	assert.Equal(t, []string{"this book is out of stock"}, notify.warnings)
}

func TestBorrowingCreateConsumesLastCopy(t *testing.T) {
	books := newBookResource(data.Book{Name: "Murder on the Orient Express", PublicationYear: 1934, Stock: 1})
	notify := &spyNotifier{}
	bc, _ := newBorrowingPage(t, books, notify)

	*bc.Draft() = validBorrowingDraft()
	require.True(t, bc.SelectBook(1))
	require.NoError(t, bc.SubmitCreate(context.Background()))
	assert.Equal(t, int32(0), bc.Books()[0].Stock)

	// The same book cannot be borrowed again from this page.
	*bc.Draft() = validBorrowingDraft()
	require.True(t, bc.SelectBook(1))
	err := bc.SubmitCreate(context.Background())
	require.ErrorIs(t, err, ErrBookOutOfStock)
	assert.Len(t, bc.Items(), 1)
}

func TestBorrowingCreateRequiresBookSelection(t *testing.T) {
	books := newBookResource(data.Book{Name: "Kafka on the Shore", PublicationYear: 2002, Stock: 3})
	notify := &spyNotifier{}
	bc, borrowings := newBorrowingPage(t, books, notify)

	*bc.Draft() = validBorrowingDraft()

	err := bc.SubmitCreate(context.Background())
	require.ErrorIs(t, err, ErrNoBookSelected)
	assert.Equal(t, 0, borrowings.creates)
	assert.Equal(t, []string{"please choose a book"}, notify.warnings)
}

func TestBorrowingCreateValidatesBorrowerFieldsFirst(t *testing.T) {
	// Field validation outranks the book checks: no book is selected here
	// either, but the empty form is what gets reported.
	books := newBookResource(data.Book{Name: "Kafka on the Shore", PublicationYear: 2002, Stock: 3})
	notify := &spyNotifier{}
	bc, borrowings := newBorrowingPage(t, books, notify)

	err := bc.SubmitCreate(context.Background())
	require.ErrorIs(t, err, ErrFailedValidation)
	assert.Equal(t, 0, borrowings.creates)
	assert.Equal(t, []string{"please fill in all required fields"}, notify.warnings)
}

func TestBorrowingCreateKeepsDraftOnRemoteFailure(t *testing.T) {
	books := newBookResource(data.Book{Name: "Kafka on the Shore", PublicationYear: 2002, Stock: 2})
	notify := &spyNotifier{}
	bc, borrowings := newBorrowingPage(t, books, notify)
	borrowings.failCreateOn = 1

	draft := validBorrowingDraft()
	*bc.Draft() = draft
	require.True(t, bc.SelectBook(1))

	err := bc.SubmitCreate(context.Background())
	require.Error(t, err)

	// Nothing is adopted locally: no items, no stock change, draft intact.
	assert.Empty(t, bc.Items())
	assert.Equal(t, int32(2), bc.Books()[0].Stock)
	assert.Equal(t, draft, *bc.Draft())
	require.NotNil(t, bc.SelectedBook())
}

func TestSelectBookUnknownIDClearsSelection(t *testing.T) {
	books := newBookResource(data.Book{Name: "Kafka on the Shore", PublicationYear: 2002, Stock: 2})
	bc, _ := newBorrowingPage(t, books, &spyNotifier{})

	require.True(t, bc.SelectBook(1))
	require.NotNil(t, bc.SelectedBook())

	assert.False(t, bc.SelectBook(99))
	assert.Nil(t, bc.SelectedBook())
}

func TestBorrowingUpdateSetsReturnDate(t *testing.T) {
	books := newBookResource(data.Book{Name: "Kafka on the Shore", PublicationYear: 2002, Stock: 2})
	notify := &spyNotifier{}
	bc, _ := newBorrowingPage(t, books, notify)

	*bc.Draft() = validBorrowingDraft()
	require.True(t, bc.SelectBook(1))
	require.NoError(t, bc.SubmitCreate(context.Background()))

	bc.BeginEdit(bc.Items()[0])
	bc.Editing().ReturnDate = "2026-09-15"
	require.NoError(t, bc.SubmitUpdate(context.Background()))

	assert.Equal(t, "2026-09-15", bc.Items()[0].ReturnDate)
	// Returning a book does not restore local stock; the backend owns that.
	assert.Equal(t, int32(1), bc.Books()[0].Stock)
}
