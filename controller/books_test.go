package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/data/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthorResourceSeeded() *fakeResource[data.Author] {
	return newAuthorResource(data.SampleAuthors()...)
}

func newPublisherResourceSeeded() *fakeResource[data.Publisher] {
	f := &fakeResource[data.Publisher]{
		assignID: func(publisher data.Publisher, id int64) data.Publisher {
			publisher.ID = id
			return publisher
		},
	}
	for _, publisher := range data.SamplePublishers() {
		f.nextID++
		publisher.ID = f.nextID
		f.items = append(f.items, publisher)
	}
	return f
}

func newCategoryResourceSeeded() *fakeResource[data.Category] {
	f := &fakeResource[data.Category]{
		assignID: func(category data.Category, id int64) data.Category {
			category.ID = id
			return category
		},
	}
	for _, category := range data.SampleCategories() {
		f.nextID++
		category.ID = f.nextID
		f.items = append(f.items, category)
	}
	return f
}

func newBookPage(notify *spyNotifier) (*BookController, *fakeResource[data.Book]) {
	books := newBookResource()
	bc := NewBookController(
		books,
		newAuthorResourceSeeded(),
		newPublisherResourceSeeded(),
		newCategoryResourceSeeded(),
		notify,
		&stubPrompt{answer: true},
		testLogger(),
	)
	return bc, books
}

func TestBookLoadInitialSeedsFromReferences(t *testing.T) {
	bc, books := newBookPage(&spyNotifier{})

	err := bc.LoadInitial(context.Background())
	require.NoError(t, err)

	assert.Len(t, bc.Authors(), 5)
	assert.Len(t, bc.Publishers(), 5)
	assert.Len(t, bc.Categories(), 5)

	// The empty book list triggers seeding with samples built from the live
	// reference ids.
	assert.Equal(t, 5, books.creates)
	require.Len(t, bc.Items(), 5)
	first := bc.Items()[0]
	assert.Equal(t, "Harry Potter and the Philosopher's Stone", first.Name)
	assert.Equal(t, int32(5), first.Stock)
	assert.Equal(t, bc.Authors()[0].ID, first.Author.ID)
	assert.Equal(t, bc.Publishers()[0].ID, first.Publisher.ID)
	require.Len(t, first.Categories, 1)
	assert.Equal(t, bc.Categories()[0].ID, first.Categories[0].ID)
}

func TestBookLoadInitialAbortsOnReferenceFailure(t *testing.T) {
	authors := newAuthorResourceSeeded()
	authors.listErr = errors.New("connection refused")
	books := newBookResource()
	notify := &spyNotifier{}
	bc := NewBookController(
		books,
		authors,
		newPublisherResourceSeeded(),
		newCategoryResourceSeeded(),
		notify,
		&stubPrompt{},
		testLogger(),
	)

	err := bc.LoadInitial(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, books.lists)
	assert.Equal(t, []string{"failed to fetch reference data"}, notify.errs)
}

func TestBookSubmitCreateFoldsForm(t *testing.T) {
	notify := &spyNotifier{}
	bc, books := newBookPage(notify)
	require.NoError(t, bc.LoadInitial(context.Background()))

	*bc.Form() = dto.BookForm{
		Name:            "The Remains of the Day",
		PublicationYear: "1989",
		Stock:           "3",
		AuthorID:        bc.Authors()[1].ID,
		PublisherID:     bc.Publishers()[2].ID,
		CategoryIDs:     []int64{bc.Categories()[0].ID},
	}
	err := bc.SubmitCreate(context.Background())
	require.NoError(t, err)

	require.Len(t, bc.Items(), 6)
	created := bc.Items()[5]
	assert.Equal(t, "The Remains of the Day", created.Name)
	assert.Equal(t, int32(1989), created.PublicationYear)
	assert.Equal(t, int32(3), created.Stock)
	assert.Equal(t, bc.Authors()[1].ID, created.Author.ID)
	assert.Equal(t, *bc.Form(), dto.BookForm{})
	assert.Equal(t, 6, books.creates)
}

func TestBookSubmitCreateRejectsIncompleteForm(t *testing.T) {
	notify := &spyNotifier{}
	bc, books := newBookPage(notify)
	require.NoError(t, bc.LoadInitial(context.Background()))

	*bc.Form() = dto.BookForm{Name: "No References"}
	err := bc.SubmitCreate(context.Background())
	require.ErrorIs(t, err, ErrFailedValidation)

	assert.Equal(t, 5, books.creates)
	assert.Len(t, bc.Items(), 5)
	assert.Equal(t, []string{"please fill in all required fields"}, notify.warnings)
}

func TestBookBeginEditDerivesForm(t *testing.T) {
	bc, _ := newBookPage(&spyNotifier{})
	require.NoError(t, bc.LoadInitial(context.Background()))

	book := bc.Items()[0]
	bc.BeginEdit(book)

	form := *bc.Form()
	assert.Equal(t, book.Name, form.Name)
	assert.Equal(t, "1997", form.PublicationYear)
	assert.Equal(t, "5", form.Stock)
	assert.Equal(t, book.Author.ID, form.AuthorID)
	assert.Equal(t, book.CategoryIDs(), form.CategoryIDs)
}

func TestBookSubmitUpdatePreservesID(t *testing.T) {
	bc, _ := newBookPage(&spyNotifier{})
	require.NoError(t, bc.LoadInitial(context.Background()))

	book := bc.Items()[2]
	bc.BeginEdit(book)
	bc.Form().Stock = "9"
	err := bc.SubmitUpdate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, book.ID, bc.Items()[2].ID)
	assert.Equal(t, int32(9), bc.Items()[2].Stock)
	assert.Nil(t, bc.Editing())
}

func TestBookSubmitUpdateRestoresBufferOnFailure(t *testing.T) {
	bc, books := newBookPage(&spyNotifier{})
	require.NoError(t, bc.LoadInitial(context.Background()))

	book := bc.Items()[0]
	bc.BeginEdit(book)
	bc.Form().Stock = "9"
	books.updateErr = errors.New("boom")

	err := bc.SubmitUpdate(context.Background())
	require.Error(t, err)

	// The edit buffer shows what the user last saw, not the failed merge.
	require.NotNil(t, bc.Editing())
	assert.Equal(t, book, *bc.Editing())
	assert.Equal(t, int32(5), bc.Items()[0].Stock)
}
