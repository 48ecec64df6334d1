package data

import (
	"testing"

	"github.com/emzola/biblioadmin/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRecordsAreValid(t *testing.T) {
	for _, author := range SampleAuthors() {
		v := validator.New()
		ValidateAuthor(v, &author)
		assert.True(t, v.Valid(), "author %q: %v", author.Name, v.Errors)
	}
	for _, publisher := range SamplePublishers() {
		v := validator.New()
		ValidatePublisher(v, &publisher)
		assert.True(t, v.Valid(), "publisher %q: %v", publisher.Name, v.Errors)
	}
	for _, category := range SampleCategories() {
		v := validator.New()
		ValidateCategory(v, &category)
		assert.True(t, v.Valid(), "category %q: %v", category.Name, v.Errors)
	}
}

func TestSampleBooksNeedReferences(t *testing.T) {
	assert.Nil(t, SampleBooks(nil, SamplePublishers(), SampleCategories()))
	assert.Nil(t, SampleBooks(SampleAuthors(), nil, SampleCategories()))
	assert.Nil(t, SampleBooks(SampleAuthors(), SamplePublishers(), nil))
}

func TestSampleBooksUseReferenceIDs(t *testing.T) {
	authors := []Author{{ID: 11, Name: "A"}}
	publishers := []Publisher{{ID: 21, Name: "P"}, {ID: 22, Name: "Q"}}
	categories := []Category{{ID: 31, Name: "C"}}

	books := SampleBooks(authors, publishers, categories)
	require.Len(t, books, 5)
	for i, book := range books {
		v := validator.New()
		ValidateBook(v, &book)
		assert.True(t, v.Valid(), "book %q: %v", book.Name, v.Errors)
		assert.Equal(t, int64(11), book.Author.ID)
		assert.Equal(t, publishers[i%2].ID, book.Publisher.ID)
		require.Len(t, book.Categories, 1)
		assert.Equal(t, int64(31), book.Categories[0].ID)
		assert.Equal(t, int32(5), book.Stock)
	}
}
