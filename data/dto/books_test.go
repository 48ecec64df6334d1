package dto

import (
	"testing"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookFormFromEntity(t *testing.T) {
	book := data.Book{
		ID:              4,
		Name:            "Kafka on the Shore",
		PublicationYear: 2002,
		Stock:           3,
		Author:          data.Author{ID: 1, Name: "Haruki Murakami"},
		Publisher:       data.Publisher{ID: 2, Name: "Shinchosha"},
		Categories:      []data.Category{{ID: 5, Name: "Fiction"}},
	}

	form := BookFormFromEntity(book)
	assert.Equal(t, BookForm{
		Name:            "Kafka on the Shore",
		PublicationYear: "2002",
		Stock:           "3",
		AuthorID:        1,
		PublisherID:     2,
		CategoryIDs:     []int64{5},
	}, form)
}

func TestBookFormValidate(t *testing.T) {
	v := validator.New()
	BookForm{}.Validate(v)
	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors, "name")
	assert.Contains(t, v.Errors, "author")
	assert.Contains(t, v.Errors, "categories")

	v = validator.New()
	BookForm{
		Name:            "Kafka on the Shore",
		PublicationYear: "two thousand two",
		Stock:           "-1",
		AuthorID:        1,
		PublisherID:     2,
		CategoryIDs:     []int64{5, 5},
	}.Validate(v)
	assert.Contains(t, v.Errors, "publicationYear")
	assert.Contains(t, v.Errors, "stock")
	assert.Contains(t, v.Errors, "categories")

	v = validator.New()
	BookForm{
		Name:            "Kafka on the Shore",
		PublicationYear: "2002",
		Stock:           "0",
		AuthorID:        1,
		PublisherID:     2,
		CategoryIDs:     []int64{5},
	}.Validate(v)
	assert.True(t, v.Valid())
}

func TestBookFormApplyPreservesID(t *testing.T) {
	base := data.Book{
		ID:              4,
		Name:            "Old Title",
		PublicationYear: 1990,
		Stock:           1,
		Author:          data.Author{ID: 9, Name: "Someone"},
	}
	form := BookForm{
		Name:            "New Title",
		PublicationYear: "2002",
		Stock:           "3",
		AuthorID:        1,
		PublisherID:     2,
		CategoryIDs:     []int64{5, 6},
	}

	merged := form.Apply(base)
	require.Equal(t, int64(4), merged.ID)
	assert.Equal(t, "New Title", merged.Name)
	assert.Equal(t, int32(2002), merged.PublicationYear)
	assert.Equal(t, int32(3), merged.Stock)
	assert.Equal(t, data.Author{ID: 1}, merged.Author)
	assert.Equal(t, data.Publisher{ID: 2}, merged.Publisher)
	assert.Equal(t, []data.Category{{ID: 5}, {ID: 6}}, merged.Categories)
}
