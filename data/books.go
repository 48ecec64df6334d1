package data

import (
	"time"

	"github.com/emzola/biblioadmin/internal/validator"
)

// Book defines a book model. The API embeds the full author, publisher and
// category objects in responses; create and update requests only need the
// referenced ids to be set.
type Book struct {
	ID              int64      `json:"id,omitempty"`
	Name            string     `json:"name,omitempty"`
	PublicationYear int32      `json:"publicationYear,omitempty"`
	Stock           int32      `json:"stock"`
	Author          Author     `json:"author"`
	Publisher       Publisher  `json:"publisher"`
	Categories      []Category `json:"categories"`
}

func (b Book) EntityID() int64 { return b.ID }

// CategoryIDs returns the ids of the book's category references, in order.
func (b Book) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(b.Categories))
	for _, category := range b.Categories {
		ids = append(ids, category.ID)
	}
	return ids
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Name != "", "name", "must be provided")
	v.Check(len(book.Name) <= 500, "name", "must not be more than 500 bytes long")
	v.Check(book.PublicationYear != 0, "publicationYear", "must be provided")
	v.Check(book.PublicationYear <= int32(time.Now().Year()), "publicationYear", "must not be in the future")
	v.Check(book.Stock >= 0, "stock", "must not be negative")
	v.Check(book.Author.ID != 0, "author", "must be provided")
	v.Check(book.Publisher.ID != 0, "publisher", "must be provided")
	v.Check(len(book.Categories) >= 1, "categories", "must contain at least 1 category")
	v.Check(validator.Unique(book.CategoryIDs()), "categories", "must not contain duplicate values")
}
