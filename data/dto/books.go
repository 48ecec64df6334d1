// Package dto defines the flat form buffers used by composite entity pages.
package dto

import (
	"strconv"

	"github.com/emzola/biblioadmin/data"
	"github.com/emzola/biblioadmin/internal/validator"
)

// BookForm is the book page's form buffer. Numeric fields are held as strings,
// the way the form captures them; references are held flat as ids and folded
// back into nested reference objects on submit.
type BookForm struct {
	Name            string
	PublicationYear string
	Stock           string
	AuthorID        int64
	PublisherID     int64
	CategoryIDs     []int64
}

// BookFormFromEntity re-derives the flat form fields from an entity's
// reference fields, for in-place editing.
func BookFormFromEntity(book data.Book) BookForm {
	return BookForm{
		Name:            book.Name,
		PublicationYear: strconv.FormatInt(int64(book.PublicationYear), 10),
		Stock:           strconv.FormatInt(int64(book.Stock), 10),
		AuthorID:        book.Author.ID,
		PublisherID:     book.Publisher.ID,
		CategoryIDs:     book.CategoryIDs(),
	}
}

// Validate checks the form's required fields and numeric conversions.
func (f BookForm) Validate(v *validator.Validator) {
	v.Check(f.Name != "", "name", "must be provided")
	v.Check(f.PublicationYear != "", "publicationYear", "must be provided")
	if f.PublicationYear != "" {
		_, err := strconv.ParseInt(f.PublicationYear, 10, 32)
		v.Check(err == nil, "publicationYear", "must be a number")
	}
	v.Check(f.Stock != "", "stock", "must be provided")
	if f.Stock != "" {
		stock, err := strconv.ParseInt(f.Stock, 10, 32)
		v.Check(err == nil, "stock", "must be a number")
		v.Check(err != nil || stock >= 0, "stock", "must not be negative")
	}
	v.Check(f.AuthorID != 0, "author", "must be provided")
	v.Check(f.PublisherID != 0, "publisher", "must be provided")
	v.Check(len(f.CategoryIDs) >= 1, "categories", "must contain at least 1 category")
	v.Check(validator.Unique(f.CategoryIDs), "categories", "must not contain duplicate values")
}

// Apply merges the form fields over a copy of base, preserving any fields the
// form does not expose (in particular the id). Callers must have validated the
// form first; unparseable numbers fall back to zero here.
func (f BookForm) Apply(base data.Book) data.Book {
	merged := base
	merged.Name = f.Name
	year, _ := strconv.ParseInt(f.PublicationYear, 10, 32)
	merged.PublicationYear = int32(year)
	stock, _ := strconv.ParseInt(f.Stock, 10, 32)
	merged.Stock = int32(stock)
	merged.Author = data.Author{ID: f.AuthorID}
	merged.Publisher = data.Publisher{ID: f.PublisherID}
	categories := make([]data.Category, 0, len(f.CategoryIDs))
	for _, id := range f.CategoryIDs {
		categories = append(categories, data.Category{ID: id})
	}
	merged.Categories = categories
	return merged
}
