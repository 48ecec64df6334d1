package controller

import "github.com/emzola/biblioadmin/data"

// The per-entity specs wire the generic controller to each entity's empty
// template, validation rules and seed samples.

func AuthorSpec() Spec[data.Author] {
	return Spec[data.Author]{
		Label:      "author",
		Plural:     "authors",
		EmptyDraft: func() data.Author { return data.Author{} },
		Validate:   data.ValidateAuthor,
		Samples:    data.SampleAuthors(),
	}
}

func PublisherSpec() Spec[data.Publisher] {
	return Spec[data.Publisher]{
		Label:      "publisher",
		Plural:     "publishers",
		EmptyDraft: func() data.Publisher { return data.Publisher{} },
		Validate:   data.ValidatePublisher,
		Samples:    data.SamplePublishers(),
	}
}

func CategorySpec() Spec[data.Category] {
	return Spec[data.Category]{
		Label:      "category",
		Plural:     "categories",
		EmptyDraft: func() data.Category { return data.Category{} },
		Validate:   data.ValidateCategory,
		Samples:    data.SampleCategories(),
	}
}

// BookSpec carries no samples up front: book samples need live reference ids,
// so the book page builds them after its reference lists load.
func BookSpec() Spec[data.Book] {
	return Spec[data.Book]{
		Label:      "book",
		Plural:     "books",
		EmptyDraft: func() data.Book { return data.Book{} },
		Validate:   data.ValidateBook,
	}
}

// BorrowingSpec carries no samples: seeded loans would silently consume book
// stock on first visit.
func BorrowingSpec() Spec[data.Borrowing] {
	return Spec[data.Borrowing]{
		Label:      "borrowing",
		Plural:     "borrowings",
		EmptyDraft: func() data.Borrowing { return data.Borrowing{} },
		Validate:   data.ValidateBorrowing,
	}
}
