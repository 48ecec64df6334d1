package data

// Sample records created when a page finds its remote list empty on first load.

// SampleAuthors returns the five authors seeded into an empty catalog.
func SampleAuthors() []Author {
	return []Author{
		{Name: "J.K. Rowling", BirthDate: "1965-07-31", Country: "United Kingdom"},
		{Name: "George R.R. Martin", BirthDate: "1948-09-20", Country: "United States"},
		{Name: "Agatha Christie", BirthDate: "1890-09-15", Country: "United Kingdom"},
		{Name: "Haruki Murakami", BirthDate: "1949-01-12", Country: "Japan"},
		{Name: "Gabriel García Márquez", BirthDate: "1927-03-06", Country: "Colombia"},
	}
}

// SamplePublishers returns the five publishers seeded into an empty catalog.
func SamplePublishers() []Publisher {
	return []Publisher{
		{Name: "Penguin Random House", EstablishmentYear: 1925, Address: "New York, USA"},
		{Name: "HarperCollins", EstablishmentYear: 1989, Address: "New York, USA"},
		{Name: "Macmillan Publishers", EstablishmentYear: 1843, Address: "London, UK"},
		{Name: "Hachette Livre", EstablishmentYear: 1826, Address: "Paris, France"},
		{Name: "Simon & Schuster", EstablishmentYear: 1924, Address: "New York, USA"},
	}
}

// SampleCategories returns the five categories seeded into an empty catalog.
func SampleCategories() []Category {
	return []Category{
		{Name: "Fiction", Description: "Novels and stories"},
		{Name: "Science", Description: "Books on science"},
		{Name: "History", Description: "Historical books"},
		{Name: "Philosophy", Description: "Philosophical works"},
		{Name: "Technology", Description: "Tech-related books"},
	}
}

// SampleBooks builds five sample books against already-loaded reference lists.
// Book samples cannot be fixed literals because they need live author,
// publisher and category ids. Returns nil when any reference list is empty.
func SampleBooks(authors []Author, publishers []Publisher, categories []Category) []Book {
	if len(authors) == 0 || len(publishers) == 0 || len(categories) == 0 {
		return nil
	}
	titles := []struct {
		name string
		year int32
	}{
		{"Harry Potter and the Philosopher's Stone", 1997},
		{"A Game of Thrones", 1996},
		{"Murder on the Orient Express", 1934},
		{"Kafka on the Shore", 2002},
		{"One Hundred Years of Solitude", 1967},
	}
	books := make([]Book, 0, len(titles))
	for i, title := range titles {
		books = append(books, Book{
			Name:            title.name,
			PublicationYear: title.year,
			Stock:           5,
			Author:          Author{ID: authors[i%len(authors)].ID},
			Publisher:       Publisher{ID: publishers[i%len(publishers)].ID},
			Categories:      []Category{{ID: categories[i%len(categories)].ID}},
		})
	}
	return books
}
