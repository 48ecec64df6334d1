package stubserver

import (
	"errors"
	"sync"

	"github.com/emzola/biblioadmin/data"
)

var errStoreNotFound = errors.New("record not found")

// borrowRecord is the stub's stored borrowing. The book snapshot arrives under
// bookForBorrowingRequest and is returned under book, so the stub keeps its
// own response shape instead of reusing data.Borrowing's marshaller.
type borrowRecord struct {
	ID            int64             `json:"id"`
	BorrowerName  string            `json:"borrowerName"`
	BorrowerMail  string            `json:"borrowerMail"`
	BorrowingDate string            `json:"borrowingDate"`
	ReturnDate    string            `json:"returnDate,omitempty"`
	Book          data.BookSnapshot `json:"book"`
}

// store is the in-memory backing state. Slices preserve insertion order, which
// is the order list responses are returned in.
type store struct {
	mu     sync.Mutex
	nextID int64

	authors    []data.Author
	publishers []data.Publisher
	categories []data.Category
	books      []data.Book
	borrows    []borrowRecord
}

func newStore() *store {
	return &store{}
}

func (st *store) newID() int64 {
	st.nextID++
	return st.nextID
}

// ------------------ authors ------------------

func (st *store) listAuthors() []data.Author {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]data.Author, len(st.authors))
	copy(out, st.authors)
	return out
}

func (st *store) createAuthor(author data.Author) data.Author {
	st.mu.Lock()
	defer st.mu.Unlock()
	author.ID = st.newID()
	st.authors = append(st.authors, author)
	return author
}

func (st *store) updateAuthor(id int64, author data.Author) (data.Author, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.authors {
		if st.authors[i].ID == id {
			author.ID = id
			st.authors[i] = author
			return author, nil
		}
	}
	return data.Author{}, errStoreNotFound
}

func (st *store) deleteAuthor(id int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.authors {
		if st.authors[i].ID == id {
			st.authors = append(st.authors[:i], st.authors[i+1:]...)
			return nil
		}
	}
	return errStoreNotFound
}

func (st *store) findAuthor(id int64) (data.Author, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.authors {
		if st.authors[i].ID == id {
			return st.authors[i], true
		}
	}
	return data.Author{}, false
}

// ------------------ publishers ------------------

func (st *store) listPublishers() []data.Publisher {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]data.Publisher, len(st.publishers))
	copy(out, st.publishers)
	return out
}

func (st *store) createPublisher(publisher data.Publisher) data.Publisher {
	st.mu.Lock()
	defer st.mu.Unlock()
	publisher.ID = st.newID()
	st.publishers = append(st.publishers, publisher)
	return publisher
}

func (st *store) updatePublisher(id int64, publisher data.Publisher) (data.Publisher, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.publishers {
		if st.publishers[i].ID == id {
			publisher.ID = id
			st.publishers[i] = publisher
			return publisher, nil
		}
	}
	return data.Publisher{}, errStoreNotFound
}

func (st *store) deletePublisher(id int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.publishers {
		if st.publishers[i].ID == id {
			st.publishers = append(st.publishers[:i], st.publishers[i+1:]...)
			return nil
		}
	}
	return errStoreNotFound
}

func (st *store) findPublisher(id int64) (data.Publisher, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.publishers {
		if st.publishers[i].ID == id {
			return st.publishers[i], true
		}
	}
	return data.Publisher{}, false
}

// ------------------ categories ------------------

func (st *store) listCategories() []data.Category {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]data.Category, len(st.categories))
	copy(out, st.categories)
	return out
}

func (st *store) createCategory(category data.Category) data.Category {
	st.mu.Lock()
	defer st.mu.Unlock()
	category.ID = st.newID()
	st.categories = append(st.categories, category)
	return category
}

func (st *store) updateCategory(id int64, category data.Category) (data.Category, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.categories {
		if st.categories[i].ID == id {
			category.ID = id
			st.categories[i] = category
			return category, nil
		}
	}
	return data.Category{}, errStoreNotFound
}

func (st *store) deleteCategory(id int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.categories {
		if st.categories[i].ID == id {
			st.categories = append(st.categories[:i], st.categories[i+1:]...)
			return nil
		}
	}
	return errStoreNotFound
}

func (st *store) findCategory(id int64) (data.Category, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.categories {
		if st.categories[i].ID == id {
			return st.categories[i], true
		}
	}
	return data.Category{}, false
}

// ------------------ books ------------------

func (st *store) listBooks() []data.Book {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]data.Book, len(st.books))
	copy(out, st.books)
	return out
}

func (st *store) createBook(book data.Book) data.Book {
	st.mu.Lock()
	defer st.mu.Unlock()
	book.ID = st.newID()
	st.books = append(st.books, book)
	return book
}

func (st *store) updateBook(id int64, book data.Book) (data.Book, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.books {
		if st.books[i].ID == id {
			book.ID = id
			st.books[i] = book
			return book, nil
		}
	}
	return data.Book{}, errStoreNotFound
}

func (st *store) deleteBook(id int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.books {
		if st.books[i].ID == id {
			st.books = append(st.books[:i], st.books[i+1:]...)
			return nil
		}
	}
	return errStoreNotFound
}

// setBookStock records the stock carried by a borrowing's snapshot onto the
// book itself, mirroring what the real backend does with the decremented copy.
func (st *store) setBookStock(id int64, stock int32) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.books {
		if st.books[i].ID == id {
			st.books[i].Stock = stock
			return
		}
	}
}

// ------------------ borrows ------------------

func (st *store) listBorrows() []borrowRecord {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]borrowRecord, len(st.borrows))
	copy(out, st.borrows)
	return out
}

func (st *store) createBorrow(borrow borrowRecord) borrowRecord {
	st.mu.Lock()
	defer st.mu.Unlock()
	borrow.ID = st.newID()
	st.borrows = append(st.borrows, borrow)
	return borrow
}

func (st *store) updateBorrow(id int64, borrow borrowRecord) (borrowRecord, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.borrows {
		if st.borrows[i].ID == id {
			borrow.ID = id
			// The snapshot is immutable after creation; keep the stored one.
			borrow.Book = st.borrows[i].Book
			st.borrows[i] = borrow
			return borrow, nil
		}
	}
	return borrowRecord{}, errStoreNotFound
}

func (st *store) deleteBorrow(id int64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.borrows {
		if st.borrows[i].ID == id {
			st.borrows = append(st.borrows[:i], st.borrows[i+1:]...)
			return nil
		}
	}
	return errStoreNotFound
}
