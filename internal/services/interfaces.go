package services

import "github.com/mrlokans/bookshelf/internal/entities"

// BookReader provides read-only access to the collection.
// Use this interface when you only need to query books.
type BookReader interface {
	GetAllBooks() ([]entities.Book, error)
	GetBookByID(id string) (*entities.Book, error)
}

// BookWriter handles mutations of the collection. Implementations must
// report a full storage medium as database.ErrQuotaExceeded rather than
// swallowing it.
type BookWriter interface {
	UpsertBook(book *entities.Book) error
	DeleteBook(id string) error
	ReplaceAllBooks(books []entities.Book) error
}

// BookStore combines read and write access for controllers that need both.
type BookStore interface {
	BookReader
	BookWriter
}
