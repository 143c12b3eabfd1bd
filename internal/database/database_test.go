package database

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()

	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func intPtr(v int) *int { return &v }

func sampleBook(id string) entities.Book {
	return entities.Book{
		ID:        id,
		Title:     "Book " + id,
		Author:    "Author " + id,
		Status:    entities.StatusWantToRead,
		Source:    entities.SourcePersonal,
		AddedDate: "2025-10-01T10:00:00Z",
	}
}

func TestUpsertAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	book := sampleBook("a1")
	book.TotalPages = intPtr(320)
	require.NoError(t, db.UpsertBook(&book))

	got, err := db.GetBookByID("a1")
	require.NoError(t, err)
	assert.Equal(t, "Book a1", got.Title)
	require.NotNil(t, got.TotalPages)
	assert.Equal(t, 320, *got.TotalPages)

	// Same id again updates in place.
	book.Title = "Renamed"
	book.CurrentPage = intPtr(50)
	require.NoError(t, db.UpsertBook(&book))

	got, err = db.GetBookByID("a1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	require.NotNil(t, got.CurrentPage)
	assert.Equal(t, 50, *got.CurrentPage)

	count, err := db.CountBooks()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetBookByIDNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := db.GetBookByID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBook(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	book := sampleBook("b1")
	require.NoError(t, db.UpsertBook(&book))
	require.NoError(t, db.DeleteBook("b1"))

	_, err := db.GetBookByID("b1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting an id that is already gone is fine.
	assert.NoError(t, db.DeleteBook("b1"))
}

func TestReplaceAllBooks(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	old := sampleBook("old")
	require.NoError(t, db.UpsertBook(&old))

	replacement := []entities.Book{sampleBook("new1"), sampleBook("new2")}
	require.NoError(t, db.ReplaceAllBooks(replacement))

	books, err := db.GetAllBooks()
	require.NoError(t, err)
	require.Len(t, books, 2)

	_, err = db.GetBookByID("old")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReplaceAllBooksWithEmpty(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	book := sampleBook("x")
	require.NoError(t, db.UpsertBook(&book))
	require.NoError(t, db.ReplaceAllBooks(nil))

	count, err := db.CountBooks()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestWrapWriteError(t *testing.T) {
	assert.NoError(t, wrapWriteError(nil))

	plain := errors.New("constraint failed")
	assert.Equal(t, plain, wrapWriteError(plain))

	full := fmt.Errorf("step: database or disk is full (13)")
	assert.ErrorIs(t, wrapWriteError(full), ErrQuotaExceeded)

	enospc := errors.New("write: no space left on device")
	assert.ErrorIs(t, wrapWriteError(enospc), ErrQuotaExceeded)
}
