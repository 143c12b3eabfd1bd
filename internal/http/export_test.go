package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func TestExportBooks(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := testRouter(db)

	books := []entities.Book{
		{ID: "a", Title: "First", Author: "X", Status: entities.StatusWantToRead, Source: entities.SourcePersonal, AddedDate: "2025-01-01"},
		{ID: "b", Title: "Second", Author: "Y", Status: entities.StatusCompleted, Source: entities.SourceLibrary, AddedDate: "2025-02-01"},
	}
	for i := range books {
		require.NoError(t, db.UpsertBook(&books[i]))
	}

	w := doJSON(t, router, "GET", "/api/books/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	expectedName := "book-records-" + time.Now().Format("2006-01-02") + ".json"
	assert.Contains(t, w.Header().Get("Content-Disposition"), expectedName)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var exported []entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exported))
	assert.Len(t, exported, 2)
}

func TestExportEmptyCollection(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	w := doJSON(t, testRouter(db), "GET", "/api/books/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// Export feeds straight back into import: a full round trip preserves
// the collection.
func TestExportImportRoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := testRouter(db)

	original := entities.Book{
		ID:        "rt",
		Title:     "Round Trip",
		Author:    "Author",
		Status:    entities.StatusCurrentlyReading,
		Source:    entities.SourceDigital,
		AddedDate: "2025-03-01T09:00:00Z",
		Notes:     "keep me intact",
	}
	require.NoError(t, db.UpsertBook(&original))

	exported := doJSON(t, router, "GET", "/api/books/export", nil)
	require.Equal(t, http.StatusOK, exported.Code)

	w := doImport(t, router, "/api/books/import?confirm=true", exported.Body.String())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	restored, err := db.GetBookByID("rt")
	require.NoError(t, err)
	assert.Equal(t, original.Title, restored.Title)
	assert.Equal(t, original.Notes, restored.Notes)
	assert.Equal(t, original.Status, restored.Status)
}
