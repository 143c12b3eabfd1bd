package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/stats"
)

func TestGetStats(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := testRouter(db)

	books := []entities.Book{
		{ID: "1", Title: "A", Author: "X", Status: entities.StatusCompleted, AddedDate: "2025-01-01", TotalPages: intPtr(200), CurrentPage: intPtr(200)},
		{ID: "2", Title: "B", Author: "Y", Status: entities.StatusCurrentlyReading, AddedDate: "2025-01-02", TotalPages: intPtr(300), CurrentPage: intPtr(50)},
	}
	for i := range books {
		require.NoError(t, db.UpsertBook(&books[i]))
	}

	w := doJSON(t, router, "GET", "/api/books/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var s stats.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.CurrentlyReading)
	assert.Equal(t, 500, s.TotalPages)
	assert.Equal(t, 250, s.PagesRead)
	assert.Equal(t, 50, s.CompletionRate)
}

func TestHealthz(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	w := doJSON(t, testRouter(db), "GET", "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "ok", health.Checks["database"])
	assert.Equal(t, "test", health.Version)
}
