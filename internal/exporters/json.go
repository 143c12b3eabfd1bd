// Package exporters serializes the book collection for download and
// for the periodic backup snapshots.
package exporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// BooksJSON renders the full collection as indented JSON, the same
// shape the import endpoint accepts back.
func BooksJSON(books []entities.Book) ([]byte, error) {
	if books == nil {
		books = []entities.Book{}
	}
	return json.MarshalIndent(books, "", "  ")
}

// Filename returns the download filename for an export taken at the
// given moment, e.g. "book-records-2025-10-10.json".
func Filename(now time.Time) string {
	return fmt.Sprintf("book-records-%s.json", now.Format("2006-01-02"))
}

// WriteSnapshot writes an export file into dir, creating the directory
// if needed. Returns the path of the written file.
func WriteSnapshot(dir string, books []entities.Book, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := BooksJSON(books)
	if err != nil {
		return "", fmt.Errorf("failed to serialize books: %w", err)
	}

	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}
