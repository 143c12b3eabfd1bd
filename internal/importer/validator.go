// Package importer validates untrusted book data submitted for bulk
// import. Validation never panics or returns early: every record is
// checked and every failure reported, so the caller can show a complete
// error report and reject the batch as a whole.
package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mrlokans/bookshelf/internal/dates"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// RecordError describes why one record in an import batch was rejected.
// Index is the record's zero-based position in the submitted array.
type RecordError struct {
	Index   int      `json:"index"`
	Reasons []string `json:"reasons"`
}

// BatchResult splits an import batch into accepted records and per-record
// failures. A record lands in exactly one of the two lists; there is no
// partial acceptance.
type BatchResult struct {
	Valid  []entities.Book
	Errors []RecordError
}

// ParseArray decodes an import payload. The top-level JSON value must be
// an array; anything else is a user-facing format error.
func ParseArray(data []byte) ([]any, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	records, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid file format: expected an array of books")
	}
	return records, nil
}

// ValidateBatch checks every record in order against the book schema.
// A numeric id is normalized to its string representation before the
// record is accepted, so the store only ever sees string ids.
func ValidateBatch(raw []any) BatchResult {
	var result BatchResult

	for i, elem := range raw {
		record, ok := elem.(map[string]any)
		if !ok || record == nil {
			result.Errors = append(result.Errors, RecordError{Index: i, Reasons: []string{"not an object"}})
			continue
		}

		var reasons []string

		id, idReason := normalizeID(record["id"])
		if idReason != "" {
			reasons = append(reasons, idReason)
		}
		if !nonEmptyString(record["title"]) {
			reasons = append(reasons, "title missing or empty")
		}
		if !nonEmptyString(record["author"]) {
			reasons = append(reasons, "author missing or empty")
		}
		if status, ok := record["status"].(string); !ok || !entities.ValidStatus(status) {
			reasons = append(reasons, "status invalid or missing")
		}
		if added, ok := record["addedDate"].(string); !ok {
			reasons = append(reasons, "addedDate missing or not a string")
		} else if !dates.Valid(added) {
			reasons = append(reasons, "addedDate is not a valid date")
		}

		if len(reasons) > 0 {
			result.Errors = append(result.Errors, RecordError{Index: i, Reasons: reasons})
			continue
		}

		result.Valid = append(result.Valid, asBook(record, id))
	}

	return result
}

// normalizeID coerces the raw id to a string. Numbers are acceptable and
// become their decimal representation; strings must be non-empty after
// trimming. The returned reason is empty when the id is usable.
func normalizeID(raw any) (string, string) {
	switch v := raw.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return "", "id is empty string"
		}
		return trimmed, ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), ""
	default:
		return "", "id missing or invalid type"
	}
}

func nonEmptyString(raw any) bool {
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) != ""
}

// asBook materializes a validated record. Optional fields with an
// unexpected type are dropped rather than failing the record; only the
// fields checked by ValidateBatch are load-bearing.
func asBook(record map[string]any, id string) entities.Book {
	book := entities.Book{
		ID:            id,
		Title:         strings.TrimSpace(stringField(record, "title")),
		Author:        strings.TrimSpace(stringField(record, "author")),
		Status:        entities.BookStatus(stringField(record, "status")),
		Source:        entities.BookSource(stringField(record, "source")),
		Image:         stringField(record, "image"),
		ReturnDate:    stringField(record, "returnDate"),
		Deadline:      stringField(record, "deadline"),
		Notes:         stringField(record, "notes"),
		AddedDate:     stringField(record, "addedDate"),
		CompletedDate: stringField(record, "completedDate"),
	}
	if !entities.ValidSource(string(book.Source)) {
		book.Source = entities.SourceOther
	}
	book.TotalPages = intField(record, "totalPages")
	book.CurrentPage = intField(record, "currentPage")
	return book
}

func stringField(record map[string]any, key string) string {
	s, _ := record[key].(string)
	return s
}

func intField(record map[string]any, key string) *int {
	f, ok := record[key].(float64)
	if !ok {
		return nil
	}
	v := int(f)
	return &v
}

// ErrorSummary renders a short, user-facing report: the first five
// failures plus a count of the rest. The complete list should be logged
// separately for diagnostics.
func ErrorSummary(errs []RecordError) string {
	const maxShown = 5

	var b strings.Builder
	for i, e := range errs {
		if i == maxShown {
			fmt.Fprintf(&b, "...and %d more", len(errs)-maxShown)
			break
		}
		fmt.Fprintf(&b, "book %d: %s\n", e.Index+1, strings.Join(e.Reasons, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
