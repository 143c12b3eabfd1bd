// Package stats aggregates the collection-level numbers shown on the
// dashboard.
package stats

import (
	"math"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type Stats struct {
	Total            int `json:"total"`
	CurrentlyReading int `json:"currentlyReading"`
	WantToRead       int `json:"wantToRead"`
	Completed        int `json:"completed"`
	TotalPages       int `json:"totalPages"`
	PagesRead        int `json:"pagesRead"`
	CompletionRate   int `json:"completionRate"` // completed books as a rounded % of the collection
}

// Compute aggregates the collection. Missing page counts contribute
// nothing to the page totals.
func Compute(books []entities.Book) Stats {
	s := Stats{Total: len(books)}

	for _, book := range books {
		switch book.Status {
		case entities.StatusCurrentlyReading:
			s.CurrentlyReading++
		case entities.StatusWantToRead:
			s.WantToRead++
		case entities.StatusCompleted:
			s.Completed++
		}
		if book.TotalPages != nil {
			s.TotalPages += *book.TotalPages
		}
		if book.CurrentPage != nil {
			s.PagesRead += *book.CurrentPage
		}
	}

	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}

	return s
}
