// Package pace derives the pages-per-day recommendation shown on book
// cards with a deadline.
package pace

import (
	"time"

	"github.com/mrlokans/bookshelf/internal/dates"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// DailyGoal computes the reading pace needed to finish the book by its
// deadline, relative to now. It returns nil when the goal is not
// applicable: deadline absent or unparsable, or page counts missing.
// A CurrentPage of 0 is a real value, not a missing one. The
// pages-per-day figure rounds up.
func DailyGoal(book entities.Book, now time.Time) *entities.DailyGoal {
	if book.Deadline == "" || book.TotalPages == nil || book.CurrentPage == nil {
		return nil
	}

	daysRemaining, err := dates.DaysUntil(book.Deadline, now)
	if err != nil {
		return nil
	}

	pagesRemaining := *book.TotalPages - *book.CurrentPage
	if pagesRemaining < 0 {
		pagesRemaining = 0
	}

	if daysRemaining <= 0 || pagesRemaining == 0 {
		return &entities.DailyGoal{
			PagesPerDay:         0,
			DaysRemaining:       max(0, daysRemaining),
			TotalPagesRemaining: pagesRemaining,
		}
	}

	pagesPerDay := pagesRemaining / daysRemaining
	if pagesRemaining%daysRemaining > 0 {
		pagesPerDay++
	}

	return &entities.DailyGoal{
		PagesPerDay:         pagesPerDay,
		DaysRemaining:       daysRemaining,
		TotalPagesRemaining: pagesRemaining,
	}
}
