package http

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/dates"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/identifier"
	"github.com/mrlokans/bookshelf/internal/pace"
	"github.com/mrlokans/bookshelf/internal/progress"
	"github.com/mrlokans/bookshelf/internal/services"
)

// maxImageLength caps the base64-encoded cover at roughly 500KB of
// image data.
const maxImageLength = 700_000

type BooksController struct {
	store services.BookStore
	now   func() time.Time
}

func NewBooksController(store services.BookStore) *BooksController {
	return &BooksController{store: store, now: time.Now}
}

// BookRequest is the payload for creating or updating a book. Page
// numbers are pointers so that "absent" and "0" stay distinguishable.
type BookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=currently-reading want-to-read completed"`
	Source      string `json:"source" binding:"omitempty,oneof=library personal borrowed digital other"`
	TotalPages  *int   `json:"totalPages" binding:"omitempty,gte=0"`
	CurrentPage *int   `json:"currentPage" binding:"omitempty,gte=0"`
	Image       string `json:"image"`
	ReturnDate  string `json:"returnDate"`
	Deadline    string `json:"deadline"`
	Notes       string `json:"notes"`
}

// DateInfo carries the presentation values for one date field.
type DateInfo struct {
	Formatted string `json:"formatted"`
	DaysLeft  int    `json:"daysLeft"`
	Overdue   bool   `json:"overdue"`
}

// BookView is a book plus the values the display layer needs. They are
// recomputed on every request from the stored record, never cached.
type BookView struct {
	entities.Book
	Progress       int                 `json:"progress"`
	DailyGoal      *entities.DailyGoal `json:"dailyGoal,omitempty"`
	ReturnDateInfo *DateInfo           `json:"returnDateInfo,omitempty"`
	DeadlineInfo   *DateInfo           `json:"deadlineInfo,omitempty"`
}

func (bc *BooksController) view(book entities.Book) BookView {
	now := bc.now()
	return BookView{
		Book:           book,
		Progress:       progress.Percent(book.TotalPages, book.CurrentPage),
		DailyGoal:      pace.DailyGoal(book, now),
		ReturnDateInfo: dateInfo(book.ReturnDate, now),
		DeadlineInfo:   dateInfo(book.Deadline, now),
	}
}

// dateInfo computes the overdue flag, day count, and display form for a
// stored date. A date that no longer parses is logged and skipped; the
// write paths validate dates, so this only happens with hand-edited data.
func dateInfo(value string, now time.Time) *DateInfo {
	if value == "" {
		return nil
	}
	overdue, err := dates.IsOverdue(value, now)
	if err != nil {
		log.Printf("Skipping display info for stored date: %v", err)
		return nil
	}
	daysLeft, err := dates.DaysUntil(value, now)
	if err != nil {
		return nil
	}
	formatted, err := dates.Format(value, now)
	if err != nil {
		return nil
	}
	return &DateInfo{Formatted: formatted, DaysLeft: daysLeft, Overdue: overdue}
}

// ListBooks returns the collection, optionally filtered by status
// (?status=) and by a case-insensitive search over title, author, and
// notes (?q=). Currently-reading books sort first, then newest added.
// GET /api/books
func (bc *BooksController) ListBooks(c *gin.Context) {
	books, err := bc.store.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	if status := c.Query("status"); status != "" {
		if !entities.ValidStatus(status) {
			respondBadRequest(c, "unknown status filter: "+status)
			return
		}
		books = filterBooks(books, func(b entities.Book) bool {
			return b.Status == entities.BookStatus(status)
		})
	}

	if q := strings.ToLower(c.Query("q")); q != "" {
		books = filterBooks(books, func(b entities.Book) bool {
			return strings.Contains(strings.ToLower(b.Title), q) ||
				strings.Contains(strings.ToLower(b.Author), q) ||
				strings.Contains(strings.ToLower(b.Notes), q)
		})
	}

	sortBooks(books)

	views := make([]BookView, len(books))
	for i, book := range books {
		views[i] = bc.view(book)
	}

	c.IndentedJSON(http.StatusOK, gin.H{"books": views, "count": len(views)})
}

func filterBooks(books []entities.Book, keep func(entities.Book) bool) []entities.Book {
	filtered := books[:0:0]
	for _, b := range books {
		if keep(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

func sortBooks(books []entities.Book) {
	sort.SliceStable(books, func(i, j int) bool {
		iReading := books[i].Status == entities.StatusCurrentlyReading
		jReading := books[j].Status == entities.StatusCurrentlyReading
		if iReading != jReading {
			return iReading
		}
		return addedTime(books[i]).After(addedTime(books[j]))
	})
}

func addedTime(book entities.Book) time.Time {
	t, err := dates.Parse("sortBooks", book.AddedDate, time.Now())
	if err != nil {
		return time.Time{}
	}
	return t
}

// GetBook returns a single book with its presentation values.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.store.GetBookByID(c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.IndentedJSON(http.StatusOK, bc.view(*book))
}

// CreateBook adds a new record. The server assigns the id and addedDate;
// status defaults to want-to-read and source to personal.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if msg, ok := bc.checkRequest(req); !ok {
		respondBadRequest(c, msg)
		return
	}

	now := bc.now()
	book := entities.Book{
		ID:        identifier.New(),
		AddedDate: now.Format(time.RFC3339),
		Status:    entities.StatusWantToRead,
		Source:    entities.SourcePersonal,
	}
	applyRequest(&book, req)
	if book.Status == entities.StatusCompleted {
		book.CompletedDate = now.Format(time.RFC3339)
	}

	if err := bc.store.UpsertBook(&book); err != nil {
		if errors.Is(err, database.ErrQuotaExceeded) {
			respondQuotaExceeded(c)
			return
		}
		respondInternalError(c, err, "create book")
		return
	}

	c.IndentedJSON(http.StatusCreated, bc.view(book))
}

// UpdateBook edits an existing record in place. The id and addedDate
// never change; completedDate is assigned when the status transitions
// to completed, kept while it stays completed, and cleared when it
// transitions away.
// PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	existing, err := bc.store.GetBookByID(c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if msg, ok := bc.checkRequest(req); !ok {
		respondBadRequest(c, msg)
		return
	}

	book := *existing
	applyRequest(&book, req)

	switch {
	case book.Status == entities.StatusCompleted && existing.Status != entities.StatusCompleted:
		book.CompletedDate = bc.now().Format(time.RFC3339)
	case book.Status != entities.StatusCompleted:
		book.CompletedDate = ""
	}

	if err := bc.store.UpsertBook(&book); err != nil {
		if errors.Is(err, database.ErrQuotaExceeded) {
			respondQuotaExceeded(c)
			return
		}
		respondInternalError(c, err, "update book")
		return
	}

	c.IndentedJSON(http.StatusOK, bc.view(book))
}

// DeleteBook removes a record.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id := c.Param("id")
	if _, err := bc.store.GetBookByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	} else if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	if err := bc.store.DeleteBook(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "book deleted"})
}

// checkRequest runs the rules gin's binding tags cannot express.
func (bc *BooksController) checkRequest(req BookRequest) (string, bool) {
	if strings.TrimSpace(req.Title) == "" {
		return "title must not be blank", false
	}
	if strings.TrimSpace(req.Author) == "" {
		return "author must not be blank", false
	}
	if req.TotalPages != nil && req.CurrentPage != nil && *req.CurrentPage > *req.TotalPages {
		return "current page cannot be greater than total pages", false
	}
	if len(req.Image) > maxImageLength {
		return "image too large: keep covers under 500KB", false
	}
	now := bc.now()
	for _, d := range []struct{ name, value string }{
		{"returnDate", req.ReturnDate},
		{"deadline", req.Deadline},
	} {
		if d.value == "" {
			continue
		}
		if _, err := dates.Parse(d.name, d.value, now); err != nil {
			return err.Error(), false
		}
	}
	return "", true
}

func applyRequest(book *entities.Book, req BookRequest) {
	book.Title = strings.TrimSpace(req.Title)
	book.Author = strings.TrimSpace(req.Author)
	if req.Status != "" {
		book.Status = entities.BookStatus(req.Status)
	}
	if req.Source != "" {
		book.Source = entities.BookSource(req.Source)
	}
	book.TotalPages = req.TotalPages
	book.CurrentPage = req.CurrentPage
	book.Image = req.Image
	book.ReturnDate = req.ReturnDate
	book.Deadline = req.Deadline
	book.Notes = req.Notes
}
