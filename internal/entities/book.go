package entities

type BookStatus string

const (
	StatusCurrentlyReading BookStatus = "currently-reading"
	StatusWantToRead       BookStatus = "want-to-read"
	StatusCompleted        BookStatus = "completed"
)

// ValidStatus reports whether s is one of the known reading statuses.
func ValidStatus(s string) bool {
	switch BookStatus(s) {
	case StatusCurrentlyReading, StatusWantToRead, StatusCompleted:
		return true
	}
	return false
}

type BookSource string

const (
	SourceLibrary  BookSource = "library"
	SourcePersonal BookSource = "personal"
	SourceBorrowed BookSource = "borrowed"
	SourceDigital  BookSource = "digital"
	SourceOther    BookSource = "other"
)

// ValidSource reports whether s is one of the known book sources.
func ValidSource(s string) bool {
	switch BookSource(s) {
	case SourceLibrary, SourcePersonal, SourceBorrowed, SourceDigital, SourceOther:
		return true
	}
	return false
}

// Book is the single domain entity: one tracked book record.
//
// Date-valued fields are kept as the date strings the user (or an import
// file) supplied; validation and arithmetic live in the dates package.
// TotalPages and CurrentPage are pointers because absent and zero carry
// different meanings for the pace calculator.
type Book struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Title         string     `gorm:"index;size:512" json:"title"`
	Author        string     `gorm:"index;size:256" json:"author"`
	Status        BookStatus `gorm:"index;size:32" json:"status"`
	Source        BookSource `gorm:"size:32" json:"source"`
	TotalPages    *int       `json:"totalPages,omitempty"`
	CurrentPage   *int       `json:"currentPage,omitempty"`
	Image         string     `json:"image,omitempty"` // base64 encoded cover, display only
	ReturnDate    string     `gorm:"size:64" json:"returnDate,omitempty"`
	Deadline      string     `gorm:"size:64" json:"deadline,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	AddedDate     string     `gorm:"size:64" json:"addedDate"`
	CompletedDate string     `gorm:"size:64" json:"completedDate,omitempty"`
}

// DailyGoal is the recommended reading pace to finish a book by its
// deadline.
type DailyGoal struct {
	PagesPerDay         int `json:"pagesPerDay"`
	DaysRemaining       int `json:"daysRemaining"`
	TotalPagesRemaining int `json:"totalPagesRemaining"`
}
