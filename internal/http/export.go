package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/exporters"
	"github.com/mrlokans/bookshelf/internal/services"
)

type ExportController struct {
	reader services.BookReader
	now    func() time.Time
}

func NewExportController(reader services.BookReader) *ExportController {
	return &ExportController{reader: reader, now: time.Now}
}

// ExportBooks downloads the full collection as an indented JSON file
// named book-records-<date>.json. The output feeds straight back into
// the import endpoint.
// GET /api/books/export
func (ec *ExportController) ExportBooks(c *gin.Context) {
	books, err := ec.reader.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "export books")
		return
	}

	data, err := exporters.BooksJSON(books)
	if err != nil {
		respondInternalError(c, err, "export books")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporters.Filename(ec.now())))
	c.Data(http.StatusOK, "application/json", data)
}
