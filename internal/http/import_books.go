package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/importer"
	"github.com/mrlokans/bookshelf/internal/services"
)

type ImportController struct {
	writer services.BookWriter
}

func NewImportController(writer services.BookWriter) *ImportController {
	return &ImportController{writer: writer}
}

// ImportPreview is returned when a valid batch still needs the caller's
// confirmation before the collection is replaced.
type ImportPreview struct {
	Message              string `json:"message"`
	ValidBooks           int    `json:"validBooks"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
}

// ImportBooks replaces the whole collection with the uploaded JSON
// array. The batch is all-or-nothing: any invalid record rejects the
// import with a report of the first five failures, and the complete
// list goes to the log. A valid batch is only committed when the
// request carries confirm=true; without it the endpoint answers with a
// preview so the caller can ask the user first.
// POST /api/books/import[?confirm=true]
func (ic *ImportController) ImportBooks(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, "failed to read request body")
		return
	}

	records, err := importer.ParseArray(body)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result := importer.ValidateBatch(records)

	if len(result.Errors) > 0 {
		log.Printf("Import rejected: %d invalid record(s) out of %d: %+v",
			len(result.Errors), len(records), result.Errors)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   importer.ErrorSummary(result.Errors),
			Details: gin.H{"invalidBooks": len(result.Errors), "validBooks": len(result.Valid)},
		})
		return
	}

	if len(result.Valid) == 0 {
		respondBadRequest(c, "no valid books found in the import file")
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusOK, ImportPreview{
			Message:              "import will replace the existing collection; repeat the request with confirm=true",
			ValidBooks:           len(result.Valid),
			RequiresConfirmation: true,
		})
		return
	}

	if err := ic.writer.ReplaceAllBooks(result.Valid); err != nil {
		if errors.Is(err, database.ErrQuotaExceeded) {
			respondQuotaExceeded(c)
			return
		}
		respondInternalError(c, err, "import books")
		return
	}

	log.Printf("Import replaced collection with %d book(s)", len(result.Valid))
	c.JSON(http.StatusOK, SuccessResponse{
		Message: "import complete",
		Data:    gin.H{"imported": len(result.Valid)},
	})
}
