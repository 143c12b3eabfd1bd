package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/services"
	"github.com/mrlokans/bookshelf/internal/stats"
)

type StatsController struct {
	reader services.BookReader
}

func NewStatsController(reader services.BookReader) *StatsController {
	return &StatsController{reader: reader}
}

// GetStats returns collection-level aggregates.
// GET /api/books/stats
func (sc *StatsController) GetStats(c *gin.Context) {
	books, err := sc.reader.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "book stats")
		return
	}
	c.IndentedJSON(http.StatusOK, stats.Compute(books))
}
