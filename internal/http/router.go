package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/services"
)

// RouterConfig carries the dependencies of the HTTP layer, improving
// testability and reducing parameter count.
type RouterConfig struct {
	Store   services.BookStore
	DB      *database.Database
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	booksController := NewBooksController(cfg.Store)
	statsController := NewStatsController(cfg.Store)
	exportController := NewExportController(cfg.Store)
	importController := NewImportController(cfg.Store)
	healthController := NewHealthController(cfg.DB, cfg.Version)

	router.GET("/healthz", healthController.Status)

	api := router.Group("/api")
	{
		api.GET("/books", booksController.ListBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/stats", statsController.GetStats)
		api.GET("/books/export", exportController.ExportBooks)
		api.POST("/books/import", importController.ImportBooks)
		api.GET("/books/:id", booksController.GetBook)
		api.PUT("/books/:id", booksController.UpdateBook)
		api.DELETE("/books/:id", booksController.DeleteBook)
	}

	return router
}
