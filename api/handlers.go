// Package api exposes the HTTP surface: the image-conversion adapter used by
// the OCR path and a search endpoint wrapping the highlight engine.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SStephenB/pdf-highlight-oa/config"
	"github.com/SStephenB/pdf-highlight-oa/internal/converter"
	"github.com/SStephenB/pdf-highlight-oa/services"
)

// maxRequestBodyBytes bounds incoming request bodies.
const maxRequestBodyBytes = 1 << 20

// API holds dependencies for the HTTP handlers.
type API struct {
	searcher   services.Searcher
	rasterizer converter.Rasterizer
	settings   *config.Settings
	httpClient *http.Client
}

// NewAPI creates the API handler structure. Nil settings fall back to
// defaults.
func NewAPI(searcher services.Searcher, rasterizer converter.Rasterizer, settings *config.Settings) *API {
	if settings == nil {
		settings = config.Default()
	}
	return &API{
		searcher:   searcher,
		rasterizer: rasterizer,
		settings:   settings,
		httpClient: http.DefaultClient,
	}
}

// SetupRoutes defines all HTTP routes.
func SetupRoutes(router *gin.Engine, searcher services.Searcher, rasterizer converter.Rasterizer, settings *config.Settings) {
	apiHandler := NewAPI(searcher, rasterizer, settings)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))

	router.GET("/health", apiHandler.HealthCheckHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.POST("/convert", apiHandler.ConvertHandler) // Rasterize a document's pages for OCR
		apiRoutes.POST("/search", apiHandler.SearchHandler)   // Search a document for keyword highlights
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
