package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SStephenB/pdf-highlight-oa/services"
)

// SearchRequest defines the structure for search calls over HTTP.
type SearchRequest struct {
	Keywords []string `json:"keywords"`
	URL      string   `json:"url"`
	Zoom     float64  `json:"zoom"`
}

// SearchHandler runs one highlight search. The engine fails soft, so this
// endpoint answers 200 with whatever highlights were produced; an empty list
// may mean "no matches" or a partial failure.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}
	if req.URL == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "url is required")
		return
	}

	result := api.searcher.Search(c.Request.Context(), services.SearchQuery{
		Keywords:    req.Keywords,
		DocumentURL: req.URL,
		Zoom:        req.Zoom,
	})
	c.JSON(http.StatusOK, result)
}
