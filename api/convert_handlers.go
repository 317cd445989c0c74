package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SStephenB/pdf-highlight-oa/internal/converter"
	"github.com/SStephenB/pdf-highlight-oa/internal/pdf"
)

// ConvertHandler implements the image-conversion endpoint: it fetches the
// document named in the request and returns one rasterized image per page, in
// page order.
// Request Body: converter.ConvertRequest
func (api *API) ConvertHandler(c *gin.Context) {
	var req converter.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}
	if req.PDFURL == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "pdfUrl is required")
		return
	}

	data, err := pdf.Fetch(c.Request.Context(), api.httpClient, req.PDFURL)
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeConversionFailed, "Failed to fetch document: "+err.Error())
		return
	}

	images, err := api.rasterizer.RasterizePages(c.Request.Context(), data, api.settings.RenderDPI)
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeConversionFailed, "Failed to convert document: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, images)
}
