package converter

import (
	"context"
	"net/http"

	"github.com/SStephenB/pdf-highlight-oa/internal/pdf"
	"github.com/SStephenB/pdf-highlight-oa/model"
)

// Local converts pages in-process instead of calling a conversion endpoint.
// It implements services.PageConverter and exists for callers, like the CLI,
// that have no server to talk to.
type Local struct {
	rasterizer Rasterizer
	httpClient *http.Client
	dpi        int
}

// NewLocal creates an in-process converter rendering at the given DPI. A nil
// rasterizer falls back to the default image-device rasterizer.
func NewLocal(rasterizer Rasterizer, httpClient *http.Client, dpi int) *Local {
	if rasterizer == nil {
		rasterizer = NewImageDeviceRasterizer()
	}
	return &Local{rasterizer: rasterizer, httpClient: httpClient, dpi: dpi}
}

// Convert fetches the document and rasterizes every page.
func (l *Local) Convert(ctx context.Context, pdfURL string) ([]model.PageImage, error) {
	data, err := pdf.Fetch(ctx, l.httpClient, pdfURL)
	if err != nil {
		return nil, err
	}
	return l.rasterizer.RasterizePages(ctx, data, l.dpi)
}
