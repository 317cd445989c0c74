// Package services defines the collaborator interfaces the highlight engine
// is wired against: document text extraction, page-image conversion, and the
// search entry point itself.
package services

import (
	"context"

	"github.com/SStephenB/pdf-highlight-oa/model"
)

// PageContent is what the text-extraction collaborator yields for one page:
// the page's text runs in emission order and the viewport for the requested
// scale. A page with no text layer yields zero runs.
type PageContent struct {
	TextRuns []model.TextRun
	Viewport model.Viewport
}

// Document is one loaded, paginated document. Pages are numbered from 1.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int
	// Page extracts the text runs and viewport for one page at the given
	// scale.
	Page(ctx context.Context, pageNumber int, scale float64) (*PageContent, error)
	// Close releases resources held by the document.
	Close() error
}

// DocumentProvider loads documents from a URL or local path.
type DocumentProvider interface {
	Open(ctx context.Context, documentURL string) (Document, error)
}

// PageConverter rasterizes every page of a document into images, one per page
// in page order. Image i corresponds to page i+1.
type PageConverter interface {
	Convert(ctx context.Context, pdfURL string) ([]model.PageImage, error)
}

// SearchQuery describes one search call.
type SearchQuery struct {
	Keywords    []string `json:"keywords"`
	DocumentURL string   `json:"url"`
	// Zoom is the render scale; zero or negative falls back to the configured
	// default.
	Zoom float64 `json:"zoom"`
}

// SearchResult is the ordered highlight collection of one search call:
// page-ascending, then keyword input order, then left to right within a line.
// A short or empty result may be the product of a partial failure, not
// necessarily a clean "no matches".
type SearchResult struct {
	Highlights []model.Highlight `json:"highlights"`
}

// Searcher is the search entry point. It never returns an error: failures are
// logged and whatever highlights were accumulated before the failure are
// returned.
type Searcher interface {
	Search(ctx context.Context, query SearchQuery) SearchResult
}
