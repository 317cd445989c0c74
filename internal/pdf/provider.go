// Package pdf implements the document text-extraction collaborator on top of
// unipdf: it loads a document, exposes its page count, and yields each page's
// positioned text runs and viewport.
package pdf

import (
	"bytes"
	"context"
	"net/http"

	"github.com/unidoc/unipdf/v3/extractor"
	pdfmodel "github.com/unidoc/unipdf/v3/model"

	internalErrors "github.com/SStephenB/pdf-highlight-oa/internal/errors"
	"github.com/SStephenB/pdf-highlight-oa/model"
	"github.com/SStephenB/pdf-highlight-oa/services"
)

// Provider implements services.DocumentProvider.
type Provider struct {
	httpClient *http.Client
}

// NewProvider creates a Provider. A nil httpClient falls back to
// http.DefaultClient for remote documents.
func NewProvider(httpClient *http.Client) *Provider {
	return &Provider{httpClient: httpClient}
}

// Open fetches and parses the document at documentURL.
func (p *Provider) Open(ctx context.Context, documentURL string) (services.Document, error) {
	data, err := Fetch(ctx, p.httpClient, documentURL)
	if err != nil {
		return nil, internalErrors.NewDocumentLoadError(documentURL, err)
	}
	reader, err := pdfmodel.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return nil, internalErrors.NewDocumentLoadError(documentURL, err)
	}
	numPages, err := reader.GetNumPages()
	if err != nil {
		return nil, internalErrors.NewDocumentLoadError(documentURL, err)
	}
	return &document{reader: reader, numPages: numPages}, nil
}

type document struct {
	reader   *pdfmodel.PdfReader
	numPages int
}

func (d *document) PageCount() int { return d.numPages }

func (d *document) Close() error { return nil }

// Page extracts one page's text runs and builds its viewport at the requested
// scale. Pages without a text layer yield zero runs.
func (d *document) Page(ctx context.Context, pageNumber int, scale float64) (*services.PageContent, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	page, err := d.reader.GetPage(pageNumber)
	if err != nil {
		return nil, internalErrors.NewPageExtractionError(pageNumber, err)
	}
	mbox, err := page.GetMediaBox()
	if err != nil {
		return nil, internalErrors.NewPageExtractionError(pageNumber, err)
	}

	ex, err := extractor.New(page)
	if err != nil {
		return nil, internalErrors.NewPageExtractionError(pageNumber, err)
	}
	pageText, _, _, err := ex.ExtractPageText()
	if err != nil {
		return nil, internalErrors.NewPageExtractionError(pageNumber, err)
	}

	return &services.PageContent{
		TextRuns: runsFromMarks(pageText.Marks().Elements()),
		Viewport: model.Viewport{
			Scale:  scale,
			Width:  mbox.Width() * scale,
			Height: mbox.Height() * scale,
		},
	}, nil
}

// runsFromMarks coalesces consecutive glyph marks sharing a baseline into
// text runs. Synthesized marks (the spaces and newlines the extractor inserts
// between words) carry no geometry: their space characters extend the current
// run's text, newlines are dropped because line structure is recovered from
// baselines downstream.
func runsFromMarks(marks []extractor.TextMark) []model.TextRun {
	var runs []model.TextRun
	var current *model.TextRun

	for _, mark := range marks {
		if mark.Meta {
			if current != nil && mark.Text != "" && mark.Text != "\n" {
				current.Text += mark.Text
			}
			continue
		}
		if mark.Text == "" {
			continue
		}

		box := mark.BBox
		if current != nil && box.Lly == current.Y {
			current.Text += mark.Text
			if right := box.Urx; right > current.X+current.Width {
				current.Width = right - current.X
			}
			if h := box.Ury - box.Lly; h > current.Height {
				current.Height = h
			}
			continue
		}

		if current != nil {
			runs = append(runs, *current)
		}
		current = &model.TextRun{
			Text:   mark.Text,
			X:      box.Llx,
			Y:      box.Lly,
			Width:  box.Urx - box.Llx,
			Height: box.Ury - box.Lly,
		}
	}
	if current != nil {
		runs = append(runs, *current)
	}
	return runs
}
