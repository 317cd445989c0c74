// Package search orchestrates one highlight search call over a paginated
// document: it loads the document, probes for a text layer, and walks every
// page through either the precise text-layer pipeline or the approximate OCR
// fallback.
package search

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/SStephenB/pdf-highlight-oa/config"
	internalErrors "github.com/SStephenB/pdf-highlight-oa/internal/errors"
	"github.com/SStephenB/pdf-highlight-oa/internal/highlight"
	"github.com/SStephenB/pdf-highlight-oa/internal/lines"
	"github.com/SStephenB/pdf-highlight-oa/internal/match"
	"github.com/SStephenB/pdf-highlight-oa/internal/ocr"
	"github.com/SStephenB/pdf-highlight-oa/model"
	"github.com/SStephenB/pdf-highlight-oa/services"
)

// Service implements services.Searcher.
//
// One call runs the state machine LOAD_DOCUMENT -> PROBE_TEXT_LAYER ->
// {TEXT_LAYER_PATH | OCR_PATH} -> PER_PAGE_PROCESS(1..N) -> DONE. Pages are
// processed strictly in ascending order, one at a time, and highlights are
// appended to a shared accumulator as each page completes; the result
// ordering (page, then keyword input order, then left to right within a line)
// falls out of this sequencing, not out of a sort.
type Service struct {
	provider  services.DocumentProvider
	converter services.PageConverter
	engine    ocr.Engine
	settings  *config.Settings
	builder   *highlight.Builder
	estimator *highlight.Estimator
}

// NewService creates a search Service. The provider is required. The
// converter and OCR engine may be nil for deployments that only handle
// documents with a text layer; the OCR path then fails soft. Nil settings
// fall back to defaults.
func NewService(provider services.DocumentProvider, converter services.PageConverter, engine ocr.Engine, settings *config.Settings, ids highlight.IDGenerator) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("document provider cannot be nil")
	}
	if settings == nil {
		settings = config.Default()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &Service{
		provider:  provider,
		converter: converter,
		engine:    engine,
		settings:  settings,
		builder:   highlight.NewBuilder(ids),
		estimator: highlight.NewEstimator(ids, settings.OCRLineHeight),
	}, nil
}

// Search locates every keyword occurrence in the document and returns the
// highlights in page order. It fails soft: any failure is logged and the
// highlights accumulated before the failure are returned, so callers must
// treat a short or empty result as possibly partial.
func (s *Service) Search(ctx context.Context, query services.SearchQuery) services.SearchResult {
	result := services.SearchResult{Highlights: []model.Highlight{}}
	if err := s.run(ctx, query, &result); err != nil {
		log.Printf("Warning: search of %q stopped after %d highlight(s): %v", query.DocumentURL, len(result.Highlights), err)
	}
	return result
}

func (s *Service) run(ctx context.Context, query services.SearchQuery, result *services.SearchResult) error {
	zoom := query.Zoom
	if zoom <= 0 {
		zoom = s.settings.Zoom
	}

	doc, err := s.provider.Open(ctx, query.DocumentURL)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	defer doc.Close()

	// The probe inspects page 1 only; its outcome fixes the path for the
	// whole document. A document that grows a text layer on a later page is
	// still treated as image-only, and vice versa.
	probe, err := doc.Page(ctx, 1, zoom)
	if err != nil {
		return fmt.Errorf("probe page 1: %w", err)
	}

	if len(query.Keywords) == 0 {
		return nil
	}

	matcher, err := match.New(query.Keywords, s.settings.MatchMode)
	if err != nil {
		return err
	}

	if len(probe.TextRuns) > 0 {
		return s.searchTextLayer(ctx, doc, matcher, zoom, probe, result)
	}
	return s.searchOCR(ctx, doc, matcher, zoom, query.DocumentURL, result)
}

// searchTextLayer runs the precise pipeline: reconstruct lines from each
// page's runs, scan them, and project every match through the page viewport.
func (s *Service) searchTextLayer(ctx context.Context, doc services.Document, matcher *match.Matcher, zoom float64, probe *services.PageContent, result *services.SearchResult) error {
	for pageNumber := 1; pageNumber <= doc.PageCount(); pageNumber++ {
		content := probe
		if pageNumber > 1 {
			var err error
			content, err = doc.Page(ctx, pageNumber, zoom)
			if err != nil {
				return fmt.Errorf("extract page %d: %w", pageNumber, err)
			}
		}
		for line := range lines.Reconstruct(content.TextRuns) {
			for _, m := range matcher.FindAll(line.Text) {
				result.Highlights = append(result.Highlights, s.builder.Build(line, m, content.Viewport, pageNumber))
			}
		}
	}
	return nil
}

// searchOCR runs the fallback pipeline: one conversion call for the whole
// document, then one recognition call per image, awaited in page order, each
// page's recognized text going through the proportional estimator.
func (s *Service) searchOCR(ctx context.Context, doc services.Document, matcher *match.Matcher, zoom float64, documentURL string, result *services.SearchResult) error {
	if s.converter == nil || s.engine == nil {
		return fmt.Errorf("document has no text layer and no conversion/OCR collaborators are configured")
	}

	images, err := s.converter.Convert(ctx, documentURL)
	if err != nil {
		return fmt.Errorf("convert pages: %w", err)
	}

	for i, img := range images {
		pageNumber := i + 1 // image i corresponds to page i+1

		data, err := base64.StdEncoding.DecodeString(img.Image)
		if err != nil {
			return internalErrors.NewRecognitionError(pageNumber, fmt.Errorf("decoding image: %w", err))
		}
		recognized, err := s.engine.Recognize(ctx, ocr.Input{
			ID:        fmt.Sprintf("page-%d", pageNumber),
			Image:     data,
			Languages: s.settings.OCRLanguages,
		})
		if err != nil {
			return internalErrors.NewRecognitionError(pageNumber, err)
		}

		content, err := doc.Page(ctx, pageNumber, zoom)
		if err != nil {
			return fmt.Errorf("viewport of page %d: %w", pageNumber, err)
		}
		result.Highlights = append(result.Highlights, s.estimator.EstimatePage(recognized.PlainText, matcher, content.Viewport, pageNumber)...)
	}
	return nil
}
