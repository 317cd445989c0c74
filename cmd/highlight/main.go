// Command highlight searches a PDF for keywords from the command line and
// prints the resulting highlight geometry. It runs the full engine in-process,
// including the OCR fallback, without needing a running server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/SStephenB/pdf-highlight-oa/config"
	"github.com/SStephenB/pdf-highlight-oa/internal/converter"
	"github.com/SStephenB/pdf-highlight-oa/internal/ocr"
	"github.com/SStephenB/pdf-highlight-oa/internal/pdf"
	"github.com/SStephenB/pdf-highlight-oa/internal/search"
	"github.com/SStephenB/pdf-highlight-oa/services"
)

func main() {
	var (
		keywords = flag.String("keywords", "", "Comma-separated keywords to search for")
		zoom     = flag.Float64("zoom", 0, "Render scale (0 uses the configured default)")
		mode     = flag.String("mode", "", "Keyword interpretation: pattern or literal")
		asJSON   = flag.Bool("json", false, "Print highlights as JSON")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <pdf-url-or-path>\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *keywords == "" {
		flag.Usage()
		os.Exit(2)
	}
	documentURL := flag.Arg(0)

	settings := config.Default()
	if *mode != "" {
		settings.MatchMode = config.MatchMode(*mode)
	}
	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	provider := pdf.NewProvider(http.DefaultClient)
	rasterizer := converter.NewImageDeviceRasterizer()
	localConverter := converter.NewLocal(rasterizer, http.DefaultClient, settings.RenderDPI)
	engine := ocr.NewTesseractEngine()

	searcher, err := search.NewService(provider, localConverter, engine, settings, nil)
	if err != nil {
		log.Fatalf("Failed to initialize search service: %v", err)
	}

	result := searcher.Search(context.Background(), services.SearchQuery{
		Keywords:    splitKeywords(*keywords),
		DocumentURL: documentURL,
		Zoom:        *zoom,
	})

	if *asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		return
	}

	printHighlights(result)
}

func splitKeywords(raw string) []string {
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}

func printHighlights(result services.SearchResult) {
	if len(result.Highlights) == 0 {
		color.Yellow("No matches found")
		return
	}

	header := color.New(color.FgCyan, color.Bold)
	match := color.New(color.FgGreen)

	currentPage := -1
	for _, hl := range result.Highlights {
		if hl.Position.PageNumber != currentPage {
			currentPage = hl.Position.PageNumber
			header.Printf("Page %d\n", currentPage)
		}
		rect := hl.Position.BoundingRect
		match.Printf("  %-20q", hl.Content.Text)
		fmt.Printf("  x=[%.1f, %.1f]  y=[%.1f, %.1f]\n", rect.X1, rect.X2, rect.Y1, rect.Y2)
	}
	fmt.Printf("\n%d highlight(s)\n", len(result.Highlights))
}
