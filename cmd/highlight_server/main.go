package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/SStephenB/pdf-highlight-oa/api"
	"github.com/SStephenB/pdf-highlight-oa/config"
	"github.com/SStephenB/pdf-highlight-oa/internal/converter"
	"github.com/SStephenB/pdf-highlight-oa/internal/ocr"
	"github.com/SStephenB/pdf-highlight-oa/internal/pdf"
	"github.com/SStephenB/pdf-highlight-oa/internal/search"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "8080", "Port to run the server on")
		configPath = flag.String("config", "", "Path to a YAML settings file")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("PDF Highlight Server - keyword search with highlight geometry\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                             # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                 # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --config settings.yaml      # Use custom settings\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("PDF Highlight Server v1.0.0\n")
		fmt.Printf("Text extraction with OCR fallback for scanned documents\n")
		return
	}

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings from %s: %v", *configPath, err)
		}
		settings = loaded
		log.Printf("Loaded settings from %s", *configPath)
	}

	// The conversion endpoint defaults to this process; the search engine
	// calls it over HTTP exactly like an external converter.
	converterURL := settings.ConverterURL
	if converterURL == "" {
		converterURL = "http://localhost:" + *port
	}

	provider := pdf.NewProvider(http.DefaultClient)
	rasterizer := converter.NewImageDeviceRasterizer()
	convertClient := converter.NewClient(converterURL, http.DefaultClient)
	engine := ocr.NewTesseractEngine()

	searcher, err := search.NewService(provider, convertClient, engine, settings, nil)
	if err != nil {
		log.Fatalf("Failed to initialize search service: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, searcher, rasterizer, settings)

	// Start the server
	log.Printf("Starting server on port %s (converter: %s)...", *port, converterURL)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
