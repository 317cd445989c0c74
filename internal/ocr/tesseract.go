package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine using the gosseract client as the default
// OCR provider.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{clientFactory: gosseract.NewClient}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize performs OCR on a single image input.
func (e *TesseractEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognize text: %w", err)
	}
	return Result{InputID: in.ID, PlainText: strings.TrimSpace(text)}, nil
}
