// Package ocr defines the boundary to optical character recognition engines.
// The interface is small and transport-agnostic so engines can be backed by
// native libraries or remote services without leaking provider concerns into
// the search pipeline.
package ocr

import "context"

// Input is a single encoded image submitted for recognition.
type Input struct {
	// ID is an optional caller-provided identifier echoed back in the Result.
	ID string
	// Image is the encoded image payload (PNG or JPEG).
	Image []byte
	// Languages is a list of trained-data hints (e.g., "eng") the provider
	// can use to select models.
	Languages []string
}

// Result is the recognized text for one input image. Recognition yields plain
// text only; no positional metadata survives the round trip.
type Result struct {
	InputID   string
	PlainText string
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
