// Package config provides configuration structures for the highlight engine.
// It defines search settings, OCR options, and the converter endpoint.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MatchMode controls how keywords are interpreted during matching.
//
// MatchModePattern feeds each keyword to the regexp engine unescaped, so a
// keyword containing metacharacters behaves as a pattern, not as literal
// text. This mirrors the behavior highlight consumers have come to rely on.
// MatchModeLiteral escapes every keyword before compiling, turning each one
// into a plain case-insensitive substring search.
type MatchMode string

const (
	MatchModePattern MatchMode = "pattern"
	MatchModeLiteral MatchMode = "literal"
)

// Settings contains all configuration options for a search call and the
// surrounding service.
type Settings struct {
	// Zoom is the default render scale used when a search request does not
	// specify one.
	Zoom float64 `json:"zoom" yaml:"zoom"`
	// MatchMode selects pattern or literal keyword interpretation.
	MatchMode MatchMode `json:"match_mode" yaml:"match_mode"`
	// OCRLanguages are the trained-data hints passed to the OCR engine.
	OCRLanguages []string `json:"ocr_languages" yaml:"ocr_languages"`
	// OCRLineHeight is the fixed height, in viewport units, assigned to
	// highlights estimated from recognized text. OCR output carries no glyph
	// geometry, so the estimator cannot do better than a constant.
	OCRLineHeight float64 `json:"ocr_line_height" yaml:"ocr_line_height"`
	// ConverterURL is the base URL of the image-conversion endpoint used by
	// the OCR path.
	ConverterURL string `json:"converter_url" yaml:"converter_url"`
	// RenderDPI is the raster resolution the conversion adapter renders pages
	// at before OCR.
	RenderDPI int `json:"render_dpi" yaml:"render_dpi"`
}

// ApplyDefaults fills in zero-valued settings with their defaults.
func (s *Settings) ApplyDefaults() {
	if s.Zoom == 0 {
		s.Zoom = 1
	}
	if s.MatchMode == "" {
		s.MatchMode = MatchModePattern
	}
	if len(s.OCRLanguages) == 0 {
		s.OCRLanguages = []string{"eng"}
	}
	if s.OCRLineHeight == 0 {
		s.OCRLineHeight = 12
	}
	if s.RenderDPI == 0 {
		s.RenderDPI = 144
	}
}

// Validate checks the settings for values the engine cannot work with.
func (s *Settings) Validate() error {
	if s.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %v", s.Zoom)
	}
	if s.MatchMode != MatchModePattern && s.MatchMode != MatchModeLiteral {
		return fmt.Errorf("match_mode must be %q or %q, got %q", MatchModePattern, MatchModeLiteral, s.MatchMode)
	}
	if s.OCRLineHeight <= 0 {
		return fmt.Errorf("ocr_line_height must be positive, got %v", s.OCRLineHeight)
	}
	if s.RenderDPI <= 0 {
		return fmt.Errorf("render_dpi must be positive, got %d", s.RenderDPI)
	}
	return nil
}

// Load reads settings from a YAML file, applies defaults and validates the
// result.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	settings := &Settings{}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings file %q: %w", path, err)
	}
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Default returns settings with every option at its default value.
func Default() *Settings {
	settings := &Settings{}
	settings.ApplyDefaults()
	return settings
}
