package highlight

import (
	"strings"

	"github.com/SStephenB/pdf-highlight-oa/internal/match"
	"github.com/SStephenB/pdf-highlight-oa/model"
)

// DefaultOCRLineHeight is the fixed height, in viewport units, of estimated
// highlight boxes.
const DefaultOCRLineHeight = 12

// Estimator produces approximate highlights from recognized page text.
// OCR output carries no glyph geometry, so positions are derived purely from
// proportions: a line's vertical slot within the page and a match's character
// span within its line. The result is coarse; it trades accuracy for the
// ability to highlight documents with no text layer at all.
type Estimator struct {
	ids        IDGenerator
	lineHeight float64
}

// NewEstimator creates an Estimator. A nil generator defaults to UUIDs; a
// non-positive line height defaults to DefaultOCRLineHeight.
func NewEstimator(ids IDGenerator, lineHeight float64) *Estimator {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if lineHeight <= 0 {
		lineHeight = DefaultOCRLineHeight
	}
	return &Estimator{ids: ids, lineHeight: lineHeight}
}

// EstimatePage scans one page's recognized text and returns estimated
// highlights: keywords in input order, then line order, then left to right.
// Geometry per match, for line lineIndex of totalLines:
//
//	y1 = viewport.Height * lineIndex / totalLines
//	y2 = y1 + lineHeight
//	x1 = viewport.Width * start / len(line)
//	x2 = viewport.Width * end / len(line)
func (e *Estimator) EstimatePage(recognized string, matcher *match.Matcher, vp model.Viewport, pageNumber int) []model.Highlight {
	pageLines := strings.Split(recognized, "\n")
	totalLines := len(pageLines)

	var out []model.Highlight
	for _, kw := range matcher.Keywords() {
		for lineIndex, lineText := range pageLines {
			if lineText == "" {
				continue
			}
			lineLen := float64(len(lineText))
			for _, m := range kw.Find(lineText) {
				y1 := vp.Height * float64(lineIndex) / float64(totalLines)
				y2 := y1 + e.lineHeight
				x1 := vp.Width * float64(m.Start) / lineLen
				x2 := vp.Width * float64(m.End) / lineLen

				rect := model.Rect{
					X1:         x1,
					Y1:         y1,
					X2:         x2,
					Y2:         y2,
					Width:      x2 - x1,
					Height:     y2 - y1,
					PageNumber: pageNumber,
				}
				out = append(out, model.Highlight{
					ID:      e.ids.NewID(),
					Content: model.Content{Text: m.Text},
					Position: model.Position{
						BoundingRect: rect,
						Rects:        []model.Rect{rect},
						PageNumber:   pageNumber,
					},
					Comment: model.Comment{},
				})
			}
		}
	}
	return out
}
