// Package highlight converts keyword matches into renderable highlight
// regions, either precisely from glyph runs or approximately from recognized
// text when no text layer exists.
package highlight

import (
	"github.com/SStephenB/pdf-highlight-oa/internal/geom"
	"github.com/SStephenB/pdf-highlight-oa/internal/lines"
	"github.com/SStephenB/pdf-highlight-oa/internal/match"
	"github.com/SStephenB/pdf-highlight-oa/model"
)

// Builder turns matches within reconstructed lines into highlights.
type Builder struct {
	ids IDGenerator
}

// NewBuilder creates a Builder. A nil generator defaults to UUIDs.
func NewBuilder(ids IDGenerator) *Builder {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Builder{ids: ids}
}

// Build produces exactly one highlight for a match inside a line. The box
// spans from the left edge of the run covering the match start to the right
// edge of the run covering the match end, and its height is the line's
// maximum run height rather than the matched substring's tight height.
func (b *Builder) Build(line lines.Line, m match.Match, vp model.Viewport, pageNumber int) model.Highlight {
	startRun, endRun := locateRuns(line, m.Start, m.End)

	x1 := startRun.X
	y1 := startRun.Y
	x2 := endRun.X + endRun.Width
	y2 := y1 + line.MaxRunHeight()

	rect := geom.RectFromCorners(vp, x1, y1, x2, y2, pageNumber)

	return model.Highlight{
		ID:      b.ids.NewID(),
		Content: model.Content{Text: m.Text},
		Position: model.Position{
			BoundingRect: rect,
			Rects:        []model.Rect{rect},
			PageNumber:   pageNumber,
		},
		Comment: model.Comment{},
	}
}

// locateRuns walks the line's runs accumulating text lengths and returns the
// first run covering start and the first run whose cumulative end reaches
// end. The line invariant (run texts concatenate to the line text) keeps the
// walk inside the run list for any in-range offsets; out-of-range offsets
// fall back to the last run.
func locateRuns(line lines.Line, start, end int) (model.TextRun, model.TextRun) {
	var startRun model.TextRun
	startFound := false
	offset := 0
	for _, run := range line.Runs {
		next := offset + len(run.Text)
		if !startFound && start < next {
			startRun = run
			startFound = true
		}
		if end <= next {
			return startRun, run
		}
		offset = next
	}

	last := line.Runs[len(line.Runs)-1]
	if !startFound {
		startRun = last
	}
	return startRun, last
}
