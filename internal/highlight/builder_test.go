package highlight

import (
	"testing"

	"github.com/SStephenB/pdf-highlight-oa/config"
	"github.com/SStephenB/pdf-highlight-oa/internal/lines"
	"github.com/SStephenB/pdf-highlight-oa/internal/match"
	"github.com/SStephenB/pdf-highlight-oa/model"
)

func singleMatch(t *testing.T, text, keyword string) match.Match {
	t.Helper()
	m, err := match.New([]string{keyword}, config.MatchModeLiteral)
	if err != nil {
		t.Fatalf("match.New: %v", err)
	}
	matches := m.FindAll(text)
	if len(matches) != 1 {
		t.Fatalf("got %d matches for %q in %q, want 1", len(matches), keyword, text)
	}
	return matches[0]
}

func TestBuildOneLinePage(t *testing.T) {
	line := lines.Line{
		Text: "The cat",
		Runs: []model.TextRun{
			{Text: "The", X: 0, Y: 100, Width: 30, Height: 12},
			{Text: " cat", X: 30, Y: 100, Width: 25, Height: 12},
		},
	}
	vp := model.Viewport{Scale: 1, Width: 600, Height: 800}
	builder := NewBuilder(NewSequentialGenerator("hl"))

	h := builder.Build(line, singleMatch(t, line.Text, "cat"), vp, 1)

	if h.Content.Text != "cat" {
		t.Errorf("Content.Text = %q, want %q", h.Content.Text, "cat")
	}
	// Pre-transform box is x1=30, y1=100, x2=55, y2=112; the flip against a
	// height-800 viewport puts it at [688, 700].
	rect := h.Position.BoundingRect
	if rect.X1 != 30 || rect.X2 != 55 {
		t.Errorf("horizontal span = [%v, %v], want [30, 55]", rect.X1, rect.X2)
	}
	if rect.Y1 != 688 || rect.Y2 != 700 {
		t.Errorf("vertical span = [%v, %v], want [688, 700]", rect.Y1, rect.Y2)
	}
	if rect.PageNumber != 1 {
		t.Errorf("rect.PageNumber = %d, want 1", rect.PageNumber)
	}
	if h.ID != "hl-1" {
		t.Errorf("ID = %q, want hl-1", h.ID)
	}
}

func TestBuildRectsMirrorsBoundingRect(t *testing.T) {
	line := lines.Line{
		Text: "word",
		Runs: []model.TextRun{{Text: "word", X: 10, Y: 50, Width: 40, Height: 10}},
	}
	vp := model.Viewport{Scale: 1, Width: 600, Height: 800}

	h := NewBuilder(nil).Build(line, singleMatch(t, "word", "word"), vp, 2)

	if len(h.Position.Rects) != 1 {
		t.Fatalf("len(Rects) = %d, want 1", len(h.Position.Rects))
	}
	if h.Position.Rects[0] != h.Position.BoundingRect {
		t.Errorf("Rects[0] = %+v differs from BoundingRect %+v", h.Position.Rects[0], h.Position.BoundingRect)
	}
	if h.Position.PageNumber != 2 {
		t.Errorf("Position.PageNumber = %d, want 2", h.Position.PageNumber)
	}
	if h.ID == "" {
		t.Error("default generator produced an empty id")
	}
}

func TestBuildUsesLineMaxHeight(t *testing.T) {
	// A superscript run makes the line taller than the matched run itself.
	line := lines.Line{
		Text: "x2 note",
		Runs: []model.TextRun{
			{Text: "x", X: 0, Y: 100, Width: 8, Height: 12},
			{Text: "2", X: 8, Y: 100, Width: 4, Height: 18},
			{Text: " note", X: 12, Y: 100, Width: 40, Height: 12},
		},
	}
	vp := model.Viewport{Scale: 1, Width: 600, Height: 800}

	h := NewBuilder(nil).Build(line, singleMatch(t, line.Text, "note"), vp, 1)

	rect := h.Position.BoundingRect
	if rect.Height != 18 {
		t.Errorf("Height = %v, want the line max 18", rect.Height)
	}
}

func TestBuildMatchSpanningRuns(t *testing.T) {
	line := lines.Line{
		Text: "forget-me-not",
		Runs: []model.TextRun{
			{Text: "forget", X: 0, Y: 40, Width: 48, Height: 10},
			{Text: "-me-", X: 48, Y: 40, Width: 24, Height: 10},
			{Text: "not", X: 72, Y: 40, Width: 24, Height: 10},
		},
	}
	vp := model.Viewport{Scale: 1, Width: 600, Height: 800}

	h := NewBuilder(nil).Build(line, singleMatch(t, line.Text, "me-not"), vp, 1)

	rect := h.Position.BoundingRect
	// Start falls in the second run, end in the third: the box spans from the
	// second run's left edge to the third run's right edge.
	if rect.X1 != 48 {
		t.Errorf("X1 = %v, want 48", rect.X1)
	}
	if rect.X2 != 96 {
		t.Errorf("X2 = %v, want 96", rect.X2)
	}
}

func TestLocateRunsBoundaries(t *testing.T) {
	line := lines.Line{
		Text: "abcdef",
		Runs: []model.TextRun{
			{Text: "ab", X: 0},
			{Text: "cd", X: 20},
			{Text: "ef", X: 40},
		},
	}

	tests := []struct {
		name       string
		start, end int
		wantStartX float64
		wantEndX   float64
	}{
		{"inside first run", 0, 2, 0, 0},
		{"start at run boundary", 2, 4, 20, 20},
		{"span all runs", 0, 6, 0, 40},
		{"end exactly at run edge", 1, 2, 0, 0},
		{"single char in last run", 5, 6, 40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startRun, endRun := locateRuns(line, tt.start, tt.end)
			if startRun.X != tt.wantStartX {
				t.Errorf("startRun.X = %v, want %v", startRun.X, tt.wantStartX)
			}
			if endRun.X != tt.wantEndX {
				t.Errorf("endRun.X = %v, want %v", endRun.X, tt.wantEndX)
			}
		})
	}
}

func TestSequentialGenerator(t *testing.T) {
	gen := NewSequentialGenerator("test")
	if got := gen.NewID(); got != "test-1" {
		t.Errorf("first id = %q, want test-1", got)
	}
	if got := gen.NewID(); got != "test-2" {
		t.Errorf("second id = %q, want test-2", got)
	}
}
