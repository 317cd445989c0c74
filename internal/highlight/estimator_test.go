package highlight

import (
	"testing"

	"github.com/SStephenB/pdf-highlight-oa/config"
	"github.com/SStephenB/pdf-highlight-oa/internal/match"
	"github.com/SStephenB/pdf-highlight-oa/model"
)

func newMatcher(t *testing.T, keywords ...string) *match.Matcher {
	t.Helper()
	m, err := match.New(keywords, config.MatchModePattern)
	if err != nil {
		t.Fatalf("match.New: %v", err)
	}
	return m
}

func TestEstimatePageProportionalGeometry(t *testing.T) {
	vp := model.Viewport{Width: 600, Height: 800}
	est := NewEstimator(NewSequentialGenerator("ocr"), 12)

	got := est.EstimatePage("hello\nworld", newMatcher(t, "world"), vp, 1)
	if len(got) != 1 {
		t.Fatalf("got %d highlights, want 1", len(got))
	}

	rect := got[0].Position.BoundingRect
	// "world" is line 1 of 2 and spans the whole 5-character line.
	if rect.Y1 != 400 || rect.Y2 != 412 {
		t.Errorf("vertical span = [%v, %v], want [400, 412]", rect.Y1, rect.Y2)
	}
	if rect.X1 != 0 || rect.X2 != 600 {
		t.Errorf("horizontal span = [%v, %v], want [0, 600]", rect.X1, rect.X2)
	}
	if got[0].Content.Text != "world" {
		t.Errorf("Content.Text = %q, want %q", got[0].Content.Text, "world")
	}
	if got[0].ID != "ocr-1" {
		t.Errorf("ID = %q, want ocr-1", got[0].ID)
	}
}

func TestEstimatePagePartialLineSpan(t *testing.T) {
	vp := model.Viewport{Width: 100, Height: 300}
	est := NewEstimator(nil, 12)

	// "cd" occupies bytes [2, 4) of the 8-character first line.
	got := est.EstimatePage("abcdefgh\nsecond\nthird", newMatcher(t, "cd"), vp, 4)
	if len(got) != 1 {
		t.Fatalf("got %d highlights, want 1", len(got))
	}
	rect := got[0].Position.BoundingRect
	if rect.X1 != 25 || rect.X2 != 50 {
		t.Errorf("horizontal span = [%v, %v], want [25, 50]", rect.X1, rect.X2)
	}
	if rect.Y1 != 0 || rect.Y2 != 12 {
		t.Errorf("vertical span = [%v, %v], want [0, 12]", rect.Y1, rect.Y2)
	}
	if rect.PageNumber != 4 {
		t.Errorf("PageNumber = %d, want 4", rect.PageNumber)
	}
}

func TestEstimatePageKeywordMajorOrder(t *testing.T) {
	vp := model.Viewport{Width: 100, Height: 100}
	est := NewEstimator(NewSequentialGenerator("id"), 12)

	got := est.EstimatePage("beta alpha\nalpha beta", newMatcher(t, "alpha", "beta"), vp, 1)
	if len(got) != 4 {
		t.Fatalf("got %d highlights, want 4", len(got))
	}
	// All alpha matches come before any beta match, each keyword in line
	// order.
	wantOrder := []string{"alpha", "alpha", "beta", "beta"}
	for i, h := range got {
		if h.Content.Text != wantOrder[i] {
			t.Errorf("highlight %d text = %q, want %q", i, h.Content.Text, wantOrder[i])
		}
	}
	if got[0].Position.BoundingRect.Y1 >= got[1].Position.BoundingRect.Y1 {
		t.Error("alpha matches are not in line order")
	}
}

func TestEstimatePageSkipsEmptyLines(t *testing.T) {
	vp := model.Viewport{Width: 100, Height: 100}
	est := NewEstimator(nil, 12)

	got := est.EstimatePage("\n\nword\n\n", newMatcher(t, "word"), vp, 1)
	if len(got) != 1 {
		t.Fatalf("got %d highlights, want 1", len(got))
	}
	// Line index 2 of 5.
	if y1 := got[0].Position.BoundingRect.Y1; y1 != 40 {
		t.Errorf("Y1 = %v, want 40", y1)
	}
}

func TestEstimatePageNoRecognizedText(t *testing.T) {
	est := NewEstimator(nil, 12)
	got := est.EstimatePage("", newMatcher(t, "word"), model.Viewport{Width: 10, Height: 10}, 1)
	if len(got) != 0 {
		t.Errorf("got %d highlights from empty text, want 0", len(got))
	}
}
