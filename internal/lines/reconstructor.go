// Package lines reconstructs reading-order lines from the ordered text runs
// the extraction collaborator emits for one page. Runs arrive left-to-right
// within a line, but lines themselves are not guaranteed globally sorted.
package lines

import (
	"iter"
	"strings"

	"github.com/SStephenB/pdf-highlight-oa/model"
)

// Line is one reconstructed reading-order line. The concatenation of the run
// texts, in order, equals Text exactly, so byte offsets into Text can be
// walked back to the run that produced them.
type Line struct {
	Text string
	Runs []model.TextRun
}

// MaxRunHeight returns the tallest run height on the line. Highlight boxes
// use the line's maximum height rather than the matched substring's tight
// height.
func (l Line) MaxRunHeight() float64 {
	var max float64
	for _, run := range l.Runs {
		if run.Height > max {
			max = run.Height
		}
	}
	return max
}

// Reconstruct groups one page's runs into lines and yields them lazily, in
// input order. A run starts a new line whenever its vertical origin differs
// from the previous run's; the comparison is exact, so runs separated by even
// a sub-unit vertical offset land on separate lines. Overlapping runs that
// share a baseline merge into one line with no de-duplication. The returned
// sequence is single-use.
func Reconstruct(runs []model.TextRun) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var (
			text     strings.Builder
			pending  []model.TextRun
			baseline float64
		)
		for _, run := range runs {
			if len(pending) > 0 && run.Y != baseline {
				if !yield(Line{Text: text.String(), Runs: pending}) {
					return
				}
				text.Reset()
				pending = nil
			}
			text.WriteString(run.Text)
			pending = append(pending, run)
			baseline = run.Y
		}
		if len(pending) > 0 {
			yield(Line{Text: text.String(), Runs: pending})
		}
	}
}
