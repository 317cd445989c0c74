// Package geom maps points and boxes from a document's native page space into
// viewport space. PDF pages put the origin in the bottom-left corner with y
// growing upward; the rendering layer expects a top-left origin with y growing
// downward, so every mapped point is flipped against the viewport height.
package geom

import (
	"math"

	"github.com/SStephenB/pdf-highlight-oa/model"
)

// ToViewport maps a single page-space point into viewport space: the
// viewport's projection followed by the vertical flip.
func ToViewport(vp model.Viewport, x, y float64) (float64, float64) {
	px, py := vp.ProjectPoint(x, y)
	return px, vp.Height - py
}

// RectFromCorners maps two opposite corners of a page-space box into viewport
// space and assembles a rectangle. The corners are transformed independently;
// because the flip can swap which corner ends up on top, the vertical
// coordinates are normalized so that Y1 <= Y2 always holds.
func RectFromCorners(vp model.Viewport, x1, y1, x2, y2 float64, pageNumber int) model.Rect {
	vx1, vy1 := ToViewport(vp, x1, y1)
	vx2, vy2 := ToViewport(vp, x2, y2)

	top := math.Min(vy1, vy2)
	bottom := math.Max(vy1, vy2)

	return model.Rect{
		X1:         vx1,
		Y1:         top,
		X2:         vx2,
		Y2:         bottom,
		Width:      vx2 - vx1,
		Height:     bottom - top,
		PageNumber: pageNumber,
	}
}
