package model

// TextRun is one atomic piece of positioned text as emitted by the document's
// text-extraction collaborator. Coordinates are in the document's native page
// space: origin bottom-left, y increasing upward.
type TextRun struct {
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Viewport is the coordinate frame for one rendered page at a given scale.
// Project maps a point from page space into viewport space; it does NOT flip
// the vertical axis, that is the mapping layer's job.
type Viewport struct {
	Scale   float64
	Width   float64
	Height  float64
	Project func(x, y float64) (float64, float64)
}

// ProjectPoint applies the viewport's projection. A nil Project falls back to
// plain scaling, which is the transform for an unrotated page.
func (v Viewport) ProjectPoint(x, y float64) (float64, float64) {
	if v.Project != nil {
		return v.Project(x, y)
	}
	return x * v.Scale, y * v.Scale
}

// PageImage is one rasterized page as produced by the image-conversion
// collaborator. Image holds base64-encoded PNG data. The slice position, not
// the Page field, is authoritative for the image-to-page mapping: image i
// corresponds to page i+1.
type PageImage struct {
	Page   int    `json:"page"`
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
