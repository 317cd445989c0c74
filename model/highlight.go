package model

// Rect is a rectangle in viewport space with the origin in the top-left
// corner. Y1 is always <= Y2; the mapping layer normalizes the corners after
// the vertical flip out of PDF space.
type Rect struct {
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PageNumber int     `json:"pageNumber"`
}

// Content carries the text a highlight covers.
type Content struct {
	Text string `json:"text"`
}

// Comment is the annotation attached to a highlight. The engine emits empty
// comments; the field exists so the rendering layer can round-trip user edits.
type Comment struct {
	Text  string `json:"text"`
	Emoji string `json:"emoji"`
}

// Position locates a highlight on a page. Rects currently always holds exactly
// one rectangle, identical to BoundingRect; the slice leaves room for
// multi-rectangle matches.
type Position struct {
	BoundingRect Rect   `json:"boundingRect"`
	Rects        []Rect `json:"rects"`
	PageNumber   int    `json:"pageNumber"`
}

// Highlight is one keyword occurrence converted into a renderable region.
// The field layout is consumed as-is by the rendering layer and must not
// change shape. IDs are unique within one search call only.
type Highlight struct {
	Content  Content  `json:"content"`
	Position Position `json:"position"`
	Comment  Comment  `json:"comment"`
	ID       string   `json:"id"`
}
