package models

// EMU is a length in English Metric Units (914400 per inch, 12700 per point).
type EMU int64

// Point is a position on the slide, measured from the top-left corner.
type Point struct {
	X EMU `json:"x"`
	Y EMU `json:"y"`
}

// Size is a width/height pair.
type Size struct {
	W EMU `json:"w"`
	H EMU `json:"h"`
}

// Rect is a positioned box.
type Rect struct {
	Point
	Size
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() EMU { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() EMU { return r.Y + r.H }
