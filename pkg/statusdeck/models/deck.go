package models

// Deck is the full layout result of one generation request.
type Deck struct {
	// Title is the report title.
	Title string `json:"title"`
	// Columns is the header row.
	Columns []string `json:"columns"`
	// SlideSize is the slide dimensions the layout was computed for.
	SlideSize Size `json:"slide_size"`
	// Pages holds the slides in order.
	Pages []SlidePage `json:"pages"`
}

// DataRows returns the total number of data rows across all pages.
func (d *Deck) DataRows() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Rows)
	}
	return n
}
