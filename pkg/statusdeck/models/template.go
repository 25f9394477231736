package models

// PageTemplate is the read-only skeleton every page is cloned from.
type PageTemplate struct {
	// Name identifies the template in logs.
	Name string `json:"name"`
	// SlideSize is the slide dimensions.
	SlideSize Size `json:"slide_size"`
	// Decorations are drawn on every page before the table.
	Decorations []Decoration `json:"decorations"`
}
