package render

import "fmt"

// RenderError represents a failure while emitting one page of a deck.
type RenderError struct {
	// Page is the 0-based page index, -1 for deck-level failures.
	Page      int
	Component string // "template", "slide", "title", "table", "indicator", "save"
	Err       error
}

func (e *RenderError) Error() string {
	if e.Page < 0 {
		return fmt.Sprintf("render error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("render error on page %d (%s): %v", e.Page+1, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(page int, component string, err error) *RenderError {
	return &RenderError{
		Page:      page,
		Component: component,
		Err:       err,
	}
}
