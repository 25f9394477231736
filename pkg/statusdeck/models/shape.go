package models

// StatusColor is the resolved color class of a free-text status.
type StatusColor string

const (
	StatusGreen  StatusColor = "green"
	StatusBlue   StatusColor = "blue"
	StatusRed    StatusColor = "red"
	StatusYellow StatusColor = "yellow"
)

// StatusPalette maps each status color to its fill.
var StatusPalette = map[StatusColor]RGB{
	StatusGreen:  {0, 176, 80},
	StatusBlue:   {0, 112, 192},
	StatusRed:    {192, 0, 0},
	StatusYellow: {255, 192, 0},
}

// RGB returns the fill of the status color, yellow for unknown values.
func (c StatusColor) RGB() RGB {
	if rgb, ok := StatusPalette[c]; ok {
		return rgb
	}
	return StatusPalette[StatusYellow]
}

// IndicatorShape is the colored circle overlaid on a data row's Status cell.
type IndicatorShape struct {
	// Row is the table row index (1-based; row 0 is the header).
	Row int `json:"row"`
	// Status is the source text the color was resolved from.
	Status string `json:"status"`
	// Color is the resolved status color.
	Color StatusColor `json:"color"`
	// Origin is the top-left corner of the circle's bounding box.
	Origin Point `json:"origin"`
	// Diameter is the circle diameter.
	Diameter EMU `json:"diameter"`
}

// Role tags a decoration with the part it plays on the page.
type Role string

const (
	// RoleTitle marks the decoration that receives the report title.
	RoleTitle Role = "title"
	// RoleFooter marks footer text.
	RoleFooter Role = "footer"
	// RoleBackground marks purely visual elements.
	RoleBackground Role = "background"
)

// Decoration is a non-table element of a page template (title bar, footer).
type Decoration struct {
	// Role is the explicit role tag of the element.
	Role Role `json:"role"`
	// Frame is the position and size of the element.
	Frame Rect `json:"frame"`
	// Fill is the background color (nil for transparent).
	Fill *RGB `json:"fill,omitempty"`
	// Text is the text content.
	Text string `json:"text,omitempty"`
	// FontSizePt is the text size in points.
	FontSizePt float64 `json:"font_size_pt,omitempty"`
	// Bold marks the text bold.
	Bold bool `json:"bold,omitempty"`
	// FontColor is the text color.
	FontColor RGB `json:"font_color"`
	// Align is the horizontal text alignment.
	Align Align `json:"align,omitempty"`
}
