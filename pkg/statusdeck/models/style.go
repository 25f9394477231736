package models

import "fmt"

// RGB is a 24-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as "RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Common colors.
var (
	White      = RGB{255, 255, 255}
	Black      = RGB{0, 0, 0}
	HeaderBlue = RGB{30, 73, 127}
)

// Align is the horizontal paragraph alignment of a cell.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Anchor is the vertical text anchor of a cell.
type Anchor string

const (
	AnchorTop    Anchor = "top"
	AnchorMiddle Anchor = "middle"
)

// Border is one side of a cell outline. A nil *Border means no line.
type Border struct {
	// Color is the line color.
	Color RGB `json:"color"`
	// Width is the line width.
	Width EMU `json:"width"`
}

// Borders holds the four sides of a cell outline.
type Borders struct {
	Left   *Border `json:"left,omitempty"`
	Right  *Border `json:"right,omitempty"`
	Top    *Border `json:"top,omitempty"`
	Bottom *Border `json:"bottom,omitempty"`
}

// CellStyle is the derived styling of a single table cell.
type CellStyle struct {
	// Align is the horizontal alignment of the cell paragraph.
	Align Align `json:"align"`
	// Anchor is the vertical anchor of the text frame.
	Anchor Anchor `json:"anchor"`
	// Fill is the solid background color.
	Fill RGB `json:"fill"`
	// Borders is the cell outline.
	Borders Borders `json:"borders"`
	// FontSizePt is the run font size in points.
	FontSizePt float64 `json:"font_size_pt"`
	// Bold marks the run bold.
	Bold bool `json:"bold,omitempty"`
	// FontColor is the run color.
	FontColor RGB `json:"font_color"`
	// WordWrap enables wrapping inside the cell.
	WordWrap bool `json:"word_wrap,omitempty"`
}
