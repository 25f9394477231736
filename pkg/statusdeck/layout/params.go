package layout

import (
	"errors"
	"fmt"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// ColumnLimit is the maximum cell length configured for a column name.
type ColumnLimit struct {
	Column string
	Max    int
}

// Params holds every constant the layout engine works with.
type Params struct {
	// RowsPerPage is the number of data rows per slide.
	RowsPerPage int
	// Origin is the top-left corner of the table.
	Origin models.Point
	// ColumnWidths holds one fixed width per column.
	ColumnWidths []models.EMU
	// HeaderRowHeight is the fixed height of the header row.
	HeaderRowHeight models.EMU
	// MinRowHeight floors every data row height.
	MinRowHeight models.EMU
	// LineHeightPt is the height of one estimated text line.
	LineHeightPt float64
	// PaddingPt is added once per data row on top of the line heights.
	PaddingPt float64
	// AvgCharWidthPt is the average glyph width used for wrap estimation.
	AvgCharWidthPt float64
	// IndicatorDiameter is the status circle diameter.
	IndicatorDiameter models.EMU
	// IndicatorNudge shifts the circle down from the row's vertical center.
	IndicatorNudge models.EMU
	// BorderWidth is the width of every cell border line.
	BorderWidth models.EMU
	// HeaderFontPt and DataFontPt are the run sizes.
	HeaderFontPt float64
	DataFontPt   float64
	// Limits lists the per-column maximum cell lengths.
	Limits []ColumnLimit
	// Statuses is the ordered keyword table of the status resolver.
	Statuses []StatusKeyword
}

// DefaultColumnWidths are the widths of the seven canonical columns.
var DefaultColumnWidths = []models.EMU{
	Inches(0.6), Inches(3.2), Inches(2.8), Inches(1.0), Inches(2.0), Inches(1.5), Inches(1.6),
}

// DefaultLimits are the maximum lengths of the canonical columns.
// Status is deliberately absent.
var DefaultLimits = []ColumnLimit{
	{Column: "Sl no.", Max: 4},
	{Column: "Brief about change", Max: 96},
	{Column: "what is the impact", Max: 84},
	{Column: "Dev effort", Max: 2},
	{Column: "Remarks", Max: 60},
	{Column: "Gone Live/ETA", Max: 10},
}

// DefaultParams returns the standard project-update layout.
func DefaultParams() Params {
	return Params{
		RowsPerPage:       5,
		Origin:            models.Point{X: Inches(0.3), Y: Inches(1.2)},
		ColumnWidths:      append([]models.EMU(nil), DefaultColumnWidths...),
		HeaderRowHeight:   Inches(0.4),
		MinRowHeight:      Inches(0.3),
		LineHeightPt:      15,
		PaddingPt:         20,
		AvgCharWidthPt:    7,
		IndicatorDiameter: Inches(0.25),
		IndicatorNudge:    Inches(0.15),
		BorderWidth:       19050,
		HeaderFontPt:      14,
		DataFontPt:        12,
		Limits:            append([]ColumnLimit(nil), DefaultLimits...),
		Statuses:          append([]StatusKeyword(nil), DefaultStatusKeywords...),
	}
}

// Validate checks the parameters for values the engine cannot work with.
func (p Params) Validate() error {
	if p.RowsPerPage < 1 {
		return fmt.Errorf("rows per page must be positive, got %d", p.RowsPerPage)
	}
	if len(p.ColumnWidths) == 0 {
		return errors.New("no column widths configured")
	}
	for i, w := range p.ColumnWidths {
		if w <= 0 {
			return fmt.Errorf("column %d width must be positive", i)
		}
	}
	if p.AvgCharWidthPt <= 0 {
		return errors.New("average character width must be positive")
	}
	if p.HeaderRowHeight <= 0 || p.MinRowHeight <= 0 {
		return errors.New("row heights must be positive")
	}
	if p.IndicatorDiameter <= 0 {
		return errors.New("indicator diameter must be positive")
	}
	for _, l := range p.Limits {
		if l.Max < 0 {
			return fmt.Errorf("limit for column %q must not be negative", l.Column)
		}
	}
	for _, s := range p.Statuses {
		if _, ok := models.StatusPalette[s.Color]; !ok {
			return fmt.Errorf("status keyword %q has unknown color %q", s.Keyword, s.Color)
		}
	}
	return nil
}

// TableWidth returns the sum of all column widths.
func (p Params) TableWidth() models.EMU {
	var w models.EMU
	for _, cw := range p.ColumnWidths {
		w += cw
	}
	return w
}
