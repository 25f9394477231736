package models

// Cell is a single laid-out table cell.
type Cell struct {
	// Text is the rendered text (blank for data cells in the Status column).
	Text string `json:"text"`
	// Style is the derived styling.
	Style CellStyle `json:"style"`
}

// TableLayout is the geometry of the table on one page.
type TableLayout struct {
	// Frame is the table origin and total size.
	Frame Rect `json:"frame"`
	// ColumnWidths holds one width per column.
	ColumnWidths []EMU `json:"column_widths"`
	// RowHeights holds one height per table row; index 0 is the header.
	RowHeights []EMU `json:"row_heights"`
	// RowTops holds the absolute y of each table row.
	RowTops []EMU `json:"row_tops"`
	// Cells is indexed [row][col]; row 0 is the header.
	Cells [][]Cell `json:"cells"`
}

// SlidePage is one rendered slide: a header row plus up to a page of data rows.
type SlidePage struct {
	// Index is the 0-based page number.
	Index int `json:"index"`
	// Title is the report title shown on the page.
	Title string `json:"title"`
	// Rows is the chunk of data rows rendered on this page.
	Rows [][]string `json:"rows"`
	// RowCount is len(Rows)+1 (the header row).
	RowCount int `json:"row_count"`
	// Table is nil for a title-only page.
	Table *TableLayout `json:"table,omitempty"`
	// Indicators holds one circle per data row.
	Indicators []IndicatorShape `json:"indicators,omitempty"`
	// Decorations is the page's own copy of the template elements.
	Decorations []Decoration `json:"decorations,omitempty"`
}

// TitleDecoration returns the decoration tagged RoleTitle, if any.
func (p *SlidePage) TitleDecoration() *Decoration {
	for i := range p.Decorations {
		if p.Decorations[i].Role == RoleTitle {
			return &p.Decorations[i]
		}
	}
	return nil
}
