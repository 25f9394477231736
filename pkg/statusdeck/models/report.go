// Package models defines data structures for status-report decks.
package models

// StatusColumn is the column name whose cells drive the indicator circles.
const StatusColumn = "Status"

// ReportTable is the raw tabular input of one generation request.
type ReportTable struct {
	// Title is shown on every slide.
	Title string `json:"title"`
	// Columns is the ordered list of header names.
	Columns []string `json:"columns"`
	// Rows holds the data rows; each row has len(Columns) cells.
	Rows [][]string `json:"content"`
}

// StatusIndex returns the index of the Status column, or -1 if absent.
func (t ReportTable) StatusIndex() int {
	for i, c := range t.Columns {
		if c == StatusColumn {
			return i
		}
	}
	return -1
}

// ReportTypeProjectUpdate is the only report type currently produced.
const ReportTypeProjectUpdate = "project_update"

// ReportRequest is the JSON shape accepted by the generate command.
type ReportRequest struct {
	// Type names the report kind; empty means project_update.
	Type string `json:"type"`
	ReportTable
}
