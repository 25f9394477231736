package layout

import (
	"fmt"
	"unicode/utf8"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// Validate checks the whole table against the column layout and the
// per-column length limits. The first violation is returned.
func Validate(table models.ReportTable, p Params) error {
	if table.StatusIndex() < 0 {
		return MissingStatusError(table.Columns)
	}
	if len(table.Columns) != len(p.ColumnWidths) {
		return &ValidationError{
			Reason: fmt.Sprintf("table has %d columns, layout defines %d", len(table.Columns), len(p.ColumnWidths)),
		}
	}

	limits := make(map[string]int, len(p.Limits))
	for _, l := range p.Limits {
		limits[l.Column] = l.Max
	}

	for r, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return &ValidationError{
				Row:    r + 1,
				Reason: fmt.Sprintf("row has %d cells, expected %d", len(row), len(table.Columns)),
			}
		}
		for c, text := range row {
			limit, ok := limits[table.Columns[c]]
			if !ok {
				continue
			}
			if utf8.RuneCountInString(text) > limit {
				return newLengthError(table.Columns[c], limit, r+1)
			}
		}
	}
	return nil
}
