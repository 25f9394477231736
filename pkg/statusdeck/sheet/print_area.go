package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// area is an inclusive 1-based cell range.
type area struct {
	R1, C1, R2, C2 int
}

func (a area) contains(row, col int) bool {
	return row >= a.R1 && row <= a.R2 && col >= a.C1 && col <= a.C2
}

// setPrintArea defines the print area of sheet as rows 1..lastRow over cols columns.
func setPrintArea(f *excelize.File, sheet string, cols, lastRow int) error {
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: fmt.Sprintf("'%s'!$A$1:$%s$%d", sheet, lastCol, lastRow),
		Scope:    sheet,
	})
}

// findPrintArea returns the print area defined for sheet, if any.
func findPrintArea(f *excelize.File, sheet string) (area, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		name, areas := parsePrintAreaReference(dn.RefersTo)
		if name == sheet && len(areas) > 0 {
			return areas[0], true
		}
	}
	return area{}, false
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []area) {
	var areas []area
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if a, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, a)
		}
	}

	return sheetName, areas
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) (area, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return area{}, false
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return area{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return area{}, false
	}
	return area{R1: r1, C1: c1, R2: r2, C2: c2}, true
}

// clipToArea blanks every cell of rows outside a. rows[i] is sheet row i+1.
func clipToArea(rows [][]string, a area) [][]string {
	if len(rows) > a.R2 {
		rows = rows[:a.R2]
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		clipped := make([]string, len(row))
		for j, cell := range row {
			if a.contains(i+1, j+1) {
				clipped[j] = cell
			}
		}
		out[i] = clipped
	}
	return out
}
