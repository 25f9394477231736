package sheet

import "strings"

// findDataBounds finds the bounding box of non-blank cells.
// All bounds are -1 when every cell is blank.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-blank cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if strings.TrimSpace(row[colIdx]) != "" {
				count++
			}
		}
	}
	return count
}

// isBlankRow reports whether row carries nothing beyond a serial number
// in its first column. Template rows come with serials prefilled.
func isBlankRow(row []string) bool {
	if len(row) <= 1 {
		return true
	}
	return countNonEmptyCells([][]string{row}, 0, 0, 1, len(row)-1) == 0
}
