package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// EstimateLines approximates how many lines text wraps to in a column of
// the given width. Words are packed greedily with single spaces; a word
// longer than the line budget is split across lines.
func EstimateLines(text string, width models.EMU, avgCharWidthPt float64) int {
	if text == "" {
		return 1
	}
	perLine := 1
	if avgCharWidthPt > 0 {
		perLine = max(1, int(ToPoints(width)/avgCharWidthPt))
	}

	lines, cur := 0, 0
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		sep := 0
		if cur > 0 {
			sep = 1
		}
		if cur+sep+n <= perLine {
			cur += sep + n
			continue
		}
		if cur > 0 {
			lines++
			cur = 0
		}
		for n > 0 {
			chunk := min(n, perLine-cur)
			cur += chunk
			n -= chunk
			if cur >= perLine {
				lines++
				cur = 0
			}
		}
	}
	if cur > 0 {
		lines++
	}
	return max(1, lines)
}

// RowHeight returns the height of a data row: the tallest wrapped column,
// ignoring the Status column, times the line height plus padding, floored
// at the minimum row height.
func (p Params) RowHeight(row []string, statusIdx int) models.EMU {
	maxLines := 1
	for c, text := range row {
		if c == statusIdx || c >= len(p.ColumnWidths) {
			continue
		}
		maxLines = max(maxLines, EstimateLines(text, p.ColumnWidths[c], p.AvgCharWidthPt))
	}
	h := Points(float64(maxLines)*p.LineHeightPt + p.PaddingPt)
	return max(h, p.MinRowHeight)
}
