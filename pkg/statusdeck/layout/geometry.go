package layout

import "github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"

// Geometry holds the absolute positions derived for one page table.
type Geometry struct {
	// RowTops holds the y of every table row; index 0 is the header.
	RowTops []models.EMU
	// IndicatorX is the left edge of every indicator circle.
	IndicatorX models.EMU
	// IndicatorY holds the top edge of the circle for each data row.
	IndicatorY []models.EMU
	// Size is the total table size.
	Size models.Size
}

// ComposeGeometry computes cumulative row tops and indicator origins.
// rowHeights includes the header at index 0. Half-EMU results are
// truncated toward zero.
func ComposeGeometry(origin models.Point, widths, rowHeights []models.EMU, statusIdx int, diameter, nudge models.EMU) Geometry {
	g := Geometry{
		RowTops:    make([]models.EMU, len(rowHeights)),
		IndicatorY: make([]models.EMU, 0, max(0, len(rowHeights)-1)),
	}

	y := origin.Y
	for r, h := range rowHeights {
		g.RowTops[r] = y
		y += h
	}
	g.Size.H = y - origin.Y

	var before models.EMU
	for c, w := range widths {
		if c < statusIdx {
			before += w
		}
		g.Size.W += w
	}

	if statusIdx >= 0 && statusIdx < len(widths) {
		g.IndicatorX = (2*(origin.X+before) + widths[statusIdx] - diameter) / 2
	}
	for r := 1; r < len(rowHeights); r++ {
		g.IndicatorY = append(g.IndicatorY, (2*g.RowTops[r]+rowHeights[r]-diameter+2*nudge)/2)
	}
	return g
}
