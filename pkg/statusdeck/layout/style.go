package layout

import "github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"

func (p Params) border() *models.Border {
	return &models.Border{Color: models.Black, Width: p.BorderWidth}
}

func cellAlign(col, statusIdx int) models.Align {
	if col == 0 || col == statusIdx {
		return models.AlignCenter
	}
	return models.AlignLeft
}

// HeaderStyle returns the style shared by all header cells.
// Header cells are always centered and carry no top border.
func (p Params) HeaderStyle() models.CellStyle {
	return models.CellStyle{
		Align:  models.AlignCenter,
		Anchor: models.AnchorMiddle,
		Fill:   models.HeaderBlue,
		Borders: models.Borders{
			Left:   p.border(),
			Right:  p.border(),
			Bottom: p.border(),
		},
		FontSizePt: p.HeaderFontPt,
		Bold:       true,
		FontColor:  models.White,
		WordWrap:   true,
	}
}

// DataStyle returns the style of a data cell in column col.
func (p Params) DataStyle(col, statusIdx int) models.CellStyle {
	return models.CellStyle{
		Align:  cellAlign(col, statusIdx),
		Anchor: models.AnchorMiddle,
		Fill:   models.White,
		Borders: models.Borders{
			Left:   p.border(),
			Right:  p.border(),
			Top:    p.border(),
			Bottom: p.border(),
		},
		FontSizePt: p.DataFontPt,
		FontColor:  models.Black,
		WordWrap:   true,
	}
}
