package layout

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// Widescreen 16:9 slide size.
const (
	SlideWidth  models.EMU = 12192000
	SlideHeight models.EMU = 6858000
)

// DefaultPageTemplate returns the built-in page skeleton: a blue title bar
// carrying the title text and a thin footer band.
func DefaultPageTemplate() models.PageTemplate {
	bar, footer := models.HeaderBlue, models.HeaderBlue
	return models.PageTemplate{
		Name:      "default",
		SlideSize: models.Size{W: SlideWidth, H: SlideHeight},
		Decorations: []models.Decoration{
			{
				Role:  models.RoleBackground,
				Frame: models.Rect{Size: models.Size{W: SlideWidth, H: Inches(1.0)}},
				Fill:  &bar,
			},
			{
				Role: models.RoleTitle,
				Frame: models.Rect{
					Point: models.Point{X: Inches(0.3), Y: Inches(0.2)},
					Size:  models.Size{W: Inches(12.7), H: Inches(0.7)},
				},
				Text:       "Project Update",
				FontSizePt: 28,
				Bold:       true,
				FontColor:  models.White,
				Align:      models.AlignLeft,
			},
			{
				Role: models.RoleFooter,
				Frame: models.Rect{
					Point: models.Point{Y: SlideHeight - Inches(0.2)},
					Size:  models.Size{W: SlideWidth, H: Inches(0.2)},
				},
				Fill: &footer,
			},
		},
	}
}

// WithTitleFrame returns a copy of tpl whose title element sits at frame.
// tpl itself is not modified.
func WithTitleFrame(tpl models.PageTemplate, frame models.Rect) models.PageTemplate {
	decorations := make([]models.Decoration, len(tpl.Decorations))
	copy(decorations, tpl.Decorations)
	for i := range decorations {
		if decorations[i].Role == models.RoleTitle {
			decorations[i].Frame = frame
		}
	}
	tpl.Decorations = decorations
	return tpl
}

// clonePage returns a fresh page holding a deep copy of the template
// decorations, with the title written into the RoleTitle element.
func clonePage(tpl models.PageTemplate, index int, title string) (models.SlidePage, error) {
	page := models.SlidePage{Index: index, Title: title, RowCount: 1}
	if err := deepcopy.Copy(&page.Decorations, tpl.Decorations); err != nil {
		return page, fmt.Errorf("clone page template %q: %w", tpl.Name, err)
	}
	if d := page.TitleDecoration(); d != nil {
		if title != "" {
			d.Text = title
		}
		d.FontColor = models.White
	}
	return page, nil
}
