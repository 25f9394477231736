package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"
	"go.uber.org/zap"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// ErrLayoutNotFound is returned when the requested template layout does not exist.
var ErrLayoutNotFound = errors.New("slide layout not found")

// PPTX renders decks as PowerPoint presentations.
type PPTX struct {
	templatePath string
	layoutName   string
	logger       *zap.Logger
}

// Option configures a PPTX renderer.
type Option func(*PPTX)

// WithTemplate renders onto the slide masters of an existing PPTX/POTX file,
// using the named layout for every slide. An empty layout selects the first.
func WithTemplate(path, layout string) Option {
	return func(r *PPTX) {
		r.templatePath = path
		r.layoutName = layout
	}
}

// WithLogger sets the renderer logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *PPTX) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewPPTX returns a PPTX renderer.
func NewPPTX(opts ...Option) *PPTX {
	r := &PPTX{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Renderer = (*PPTX)(nil)

// Render writes one slide per deck page.
func (r *PPTX) Render(ctx context.Context, w io.Writer, deck *models.Deck) error {
	ppt, layout, err := r.open(deck)
	if err != nil {
		return NewRenderError(-1, "template", err)
	}

	for i := range deck.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		page := &deck.Pages[i]

		var slide presentation.Slide
		if layout != nil {
			slide, err = ppt.AddDefaultSlideWithLayout(*layout)
			if err != nil {
				return NewRenderError(page.Index, "slide", err)
			}
		} else {
			slide = ppt.AddSlide()
		}

		r.drawPage(slide, page, layout != nil)
		r.logger.Debug("rendered slide",
			zap.Int("page", page.Index),
			zap.Int("rows", len(page.Rows)),
			zap.Int("indicators", len(page.Indicators)))
	}

	var buf bytes.Buffer
	if err := ppt.Save(&buf); err != nil {
		return NewRenderError(-1, "save", err)
	}
	data := buf.Bytes()
	if layout != nil {
		if data, err = repairPackage(data); err != nil {
			return NewRenderError(-1, "save", err)
		}
	}
	if _, err := w.Write(data); err != nil {
		return NewRenderError(-1, "save", err)
	}
	r.logger.Info("deck written", zap.Int("slides", len(deck.Pages)))
	return nil
}

// open returns the target presentation and, when a template is in use,
// the layout every slide is created from.
func (r *PPTX) open(deck *models.Deck) (*presentation.Presentation, *presentation.SlideLayout, error) {
	if r.templatePath == "" {
		ppt := presentation.New()
		if deck.SlideSize.W > 0 && deck.SlideSize.H > 0 {
			sz := pml.NewCT_SlideSize()
			sz.CxAttr = int32(deck.SlideSize.W)
			sz.CyAttr = int32(deck.SlideSize.H)
			ppt.X().SldSz = sz
		}
		return ppt, nil, nil
	}

	if !fileExists(r.templatePath) {
		return nil, nil, fmt.Errorf("template %s: file not found", r.templatePath)
	}
	info, err := InspectTemplate(r.templatePath)
	if err != nil {
		return nil, nil, fmt.Errorf("inspect template: %w", err)
	}
	li, ok := info.Resolve(r.layoutName)
	if !ok {
		if r.layoutName == "" {
			return nil, nil, fmt.Errorf("template %s has no slide layouts", r.templatePath)
		}
		return nil, nil, fmt.Errorf("%w: %q (available: %s)", ErrLayoutNotFound, r.layoutName, strings.Join(info.LayoutNames(), ", "))
	}

	var ppt *presentation.Presentation
	if strings.EqualFold(filepath.Ext(r.templatePath), ".potx") {
		ppt, err = presentation.OpenTemplate(r.templatePath)
	} else {
		ppt, err = presentation.Open(r.templatePath)
	}
	if err != nil {
		return nil, nil, err
	}
	for _, s := range ppt.Slides() {
		if err := ppt.RemoveSlide(s); err != nil {
			return nil, nil, fmt.Errorf("clear template slides: %w", err)
		}
	}

	layout, err := findLayout(ppt, li.Name)
	if err != nil {
		return nil, nil, err
	}
	r.logger.Debug("using template",
		zap.String("path", r.templatePath),
		zap.String("layout", li.Name),
		zap.Bool("title_placeholder", li.HasTitle))
	return ppt, &layout, nil
}

// findLayout looks a layout up by name. Unnamed layouts, such as the one in
// a blank presentation, can only be selected as the first layout.
func findLayout(ppt *presentation.Presentation, name string) (presentation.SlideLayout, error) {
	if name != "" {
		l, err := ppt.GetLayoutByName(name)
		if err != nil {
			return l, fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
		}
		return l, nil
	}
	layouts := ppt.SlideLayouts()
	if len(layouts) == 0 {
		return presentation.SlideLayout{}, fmt.Errorf("%w: template has no slide layouts", ErrLayoutNotFound)
	}
	return layouts[0], nil
}

func (r *PPTX) drawPage(slide presentation.Slide, page *models.SlidePage, fromLayout bool) {
	titleDone := false
	if fromLayout {
		titleDone = setTitlePlaceholder(slide, page.Title)
	} else {
		for _, d := range page.Decorations {
			if d.Role != models.RoleTitle {
				drawDecoration(slide, d)
			}
		}
	}
	if !titleDone {
		if d := page.TitleDecoration(); d != nil {
			drawDecoration(slide, *d)
		}
	}

	if page.Table != nil {
		drawTable(slide, page.Table)
	}
	for _, ind := range page.Indicators {
		drawIndicator(slide, ind)
	}
}

// setTitlePlaceholder writes the title into the layout's title placeholder,
// looked up by placeholder type. It reports false when there is none.
// An empty title leaves the placeholder's template text in place.
func setTitlePlaceholder(slide presentation.Slide, title string) bool {
	ph, err := slide.GetPlaceholder(pml.ST_PlaceholderTypeTitle)
	if err != nil {
		ph, err = slide.GetPlaceholder(pml.ST_PlaceholderTypeCtrTitle)
		if err != nil {
			return false
		}
	}
	if title == "" {
		return true
	}
	ph.ClearAll()
	para := ph.AddParagraph()
	run := para.AddRun()
	run.SetText(title)
	run.Properties().SetSolidFill(rgb(models.White))
	return true
}

// addShape adds a text box with the given anchoring whose size stays fixed
// to its frame. It returns the underlying shape for body settings that
// TextBox does not expose.
func addShape(slide presentation.Slide, anchor dml.ST_TextAnchoringType) (presentation.TextBox, *pml.CT_Shape) {
	tb := slide.AddTextBox()
	// SetTextAnchor replaces the body properties, autofit included.
	tb.SetTextAnchor(anchor)

	tree := slide.X().CSld.SpTree
	choice := tree.Choice[len(tree.Choice)-1]
	sp := choice.Sp[len(choice.Sp)-1]
	sp.TxBody.BodyPr.SpAutoFit = nil
	return tb, sp
}

func drawDecoration(slide presentation.Slide, d models.Decoration) {
	tb, _ := addShape(slide, dml.ST_TextAnchoringTypeCtr)
	sp := tb.Properties()
	sp.SetGeometry(dml.ST_ShapeTypeRect)
	setFrame(sp, d.Frame)
	if d.Fill != nil {
		sp.SetSolidFill(rgb(*d.Fill))
	} else {
		sp.SetNoFill()
	}
	sp.LineProperties().SetNoFill()

	if d.Text == "" {
		return
	}
	para := tb.AddParagraph()
	para.Properties().SetAlign(textAlign(d.Align))
	run := para.AddRun()
	run.SetText(d.Text)
	rp := run.Properties()
	if d.FontSizePt > 0 {
		rp.SetSize(measurement.Distance(d.FontSizePt))
	}
	rp.SetBold(d.Bold)
	rp.SetSolidFill(rgb(d.FontColor))
}

func drawTable(slide presentation.Slide, t *models.TableLayout) {
	for r, row := range t.Cells {
		for c, cell := range row {
			frame := models.Rect{
				Point: models.Point{X: t.Frame.X + columnOffset(t.ColumnWidths, c), Y: t.RowTops[r]},
				Size:  models.Size{W: t.ColumnWidths[c], H: t.RowHeights[r]},
			}
			drawCell(slide, frame, cell)
		}
	}
	// Borders go on top so neighbouring fills never cover them.
	for r, row := range t.Cells {
		for c, cell := range row {
			frame := models.Rect{
				Point: models.Point{X: t.Frame.X + columnOffset(t.ColumnWidths, c), Y: t.RowTops[r]},
				Size:  models.Size{W: t.ColumnWidths[c], H: t.RowHeights[r]},
			}
			drawBorders(slide, frame, cell.Style.Borders)
		}
	}
}

func columnOffset(widths []models.EMU, col int) models.EMU {
	var x models.EMU
	for _, w := range widths[:col] {
		x += w
	}
	return x
}

func drawCell(slide presentation.Slide, frame models.Rect, cell models.Cell) {
	style := cell.Style
	tb, shape := addShape(slide, textAnchor(style.Anchor))
	sp := tb.Properties()
	sp.SetGeometry(dml.ST_ShapeTypeRect)
	setFrame(sp, frame)
	sp.SetSolidFill(rgb(style.Fill))
	sp.LineProperties().SetNoFill()

	body := shape.TxBody.BodyPr
	if style.WordWrap {
		body.WrapAttr = dml.ST_TextWrappingTypeSquare
	} else {
		body.WrapAttr = dml.ST_TextWrappingTypeNone
	}

	for _, line := range strings.Split(cell.Text, "\n") {
		para := tb.AddParagraph()
		para.Properties().SetAlign(textAlign(style.Align))
		run := para.AddRun()
		run.SetText(line)
		rp := run.Properties()
		rp.SetSize(measurement.Distance(style.FontSizePt))
		rp.SetBold(style.Bold)
		rp.SetSolidFill(rgb(style.FontColor))
	}
}

func drawBorders(slide presentation.Slide, frame models.Rect, b models.Borders) {
	line := func(border *models.Border, r models.Rect) {
		if border == nil || border.Width <= 0 {
			return
		}
		tb, _ := addShape(slide, dml.ST_TextAnchoringTypeCtr)
		sp := tb.Properties()
		sp.SetGeometry(dml.ST_ShapeTypeRect)
		setFrame(sp, r)
		sp.SetSolidFill(rgb(border.Color))
		sp.LineProperties().SetNoFill()
	}

	if b.Left != nil {
		line(b.Left, models.Rect{Point: frame.Point, Size: models.Size{W: b.Left.Width, H: frame.H}})
	}
	if b.Right != nil {
		line(b.Right, models.Rect{
			Point: models.Point{X: frame.Right() - b.Right.Width, Y: frame.Y},
			Size:  models.Size{W: b.Right.Width, H: frame.H},
		})
	}
	if b.Top != nil {
		line(b.Top, models.Rect{Point: frame.Point, Size: models.Size{W: frame.W, H: b.Top.Width}})
	}
	if b.Bottom != nil {
		line(b.Bottom, models.Rect{
			Point: models.Point{X: frame.X, Y: frame.Bottom() - b.Bottom.Width},
			Size:  models.Size{W: frame.W, H: b.Bottom.Width},
		})
	}
}

func drawIndicator(slide presentation.Slide, ind models.IndicatorShape) {
	tb, _ := addShape(slide, dml.ST_TextAnchoringTypeCtr)
	sp := tb.Properties()
	sp.SetGeometry(dml.ST_ShapeTypeEllipse)
	setFrame(sp, models.Rect{Point: ind.Origin, Size: models.Size{W: ind.Diameter, H: ind.Diameter}})
	sp.SetSolidFill(rgb(ind.Color.RGB()))
	ln := sp.LineProperties()
	ln.SetWidth(0)
	ln.SetNoFill()
}

type shapeProperties interface {
	SetPosition(x, y measurement.Distance)
	SetSize(w, h measurement.Distance)
}

func setFrame(sp shapeProperties, r models.Rect) {
	sp.SetPosition(distance(r.X), distance(r.Y))
	sp.SetSize(distance(r.W), distance(r.H))
}

// distance converts EMU to a unioffice distance. The setters convert back
// with truncation, so a half-EMU bias keeps round trips exact.
func distance(v models.EMU) measurement.Distance {
	return (measurement.Distance(v) + 0.5) * measurement.EMU
}

func rgb(c models.RGB) color.Color {
	return color.RGB(c.R, c.G, c.B)
}

func textAlign(a models.Align) dml.ST_TextAlignType {
	if a == models.AlignCenter {
		return dml.ST_TextAlignTypeCtr
	}
	return dml.ST_TextAlignTypeL
}

func textAnchor(a models.Anchor) dml.ST_TextAnchoringType {
	if a == models.AnchorTop {
		return dml.ST_TextAnchoringTypeT
	}
	return dml.ST_TextAnchoringTypeCtr
}
