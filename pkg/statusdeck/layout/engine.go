package layout

import (
	"go.uber.org/zap"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// Engine lays out report tables into slide pages.
// An Engine holds no per-request state and may be reused.
type Engine struct {
	params   Params
	template models.PageTemplate
	resolver *StatusResolver
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTemplate sets the page template cloned onto every page.
func WithTemplate(tpl models.PageTemplate) Option {
	return func(e *Engine) { e.template = tpl }
}

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine returns an engine over params.
func NewEngine(params Params, opts ...Option) *Engine {
	e := &Engine{
		params:   params,
		template: DefaultPageTemplate(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resolver = NewStatusResolver(params.Statuses)
	return e
}

// Params returns the engine parameters.
func (e *Engine) Params() Params { return e.params }

// Layout validates table and computes every page. It returns either the
// complete deck or an error, never a partial deck.
func (e *Engine) Layout(table models.ReportTable) (*models.Deck, error) {
	if err := e.params.Validate(); err != nil {
		return nil, err
	}
	if err := Validate(table, e.params); err != nil {
		return nil, err
	}

	chunks, err := Paginate(table.Rows, e.params.RowsPerPage)
	if err != nil {
		return nil, err
	}

	deck := &models.Deck{
		Title:     table.Title,
		Columns:   append([]string(nil), table.Columns...),
		SlideSize: e.template.SlideSize,
		Pages:     make([]models.SlidePage, 0, max(1, len(chunks))),
	}

	if len(chunks) == 0 {
		page, err := clonePage(e.template, 0, table.Title)
		if err != nil {
			return nil, err
		}
		deck.Pages = append(deck.Pages, page)
		e.logger.Debug("no data rows, emitting title-only page")
		return deck, nil
	}

	statusIdx := table.StatusIndex()
	for i, chunk := range chunks {
		page, err := clonePage(e.template, i, table.Title)
		if err != nil {
			return nil, err
		}
		e.layoutPage(&page, table.Columns, chunk, statusIdx)
		deck.Pages = append(deck.Pages, page)
		e.logger.Debug("laid out page",
			zap.Int("page", i),
			zap.Int("rows", len(chunk)),
			zap.Int64("height", int64(page.Table.Frame.H)))
	}

	e.logger.Info("layout complete",
		zap.Int("pages", len(deck.Pages)),
		zap.Int("rows", len(table.Rows)))
	return deck, nil
}

func (e *Engine) layoutPage(page *models.SlidePage, columns []string, chunk [][]string, statusIdx int) {
	p := e.params

	page.Rows = chunk
	page.RowCount = len(chunk) + 1

	heights := make([]models.EMU, 0, page.RowCount)
	heights = append(heights, p.HeaderRowHeight)

	cells := make([][]models.Cell, 0, page.RowCount)
	header := make([]models.Cell, len(columns))
	for c, name := range columns {
		header[c] = models.Cell{Text: name, Style: p.HeaderStyle()}
	}
	cells = append(cells, header)

	for _, row := range chunk {
		out := make([]models.Cell, len(row))
		for c, text := range row {
			if c == statusIdx {
				text = ""
			}
			out[c] = models.Cell{Text: text, Style: p.DataStyle(c, statusIdx)}
		}
		cells = append(cells, out)
		heights = append(heights, p.RowHeight(row, statusIdx))
	}

	g := ComposeGeometry(p.Origin, p.ColumnWidths, heights, statusIdx, p.IndicatorDiameter, p.IndicatorNudge)

	page.Table = &models.TableLayout{
		Frame:        models.Rect{Point: p.Origin, Size: g.Size},
		ColumnWidths: append([]models.EMU(nil), p.ColumnWidths...),
		RowHeights:   heights,
		RowTops:      g.RowTops,
		Cells:        cells,
	}

	page.Indicators = make([]models.IndicatorShape, len(chunk))
	for i, row := range chunk {
		status := row[statusIdx]
		page.Indicators[i] = models.IndicatorShape{
			Row:      i + 1,
			Status:   status,
			Color:    e.resolver.Resolve(status),
			Origin:   models.Point{X: g.IndicatorX, Y: g.IndicatorY[i]},
			Diameter: p.IndicatorDiameter,
		}
	}
}
