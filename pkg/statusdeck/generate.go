package statusdeck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/layout"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/render"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/sheet"
)

// Layout validates table and computes the page layout without rendering.
func Layout(table models.ReportTable, opts Options) (*models.Deck, error) {
	tpl, err := opts.pageTemplate()
	if err != nil {
		return nil, err
	}
	engine := layout.NewEngine(opts.Params,
		layout.WithTemplate(tpl),
		layout.WithLogger(opts.logger()))
	return engine.Layout(table)
}

// Generate lays out table and writes the presentation to w. Nothing is
// written when validation fails.
func Generate(ctx context.Context, w io.Writer, table models.ReportTable, opts Options) (*models.Deck, error) {
	logger := opts.logger()

	deck, err := Layout(table, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer := render.NewPPTX(
		render.WithTemplate(opts.TemplatePath, opts.TemplateLayout),
		render.WithLogger(logger))
	if err := renderer.Render(ctx, w, deck); err != nil {
		return nil, err
	}

	logger.Info("deck generated",
		zap.String("title", deck.Title),
		zap.Int("pages", len(deck.Pages)),
		zap.Int("rows", deck.DataRows()))
	return deck, nil
}

// ReadTable imports a filled-in workbook. name is the original file name.
func ReadTable(r io.Reader, name string, opts Options) (*models.ReportTable, error) {
	return sheet.ReadReport(r, name, sheet.ReadOptions{
		Sheet:            opts.ImportSheet,
		RespectPrintArea: opts.RespectPrintArea,
		Logger:           opts.logger(),
	})
}

// Import reads a workbook and writes the generated presentation to w.
func Import(ctx context.Context, w io.Writer, r io.Reader, name string, opts Options) (*models.Deck, error) {
	table, err := ReadTable(r, name, opts)
	if err != nil {
		return nil, err
	}
	return Generate(ctx, w, *table, opts)
}

// pageTemplate returns the page skeleton, sized to the PPTX template and
// its layout's title frame when one is configured.
func (o Options) pageTemplate() (models.PageTemplate, error) {
	tpl := layout.DefaultPageTemplate()
	if o.PageTemplate != nil {
		tpl = *o.PageTemplate
	}
	if o.TemplatePath == "" {
		return tpl, nil
	}

	info, err := render.InspectTemplate(o.TemplatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tpl, fmt.Errorf("%w: %s", ErrFileNotFound, o.TemplatePath)
		}
		return tpl, NewRenderError(-1, "template", err)
	}
	if info.SlideSize.W > 0 && info.SlideSize.H > 0 {
		tpl.SlideSize = info.SlideSize
	}
	// Titles that cannot go into a placeholder are drawn where the
	// layout would have put them.
	if l, ok := info.Resolve(o.TemplateLayout); ok && l.TitleFrame != nil {
		tpl = layout.WithTitleFrame(tpl, *l.TitleFrame)
	}
	return tpl, nil
}
