// Package statusdeck turns status-report tables into paginated slide decks.
package statusdeck

import (
	"go.uber.org/zap"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/config"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/layout"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// Options configures generation and import.
type Options struct {
	// Params are the layout engine parameters.
	Params layout.Params
	// PageTemplate overrides the built-in page skeleton when non-nil.
	PageTemplate *models.PageTemplate
	// TemplatePath is an optional PPTX/POTX file to render onto.
	TemplatePath string
	// TemplateLayout names the slide layout used from TemplatePath.
	// If empty, the first layout is used.
	TemplateLayout string
	// ImportSheet selects the worksheet read on import; empty means the first.
	ImportSheet string
	// RespectPrintArea ignores cells outside the print area on import.
	RespectPrintArea bool
	// Logger receives structured progress logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the built-in options.
func DefaultOptions() Options {
	return Options{
		Params: layout.DefaultParams(),
	}
}

// OptionsFromConfig derives options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config, logger *zap.Logger) Options {
	return Options{
		Params:           cfg.LayoutParams(),
		TemplatePath:     cfg.Template.Path,
		TemplateLayout:   cfg.Template.Layout,
		ImportSheet:      cfg.Spreadsheet.ImportSheet,
		RespectPrintArea: cfg.Spreadsheet.RespectPrintArea,
		Logger:           logger,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
