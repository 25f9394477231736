// Package config loads statusdeck settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/layout"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/sheet"
)

// Config holds all statusdeck configuration.
type Config struct {
	// Table geometry and wrapping metrics
	Layout LayoutConfig `yaml:"layout"`

	// Maximum cell lengths, matched against column names exactly
	Limits []LimitConfig `yaml:"limits"`

	// Ordered status keyword table; the first match wins
	Statuses []StatusConfig `yaml:"statuses"`

	// Optional PPTX template
	Template TemplateConfig `yaml:"template"`

	// Spreadsheet template and import settings
	Spreadsheet SpreadsheetConfig `yaml:"spreadsheet"`

	Logging LoggingConfig `yaml:"logging"`
}

// LayoutConfig configures the table layout. Lengths are in inches unless
// the field name says otherwise.
type LayoutConfig struct {
	RowsPerPage       int       `yaml:"rows_per_page"`
	Left              float64   `yaml:"left"`
	Top               float64   `yaml:"top"`
	ColumnWidths      []float64 `yaml:"column_widths"`
	HeaderRowHeight   float64   `yaml:"header_row_height"`
	MinRowHeight      float64   `yaml:"min_row_height"`
	LineHeightPt      float64   `yaml:"line_height_pt"`
	PaddingPt         float64   `yaml:"padding_pt"`
	AvgCharWidthPt    float64   `yaml:"avg_char_width_pt"`
	IndicatorDiameter float64   `yaml:"indicator_diameter"`
	IndicatorNudge    float64   `yaml:"indicator_nudge"`
	BorderWidthPt     float64   `yaml:"border_width_pt"`
	HeaderFontPt      float64   `yaml:"header_font_pt"`
	DataFontPt        float64   `yaml:"data_font_pt"`
}

// LimitConfig is the maximum length of one column.
type LimitConfig struct {
	Column string `yaml:"column"`
	Max    int    `yaml:"max"`
}

// StatusConfig maps a keyword to an indicator color.
type StatusConfig struct {
	Keyword string `yaml:"keyword"`
	Color   string `yaml:"color"` // green, blue, red, yellow
}

// TemplateConfig selects a PPTX template and the layout used for slides.
type TemplateConfig struct {
	Path   string `yaml:"path"`
	Layout string `yaml:"layout"`
}

// SpreadsheetConfig configures the input workbook.
type SpreadsheetConfig struct {
	SheetName      string    `yaml:"sheet_name"`
	Title          string    `yaml:"title"`
	Headers        []string  `yaml:"headers"`
	Statuses       []string  `yaml:"statuses"`
	PrefillRows    int       `yaml:"prefill_rows"`
	ValidationRows int       `yaml:"validation_rows"`
	ColumnWidths   []float64 `yaml:"column_widths"`
	// ImportSheet selects the sheet read on import; empty means the first.
	ImportSheet string `yaml:"import_sheet"`
	// RespectPrintArea ignores cells outside the sheet's print area on import.
	RespectPrintArea bool `yaml:"respect_print_area"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	tpl := sheet.DefaultTemplateSpec()
	cfg := &Config{
		Layout: LayoutConfig{
			RowsPerPage:       5,
			Left:              0.3,
			Top:               1.2,
			ColumnWidths:      []float64{0.6, 3.2, 2.8, 1.0, 2.0, 1.5, 1.6},
			HeaderRowHeight:   0.4,
			MinRowHeight:      0.3,
			LineHeightPt:      15,
			PaddingPt:         20,
			AvgCharWidthPt:    7,
			IndicatorDiameter: 0.25,
			IndicatorNudge:    0.15,
			BorderWidthPt:     1.5,
			HeaderFontPt:      14,
			DataFontPt:        12,
		},
		Spreadsheet: SpreadsheetConfig{
			SheetName:      tpl.SheetName,
			Title:          tpl.Title,
			Headers:        tpl.Headers,
			Statuses:       tpl.Statuses,
			PrefillRows:    tpl.PrefillRows,
			ValidationRows: tpl.ValidationRows,
			ColumnWidths:   tpl.ColumnWidths,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
	for _, l := range layout.DefaultLimits {
		cfg.Limits = append(cfg.Limits, LimitConfig{Column: l.Column, Max: l.Max})
	}
	for _, s := range layout.DefaultStatusKeywords {
		cfg.Statuses = append(cfg.Statuses, StatusConfig{Keyword: s.Keyword, Color: string(s.Color)})
	}
	return cfg
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("STATUSDECK_TEMPLATE"); path != "" {
		c.Template.Path = path
	}
	if name := os.Getenv("STATUSDECK_TEMPLATE_LAYOUT"); name != "" {
		c.Template.Layout = name
	}
	if level := os.Getenv("STATUSDECK_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.LayoutParams().Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	if len(c.Spreadsheet.Headers) != len(c.Layout.ColumnWidths) {
		return fmt.Errorf("spreadsheet has %d headers but layout has %d columns",
			len(c.Spreadsheet.Headers), len(c.Layout.ColumnWidths))
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Logging.Format)
	}

	return nil
}

// LayoutParams converts the configuration into layout engine parameters.
func (c *Config) LayoutParams() layout.Params {
	l := c.Layout
	p := layout.Params{
		RowsPerPage:       l.RowsPerPage,
		Origin:            models.Point{X: layout.Inches(l.Left), Y: layout.Inches(l.Top)},
		HeaderRowHeight:   layout.Inches(l.HeaderRowHeight),
		MinRowHeight:      layout.Inches(l.MinRowHeight),
		LineHeightPt:      l.LineHeightPt,
		PaddingPt:         l.PaddingPt,
		AvgCharWidthPt:    l.AvgCharWidthPt,
		IndicatorDiameter: layout.Inches(l.IndicatorDiameter),
		IndicatorNudge:    layout.Inches(l.IndicatorNudge),
		BorderWidth:       layout.Points(l.BorderWidthPt),
		HeaderFontPt:      l.HeaderFontPt,
		DataFontPt:        l.DataFontPt,
	}
	for _, w := range l.ColumnWidths {
		p.ColumnWidths = append(p.ColumnWidths, layout.Inches(w))
	}
	for _, lim := range c.Limits {
		p.Limits = append(p.Limits, layout.ColumnLimit{Column: lim.Column, Max: lim.Max})
	}
	for _, s := range c.Statuses {
		p.Statuses = append(p.Statuses, layout.StatusKeyword{Keyword: s.Keyword, Color: models.StatusColor(s.Color)})
	}
	return p
}

// TemplateSpec converts the spreadsheet section into a workbook template spec.
func (c *Config) TemplateSpec() sheet.TemplateSpec {
	s := c.Spreadsheet
	return sheet.TemplateSpec{
		SheetName:      s.SheetName,
		Title:          s.Title,
		Headers:        s.Headers,
		Statuses:       s.Statuses,
		PrefillRows:    s.PrefillRows,
		ValidationRows: s.ValidationRows,
		ColumnWidths:   s.ColumnWidths,
	}
}
