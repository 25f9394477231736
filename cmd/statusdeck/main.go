// Package main provides the CLI entry point for statusdeck.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/config"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/output"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/sheet"
)

var (
	// Global flags
	configPath string
	verbose    bool

	inputPath      string
	deckOutput     string
	templateOutput string
	templatePath   string
	layoutName     string
	pretty         bool
	asJSON         bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statusdeck",
		Short: "Turn status-report tables into slide decks",
		Long: `statusdeck lays out project status tables as paginated PowerPoint decks,
with one table per slide and a colored indicator per row.

It also writes the Excel input template and imports filled-in workbooks.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", configPath, err)
			}
			logger, err = newLogger(cfg.Logging, verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "statusdeck.yaml", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a deck from a JSON report request",
		Long: `Reads {"type", "title", "columns", "content"} JSON and writes a PPTX deck.

Example:
  statusdeck generate -i report.json -o deck.pptx`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	generateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input JSON file (default: stdin)")
	addDeckFlags(generateCmd)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Generate a deck from a filled-in Excel template",
		Args:  cobra.NoArgs,
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input .xlsx file")
	_ = importCmd.MarkFlagRequired("input")
	addDeckFlags(importCmd)

	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Write the Excel input template",
		Args:  cobra.NoArgs,
		RunE:  runTemplate,
	}
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "project-update-template.xlsx", "Output .xlsx file")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed page layout without rendering",
		Args:  cobra.NoArgs,
		RunE:  runLayout,
	}
	layoutCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input JSON or .xlsx file (default: JSON on stdin)")
	layoutCmd.Flags().BoolVar(&asJSON, "json", false, "Print the layout as JSON")
	layoutCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(generateCmd, importCmd, templateCmd, layoutCmd)
	return rootCmd
}

func addDeckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&deckOutput, "output", "o", "generated.pptx", "Output .pptx file")
	cmd.Flags().StringVar(&templatePath, "template", "", "PPTX template to render onto (overrides config)")
	cmd.Flags().StringVar(&layoutName, "layout", "", "Slide layout name within the template")
}

func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func options() statusdeck.Options {
	opts := statusdeck.OptionsFromConfig(cfg, logger)
	if templatePath != "" {
		opts.TemplatePath = templatePath
	}
	if layoutName != "" {
		opts.TemplateLayout = layoutName
	}
	return opts
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	table, err := readRequest(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	return writeOutput(deckOutput, func(f *os.File) error {
		deck, err := statusdeck.Generate(ctx, f, *table, options())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d slide(s) to %s\n", len(deck.Pages), deckOutput)
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	ctx, cancel := signalContext()
	defer cancel()

	return writeOutput(deckOutput, func(f *os.File) error {
		deck, err := statusdeck.Import(ctx, f, in, filepath.Base(inputPath), options())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d slide(s) to %s\n", len(deck.Pages), deckOutput)
		return nil
	})
}

func runTemplate(cmd *cobra.Command, args []string) error {
	return writeOutput(templateOutput, func(f *os.File) error {
		if err := sheet.WriteTemplate(f, cfg.TemplateSpec()); err != nil {
			return err
		}
		logger.Debug("template written", zap.String("path", templateOutput))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote template to %s\n", templateOutput)
		return nil
	})
}

func runLayout(cmd *cobra.Command, args []string) error {
	opts := options()

	var (
		table *models.ReportTable
		err   error
	)
	if strings.EqualFold(filepath.Ext(inputPath), ".xlsx") {
		table, err = readWorkbook(opts)
	} else {
		table, err = readRequest(cmd)
	}
	if err != nil {
		return err
	}

	deck, err := statusdeck.Layout(*table, opts)
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}

	if asJSON {
		jsonData, err := output.ToJSON(deck, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}
	return output.WriteText(cmd.OutOrStdout(), deck)
}
