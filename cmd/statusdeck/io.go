package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", statusdeck.ErrFileNotFound, path)
		}
		return nil, err
	}
	return f, nil
}

func readRequest(cmd *cobra.Command) (*models.ReportTable, error) {
	var r io.Reader = cmd.InOrStdin()
	if inputPath != "" {
		f, err := openInput(inputPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return statusdeck.DecodeRequest(r)
}

func readWorkbook(opts statusdeck.Options) (*models.ReportTable, error) {
	f, err := openInput(inputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return statusdeck.ReadTable(f, filepath.Base(inputPath), opts)
}

// writeOutput creates path, runs write and removes the file again when
// write fails so no partial document is left behind.
func writeOutput(path string, write func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
