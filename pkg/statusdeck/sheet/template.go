package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// TemplateSpec describes the blank input workbook.
type TemplateSpec struct {
	SheetName string
	Title     string
	Headers   []string
	// Statuses populates the Status dropdown.
	Statuses []string
	// PrefillRows is the number of serial numbers written below the header.
	PrefillRows int
	// ValidationRows is the last row covered by the Status dropdown.
	ValidationRows int
	// ColumnWidths are spreadsheet character widths, one per header.
	ColumnWidths []float64
}

// DefaultTemplateSpec returns the project-update template layout.
func DefaultTemplateSpec() TemplateSpec {
	return TemplateSpec{
		SheetName: "Project Update",
		Title:     "Project Update Data",
		Headers: []string{
			"Sl no.",
			"Brief about change",
			"What is the impact",
			"Dev effort",
			"Remarks",
			"Gone Live/ETA",
			"Status",
		},
		Statuses:       []string{"Action Over", "In Progress", "Not as per Plan", "Yet to Start"},
		PrefillRows:    10,
		ValidationRows: 500,
		ColumnWidths:   []float64{10, 40, 35, 14, 30, 18, 20},
	}
}

// Row numbers of the fixed template areas.
const (
	titleRow     = 1
	headerRow    = 2
	firstDataRow = 3
)

// NewTemplate builds the template workbook. The caller must close it.
func NewTemplate(spec TemplateSpec) (*excelize.File, error) {
	if len(spec.Headers) == 0 {
		return nil, errors.New("template has no headers")
	}

	f := excelize.NewFile()
	if err := fillTemplate(f, spec); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillTemplate(f *excelize.File, spec TemplateSpec) error {
	sheet := spec.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(spec.Headers))
	if err != nil {
		return err
	}

	// Title row, merged across every header column.
	if err := f.SetCellValue(sheet, "A1", spec.Title); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", fmt.Sprintf("%s%d", lastCol, titleRow)); err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	headers := make([]interface{}, len(spec.Headers))
	for i, h := range spec.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet, "A2", &headers); err != nil {
		return err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("%s%d", lastCol, headerRow), boldStyle); err != nil {
		return err
	}

	for i := 1; i <= spec.PrefillRows; i++ {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", firstDataRow+i-1), i); err != nil {
			return err
		}
	}

	if err := addStatusDropdown(f, spec); err != nil {
		return err
	}
	if err := setPrintArea(f, sheet, len(spec.Headers), max(spec.ValidationRows, headerRow+spec.PrefillRows)); err != nil {
		return err
	}

	for i, w := range spec.ColumnWidths {
		if i >= len(spec.Headers) {
			break
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	// Keep the title and header rows visible while scrolling.
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", firstDataRow),
		ActivePane:  "bottomLeft",
	})
}

func addStatusDropdown(f *excelize.File, spec TemplateSpec) error {
	statusCol := -1
	for i, h := range spec.Headers {
		if h == models.StatusColumn {
			statusCol = i + 1
		}
	}
	if statusCol < 0 || len(spec.Statuses) == 0 || spec.ValidationRows < firstDataRow {
		return nil
	}

	col, err := excelize.ColumnNumberToName(statusCol)
	if err != nil {
		return err
	}
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s%d:%s%d", col, firstDataRow, col, spec.ValidationRows)
	if err := dv.SetDropList(spec.Statuses); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid Status", "Please select a valid status from the dropdown.")
	return f.AddDataValidation(spec.SheetName, dv)
}

// WriteTemplate writes the template workbook to w.
func WriteTemplate(w io.Writer, spec TemplateSpec) error {
	f, err := NewTemplate(spec)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}
