package sheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/layout"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// DateLayout is the text form of date cells (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// ReadOptions configures ReadReport.
type ReadOptions struct {
	// Sheet selects the worksheet; empty means the first sheet.
	Sheet string
	// RespectPrintArea ignores cells outside the sheet's print area.
	RespectPrintArea bool
	Logger           *zap.Logger
}

// ReadReport parses a filled-in workbook. name is the original file name
// and must end in .xlsx. The title is read from A1, the headers from row 2
// and the data from row 3 on.
func ReadReport(r io.Reader, name string, opts ReadOptions) (*models.ReportTable, error) {
	if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return nil, &MalformedInputError{Source: name, Reason: "File must be an .xlsx file."}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &MalformedInputError{Source: name, Reason: "unreadable workbook", Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, &MalformedInputError{Source: name, Reason: "workbook has no sheets"}
		}
		sheet = list[0]
	}

	table, err := readSheet(f, sheet, opts.RespectPrintArea)
	if err != nil {
		var verr *layout.ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		return nil, &MalformedInputError{Source: name, Reason: fmt.Sprintf("sheet %q", sheet), Err: err}
	}
	logger.Debug("workbook imported",
		zap.String("file", name),
		zap.String("sheet", sheet),
		zap.Int("columns", len(table.Columns)),
		zap.Int("rows", len(table.Rows)))
	return table, nil
}

func readSheet(f *excelize.File, sheet string, respectPrintArea bool) (*models.ReportTable, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if respectPrintArea {
		if a, ok := findPrintArea(f, sheet); ok {
			rows = clipToArea(rows, a)
		}
	}
	if len(rows) < headerRow {
		return nil, fmt.Errorf("missing header row %d", headerRow)
	}

	header := rows[headerRow-1]
	_, _, _, lastCol := findDataBounds([][]string{header})
	if lastCol < 0 {
		return nil, fmt.Errorf("header row %d is empty", headerRow)
	}
	columns := make([]string, lastCol+1)
	for i := range columns {
		columns[i] = strings.TrimSpace(header[i])
	}

	table := &models.ReportTable{Columns: columns}
	if table.StatusIndex() < 0 {
		return nil, layout.MissingStatusError(columns)
	}

	title, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		return nil, err
	}
	table.Title = strings.TrimSpace(title)

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	for i := firstDataRow - 1; i < len(rows); i++ {
		raw := rows[i]
		if isBlankRow(raw) {
			continue
		}

		// Trailing blanks beyond the header width are dropped; anything
		// else makes the row ragged and is rejected during validation.
		_, _, _, last := findDataBounds([][]string{raw})
		width := max(len(columns), last+1)
		row := make([]string, width)
		for c := 0; c < width && c < len(raw); c++ {
			cell, _ := excelize.CoordinatesToCellName(c+1, i+1)
			row[c] = normalizeCell(f, sheet, cell, raw[c], date1904)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// normalizeCell returns the cell as trimmed text, with date cells
// rewritten as DD/MM/YYYY.
func normalizeCell(f *excelize.File, sheet, cell, formatted string, date1904 bool) string {
	if formatted == "" {
		return ""
	}
	if t, ok := cellDate(f, sheet, cell, date1904); ok {
		return t.Format(DateLayout)
	}
	return strings.TrimSpace(formatted)
}

func cellDate(f *excelize.File, sheet, cell string, date1904 bool) (time.Time, bool) {
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return time.Time{}, false
	}
	raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return time.Time{}, false
	}

	if typ == excelize.CellTypeDate {
		for _, l := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(l, raw); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}

	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil || styleID == 0 {
		return time.Time{}, false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || !isDateFormat(style) {
		return time.Time{}, false
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// isDateFormat reports whether style formats numbers as calendar dates.
// Time-only formats are not dates.
func isDateFormat(style *excelize.Style) bool {
	if style.CustomNumFmt != nil {
		return isDatePattern(*style.CustomNumFmt)
	}
	switch style.NumFmt {
	case 14, 15, 16, 17, 22:
		return true
	}
	return false
}

// isDatePattern checks a custom number format for day or year tokens,
// ignoring quoted literals and bracketed sections.
func isDatePattern(pattern string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range pattern {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	p := strings.ToLower(b.String())
	return strings.ContainsAny(p, "dy")
}
