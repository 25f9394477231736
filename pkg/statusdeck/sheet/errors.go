// Package sheet reads and writes the spreadsheet side of a status report:
// the blank input template and the import of filled-in workbooks.
package sheet

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// MalformedInputError reports a workbook that cannot be read as a report.
type MalformedInputError struct {
	Source string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input %q: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed input %q: %s", e.Source, e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
