package layout

import (
	"errors"
	"fmt"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// ErrMissingStatus indicates the table has no Status column.
var ErrMissingStatus = errors.New("'Status' column not found")

// ValidationError reports input the engine refuses to lay out.
type ValidationError struct {
	// Column is the offending column name, if any.
	Column string
	// Limit is the configured maximum length of Column.
	Limit int
	// Row is the 1-based data row, 0 when the error is not row specific.
	Row int
	// Reason replaces the length message for structural violations.
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = fmt.Sprintf("cell in column %q exceeds max length of %d characters", e.Column, e.Limit)
	}
	if e.Row > 0 {
		msg = fmt.Sprintf("%s (row %d)", msg, e.Row)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MissingStatusError builds the error for a header row without Status.
func MissingStatusError(found []string) *ValidationError {
	reason := ErrMissingStatus.Error()
	if found != nil {
		reason = fmt.Sprintf("%s. Found columns: %q", reason, found)
	}
	return &ValidationError{Column: models.StatusColumn, Reason: reason, Err: ErrMissingStatus}
}

func newLengthError(column string, limit, row int) *ValidationError {
	return &ValidationError{Column: column, Limit: limit, Row: row}
}
