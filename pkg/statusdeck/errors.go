package statusdeck

import (
	"errors"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/layout"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/render"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/sheet"
)

// ErrFileNotFound indicates an input or template file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = sheet.ErrInvalidFormat

// ErrMissingStatus indicates the table has no Status column.
var ErrMissingStatus = layout.ErrMissingStatus

// ErrInvalidRequest indicates a generate request that cannot be decoded.
var ErrInvalidRequest = errors.New("invalid report request")

// ValidationError reports an overlength cell or a malformed table shape.
type ValidationError = layout.ValidationError

// MalformedInputError reports a workbook that cannot be imported.
type MalformedInputError = sheet.MalformedInputError

// RenderError represents an error while writing the presentation.
type RenderError = render.RenderError

// NewRenderError creates a new RenderError.
func NewRenderError(page int, component string, err error) *RenderError {
	return render.NewRenderError(page, component, err)
}
