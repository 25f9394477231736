package statusdeck

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// DecodeRequest reads a JSON report request of the form
// {"type": ..., "title": ..., "columns": [...], "content": [[...], ...]}.
func DecodeRequest(r io.Reader) (*models.ReportTable, error) {
	var req models.ReportRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Type != "" && req.Type != models.ReportTypeProjectUpdate {
		return nil, fmt.Errorf("%w: unsupported report type %q", ErrInvalidRequest, req.Type)
	}
	if len(req.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidRequest)
	}
	return &req.ReportTable, nil
}
