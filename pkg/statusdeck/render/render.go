// Package render emits laid-out decks as presentation documents.
package render

import (
	"context"
	"io"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// Renderer writes a laid-out deck to w.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, deck *models.Deck) error
}
