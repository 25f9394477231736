// Package output serializes laid-out decks for inspection.
package output

import (
	"encoding/json"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// ToJSON serializes a deck to JSON.
func ToJSON(deck *models.Deck, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(deck, "", "  ")
	}
	return json.Marshal(deck)
}

// PageToJSON serializes a single page to JSON.
func PageToJSON(page *models.SlidePage, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(page, "", "  ")
	}
	return json.Marshal(page)
}
