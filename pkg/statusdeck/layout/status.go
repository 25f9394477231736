package layout

import (
	"strings"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// StatusKeyword maps a lower-case substring to a status color.
type StatusKeyword struct {
	Keyword string
	Color   models.StatusColor
}

// DefaultStatusKeywords is the built-in keyword table. Order matters:
// the first keyword contained in the status text wins.
var DefaultStatusKeywords = []StatusKeyword{
	{"action over", models.StatusGreen},
	{"over", models.StatusGreen},
	{"completed", models.StatusGreen},
	{"in progress", models.StatusBlue},
	{"progress", models.StatusBlue},
	{"not as per plan", models.StatusRed},
	{"delayed", models.StatusRed},
	{"yet to start", models.StatusYellow},
	{"pending", models.StatusYellow},
	{"to do", models.StatusYellow},
	{"todo", models.StatusYellow},
}

// StatusResolver classifies free-text statuses with an ordered keyword table.
type StatusResolver struct {
	keywords []StatusKeyword
	fallback models.StatusColor
}

// NewStatusResolver returns a resolver over keywords. An empty table
// resolves everything to yellow.
func NewStatusResolver(keywords []StatusKeyword) *StatusResolver {
	kw := make([]StatusKeyword, len(keywords))
	for i, k := range keywords {
		kw[i] = StatusKeyword{Keyword: strings.ToLower(strings.TrimSpace(k.Keyword)), Color: k.Color}
	}
	return &StatusResolver{keywords: kw, fallback: models.StatusYellow}
}

// Resolve returns the color of status.
func (r *StatusResolver) Resolve(status string) models.StatusColor {
	s := strings.ToLower(strings.TrimSpace(status))
	if s == "" {
		return r.fallback
	}
	for _, k := range r.keywords {
		if k.Keyword != "" && strings.Contains(s, k.Keyword) {
			return k.Color
		}
	}
	return r.fallback
}

var defaultResolver = NewStatusResolver(DefaultStatusKeywords)

// ResolveStatus resolves status with the default keyword table.
func ResolveStatus(status string) models.StatusColor {
	return defaultResolver.Resolve(status)
}
