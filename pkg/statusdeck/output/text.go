package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

const emuPerInch = 914400

func inches(v models.EMU) string {
	return strconv.FormatFloat(float64(v)/emuPerInch, 'f', 3, 64)
}

// WriteText prints a per-page summary of row geometry and indicators.
func WriteText(w io.Writer, deck *models.Deck) error {
	for _, page := range deck.Pages {
		if _, err := fmt.Fprintf(w, "Page %d/%d: %s (%d rows)\n",
			page.Index+1, len(deck.Pages), page.Title, len(page.Rows)); err != nil {
			return err
		}
		if page.Table == nil {
			continue
		}

		table := generatePageTable(w)
		t := page.Table
		table.Append([]string{"header", inches(t.RowTops[0]), inches(t.RowHeights[0]), "", "", ""})
		for _, ind := range page.Indicators {
			table.Append([]string{
				strconv.Itoa(ind.Row),
				inches(t.RowTops[ind.Row]),
				inches(t.RowHeights[ind.Row]),
				ind.Status,
				string(ind.Color),
				fmt.Sprintf("(%s, %s)", inches(ind.Origin.X), inches(ind.Origin.Y)),
			})
		}
		table.Render()
	}
	return nil
}

func generatePageTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Row", "Top (in)", "Height (in)", "Status", "Color", "Indicator (in)"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})
	table.SetAutoWrapText(false)
	return table
}
