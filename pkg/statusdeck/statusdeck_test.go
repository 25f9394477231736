package statusdeck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/config"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/sheet"
)

var columns = []string{"Sl no.", "Brief about change", "what is the impact", "Dev effort", "Remarks", "Gone Live/ETA", "Status"}

func reportTable(rows int) models.ReportTable {
	table := models.ReportTable{Title: "Platform update", Columns: columns}
	for i := 0; i < rows; i++ {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1), "Rotate TLS certificates", "None", "1", "", "05/05/2025", "Yet to Start",
		})
	}
	return table
}

func slideCount(t *testing.T, data []byte) int {
	t.Helper()
	ppt, err := presentation.Read(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return len(ppt.Slides())
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	deck, err := Generate(context.Background(), &buf, reportTable(12), DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, deck.Pages, 3)
	assert.Equal(t, 3, slideCount(t, buf.Bytes()))
}

func TestGenerateRejectsOverlengthCell(t *testing.T) {
	table := reportTable(3)
	table.Rows[2][1] = strings.Repeat("b", 97)

	var buf bytes.Buffer
	deck, err := Generate(context.Background(), &buf, table, DefaultOptions())
	assert.Nil(t, deck)
	assert.Zero(t, buf.Len())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	assert.Equal(t, "Brief about change", verr.Column)
	assert.Equal(t, 96, verr.Limit)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := Generate(ctx, &buf, reportTable(2), DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateMissingTemplate(t *testing.T) {
	opts := DefaultOptions()
	opts.TemplatePath = filepath.Join(t.TempDir(), "brand.pptx")

	_, err := Generate(context.Background(), &bytes.Buffer{}, reportTable(1), opts)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

// writeBrandTemplate saves a 4:3 presentation whose first layout is
// "Title Only" with a title placeholder at a fixed frame.
func writeBrandTemplate(t *testing.T) string {
	t.Helper()
	ppt := presentation.New()
	ppt.X().SldSz = pml.NewCT_SlideSize()
	ppt.X().SldSz.CxAttr = 9144000
	ppt.X().SldSz.CyAttr = 6858000

	layouts := ppt.SlideLayouts()
	require.NotEmpty(t, layouts)
	x := layouts[0].X()
	name := "Title Only"
	x.CSld.NameAttr = &name

	title := pml.NewCT_Shape()
	title.NvSpPr.CNvPr.IdAttr = 2
	title.NvSpPr.CNvPr.NameAttr = "Title 1"
	title.NvSpPr.NvPr.Ph = pml.NewCT_Placeholder()
	title.NvSpPr.NvPr.Ph.TypeAttr = pml.ST_PlaceholderTypeTitle
	offX, offY := int64(457200), int64(274638)
	title.SpPr.Xfrm = dml.NewCT_Transform2D()
	title.SpPr.Xfrm.Off = dml.NewCT_Point2D()
	title.SpPr.Xfrm.Off.XAttr.ST_CoordinateUnqualified = &offX
	title.SpPr.Xfrm.Off.YAttr.ST_CoordinateUnqualified = &offY
	title.SpPr.Xfrm.Ext = dml.NewCT_PositiveSize2D()
	title.SpPr.Xfrm.Ext.CxAttr = 8229600
	title.SpPr.Xfrm.Ext.CyAttr = 1143000
	title.TxBody = dml.NewCT_TextBody()

	choice := pml.NewCT_GroupShapeChoice()
	choice.Sp = append(choice.Sp, title)
	x.CSld.SpTree.Choice = []*pml.CT_GroupShapeChoice{choice}

	path := filepath.Join(t.TempDir(), "brand.pptx")
	require.NoError(t, ppt.SaveToFile(path))
	return path
}

func TestLayoutFollowsTemplate(t *testing.T) {
	opts := DefaultOptions()
	opts.TemplatePath = writeBrandTemplate(t)

	deck, err := Layout(reportTable(6), opts)
	require.NoError(t, err)
	assert.Equal(t, models.Size{W: 9144000, H: 6858000}, deck.SlideSize)

	want := models.Rect{Point: models.Point{X: 457200, Y: 274638}, Size: models.Size{W: 8229600, H: 1143000}}
	for _, page := range deck.Pages {
		title := page.TitleDecoration()
		require.NotNil(t, title)
		assert.Equal(t, want, title.Frame)
		assert.Equal(t, "Platform update", title.Text)
	}

	var buf bytes.Buffer
	_, err = Generate(context.Background(), &buf, reportTable(6), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, slideCount(t, buf.Bytes()))
}

func TestImport(t *testing.T) {
	f, err := sheet.NewTemplate(sheet.DefaultTemplateSpec())
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, 3+i)
		row := []interface{}{i + 1, "Enable SSO", "Login flow", 2, "", "10/06/2025", "Action Over"}
		require.NoError(t, f.SetSheetRow("Project Update", cell, &row))
	}
	var xlsx bytes.Buffer
	require.NoError(t, f.Write(&xlsx))
	f.Close()

	var pptx bytes.Buffer
	deck, err := Import(context.Background(), &pptx, &xlsx, "update.xlsx", DefaultOptions())
	require.NoError(t, err)

	// The template header "What is the impact" has no configured limit.
	assert.Equal(t, "What is the impact", deck.Columns[2])
	assert.Equal(t, "Project Update Data", deck.Title)
	assert.Equal(t, 6, deck.DataRows())
	assert.Equal(t, 2, slideCount(t, pptx.Bytes()))
	assert.Equal(t, models.StatusGreen, deck.Pages[1].Indicators[0].Color)
}

func TestImportRejectsWrongExtension(t *testing.T) {
	_, err := Import(context.Background(), &bytes.Buffer{}, strings.NewReader(""), "update.xls", DefaultOptions())

	var merr *MalformedInputError
	assert.ErrorAs(t, err, &merr)
}

func TestDecodeRequest(t *testing.T) {
	body := `{"type":"project_update","title":"Q3","columns":["Sl no.","Status"],"content":[["1","Delayed"]]}`
	table, err := DecodeRequest(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "Q3", table.Title)
	assert.Equal(t, []string{"Sl no.", "Status"}, table.Columns)
	assert.Equal(t, [][]string{{"1", "Delayed"}}, table.Rows)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"title":`},
		{"unknown type", `{"type":"roadmap","columns":["Status"]}`},
		{"no columns", `{"title":"x"}`},
		{"unknown field", `{"columns":["Status"],"rows":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest(strings.NewReader(tt.body))
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.RowsPerPage = 2
	cfg.Template.Layout = "Title Only"

	opts := OptionsFromConfig(cfg, nil)
	assert.Equal(t, 2, opts.Params.RowsPerPage)
	assert.Equal(t, "Title Only", opts.TemplateLayout)

	deck, err := Layout(reportTable(5), opts)
	require.NoError(t, err)
	assert.Len(t, deck.Pages, 3)
}
