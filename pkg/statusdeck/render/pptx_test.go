package render

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/layout"
	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

func sampleDeck(t *testing.T, rows int) *models.Deck {
	t.Helper()
	table := models.ReportTable{
		Title:   "Release status",
		Columns: []string{"Sl no.", "Brief about change", "what is the impact", "Dev effort", "Remarks", "Gone Live/ETA", "Status"},
	}
	for i := 0; i < rows; i++ {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1), "Upgrade payment gateway\nand retry logic", "Checkout", "3", "", "12/03/2025", "In Progress",
		})
	}
	deck, err := layout.NewEngine(layout.DefaultParams()).Layout(table)
	require.NoError(t, err)
	return deck
}

func TestRenderWritesOneSlidePerPage(t *testing.T) {
	deck := sampleDeck(t, 7)
	require.Len(t, deck.Pages, 2)

	var buf bytes.Buffer
	require.NoError(t, NewPPTX().Render(context.Background(), &buf, deck))

	ppt, err := presentation.Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Len(t, ppt.Slides(), 2)

	info, err := InspectTemplateReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, layout.SlideWidth, info.SlideSize.W)
	assert.Equal(t, layout.SlideHeight, info.SlideSize.H)
}

// writeTemplate saves a presentation holding one sample slide and a
// "Title Only" layout whose only shape is a positioned title placeholder.
func writeTemplate(t *testing.T) string {
	t.Helper()
	ppt := presentation.New()
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
	offX, offY := int64(838200), int64(365125)
	title.SpPr.Xfrm = dml.NewCT_Transform2D()
	title.SpPr.Xfrm.Off = dml.NewCT_Point2D()
	title.SpPr.Xfrm.Off.XAttr.ST_CoordinateUnqualified = &offX
	title.SpPr.Xfrm.Off.YAttr.ST_CoordinateUnqualified = &offY
	title.SpPr.Xfrm.Ext = dml.NewCT_PositiveSize2D()
	title.SpPr.Xfrm.Ext.CxAttr = 10515600
	title.SpPr.Xfrm.Ext.CyAttr = 1325563
	title.TxBody = dml.NewCT_TextBody()

	choice := pml.NewCT_GroupShapeChoice()
	choice.Sp = append(choice.Sp, title)
	x.CSld.SpTree.Choice = []*pml.CT_GroupShapeChoice{choice}

	sample := ppt.AddSlide()
	sample.AddTextBox().AddParagraph().AddRun().SetText("sample slide")

	path := filepath.Join(t.TempDir(), "template.pptx")
	require.NoError(t, ppt.SaveToFile(path))
	return path
}

func placeholderText(ph presentation.PlaceHolder) string {
	var b strings.Builder
	body := ph.X().TxBody
	if body == nil {
		return ""
	}
	for _, p := range body.P {
		for _, run := range p.EG_TextRun {
			if run.R != nil {
				b.WriteString(run.R.T)
			}
		}
	}
	return b.String()
}

func slideRels(t *testing.T, data []byte) []relationship {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	relsXML, err := readZipFile(zr, presentationRels)
	require.NoError(t, err)
	require.NotNil(t, relsXML)

	var rels relationships
	require.NoError(t, xml.Unmarshal(relsXML, &rels))
	var out []relationship
	for _, rel := range rels.Rels {
		if rel.Type == slideRelType {
			out = append(out, rel)
		}
	}
	return out
}

func TestRenderOntoTemplate(t *testing.T) {
	path := writeTemplate(t)
	deck := sampleDeck(t, 7)

	var buf bytes.Buffer
	require.NoError(t, NewPPTX(WithTemplate(path, "Title Only")).Render(context.Background(), &buf, deck))

	ppt, err := presentation.Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	slides := ppt.Slides()
	require.Len(t, slides, 2)
	for i, slide := range slides {
		ph, err := slide.GetPlaceholder(pml.ST_PlaceholderTypeTitle)
		require.NoError(t, err, "slide %d", i)
		assert.Equal(t, "Release status", placeholderText(ph), "slide %d", i)
	}

	rels := slideRels(t, buf.Bytes())
	require.Len(t, rels, 2)
	assert.NotEqual(t, rels[0].Target, rels[1].Target)

	info, err := InspectTemplateReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	l, ok := info.Resolve("Title Only")
	require.True(t, ok)
	assert.True(t, l.HasTitle)
}

func TestRenderOntoUnnamedLayout(t *testing.T) {
	blank := presentation.New()
	blank.AddSlide()
	path := filepath.Join(t.TempDir(), "blank.pptx")
	require.NoError(t, blank.SaveToFile(path))

	var buf bytes.Buffer
	require.NoError(t, NewPPTX(WithTemplate(path, "")).Render(context.Background(), &buf, sampleDeck(t, 3)))

	ppt, err := presentation.Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Len(t, ppt.Slides(), 1)
	assert.Len(t, slideRels(t, buf.Bytes()), 1)
}

func TestSetTitlePlaceholderKeepsTextForEmptyTitle(t *testing.T) {
	ppt, err := presentation.Open(writeTemplate(t))
	require.NoError(t, err)
	l, err := ppt.GetLayoutByName("Title Only")
	require.NoError(t, err)
	slide, err := ppt.AddDefaultSlideWithLayout(l)
	require.NoError(t, err)

	ph, err := slide.GetPlaceholder(pml.ST_PlaceholderTypeTitle)
	require.NoError(t, err)
	ph.ClearAll()
	ph.AddParagraph().AddRun().SetText("Quarterly review")

	assert.True(t, setTitlePlaceholder(slide, ""))
	assert.Equal(t, "Quarterly review", placeholderText(ph))

	assert.True(t, setTitlePlaceholder(slide, "Weekly"))
	ph, err = slide.GetPlaceholder(pml.ST_PlaceholderTypeTitle)
	require.NoError(t, err)
	assert.Equal(t, "Weekly", placeholderText(ph))
}

func TestRenderIndicatorsMatchLayout(t *testing.T) {
	table := models.ReportTable{
		Title:   "Release status",
		Columns: []string{"Sl no.", "Brief about change", "what is the impact", "Dev effort", "Remarks", "Gone Live/ETA", "Status"},
	}
	statuses := []string{"Action Over", "In Progress", "Delayed", "Yet to start", "", "completed", "not as per plan"}
	for i, status := range statuses {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1), strings.Repeat("word ", 3*i+1), "Checkout", "3", "", "12/03/2025", status,
		})
	}
	deck, err := layout.NewEngine(layout.DefaultParams()).Layout(table)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewPPTX().Render(context.Background(), &buf, deck))
	ppt, err := presentation.Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	slides := ppt.Slides()
	require.Len(t, slides, len(deck.Pages))

	for i, slide := range slides {
		var ellipses []*pml.CT_Shape
		for _, choice := range slide.X().CSld.SpTree.Choice {
			for _, sp := range choice.Sp {
				if sp.TxBody != nil && sp.TxBody.BodyPr != nil {
					assert.Nil(t, sp.TxBody.BodyPr.SpAutoFit, "slide %d shape resizes to its text", i)
				}
				if sp.SpPr.PrstGeom != nil && sp.SpPr.PrstGeom.PrstAttr == dml.ST_ShapeTypeEllipse {
					ellipses = append(ellipses, sp)
				}
			}
		}

		want := deck.Pages[i].Indicators
		require.Len(t, ellipses, len(want), "slide %d", i)
		for j, sp := range ellipses {
			xfrm := sp.SpPr.Xfrm
			require.NotNil(t, xfrm)
			assert.Equal(t, int64(want[j].Origin.X), *xfrm.Off.XAttr.ST_CoordinateUnqualified, "slide %d indicator %d x", i, j)
			assert.Equal(t, int64(want[j].Origin.Y), *xfrm.Off.YAttr.ST_CoordinateUnqualified, "slide %d indicator %d y", i, j)
			assert.Equal(t, int64(want[j].Diameter), xfrm.Ext.CxAttr)
			assert.Equal(t, int64(want[j].Diameter), xfrm.Ext.CyAttr)

			require.NotNil(t, sp.SpPr.SolidFill)
			require.NotNil(t, sp.SpPr.SolidFill.SrgbClr)
			assert.True(t, strings.EqualFold(want[j].Color.RGB().Hex(), sp.SpPr.SolidFill.SrgbClr.ValAttr),
				"slide %d indicator %d: expected %s, got %s", i, j, want[j].Color.RGB().Hex(), sp.SpPr.SolidFill.SrgbClr.ValAttr)
		}
	}
}

func TestRepairPackage(t *testing.T) {
	files := []struct{ name, body string }{
		{contentTypesPart, `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
  <Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
  <Override PartName="/ppt/slides/slide2.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
  <Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
</Types>`},
		{presentationPart, `<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><p:sldIdLst><p:sldId id="257" r:id="rId7"/></p:sldIdLst></p:presentation>`},
		{presentationRels, `<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>
  <Relationship Id="rId7" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>
</Relationships>`},
		{"ppt/slides/slide1.xml", `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`},
	}
	var in bytes.Buffer
	zw := zip.NewWriter(&in)
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	out, err := repairPackage(in.Bytes())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	require.Len(t, zr.File, len(files))
	for i, f := range zr.File {
		assert.Equal(t, files[i].name, f.Name)
	}

	relsXML, err := readZipFile(zr, presentationRels)
	require.NoError(t, err)
	var rels relationships
	require.NoError(t, xml.Unmarshal(relsXML, &rels))
	ids := make([]string, len(rels.Rels))
	for i, rel := range rels.Rels {
		ids[i] = rel.ID
	}
	assert.Equal(t, []string{"rId1", "rId7"}, ids)

	typesXML, err := readZipFile(zr, contentTypesPart)
	require.NoError(t, err)
	var types contentTypes
	require.NoError(t, xml.Unmarshal(typesXML, &types))
	require.Len(t, types.Defaults, 1)
	var parts []string
	for _, o := range types.Overrides {
		parts = append(parts, o.PartName)
	}
	assert.Equal(t, []string{"/ppt/presentation.xml", "/ppt/slides/slide1.xml"}, parts)

	slide, err := readZipFile(zr, "ppt/slides/slide1.xml")
	require.NoError(t, err)
	assert.Equal(t, files[3].body, string(slide))
}

func TestRenderTitleOnlyPage(t *testing.T) {
	deck := sampleDeck(t, 0)

	var buf bytes.Buffer
	require.NoError(t, NewPPTX().Render(context.Background(), &buf, deck))

	ppt, err := presentation.Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Len(t, ppt.Slides(), 1)
}

func TestRenderHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewPPTX().Render(ctx, &buf, sampleDeck(t, 3))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestRenderMissingTemplate(t *testing.T) {
	r := NewPPTX(WithTemplate(filepath.Join(t.TempDir(), "missing.pptx"), ""))
	err := r.Render(context.Background(), &bytes.Buffer{}, sampleDeck(t, 1))

	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "template", rerr.Component)
	assert.Equal(t, -1, rerr.Page)
}

func TestRenderUnknownLayout(t *testing.T) {
	var tpl bytes.Buffer
	require.NoError(t, NewPPTX().Render(context.Background(), &tpl, sampleDeck(t, 1)))
	path := filepath.Join(t.TempDir(), "template.pptx")
	require.NoError(t, os.WriteFile(path, tpl.Bytes(), 0o644))

	r := NewPPTX(WithTemplate(path, "No Such Layout"))
	err := r.Render(context.Background(), &bytes.Buffer{}, sampleDeck(t, 1))
	assert.True(t, errors.Is(err, ErrLayoutNotFound), "expected ErrLayoutNotFound, got %v", err)
}

func TestParseLayoutXML(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld name="Title Only">
    <p:spTree>
      <p:sp>
        <p:nvSpPr><p:cNvPr id="2" name="Date"/><p:cNvSpPr/><p:nvPr><p:ph type="dt" sz="half" idx="10"/></p:nvPr></p:nvSpPr>
        <p:spPr/>
      </p:sp>
      <p:sp>
        <p:nvSpPr><p:cNvPr id="3" name="Title 1"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
        <p:spPr><a:xfrm><a:off x="838200" y="365125"/><a:ext cx="10515600" cy="1325563"/></a:xfrm></p:spPr>
      </p:sp>
    </p:spTree>
  </p:cSld>
</p:sldLayout>`)

	info := parseLayoutXML(data)
	assert.Equal(t, "Title Only", info.Name)
	assert.True(t, info.HasTitle)
	require.NotNil(t, info.TitleFrame)
	assert.Equal(t, models.EMU(838200), info.TitleFrame.X)
	assert.Equal(t, models.EMU(365125), info.TitleFrame.Y)
	assert.Equal(t, models.EMU(10515600), info.TitleFrame.W)
	assert.Equal(t, models.EMU(1325563), info.TitleFrame.H)
}

func TestParseSlideSize(t *testing.T) {
	data := []byte(`<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldSz cx="9144000" cy="6858000" type="screen4x3"/></p:presentation>`)
	size := parseSlideSize(data)
	if size.W != 9144000 || size.H != 6858000 {
		t.Errorf("expected 9144000x6858000, got %dx%d", size.W, size.H)
	}
}

func TestResolveLayout(t *testing.T) {
	info := &TemplateInfo{Layouts: []LayoutInfo{{Name: "Title Slide"}, {Name: "Title Only", HasTitle: true}}}

	l, ok := info.Resolve("")
	require.True(t, ok)
	assert.Equal(t, "Title Slide", l.Name)

	l, ok = info.Resolve("Title Only")
	require.True(t, ok)
	assert.True(t, l.HasTitle)

	_, ok = info.Resolve("Blank")
	assert.False(t, ok)

	_, ok = (&TemplateInfo{}).Resolve("")
	assert.False(t, ok)
}

func TestLayoutNumberOrdering(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"ppt/slideLayouts/slideLayout1.xml", 1},
		{"ppt/slideLayouts/slideLayout10.xml", 10},
		{"ppt/slideLayouts/custom.xml", 1 << 30},
	}
	for _, tt := range tests {
		if got := layoutNumber(tt.name); got != tt.expected {
			t.Errorf("layoutNumber(%q) = %d, expected %d", tt.name, got, tt.expected)
		}
	}
}
