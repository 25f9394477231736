package render

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/statusdeck-go/pkg/statusdeck/models"
)

// TemplateInfo describes a PPTX template package.
type TemplateInfo struct {
	// SlideSize is read from ppt/presentation.xml.
	SlideSize models.Size
	// Layouts lists the slide layouts in package order.
	Layouts []LayoutInfo
}

// LayoutInfo describes one slide layout of a template.
type LayoutInfo struct {
	Name string
	// TitleFrame is the title placeholder position, nil when the layout has
	// no title placeholder or does not position it.
	TitleFrame *models.Rect
	HasTitle   bool
}

// Layout returns the layout called name.
func (t *TemplateInfo) Layout(name string) (LayoutInfo, bool) {
	for _, l := range t.Layouts {
		if l.Name == name {
			return l, true
		}
	}
	return LayoutInfo{}, false
}

// Resolve returns the named layout, or the first layout when name is empty.
func (t *TemplateInfo) Resolve(name string) (LayoutInfo, bool) {
	if name == "" {
		if len(t.Layouts) == 0 {
			return LayoutInfo{}, false
		}
		return t.Layouts[0], true
	}
	return t.Layout(name)
}

// LayoutNames returns the names of all layouts.
func (t *TemplateInfo) LayoutNames() []string {
	names := make([]string, len(t.Layouts))
	for i, l := range t.Layouts {
		names[i] = l.Name
	}
	return names
}

// InspectTemplate reads the slide size and slide layouts of a PPTX file
// directly from its zip package.
func InspectTemplate(pptxPath string) (*TemplateInfo, error) {
	f, err := os.Open(pptxPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return InspectTemplateReader(f, st.Size())
}

// InspectTemplateReader is InspectTemplate over an in-memory package.
func InspectTemplateReader(ra io.ReaderAt, size int64) (*TemplateInfo, error) {
	r, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, err
	}
	return inspectPackage(r)
}

func inspectPackage(r *zip.Reader) (*TemplateInfo, error) {
	presXML, err := readZipFile(r, "ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	if presXML == nil {
		return nil, fmt.Errorf("not a presentation package: ppt/presentation.xml missing")
	}

	info := &TemplateInfo{SlideSize: parseSlideSize(presXML)}

	var layoutPaths []string
	for _, f := range r.File {
		if path.Dir(f.Name) == "ppt/slideLayouts" && strings.HasSuffix(f.Name, ".xml") {
			layoutPaths = append(layoutPaths, f.Name)
		}
	}
	sort.Slice(layoutPaths, func(i, j int) bool {
		return layoutNumber(layoutPaths[i]) < layoutNumber(layoutPaths[j])
	})

	for _, p := range layoutPaths {
		data, err := readZipFile(r, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		info.Layouts = append(info.Layouts, parseLayoutXML(data))
	}

	return info, nil
}

// layoutNumber extracts N from ".../slideLayoutN.xml" so slideLayout10
// sorts after slideLayout9.
func layoutNumber(name string) int {
	base := strings.TrimSuffix(path.Base(name), ".xml")
	n, err := strconv.Atoi(strings.TrimPrefix(base, "slideLayout"))
	if err != nil {
		return 1 << 30
	}
	return n
}

func parseSlideSize(data []byte) models.Size {
	var size models.Size
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sldSz" {
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "cx":
					if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
						size.W = models.EMU(v)
					}
				case "cy":
					if v, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
						size.H = models.EMU(v)
					}
				}
			}
			break
		}
	}

	return size
}

func parseLayoutXML(data []byte) LayoutInfo {
	var info LayoutInfo
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "cSld":
			for _, attr := range se.Attr {
				if attr.Name.Local == "name" {
					info.Name = attr.Value
				}
			}
		case "sp":
			isTitle, frame := parseShapeElement(decoder)
			if isTitle && !info.HasTitle {
				info.HasTitle = true
				info.TitleFrame = frame
			}
		}
	}

	return info
}

// parseShapeElement consumes one p:sp element and reports whether it is a
// title placeholder, along with its frame when present.
func parseShapeElement(decoder *xml.Decoder) (isTitle bool, frame *models.Rect) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "ph":
				for _, attr := range t.Attr {
					if attr.Name.Local == "type" && (attr.Value == "title" || attr.Value == "ctrTitle") {
						isTitle = true
					}
				}
			case "xfrm":
				r := parseXfrm(decoder)
				frame = &r
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return
}

// parseXfrm parses an xfrm element for position and size.
func parseXfrm(decoder *xml.Decoder) models.Rect {
	var r models.Rect
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			for _, attr := range t.Attr {
				v, err := strconv.ParseInt(attr.Value, 10, 64)
				if err != nil {
					continue
				}
				switch {
				case t.Name.Local == "off" && attr.Name.Local == "x":
					r.X = models.EMU(v)
				case t.Name.Local == "off" && attr.Name.Local == "y":
					r.Y = models.EMU(v)
				case t.Name.Local == "ext" && attr.Name.Local == "cx":
					r.W = models.EMU(v)
				case t.Name.Local == "ext" && attr.Name.Local == "cy":
					r.H = models.EMU(v)
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return r
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
