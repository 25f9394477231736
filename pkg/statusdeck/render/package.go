package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	officeRelsNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	slideRelType        = officeRelsNamespace + "/slide"

	presentationPart = "ppt/presentation.xml"
	presentationRels = "ppt/_rels/presentation.xml.rels"
	contentTypesPart = "[Content_Types].xml"
)

type relationships struct {
	XMLName xml.Name       `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Rels    []relationship `xml:"Relationship"`
}

type relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

type contentTypes struct {
	XMLName   xml.Name          `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []contentDefault  `xml:"Default"`
	Overrides []contentOverride `xml:"Override"`
}

type contentDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// repairPackage removes what deleting template slides leaves behind in a
// saved presentation: slide relationships that the slide id list no longer
// references, and content type overrides that are repeated or name parts
// the package lacks. Every other entry is copied unchanged.
func repairPackage(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	presXML, err := readZipFile(zr, presentationPart)
	if err != nil {
		return nil, err
	}
	relsXML, err := readZipFile(zr, presentationRels)
	if err != nil {
		return nil, err
	}
	typesXML, err := readZipFile(zr, contentTypesPart)
	if err != nil {
		return nil, err
	}
	if presXML == nil || relsXML == nil || typesXML == nil {
		return nil, fmt.Errorf("incomplete presentation package")
	}

	var rels relationships
	if err := xml.Unmarshal(relsXML, &rels); err != nil {
		return nil, fmt.Errorf("parse %s: %w", presentationRels, err)
	}
	listed := slideRelIDs(presXML)
	keptRels := rels.Rels[:0]
	for _, rel := range rels.Rels {
		if rel.Type == slideRelType && !listed[rel.ID] {
			continue
		}
		keptRels = append(keptRels, rel)
	}
	rels.Rels = keptRels

	var types contentTypes
	if err := xml.Unmarshal(typesXML, &types); err != nil {
		return nil, fmt.Errorf("parse %s: %w", contentTypesPart, err)
	}
	parts := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		parts["/"+strings.ToLower(f.Name)] = true
	}
	seen := make(map[string]bool, len(types.Overrides))
	keptOverrides := types.Overrides[:0]
	for _, o := range types.Overrides {
		name := strings.ToLower(o.PartName)
		if !parts[name] || seen[name] {
			continue
		}
		seen[name] = true
		keptOverrides = append(keptOverrides, o)
	}
	types.Overrides = keptOverrides

	replaced := make(map[string][]byte, 2)
	if replaced[presentationRels], err = marshalPart(rels); err != nil {
		return nil, err
	}
	if replaced[contentTypesPart], err = marshalPart(types); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		content, ok := replaced[f.Name]
		if !ok {
			if err := zw.Copy(f); err != nil {
				return nil, fmt.Errorf("copy %s: %w", f.Name, err)
			}
			continue
		}
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(content); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// slideRelIDs returns the r:id of every p:sldId in presentation.xml.
func slideRelIDs(presXML []byte) map[string]bool {
	ids := make(map[string]bool)
	decoder := xml.NewDecoder(bytes.NewReader(presXML))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sldId" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local == "id" && attr.Name.Space == officeRelsNamespace {
				ids[attr.Value] = true
			}
		}
	}

	return ids
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}
