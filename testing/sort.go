package testing

import (
	"bytes"
	"encoding/xml"
	"io"
	"sort"
	"strings"
)

// sortXML parses an XML document and re-renders it in a canonical form:
// attributes sorted by name, sibling elements sorted by their rendered
// text, inter-element whitespace dropped.
func sortXML(doc []byte) (string, error) {
	root, err := parseNode(xml.NewDecoder(bytes.NewReader(doc)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	renderSorted(&b, root)
	return b.String(), nil
}

type xmlNode struct {
	name     xml.Name
	attrs    []xml.Attr
	children []*xmlNode
	text     string
}

// parseNode reads tokens up to the end of the document and returns the
// root element's node tree.
func parseNode(dec *xml.Decoder) (*xmlNode, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseElement(dec, start)
		}
	}
}

func parseElement(dec *xml.Decoder, start xml.StartElement) (*xmlNode, error) {
	n := &xmlNode{name: start.Name, attrs: start.Attr}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.text = strings.TrimSpace(text.String())
			return n, nil
		}
	}
}

func renderSorted(b *strings.Builder, n *xmlNode) {
	attrs := make([]xml.Attr, len(n.attrs))
	copy(attrs, n.attrs)
	sort.Slice(attrs, func(i, j int) bool {
		if attrs[i].Name.Space != attrs[j].Name.Space {
			return attrs[i].Name.Space < attrs[j].Name.Space
		}
		if attrs[i].Name.Local != attrs[j].Name.Local {
			return attrs[i].Name.Local < attrs[j].Name.Local
		}
		return attrs[i].Value < attrs[j].Value
	})

	b.WriteByte('<')
	writeName(b, n.name)
	for _, attr := range attrs {
		b.WriteByte(' ')
		writeName(b, attr.Name)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')

	rendered := make([]string, 0, len(n.children))
	for _, child := range n.children {
		var cb strings.Builder
		renderSorted(&cb, child)
		rendered = append(rendered, cb.String())
	}
	sort.Strings(rendered)
	for _, r := range rendered {
		b.WriteString(r)
	}

	b.WriteString(n.text)

	b.WriteString("</")
	writeName(b, n.name)
	b.WriteByte('>')
}

func writeName(b *strings.Builder, n xml.Name) {
	if len(n.Space) != 0 {
		b.WriteString(n.Space)
		b.WriteByte(':')
	}
	b.WriteString(n.Local)
}
