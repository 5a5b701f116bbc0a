package xmlmap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xmlmap/xmlmap/document"
	"github.com/xmlmap/xmlmap/logging"
)

// Decoder folds XML documents into document.Object values. The zero value
// is not usable, use NewDecoder.
type Decoder struct {
	logger logging.Logger
}

// WithLogger sets the logger used for reporting skipped document
// constructs. The default logger discards all entries.
func WithLogger(l logging.Logger) func(*Decoder) {
	return func(d *Decoder) {
		d.logger = l
	}
}

// NewDecoder returns a Decoder configured with the given options.
func NewDecoder(opts ...func(*Decoder)) *Decoder {
	d := &Decoder{logger: logging.Noop{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse folds an XML document into a single-rooted document.Object. The
// input may be a string, a []byte, or an io.Reader positioned at the start
// of a document.
func Parse(v interface{}, opts ...func(*Decoder)) (*document.Object, error) {
	switch src := v.(type) {
	case string:
		return ParseReader(strings.NewReader(src), opts...)
	case []byte:
		return ParseReader(bytes.NewReader(src), opts...)
	case io.Reader:
		return ParseReader(src, opts...)
	default:
		return nil, &ParseError{Err: fmt.Errorf("unsupported input type %T", v)}
	}
}

// ParseReader folds the XML document read from r.
func ParseReader(r io.Reader, opts ...func(*Decoder)) (*document.Object, error) {
	return NewDecoder(opts...).Decode(r)
}

// ParseFile folds the XML document stored at path. The file is closed on
// every return path.
func ParseFile(path string, opts ...func(*Decoder)) (*document.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	return ParseReader(f, opts...)
}

// Decode reads one XML document from r and folds it into a mapping with
// exactly one entry, keyed by the root element's qualified name.
func (d *Decoder) Decode(r io.Reader) (*document.Object, error) {
	dec := xml.NewDecoder(r)

	// Skip the XML declaration and anything else ahead of the root
	// element.
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("document has no root element")
			}
			return nil, &ParseError{Err: err}
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		v, err := d.foldElement(dec, start)
		if err != nil {
			return nil, err
		}

		root := document.NewObject()
		root.SetName(qualify(start.Name), v)
		return root, nil
	}
}

// foldElement reduces the element opened by start, and everything below
// it, to a single value: a string for a text-only element, an empty Object
// for an empty element, and otherwise an Object holding attributes,
// children, and text merged by mergeValue.
func (d *Decoder) foldElement(dec *xml.Decoder, start xml.StartElement) (interface{}, error) {
	self := qualify(start.Name)
	target := document.NewObject()

	hasAttrs := false
	selfNamedAttr := false
	for _, attr := range start.Attr {
		if isNamespaceDecl(attr.Name) {
			continue
		}
		if attr.Name.Local == self.Local {
			selfNamedAttr = true
		}
		// Attributes fold under their local name only.
		mergeValue(target, document.Local(attr.Name.Local), attr.Value)
		hasAttrs = true
	}

	hasChildren := false
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := d.foldElement(dec, t)
			if err != nil {
				return nil, err
			}
			mergeValue(target, qualify(t.Name), child)
			hasChildren = true

		case xml.CharData:
			text.Write(t)

		case xml.EndElement:
			content := strings.TrimSpace(text.String())
			if len(content) == 0 {
				return target, nil
			}
			if !hasAttrs && !hasChildren {
				return content, nil
			}
			if selfNamedAttr {
				return nil, &AmbiguousStructureError{Element: self}
			}
			// Text coexisting with attributes or children folds
			// under the element's own name.
			mergeValue(target, self, content)
			return target, nil

		default:
			d.logger.Logf(logging.Debug, "ignoring %T inside element %s", tok, self)
		}
	}
}

// mergeValue inserts v under key, turning repeated keys into a List: the
// second value for a key replaces the scalar with a two-element List, and
// later values append.
func mergeValue(target *document.Object, key document.Name, v interface{}) {
	existing, ok := target.GetName(key)
	if !ok {
		target.SetName(key, v)
		return
	}
	if list, ok := existing.(document.List); ok {
		target.SetName(key, append(list, v))
		return
	}
	target.SetName(key, document.List{existing, v})
}

func qualify(n xml.Name) document.Name {
	return document.Name{Space: n.Space, Local: n.Local}
}

// isNamespaceDecl reports whether an attribute is an xmlns declaration
// rather than document data.
func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (len(n.Space) == 0 && n.Local == "xmlns")
}
