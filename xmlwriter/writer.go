package xmlwriter

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	leftAngleBracket  = '<'
	rightAngleBracket = '>'
	forwardSlash      = '/'
	colon             = ':'
	equals            = '='
	quote             = '"'
)

// Declaration is the document header emitted ahead of every rendered
// document. The space before ?> is part of the output contract.
const Declaration = `<?xml version="1.0" encoding="UTF-8" ?>` + "\n"

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

// Encoder writes XML markup to an in-memory buffer. Methods never fail at
// the I/O level; WriteStartElement and friends return an error only for
// structurally unusable arguments such as an empty element name.
type Encoder struct {
	w *bytes.Buffer
}

// NewEncoder returns an XML encoder writing to a fresh buffer.
func NewEncoder() *Encoder {
	return &Encoder{w: bytes.NewBuffer(nil)}
}

// String returns the markup written so far.
func (e *Encoder) String() string {
	return e.w.String()
}

// Bytes returns the markup written so far as a byte slice.
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}

// WriteDeclaration writes the document header.
func (e *Encoder) WriteDeclaration() {
	e.w.WriteString(Declaration)
}

// WriteStartElement writes a start tag, including any attributes. For a
// namespaced name the tag renders as space:local.
func (e *Encoder) WriteStartElement(el StartElement) error {
	if el.Name.isZero() {
		return fmt.Errorf("xml start element cannot be empty")
	}

	e.w.WriteRune(leftAngleBracket)
	e.writeName(el.Name)
	for _, attr := range el.Attr {
		e.w.WriteRune(' ')
		e.writeAttribute(attr)
	}
	e.w.WriteRune(rightAngleBracket)

	return nil
}

// WriteEndElement writes a close tag.
func (e *Encoder) WriteEndElement(el EndElement) error {
	if el.Name.isZero() {
		return fmt.Errorf("xml end element cannot be empty")
	}

	e.w.WriteRune(leftAngleBracket)
	e.w.WriteRune(forwardSlash)
	e.writeName(el.Name)
	e.w.WriteRune(rightAngleBracket)

	return nil
}

// WriteEmptyElement writes a self-closing element, <name />.
func (e *Encoder) WriteEmptyElement(el StartElement) error {
	if el.Name.isZero() {
		return fmt.Errorf("xml empty element cannot be empty")
	}

	e.w.WriteRune(leftAngleBracket)
	e.writeName(el.Name)
	for _, attr := range el.Attr {
		e.w.WriteRune(' ')
		e.writeAttribute(attr)
	}
	e.w.WriteRune(' ')
	e.w.WriteRune(forwardSlash)
	e.w.WriteRune(rightAngleBracket)

	return nil
}

// WriteCDATA writes v inside a CDATA section. A literal "]]>" in v is
// split across two sections so the output stays well formed.
func (e *Encoder) WriteCDATA(v string) {
	e.w.WriteString(cdataOpen)
	for {
		i := strings.Index(v, cdataClose)
		if i < 0 {
			break
		}
		e.w.WriteString(v[:i+2])
		e.w.WriteString(cdataClose)
		e.w.WriteString(cdataOpen)
		v = v[i+2:]
	}
	e.w.WriteString(v)
	e.w.WriteString(cdataClose)
}

// WriteString writes v directly with no escaping.
func (e *Encoder) WriteString(v string) {
	e.w.WriteString(v)
}

func (e *Encoder) writeName(n Name) {
	if len(n.Space) != 0 {
		e.w.WriteString(n.Space)
		e.w.WriteRune(colon)
	}
	e.w.WriteString(n.Local)
}

func (e *Encoder) writeAttribute(attr Attr) {
	e.writeName(attr.Name)
	e.w.WriteRune(equals)
	e.w.WriteRune(quote)
	e.w.WriteString(EscapeText(attr.Value))
	e.w.WriteRune(quote)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes the five XML metacharacters in v.
func EscapeText(v string) string {
	return textEscaper.Replace(v)
}
