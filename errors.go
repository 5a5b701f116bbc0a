package xmlmap

import (
	"fmt"

	"github.com/xmlmap/xmlmap/document"
)

// ParseError indicates the input to Parse was not well-formed XML, or could
// not be read. The underlying parser or I/O error is wrapped.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse document, %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AmbiguousStructureError indicates an element that carries both an
// attribute named after the element itself and its own text content. Both
// would fold under the element's key with no way to tell them apart, so the
// document is rejected instead.
type AmbiguousStructureError struct {
	Element document.Name
}

func (e *AmbiguousStructureError) Error() string {
	return fmt.Sprintf("element %s has an attribute named after itself and text content, structure is ambiguous",
		e.Element)
}

// InvalidRootError indicates the input to Render was not a mapping with
// exactly one root entry.
type InvalidRootError struct {
	Reason string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid document root: %s", e.Reason)
}

// UnserializableValueError indicates Render encountered a value it cannot
// represent as XML: a sequence outside a keyed mapping position, or a leaf
// of an unsupported type.
type UnserializableValueError struct {
	Value interface{}
}

func (e *UnserializableValueError) Error() string {
	return fmt.Sprintf("cannot serialize value of type %T", e.Value)
}
