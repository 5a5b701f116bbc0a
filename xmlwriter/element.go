package xmlwriter

// A Name represents an XML name (Local) annotated with a namespace
// identifier (Space).
type Name struct {
	Space, Local string
}

func (n Name) isZero() bool {
	return len(n.Space) == 0 && len(n.Local) == 0
}

// An Attr represents an attribute in an XML element (Name=Value).
type Attr struct {
	Name  Name
	Value string
}

// A StartElement represents an XML start element.
type StartElement struct {
	Name Name
	Attr []Attr
}

// End returns the corresponding XML end element.
func (e StartElement) End() EndElement {
	return EndElement{e.Name}
}

// An EndElement represents an XML end element.
type EndElement struct {
	Name Name
}
