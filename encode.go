package xmlmap

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/xmlmap/xmlmap/document"
	"github.com/xmlmap/xmlmap/xmlwriter"
)

// Render serializes a single-rooted mapping to a complete XML document.
// The input may be a document.Object (pointer or value), whose children
// emit in insertion order, or a plain map[string]interface{}, whose
// children emit in sorted key order so the output stays deterministic.
//
// String scalars are wrapped in CDATA sections, numeric and boolean
// scalars render bare, nil values render as self-closing elements, and a
// List renders as repeated sibling elements named after its key. The whole
// input is validated before the first byte is produced.
func Render(v interface{}) (string, error) {
	name, value, err := rootEntry(v)
	if err != nil {
		return "", err
	}

	// A sequence as the root element's direct value has no key to
	// repeat under.
	n, err := buildNode(value, false)
	if err != nil {
		return "", err
	}

	e := xmlwriter.NewEncoder()
	e.WriteDeclaration()
	emitNode(e, name, n)
	return e.String(), nil
}

// rootEntry validates the top-level mapping and returns its single entry.
func rootEntry(v interface{}) (document.Name, interface{}, error) {
	switch m := v.(type) {
	case document.Object:
		return rootEntry(&m)

	case *document.Object:
		keys := m.Keys()
		if len(keys) != 1 {
			return document.Name{}, nil, &InvalidRootError{
				Reason: fmt.Sprintf("expect exactly one root entry, got %d", len(keys)),
			}
		}
		value, _ := m.GetName(keys[0])
		return keys[0], value, nil

	case map[string]interface{}:
		if len(m) != 1 {
			return document.Name{}, nil, &InvalidRootError{
				Reason: fmt.Sprintf("expect exactly one root entry, got %d", len(m)),
			}
		}
		for k, value := range m {
			return document.Local(k), value, nil
		}
		panic("unreachable")

	default:
		return document.Name{}, nil, &InvalidRootError{
			Reason: fmt.Sprintf("expect a mapping, got %T", v),
		}
	}
}

type nodeKind int

const (
	nodeNull nodeKind = iota
	nodeText
	nodeScalar
	nodeObject
	nodeList
)

// node is the validated form of an input value, with its kind decided once
// during the validation pass. nodeText renders CDATA-wrapped, nodeScalar
// renders bare.
type node struct {
	kind    nodeKind
	scalar  string
	entries []entry
	items   []node
}

type entry struct {
	name document.Name
	n    node
}

// buildNode validates v and reduces it to its tagged form. listOK is false
// in the two positions where a sequence has no key to repeat under: the
// root element's direct value, and the elements of another sequence.
func buildNode(v interface{}, listOK bool) (node, error) {
	switch vv := v.(type) {
	case nil:
		return node{kind: nodeNull}, nil

	case string:
		return node{kind: nodeText, scalar: vv}, nil

	case bool:
		return node{kind: nodeScalar, scalar: strconv.FormatBool(vv)}, nil

	case int:
		return node{kind: nodeScalar, scalar: strconv.FormatInt(int64(vv), 10)}, nil
	case int8:
		return node{kind: nodeScalar, scalar: strconv.FormatInt(int64(vv), 10)}, nil
	case int16:
		return node{kind: nodeScalar, scalar: strconv.FormatInt(int64(vv), 10)}, nil
	case int32:
		return node{kind: nodeScalar, scalar: strconv.FormatInt(int64(vv), 10)}, nil
	case int64:
		return node{kind: nodeScalar, scalar: strconv.FormatInt(vv, 10)}, nil
	case uint:
		return node{kind: nodeScalar, scalar: strconv.FormatUint(uint64(vv), 10)}, nil
	case uint8:
		return node{kind: nodeScalar, scalar: strconv.FormatUint(uint64(vv), 10)}, nil
	case uint16:
		return node{kind: nodeScalar, scalar: strconv.FormatUint(uint64(vv), 10)}, nil
	case uint32:
		return node{kind: nodeScalar, scalar: strconv.FormatUint(uint64(vv), 10)}, nil
	case uint64:
		return node{kind: nodeScalar, scalar: strconv.FormatUint(vv, 10)}, nil

	case float32:
		return floatNode(float64(vv), 32)
	case float64:
		return floatNode(vv, 64)

	case json.Number:
		return node{kind: nodeScalar, scalar: vv.String()}, nil

	case document.Object:
		return buildNode(&vv, listOK)

	case *document.Object:
		entries := make([]entry, 0, vv.Len())
		for _, k := range vv.Keys() {
			child, _ := vv.GetName(k)
			cn, err := buildNode(child, true)
			if err != nil {
				return node{}, err
			}
			entries = append(entries, entry{name: k, n: cn})
		}
		return node{kind: nodeObject, entries: entries}, nil

	case map[string]interface{}:
		keys := make([]string, 0, len(vv))
		for k := range vv {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		entries := make([]entry, 0, len(keys))
		for _, k := range keys {
			cn, err := buildNode(vv[k], true)
			if err != nil {
				return node{}, err
			}
			entries = append(entries, entry{name: document.Local(k), n: cn})
		}
		return node{kind: nodeObject, entries: entries}, nil

	case document.List:
		return listNode(vv, listOK)

	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			items := make([]interface{}, rv.Len())
			for i := range items {
				items[i] = rv.Index(i).Interface()
			}
			return listNode(items, listOK)
		}
		return node{}, &UnserializableValueError{Value: v}
	}
}

func listNode(items []interface{}, listOK bool) (node, error) {
	if !listOK {
		return node{}, &UnserializableValueError{Value: items}
	}

	ns := make([]node, 0, len(items))
	for _, item := range items {
		in, err := buildNode(item, false)
		if err != nil {
			return node{}, err
		}
		ns = append(ns, in)
	}
	return node{kind: nodeList, items: ns}, nil
}

// floatNode renders a float the way the stdlib xml encoder would: fixed
// notation for the common range, exponent notation outside it.
func floatNode(v float64, bits int) (node, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return node{}, &UnserializableValueError{Value: v}
	}

	abs := math.Abs(v)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	return node{kind: nodeScalar, scalar: strconv.FormatFloat(v, format, -1, bits)}, nil
}

func emitNode(e *xmlwriter.Encoder, name document.Name, n node) {
	el := xmlwriter.StartElement{
		Name: xmlwriter.Name{Space: name.Space, Local: name.Local},
	}

	switch n.kind {
	case nodeNull:
		e.WriteEmptyElement(el)

	case nodeText:
		e.WriteStartElement(el)
		e.WriteCDATA(n.scalar)
		e.WriteEndElement(el.End())

	case nodeScalar:
		e.WriteStartElement(el)
		e.WriteString(n.scalar)
		e.WriteEndElement(el.End())

	case nodeObject:
		e.WriteStartElement(el)
		for _, child := range n.entries {
			emitNode(e, child.name, child.n)
		}
		e.WriteEndElement(el.End())

	case nodeList:
		for _, item := range n.items {
			emitNode(e, name, item)
		}
	}
}
