package document

import (
	"fmt"
	"sort"
	"strings"
)

// A Name represents a qualified XML name: a local name annotated with the
// namespace identifier it was declared under. For names decoded from a
// document, Space is the canonical namespace URI, not the short prefix used
// in the source text. A plain, unqualified name has an empty Space.
type Name struct {
	Space, Local string
}

// Local returns an unqualified Name for the given local name.
func Local(local string) Name {
	return Name{Local: local}
}

// String renders the name as space:local, or just the local name when no
// namespace is set.
func (n Name) String() string {
	if len(n.Space) == 0 {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// List is a sequence of values. A List only ever appears as the value bound
// to a key inside an Object, where it represents repeated sibling elements
// sharing that key.
type List = []interface{}

// valueKey is the single-entry key unwrapped by field access.
var valueKey = Name{Local: "value"}

// Object is an insertion-ordered mapping from qualified Names to values.
// Values are string scalars, nested *Object values, or List sequences. The
// zero value is not usable, use NewObject or FromMap.
type Object struct {
	keys   []Name
	values map[Name]interface{}
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: map[Name]interface{}{}}
}

// FromMap deep-copies a plain map into an Object. Nested
// map[string]interface{} values, including maps found inside slices, are
// converted to *Object recursively so that chained field access works at
// every depth. Keys are inserted in sorted order, since Go map iteration
// order is not deterministic.
func FromMap(m map[string]interface{}) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	o := NewObject()
	for _, k := range keys {
		o.Set(k, fromValue(m[k]))
	}
	return o
}

func fromValue(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		return FromMap(vv)
	case []interface{}:
		cp := make(List, len(vv))
		for i, item := range vv {
			cp[i] = fromValue(item)
		}
		return cp
	default:
		return v
	}
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the entry keys in insertion order.
func (o *Object) Keys() []Name {
	keys := make([]Name, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Set stores a value under an unqualified key, replacing any previous value
// without disturbing the key's position.
func (o *Object) Set(local string, v interface{}) {
	o.SetName(Local(local), v)
}

// SetName stores a value under a qualified key.
func (o *Object) SetName(name Name, v interface{}) {
	if _, ok := o.values[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.values[name] = v
}

// Get returns the raw value stored under an unqualified key. No unwrapping
// is applied, the value is returned exactly as set.
func (o *Object) Get(local string) (interface{}, bool) {
	return o.GetName(Local(local))
}

// GetName returns the raw value stored under a qualified key.
func (o *Object) GetName(name Name) (interface{}, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Has reports whether an unqualified key is present.
func (o *Object) Has(local string) bool {
	_, ok := o.values[Local(local)]
	return ok
}

// Delete removes a qualified key, preserving the order of the remaining
// entries.
func (o *Object) Delete(name Name) {
	if _, ok := o.values[name]; !ok {
		return
	}
	delete(o.values, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Field returns the value stored under an unqualified key, unwrapping a
// single-entry {"value": X} mapping to X. All other values are returned
// as-is, the same as item access. A missing key returns nil.
func (o *Object) Field(local string) interface{} {
	return o.FieldName(Local(local))
}

// FieldName is Field for a qualified key.
func (o *Object) FieldName(name Name) interface{} {
	v, ok := o.values[name]
	if !ok {
		return nil
	}
	return unwrapValue(v)
}

func unwrapValue(v interface{}) interface{} {
	switch vv := v.(type) {
	case *Object:
		if len(vv.keys) == 1 && vv.keys[0] == valueKey {
			return vv.values[valueKey]
		}
	case map[string]interface{}:
		if len(vv) == 1 {
			if inner, ok := vv["value"]; ok {
				return inner
			}
		}
	}
	return v
}

// Interface returns a plain map[string]interface{} view of the Object for
// interop with packages that only understand stdlib container types.
// Qualified keys render through Name.String, nested Objects and Lists are
// converted recursively. The result shares no structure with the Object.
func (o *Object) Interface() interface{} {
	m := make(map[string]interface{}, len(o.keys))
	for _, k := range o.keys {
		m[k.String()] = toInterface(o.values[k])
	}
	return m
}

func toInterface(v interface{}) interface{} {
	switch vv := v.(type) {
	case *Object:
		return vv.Interface()
	case List:
		out := make([]interface{}, len(vv))
		for i, item := range vv {
			out[i] = toInterface(item)
		}
		return out
	default:
		return v
	}
}

// GoString implements fmt.GoStringer so test failures print entries in
// insertion order.
func (o *Object) GoString() string {
	var b strings.Builder
	b.WriteString("document.Object{")
	for i, k := range o.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %#v", k, o.values[k])
	}
	b.WriteString("}")
	return b.String()
}
