package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the Object as a JSON object with entries in insertion
// order. Qualified keys render through Name.String.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the Object, preserving the
// source's key order. Nested objects become *Object values, arrays become
// List values, and numbers are kept as json.Number so their source
// rendering survives a round trip.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expect JSON object, got %v", tok)
	}

	*o = *NewObject()
	return o.decodeEntries(dec)
}

// decodeEntries consumes object entries up to and including the closing
// brace.
func (o *Object) decodeEntries(dec *json.Decoder) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expect JSON object key, got %v", tok)
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return err
		}
		o.Set(key, v)
	}
}

func decodeJSONValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			if err := obj.decodeEntries(dec); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			list := List{}
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, item)
			}
			// consume the closing bracket
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		default:
			return nil, fmt.Errorf("unexpected JSON delimiter %v", t)
		}
	default:
		return tok, nil
	}
}
