package document

import (
	"github.com/goccy/go-yaml"
)

// MarshalYAML encodes the Object as a YAML mapping with entries in
// insertion order, using yaml.MapSlice as the intermediate form.
func (o *Object) MarshalYAML() (interface{}, error) {
	return o.mapSlice(), nil
}

func (o *Object) mapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(o.keys))
	for _, k := range o.keys {
		ms = append(ms, yaml.MapItem{
			Key:   k.String(),
			Value: toYAMLValue(o.values[k]),
		})
	}
	return ms
}

func toYAMLValue(v interface{}) interface{} {
	switch vv := v.(type) {
	case *Object:
		return vv.mapSlice()
	case List:
		out := make([]interface{}, len(vv))
		for i, item := range vv {
			out[i] = toYAMLValue(item)
		}
		return out
	default:
		return v
	}
}

// ToYAML renders the Object as a YAML document.
func (o *Object) ToYAML() ([]byte, error) {
	return yaml.Marshal(o)
}
