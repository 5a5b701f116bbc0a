package document

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSONPreservesOrder(t *testing.T) {
	inner := NewObject()
	inner.Set("z", "last")
	inner.Set("a", "first")

	o := NewObject()
	o.Set("root", inner)

	b, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := `{"root":{"z":"last","a":"first"}}`
	if e, a := expect, string(b); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestMarshalJSONLists(t *testing.T) {
	o := NewObject()
	o.Set("b", List{"1", "2", "3"})

	b, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := `{"b":["1","2","3"]}`
	if e, a := expect, string(b); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestMarshalJSONQualifiedKeys(t *testing.T) {
	o := NewObject()
	o.SetName(Name{Space: "http://x/", Local: "tag"}, "v")

	b, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := `{"http://x/:tag":"v"}`
	if e, a := expect, string(b); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestUnmarshalJSONPreservesOrder(t *testing.T) {
	input := `{"z":"last","a":{"nested":"yes"},"list":[1,{"k":"v"}],"flag":true,"none":null}`

	o := NewObject()
	if err := json.Unmarshal([]byte(input), o); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := []Name{Local("z"), Local("a"), Local("list"), Local("flag"), Local("none")}
	keys := o.Keys()
	if e, a := len(expect), len(keys); e != a {
		t.Fatalf("expect %v keys, got %v", e, a)
	}
	for i := range expect {
		if e, a := expect[i], keys[i]; e != a {
			t.Errorf("key %d: expect %v, got %v", i, e, a)
		}
	}

	nested, ok := o.Field("a").(*Object)
	if !ok {
		t.Fatalf("expect nested object, got %T", o.Field("a"))
	}
	if e, a := "yes", nested.Field("nested"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	list, ok := o.Field("list").(List)
	if !ok {
		t.Fatalf("expect list, got %T", o.Field("list"))
	}
	if e, a := json.Number("1"), list[0]; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if _, ok := list[1].(*Object); !ok {
		t.Errorf("expect object inside list, got %T", list[1])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	input := `{"a":{"b":"5","c":["1","2"],"d":null}}`

	o := NewObject()
	if err := json.Unmarshal([]byte(input), o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	b, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if e, a := input, string(b); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestUnmarshalJSONRejectsNonObject(t *testing.T) {
	o := NewObject()
	if err := json.Unmarshal([]byte(`[1,2]`), o); err == nil {
		t.Errorf("expect error, got none")
	}
}
