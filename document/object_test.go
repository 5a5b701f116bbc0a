package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectSetGet(t *testing.T) {
	o := NewObject()
	o.Set("fish", "fish")

	v, ok := o.Get("fish")
	if !ok {
		t.Fatalf("expect key present")
	}
	if e, a := "fish", v; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestObjectFieldUnwrapsValue(t *testing.T) {
	o := NewObject()
	o.Set("test", map[string]interface{}{"value": 1})

	if e, a := 1, o.Field("test"); e != a {
		t.Errorf("expect field access to unwrap, got %v", a)
	}

	// Item access returns the stored mapping untouched.
	raw, _ := o.Get("test")
	if _, ok := raw.(map[string]interface{}); !ok {
		t.Errorf("expect item access to return the raw mapping, got %T", raw)
	}
}

func TestObjectFieldUnwrapsNestedObject(t *testing.T) {
	inner := NewObject()
	inner.Set("value", 2)

	o := NewObject()
	o.Set("test", inner)

	if e, a := 2, o.Field("test"); e != a {
		t.Errorf("expect field access to unwrap, got %v", a)
	}
}

func TestObjectFieldNoUnwrapForMultipleEntries(t *testing.T) {
	inner := NewObject()
	inner.Set("name", "test_two")
	inner.Set("value", 2)

	o := NewObject()
	o.Set("test", inner)

	got, ok := o.Field("test").(*Object)
	if !ok {
		t.Fatalf("expect mapping, got %T", o.Field("test"))
	}
	if e, a := "test_two", got.Field("name"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := 2, got.Field("value"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestObjectFieldMissingKey(t *testing.T) {
	o := NewObject()
	if v := o.Field("absent"); v != nil {
		t.Errorf("expect nil for missing key, got %v", v)
	}
}

func TestFromMapDeepCopies(t *testing.T) {
	src := map[string]interface{}{
		"test": map[string]interface{}{
			"name":  "test_two",
			"value": 2,
		},
		"list": []interface{}{
			map[string]interface{}{"value": "inner"},
			"plain",
		},
	}

	o := FromMap(src)

	nested, ok := o.Field("test").(*Object)
	if !ok {
		t.Fatalf("expect nested mapping converted to *Object, got %T", o.Field("test"))
	}
	if e, a := "test_two", nested.Field("name"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	list, ok := o.Field("list").(List)
	if !ok {
		t.Fatalf("expect list, got %T", o.Field("list"))
	}
	if _, ok := list[0].(*Object); !ok {
		t.Errorf("expect mapping inside list converted to *Object, got %T", list[0])
	}

	// Mutating the source must not affect the copy.
	src["test"].(map[string]interface{})["name"] = "changed"
	if e, a := "test_two", nested.Field("name"); e != a {
		t.Errorf("expect copy isolated from source, got %v", a)
	}
}

func TestObjectKeysOrder(t *testing.T) {
	o := NewObject()
	o.Set("c", 1)
	o.Set("a", 2)
	o.Set("b", 3)
	o.Set("a", 4) // replace keeps position

	expect := []Name{Local("c"), Local("a"), Local("b")}
	if diff := cmp.Diff(expect, o.Keys()); len(diff) != 0 {
		t.Errorf("key order mismatch (-expect +actual):\n%s", diff)
	}

	v, _ := o.Get("a")
	if e, a := 4, v; e != a {
		t.Errorf("expect replaced value %v, got %v", e, a)
	}
}

func TestObjectDelete(t *testing.T) {
	o := NewObject()
	o.Set("a", 1)
	o.Set("b", 2)
	o.Set("c", 3)

	o.Delete(Local("b"))

	expect := []Name{Local("a"), Local("c")}
	if diff := cmp.Diff(expect, o.Keys()); len(diff) != 0 {
		t.Errorf("key order mismatch (-expect +actual):\n%s", diff)
	}
	if o.Has("b") {
		t.Errorf("expect deleted key to be absent")
	}

	// Deleting an absent key is a no-op.
	o.Delete(Local("zzz"))
	if e, a := 2, o.Len(); e != a {
		t.Errorf("expect len %v, got %v", e, a)
	}
}

func TestQualifiedKeysDistinct(t *testing.T) {
	o := NewObject()
	o.SetName(Name{Space: "http://one/", Local: "tag"}, "1")
	o.SetName(Name{Space: "http://two/", Local: "tag"}, "2")
	o.Set("tag", "3")

	if e, a := 3, o.Len(); e != a {
		t.Fatalf("expect %v distinct keys, got %v", e, a)
	}

	v, _ := o.GetName(Name{Space: "http://two/", Local: "tag"})
	if e, a := "2", v; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestNameString(t *testing.T) {
	cases := map[string]struct {
		name   Name
		expect string
	}{
		"plain":     {name: Local("a"), expect: "a"},
		"qualified": {name: Name{Space: "http://x/", Local: "a"}, expect: "http://x/:a"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.expect, c.name.String(); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestObjectInterface(t *testing.T) {
	inner := NewObject()
	inner.Set("b", "5")

	o := NewObject()
	o.Set("a", inner)
	o.Set("list", List{"1", inner})

	expect := map[string]interface{}{
		"a": map[string]interface{}{"b": "5"},
		"list": []interface{}{
			"1",
			map[string]interface{}{"b": "5"},
		},
	}
	if diff := cmp.Diff(expect, o.Interface()); len(diff) != 0 {
		t.Errorf("mismatch (-expect +actual):\n%s", diff)
	}
}
