package document

import (
	"reflect"
	"strings"
	"testing"
)

func TestFromInterface_Nested(t *testing.T) {
	doc, err := FromInterface(map[string]interface{}{
		"name": "pipeline",
		"context": map[string]interface{}{
			"window": 4096,
		},
		"tags": []interface{}{"support", "triage"},
	})
	if err != nil {
		t.Fatalf("FromInterface() error = %v", err)
	}

	if !doc.IsMapping() {
		t.Fatal("root should be a mapping")
	}
	if name, ok := doc.StringField("name"); !ok || name != "pipeline" {
		t.Errorf("name = %q, want %q", name, "pipeline")
	}

	context, ok := doc.Get("context")
	if !ok || !context.IsMapping() {
		t.Fatal("context missing or not a mapping")
	}
	window, ok := context.Get("window")
	if !ok || !window.IsScalar() || window.Scalar != 4096 {
		t.Errorf("context.window = %v, want scalar 4096", window)
	}

	tags, ok := doc.Get("tags")
	if !ok || !tags.IsSequence() || tags.Len() != 2 {
		t.Fatalf("tags = %v, want two-element sequence", tags)
	}
	if s, _ := tags.Items[1].AsString(); s != "triage" {
		t.Errorf("tags[1] = %q, want %q", s, "triage")
	}
}

func TestFromInterface_InterfaceKeyedMap(t *testing.T) {
	// Older YAML decoders produce map[interface{}]interface{}.
	doc, err := FromInterface(map[interface{}]interface{}{
		"key": "value",
	})
	if err != nil {
		t.Fatalf("FromInterface() error = %v", err)
	}
	if v, _ := doc.StringField("key"); v != "value" {
		t.Errorf("key = %q, want %q", v, "value")
	}
}

func TestFromInterface_NonStringKey(t *testing.T) {
	_, err := FromInterface(map[interface{}]interface{}{
		42: "value",
	})
	if err == nil || !strings.Contains(err.Error(), "key must be a string") {
		t.Errorf("error = %v, want non-string key rejection", err)
	}
}

func TestFromInterface_DepthCap(t *testing.T) {
	var v interface{} = "leaf"
	for i := 0; i < maxNestingDepth+10; i++ {
		v = map[string]interface{}{"nested": v}
	}

	_, err := FromInterface(v)
	if err == nil || !strings.Contains(err.Error(), "nesting exceeds maximum depth") {
		t.Errorf("error = %v, want depth cap rejection", err)
	}
}

func TestToInterface_RoundTrip(t *testing.T) {
	in := map[string]interface{}{
		"scalar": "value",
		"number": 7,
		"flag":   true,
		"null":   nil,
		"list":   []interface{}{"a", map[string]interface{}{"b": "c"}},
		"map":    map[string]interface{}{"inner": "deep"},
	}

	doc, err := FromInterface(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.ToInterface(); !reflect.DeepEqual(got, in) {
		t.Errorf("ToInterface() = %v, want %v", got, in)
	}
}

func TestAccessors_NilSafe(t *testing.T) {
	var d *Document

	if d.IsScalar() || d.IsSequence() || d.IsMapping() {
		t.Error("kind predicates on nil should be false")
	}
	if _, ok := d.Get("key"); ok {
		t.Error("Get on nil should miss")
	}
	if d.Has("key") {
		t.Error("Has on nil should be false")
	}
	if d.Len() != 0 {
		t.Error("Len on nil should be 0")
	}
	if _, ok := d.AsString(); ok {
		t.Error("AsString on nil should fail")
	}
	if d.ToInterface() != nil {
		t.Error("ToInterface on nil should be nil")
	}
}

func TestGet_WrongKind(t *testing.T) {
	seq := NewSequence(NewScalar("a"))
	if _, ok := seq.Get("key"); ok {
		t.Error("Get on a sequence should miss")
	}
	if _, ok := NewScalar(1).StringField("key"); ok {
		t.Error("StringField on a scalar should miss")
	}
}

func TestAsString_NonStringScalar(t *testing.T) {
	if _, ok := NewScalar(42).AsString(); ok {
		t.Error("AsString on a numeric scalar should fail")
	}
	if s, ok := NewScalar("text").AsString(); !ok || s != "text" {
		t.Errorf("AsString = (%q, %v), want (text, true)", s, ok)
	}
}

func TestKeys_Sorted(t *testing.T) {
	doc := NewMapping()
	doc.Set("zeta", NewScalar(1))
	doc.Set("alpha", NewScalar(2))
	doc.Set("mid", NewScalar(3))

	got := doc.Keys()
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestSet_InitializesFields(t *testing.T) {
	d := &Document{Kind: KindMapping}
	d.Set("key", NewScalar("value"))
	if v, _ := d.StringField("key"); v != "value" {
		t.Errorf("key = %q, want %q", v, "value")
	}
}
