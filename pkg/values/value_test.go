package values

import (
	"encoding/json"
	"testing"
)

func TestValue_Text(t *testing.T) {
	if got := String("hello").Text(); got != "hello" {
		t.Fatalf("string text: got %q", got)
	}
	if got := Bool(true).Text(); got != "true" {
		t.Fatalf("bool text: got %q", got)
	}
	if got := Bool(false).Text(); got != "false" {
		t.Fatalf("bool text: got %q", got)
	}
}

func TestValue_VariantAccessors(t *testing.T) {
	if _, ok := String("x").AsBool(); ok {
		t.Fatal("string value must not read as bool")
	}
	if _, ok := Bool(true).AsString(); ok {
		t.Fatal("bool value must not read as string")
	}
}

func TestValue_JSONShape(t *testing.T) {
	data, err := json.Marshal(map[string]Value{
		"name":  String("Alice"),
		"https": Bool(true),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back map[string]Value
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back["name"].Equal(String("Alice")) || !back["https"].Equal(Bool(true)) {
		t.Fatalf("round trip mismatch: %v", back)
	}
}

func TestValue_RejectsNonScalarJSON(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`42`), &v); err == nil {
		t.Fatal("numbers must be rejected")
	}
	if err := json.Unmarshal([]byte(`{"nested":true}`), &v); err == nil {
		t.Fatal("objects must be rejected")
	}
}
