package values

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the two value shapes a store can hold.
type Kind int

const (
	// KindString marks a plain string value.
	KindString Kind = iota
	// KindBool marks a boolean value.
	KindBool
)

// Value is a tagged string-or-boolean variant. Stores, templates, and the
// persistence layer all pattern-match on Kind instead of relying on implicit
// coercion, so an unexpected shape fails loudly at the boundary that
// introduced it.
type Value struct {
	kind Kind
	str  string
	b    bool
}

// String wraps a plain string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool wraps a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Text renders the value as the string a template substitution or prompt
// echo should use: the string itself, or "true"/"false" for booleans.
func (v Value) Text() string {
	if v.kind == KindBool {
		return strconv.FormatBool(v.b)
	}
	return v.str
}

// AsBool returns the boolean payload. The second result is false when the
// value holds a string.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsString returns the string payload. The second result is false when the
// value holds a boolean.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// MarshalJSON serialises the value as a bare JSON string or bool so the
// persisted store stays a flat one-level object.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindBool {
		return json.Marshal(v.b)
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON accepts a bare JSON string or bool. Any other shape is
// rejected so a malformed store file fails at load time rather than
// surfacing later as a garbled substitution.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch payload := raw.(type) {
	case string:
		*v = String(payload)
	case bool:
		*v = Bool(payload)
	default:
		return fmt.Errorf("values: unsupported value type %T, want string or bool", payload)
	}
	return nil
}
