package resource

import (
	"fmt"
	"math"
)

// Value is an attribute read from an entity's cache. A Value that is not
// Present means the record was loaded but did not carry the attribute; a
// Present Value may still hold nil when the payload had an explicit null.
type Value struct {
	raw     any
	present bool
}

func presentValue(raw any) Value { return Value{raw: raw, present: true} }

// Present reports whether the attribute was part of the cached record.
func (v Value) Present() bool { return v.present }

// Raw returns the decoded payload value.
func (v Value) Raw() any { return v.raw }

// AsString renders scalar values as a string.
func (v Value) AsString() (string, bool) {
	switch raw := v.raw.(type) {
	case nil:
		return "", false
	case string:
		return raw, true
	case int, int64, float64, bool:
		return fmt.Sprint(raw), true
	default:
		return "", false
	}
}

// AsInt accepts integers and integral floats.
func (v Value) AsInt() (int, bool) {
	switch raw := v.raw.(type) {
	case int:
		return raw, true
	case int64:
		return int(raw), true
	case uint64:
		return int(raw), true
	case float64:
		if raw == math.Trunc(raw) {
			return int(raw), true
		}
	}
	return 0, false
}

func (v Value) AsBool() (bool, bool) {
	raw, ok := v.raw.(bool)
	return raw, ok
}

// AsStrings converts a list of scalars.
func (v Value) AsStrings() ([]string, bool) {
	items, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, isScalar := presentValue(item).AsString()
		if !isScalar {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func (v Value) AsMap() (map[string]any, bool) {
	raw, ok := v.raw.(map[string]any)
	return raw, ok
}
