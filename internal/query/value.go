package query

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the concrete type held by a Value.
type Kind int

// Value kinds, in coercion-cascade order.
const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged union holding one coerced query parameter value.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
	obj  Object
}

// Object is a nested mapping of parameter names to values.
type Object map[string]Value

// StringValue creates a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// BoolValue creates a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// IntValue creates an integer Value.
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FloatValue creates a floating-point Value.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// ObjectValue creates a nested-object Value.
func ObjectValue(obj Object) Value {
	return Value{kind: KindObject, obj: obj}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string form of a KindString value, or "" otherwise.
func (v Value) Str() string {
	return v.str
}

// Bool returns the boolean form of a KindBool value, or false otherwise.
func (v Value) Bool() bool {
	return v.b
}

// Int64 returns the integer form of a KindInt value, or 0 otherwise.
func (v Value) Int64() int64 {
	return v.i
}

// Float64 returns the numeric form of a KindFloat or KindInt value,
// or 0 otherwise.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Object returns the nested object of a KindObject value, or nil.
func (v Value) Object() Object {
	return v.obj
}

// Interface returns the value as a plain Go value: string, bool,
// int64, float64, or map[string]any for objects.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, nested := range v.obj {
			out[k] = nested.Interface()
		}
		return out
	default:
		return v.str
	}
}

// Equal reports whether two values have the same kind and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindObject:
		return v.obj.Equal(other.obj)
	default:
		return v.str == other.str
	}
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindObject:
		return v.obj.String()
	default:
		return v.str
	}
}

// Equal reports whether two objects hold the same keys and values.
func (o Object) Equal(other Object) bool {
	if len(o) != len(other) {
		return false
	}
	for k, v := range o {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String renders the object with sorted keys for stable output.
func (o Object) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(o[k].String())
	}
	b.WriteByte('}')
	return b.String()
}

// Merge deep-merges src into o. Nested objects are merged key by key;
// a leaf value is overwritten only by another assignment to the exact
// same key path.
func (o Object) Merge(src Object) {
	for k, sv := range src {
		if dv, ok := o[k]; ok && dv.kind == KindObject && sv.kind == KindObject {
			dv.obj.Merge(sv.obj)
			continue
		}
		o[k] = sv
	}
}
