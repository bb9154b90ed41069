package jsonconf

import (
	"encoding/json"
	"fmt"

	"github.com/linxlib/jsonconf/internal/unreachable"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a parsed configuration tree: a closed union over the JSON data
// model (null, bool, number, string, array, object). The zero Value is null.
//
// Values are treated as immutable once built. Merge and Store.Set never
// modify a tree in place; they rebuild the affected spine and share the
// untouched subtrees.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	a    []Value
	o    map[string]Value
}

// NullValue returns the null Value.
func NullValue() Value { return Value{} }

// BoolValue returns a bool Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberValue returns a number Value.
func NumberValue(n float64) Value { return Value{kind: KindNumber, n: n} }

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ArrayValue returns an array Value holding items.
func ArrayValue(items ...Value) Value { return Value{kind: KindArray, a: items} }

// ObjectValue returns an object Value holding fields. The map is used as-is
// and must not be modified by the caller afterwards.
func ObjectValue(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, o: fields}
}

// FromAny converts a tree produced by one of the serializers (encoding/json
// or yaml into an `any` target) to a Value. Numeric types are widened to
// float64. It fails on map keys or leaf types outside the JSON data model.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return t, nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case float64:
		return NumberValue(t), nil
	case float32:
		return NumberValue(float64(t)), nil
	case int:
		return NumberValue(float64(t)), nil
	case int64:
		return NumberValue(float64(t)), nil
	case uint64:
		return NumberValue(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("number %q: %w", t.String(), err)
		}
		return NumberValue(f), nil
	case []any:
		items := make([]Value, 0, len(t))
		for i, item := range t {
			iv, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, iv)
		}
		return ArrayValue(items...), nil
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			fv, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			fields[k] = fv
		}
		return ObjectValue(fields), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Field returns the named field of an object Value. The second return is
// false when v is not an object or the field is absent.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.o[name]
	return f, ok
}

// Fields returns the field map of an object Value, or nil for any other
// kind. The returned map is the Value's backing storage and must not be
// modified.
func (v Value) Fields() map[string]Value {
	if v.kind != KindObject {
		return nil
	}
	return v.o
}

// Index returns the i-th element of an array Value. The second return is
// false when v is not an array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.a) {
		return Value{}, false
	}
	return v.a[i], true
}

// Len returns the element count of an array, the field count of an object,
// and zero for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.a)
	case KindObject:
		return len(v.o)
	}
	return 0
}

// Bool returns the bool held by v, or false for any other kind.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Float returns the number held by v, or zero for any other kind.
func (v Value) Float() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.n
}

// Str returns the string held by v, or "" for any other kind.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Interface converts v back to the plain `any` representation: nil, bool,
// float64, string, []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		items := make([]any, len(v.a))
		for i, item := range v.a {
			items[i] = item.Interface()
		}
		return items
	case KindObject:
		fields := make(map[string]any, len(v.o))
		for k, f := range v.o {
			fields[k] = f.Interface()
		}
		return fields
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		// encoding/json only produces types FromAny accepts.
		return unreachable.Wrap(err)
	}
	*v = parsed
	return nil
}

// String renders v as compact JSON, mainly for logs and debugging.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		panic(unreachable.Wrap(err))
	}
	return string(data)
}
