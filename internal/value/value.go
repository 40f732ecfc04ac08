package value

import (
	"fmt"

	"github.com/vk/relaycore/internal/condition"
)

// Value is a tagged union over the supported runtime kinds. The zero Value
// is invalid; values are built through the constructors below. Scalars are
// copied by value, messages and arrays are reference values.
type Value struct {
	kind Kind
	data any
}

// BoolVal wraps a bool.
func BoolVal(v bool) Value { return Value{kind: KindBoolean, data: v} }

// IntVal wraps a 64-bit integer.
func IntVal(v int64) Value { return Value{kind: KindInt, data: v} }

// FloatVal wraps a 64-bit float.
func FloatVal(v float64) Value { return Value{kind: KindFloat, data: v} }

// StringVal wraps a string.
func StringVal(v string) Value { return Value{kind: KindString, data: v} }

// MessageVal wraps a message reference.
func MessageVal(m *Message) Value { return Value{kind: KindMessage, data: m} }

// MapVal wraps a string-keyed map of values.
func MapVal(m map[string]Value) Value { return Value{kind: KindMap, data: m} }

// ArrayVal wraps a typed array reference.
func ArrayVal(a *TypedArray) Value { return Value{kind: KindArray, data: a} }

// Zero returns the zero value for a kind: false, 0, 0.0, "", nil message,
// empty map, or an empty array of any-kind elements.
func Zero(k Kind) Value {
	switch k {
	case KindBoolean:
		return BoolVal(false)
	case KindInt:
		return IntVal(0)
	case KindFloat:
		return FloatVal(0)
	case KindString:
		return StringVal("")
	case KindMessage:
		return Value{kind: KindMessage, data: (*Message)(nil)}
	case KindMap:
		return MapVal(map[string]Value{})
	case KindArray:
		return ArrayVal(NewTypedArray(KindAny))
	default:
		return Value{}
	}
}

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value was built by a constructor.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) mismatch(want Kind) error {
	return condition.New(condition.TypeMismatch, "value is %s, not %s", v.kind, want)
}

// AsBool returns the boolean payload, or a TypeMismatch condition.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBoolean {
		return false, v.mismatch(KindBoolean)
	}
	return v.data.(bool), nil
}

// AsInt returns the integer payload, or a TypeMismatch condition.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}
	return v.data.(int64), nil
}

// AsFloat returns the float payload, or a TypeMismatch condition.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}
	return v.data.(float64), nil
}

// AsString returns the string payload, or a TypeMismatch condition.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}
	return v.data.(string), nil
}

// AsMessage returns the message payload, or a TypeMismatch condition.
func (v Value) AsMessage() (*Message, error) {
	if v.kind != KindMessage {
		return nil, v.mismatch(KindMessage)
	}
	return v.data.(*Message), nil
}

// AsMap returns the map payload, or a TypeMismatch condition.
func (v Value) AsMap() (map[string]Value, error) {
	if v.kind != KindMap {
		return nil, v.mismatch(KindMap)
	}
	return v.data.(map[string]Value), nil
}

// AsArray returns the typed array payload, or a TypeMismatch condition.
func (v Value) AsArray() (*TypedArray, error) {
	if v.kind != KindArray {
		return nil, v.mismatch(KindArray)
	}
	return v.data.(*TypedArray), nil
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindInvalid:
		return "<invalid>"
	case KindArray:
		a := v.data.(*TypedArray)
		return fmt.Sprintf("array(%s)[%d]", a.ElemKind(), a.Size())
	case KindMessage:
		return "message"
	default:
		return fmt.Sprintf("%v", v.data)
	}
}
