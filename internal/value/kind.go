// Package value implements the runtime's typed value model: a tagged union
// over the supported kinds, a homogeneous typed array container, and the
// declared type specs that native signatures and parameters are written
// against.
package value

// Kind tags a runtime value with one of the supported kinds.
type Kind int

const (
	// KindInvalid is the zero value and never tags a live Value.
	KindInvalid Kind = iota
	// KindBoolean tags a bool.
	KindBoolean
	// KindInt tags a 64-bit integer.
	KindInt
	// KindFloat tags a 64-bit float.
	KindFloat
	// KindString tags a string.
	KindString
	// KindMessage tags a composite request/response payload.
	KindMessage
	// KindMap tags a string-keyed map of values.
	KindMap
	// KindArray tags a TypedArray.
	KindArray
	// KindAny matches every kind in declared positions. Live values are
	// never tagged KindAny.
	KindAny
)

// String returns the manifest keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindMessage:
		return "message"
	case KindMap:
		return "map"
	case KindArray:
		return "array"
	case KindAny:
		return "any"
	default:
		return "invalid"
	}
}

// AssignableTo reports whether a value of kind k satisfies a declared kind.
// KindAny in the declared position accepts everything.
func (k Kind) AssignableTo(declared Kind) bool {
	if declared == KindAny {
		return true
	}
	return k == declared
}
