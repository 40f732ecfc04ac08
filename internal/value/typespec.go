package value

import "fmt"

// TypeSpec is a declared (type, elementType) pair, as written in native
// function signatures and parameter declarations. Elem is meaningful only
// when Kind is KindArray; it is KindInvalid otherwise.
type TypeSpec struct {
	Kind Kind
	Elem Kind
}

// Spec declares a non-array type.
func Spec(k Kind) TypeSpec { return TypeSpec{Kind: k} }

// ArraySpec declares an array type with the given element kind.
func ArraySpec(elem Kind) TypeSpec { return TypeSpec{Kind: KindArray, Elem: elem} }

// String renders the spec in manifest syntax.
func (s TypeSpec) String() string {
	if s.Kind == KindArray {
		return fmt.Sprintf("array(%s)", s.Elem)
	}
	return s.Kind.String()
}

// Accepts reports whether a value satisfies the declared spec. Arrays must
// carry a compatible element kind: an array of T satisfies array(T) and
// array(any); an array of any satisfies only array(any).
func (s TypeSpec) Accepts(v Value) bool {
	if s.Kind == KindAny {
		return v.IsValid()
	}
	if v.Kind() != s.Kind {
		return false
	}
	if s.Kind != KindArray {
		return true
	}
	arr := v.data.(*TypedArray)
	return arr.ElemKind().AssignableTo(s.Elem)
}
