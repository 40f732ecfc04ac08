package value

import "github.com/vk/relaycore/internal/condition"

// TypedArray is a dense, index-addressable sequence of values constrained
// to one element kind fixed at construction. An element kind of KindAny
// lifts the constraint. TypedArray is not safe for concurrent mutation;
// arrays are owned by the statement or native call that produced them.
type TypedArray struct {
	elem  Kind
	items []Value
}

// NewTypedArray returns an empty array constrained to elem.
func NewTypedArray(elem Kind) *TypedArray {
	return &TypedArray{elem: elem}
}

// ElemKind returns the declared element kind.
func (a *TypedArray) ElemKind() Kind { return a.elem }

// Size returns the current number of elements.
func (a *TypedArray) Size() int { return len(a.items) }

func (a *TypedArray) checkElem(v Value) error {
	if !v.Kind().AssignableTo(a.elem) {
		return condition.New(condition.TypeMismatch,
			"cannot store %s element in array(%s)", v.Kind(), a.elem)
	}
	return nil
}

// Get returns the element at index i. Reading past the current size is an
// IndexOutOfRange condition.
func (a *TypedArray) Get(i int) (Value, error) {
	if i < 0 || i >= len(a.items) {
		return Value{}, condition.New(condition.IndexOutOfRange,
			"index %d out of range for array of size %d", i, len(a.items))
	}
	return a.items[i], nil
}

// Set replaces the element at an existing index i. Unlike Add it never
// extends the sequence.
func (a *TypedArray) Set(i int, v Value) error {
	if i < 0 || i >= len(a.items) {
		return condition.New(condition.IndexOutOfRange,
			"index %d out of range for array of size %d", i, len(a.items))
	}
	if err := a.checkElem(v); err != nil {
		return err
	}
	a.items[i] = v
	return nil
}

// Add stores v at index i, extending the sequence when i is past the
// current size. Positions opened by the extension hold the element kind's
// zero value.
func (a *TypedArray) Add(i int, v Value) error {
	if i < 0 {
		return condition.New(condition.IndexOutOfRange, "negative index %d", i)
	}
	if err := a.checkElem(v); err != nil {
		return err
	}
	for len(a.items) <= i {
		a.items = append(a.items, Zero(a.elem))
	}
	a.items[i] = v
	return nil
}

// Append stores v after the last element.
func (a *TypedArray) Append(v Value) error {
	return a.Add(len(a.items), v)
}

// CopyOf builds a new array of element kind elem from src: the destination
// is allocated to the source's size, source indices are walked in ascending
// order, and each element is inserted unchanged at the same index. The
// first element whose kind is incompatible with elem fails the whole
// construction with TypeMismatch; no partial array is returned. The result
// shares no backing storage with src.
func CopyOf(src *TypedArray, elem Kind) (*TypedArray, error) {
	dst := &TypedArray{elem: elem, items: make([]Value, 0, src.Size())}
	for i := 0; i < src.Size(); i++ {
		v := src.items[i]
		if !v.Kind().AssignableTo(elem) {
			return nil, condition.New(condition.TypeMismatch,
				"source element %d is %s, incompatible with array(%s)", i, v.Kind(), elem)
		}
		dst.items = append(dst.items, v)
	}
	return dst, nil
}
