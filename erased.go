package schematree

// ErasedValue is a type-erased handle to a leaf value, the Go stand-in
// for Rust's `&dyn Any`/`&mut dyn Any`. It carries the value's runtime
// type identity (via the `any` it wraps) and supports downcast to the
// leaf's concrete type through As.
type ErasedValue struct {
	v any
}

// NewErasedValue wraps v (expected to be a pointer to the leaf's
// in-place storage, so that MutAnyByKey callers can observe writes
// through it) as an ErasedValue.
func NewErasedValue(v any) *ErasedValue {
	return &ErasedValue{v: v}
}

// Value returns the wrapped value with its type erased to `any`.
func (e *ErasedValue) Value() any {
	if e == nil {
		return nil
	}
	return e.v
}

// As downcasts e to T, the Go equivalent of `dyn Any::downcast_ref`. The
// second return is false if e is nil or wraps a different concrete type.
func As[T any](e *ErasedValue) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	t, ok := e.v.(T)
	return t, ok
}
