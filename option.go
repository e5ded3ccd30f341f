package schematree

// Option wraps a value that may be runtime-absent, the direct
// translation of impls/internal.rs's `impl<T> ... for Option<T>`. Its
// Schema is transparently T's own Schema (Option adds no addressing
// level of its own); absence is a runtime-only condition surfaced as
// ErrAbsent rather than a structural difference in the tree.
type Option[T interface {
	TreeSchema
	TreeSerialize
	TreeDeserialize
	TreeAny
}] struct {
	Value T
	Some  bool
}

// Some wraps value as a present Option.
func Some[T interface {
	TreeSchema
	TreeSerialize
	TreeDeserialize
	TreeAny
}](value T) Option[T] {
	return Option[T]{Value: value, Some: true}
}

func (o Option[T]) Schema() *Schema {
	return o.Value.Schema()
}

func (o Option[T]) SerializeByKey(keys Keys, enc Serializer) error {
	if !o.Some {
		return ErrAbsent
	}
	return o.Value.SerializeByKey(keys, enc)
}

func (o *Option[T]) DeserializeByKey(keys Keys, dec Deserializer) error {
	if !o.Some {
		return ErrAbsent
	}
	return o.Value.DeserializeByKey(keys, dec)
}

func (o Option[T]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	if !o.Some {
		return nil, ErrAbsent
	}
	return o.Value.RefAnyByKey(keys)
}

func (o *Option[T]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	if !o.Some {
		return nil, ErrAbsent
	}
	return o.Value.MutAnyByKey(keys)
}
