package schematree

// Array is a fixed-length homogeneous sequence of tree nodes, the Go
// translation of impls/internal.rs's `impl<T, const N: usize> ... for
// [T; N]`. Go arrays cannot carry methods generically the way Rust's
// const-generic array impl can, so Array wraps a slice directly;
// callers construct it over a fixed-size backing array when an actual
// compile-time bound is wanted.
type Array[T interface {
	TreeSchema
	TreeSerialize
	TreeDeserialize
	TreeAny
}] struct {
	Items []T
}

// NewArray wraps items as an Array.
func NewArray[T interface {
	TreeSchema
	TreeSerialize
	TreeDeserialize
	TreeAny
}](items []T) *Array[T] {
	return &Array[T]{Items: items}
}

func (a *Array[T]) Schema() *Schema {
	var childSchema *Schema
	if len(a.Items) > 0 {
		childSchema = a.Items[0].Schema()
	} else {
		childSchema = scalarLeafSchema
	}
	return &Schema{Internal: NewHomogeneous(len(a.Items), childSchema, nil)}
}

func (a *Array[T]) SerializeByKey(keys Keys, enc Serializer) error {
	idx, err := a.Schema().Next(keys)
	if err != nil {
		return err
	}
	return a.Items[idx].SerializeByKey(keys, enc)
}

func (a *Array[T]) DeserializeByKey(keys Keys, dec Deserializer) error {
	idx, err := a.Schema().Next(keys)
	if err != nil {
		return err
	}
	return a.Items[idx].DeserializeByKey(keys, dec)
}

func (a *Array[T]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := a.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	return a.Items[idx].RefAnyByKey(keys)
}

func (a *Array[T]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := a.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	return a.Items[idx].MutAnyByKey(keys)
}
