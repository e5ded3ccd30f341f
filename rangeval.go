package schematree

// treeLeafValue is the constraint shared by Range's Start/End fields:
// anything that is itself a full tree node (TreeSchema + the three
// capability traits).
type treeLeafValue interface {
	TreeSchema
	TreeSerialize
	TreeDeserialize
	TreeAny
}

// Range is the translation of impls/internal.rs's `impl<T> ... for
// Range<T>`: a Named internal with "start" and "end" children, both
// always present (unlike Option/Either there is no absence here).
type Range[T treeLeafValue] struct {
	Start T
	End   T
}

func rangeSchema(startSchema, endSchema *Schema) *Schema {
	return &Schema{Internal: NewNamed(
		Named{Name: "start", Schema: startSchema},
		Named{Name: "end", Schema: endSchema},
	)}
}

func (r Range[T]) Schema() *Schema {
	return rangeSchema(r.Start.Schema(), r.End.Schema())
}

func (r Range[T]) SerializeByKey(keys Keys, enc Serializer) error {
	idx, err := r.Schema().Next(keys)
	if err != nil {
		return err
	}
	if idx == 0 {
		return r.Start.SerializeByKey(keys, enc)
	}
	return r.End.SerializeByKey(keys, enc)
}

func (r *Range[T]) DeserializeByKey(keys Keys, dec Deserializer) error {
	idx, err := r.Schema().Next(keys)
	if err != nil {
		return err
	}
	if idx == 0 {
		return r.Start.DeserializeByKey(keys, dec)
	}
	return r.End.DeserializeByKey(keys, dec)
}

func (r Range[T]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := r.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return r.Start.RefAnyByKey(keys)
	}
	return r.End.RefAnyByKey(keys)
}

func (r *Range[T]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := r.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return r.Start.MutAnyByKey(keys)
	}
	return r.End.MutAnyByKey(keys)
}

// RangeFrom is the translation of `impl<T> ... for RangeFrom<T>`: a
// Named internal with a single "start" child.
type RangeFrom[T treeLeafValue] struct {
	Start T
}

func (r RangeFrom[T]) Schema() *Schema {
	return &Schema{Internal: NewNamed(Named{Name: "start", Schema: r.Start.Schema()})}
}

func (r RangeFrom[T]) SerializeByKey(keys Keys, enc Serializer) error {
	if _, err := r.Schema().Next(keys); err != nil {
		return err
	}
	return r.Start.SerializeByKey(keys, enc)
}

func (r *RangeFrom[T]) DeserializeByKey(keys Keys, dec Deserializer) error {
	if _, err := r.Schema().Next(keys); err != nil {
		return err
	}
	return r.Start.DeserializeByKey(keys, dec)
}

func (r RangeFrom[T]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	if _, err := r.Schema().Next(keys); err != nil {
		return nil, err
	}
	return r.Start.RefAnyByKey(keys)
}

func (r *RangeFrom[T]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	if _, err := r.Schema().Next(keys); err != nil {
		return nil, err
	}
	return r.Start.MutAnyByKey(keys)
}

// RangeTo is the translation of `impl<T> ... for RangeTo<T>`: a Named
// internal with a single "end" child.
type RangeTo[T treeLeafValue] struct {
	End T
}

func (r RangeTo[T]) Schema() *Schema {
	return &Schema{Internal: NewNamed(Named{Name: "end", Schema: r.End.Schema()})}
}

func (r RangeTo[T]) SerializeByKey(keys Keys, enc Serializer) error {
	if _, err := r.Schema().Next(keys); err != nil {
		return err
	}
	return r.End.SerializeByKey(keys, enc)
}

func (r *RangeTo[T]) DeserializeByKey(keys Keys, dec Deserializer) error {
	if _, err := r.Schema().Next(keys); err != nil {
		return err
	}
	return r.End.DeserializeByKey(keys, dec)
}

func (r RangeTo[T]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	if _, err := r.Schema().Next(keys); err != nil {
		return nil, err
	}
	return r.End.RefAnyByKey(keys)
}

func (r *RangeTo[T]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	if _, err := r.Schema().Next(keys); err != nil {
		return nil, err
	}
	return r.End.MutAnyByKey(keys)
}

// RangeInclusive shares Range's Schema (per `impl<T> ... for
// RangeInclusive<T> { SCHEMA = Range::<T>::SCHEMA }`) but exposes its
// endpoints through accessors rather than public fields, matching Rust's
// RangeInclusive not exposing mutable start/end directly.
type RangeInclusive[T treeLeafValue] struct {
	start, end T
}

// NewRangeInclusive builds a RangeInclusive from its endpoints.
func NewRangeInclusive[T treeLeafValue](start, end T) RangeInclusive[T] {
	return RangeInclusive[T]{start: start, end: end}
}

// Start returns the range's start endpoint.
func (r RangeInclusive[T]) Start() T { return r.start }

// End returns the range's end endpoint.
func (r RangeInclusive[T]) End() T { return r.end }

func (r RangeInclusive[T]) Schema() *Schema {
	return rangeSchema(r.start.Schema(), r.end.Schema())
}

func (r RangeInclusive[T]) SerializeByKey(keys Keys, enc Serializer) error {
	idx, err := r.Schema().Next(keys)
	if err != nil {
		return err
	}
	if idx == 0 {
		return r.start.SerializeByKey(keys, enc)
	}
	return r.end.SerializeByKey(keys, enc)
}
