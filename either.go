package schematree

// Either is the translation of impls/internal.rs's `impl<T, E> ... for
// Result<T, E>`: a Named internal with exactly two children, "Ok" and
// "Err", of which exactly one is populated at runtime. Addressing the
// unpopulated branch reports ErrAbsent, the same as Option.
type Either[T, E interface {
	TreeSchema
	TreeSerialize
	TreeDeserialize
	TreeAny
}] struct {
	Ok   T
	Err  E
	IsOk bool
}

func eitherSchema(okSchema, errSchema *Schema) *Schema {
	return &Schema{Internal: NewNamed(
		Named{Name: "Ok", Schema: okSchema},
		Named{Name: "Err", Schema: errSchema},
	)}
}

func (e Either[T, E]) Schema() *Schema {
	return eitherSchema(e.Ok.Schema(), e.Err.Schema())
}

func (e Either[T, E]) SerializeByKey(keys Keys, enc Serializer) error {
	idx, err := e.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch {
	case idx == 0 && e.IsOk:
		return e.Ok.SerializeByKey(keys, enc)
	case idx == 1 && !e.IsOk:
		return e.Err.SerializeByKey(keys, enc)
	default:
		return ErrAbsent
	}
}

func (e *Either[T, E]) DeserializeByKey(keys Keys, dec Deserializer) error {
	idx, err := e.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch {
	case idx == 0 && e.IsOk:
		return e.Ok.DeserializeByKey(keys, dec)
	case idx == 1 && !e.IsOk:
		return e.Err.DeserializeByKey(keys, dec)
	default:
		return ErrAbsent
	}
}

func (e Either[T, E]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := e.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch {
	case idx == 0 && e.IsOk:
		return e.Ok.RefAnyByKey(keys)
	case idx == 1 && !e.IsOk:
		return e.Err.RefAnyByKey(keys)
	default:
		return nil, ErrAbsent
	}
}

func (e *Either[T, E]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := e.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch {
	case idx == 0 && e.IsOk:
		return e.Ok.MutAnyByKey(keys)
	case idx == 1 && !e.IsOk:
		return e.Err.MutAnyByKey(keys)
	default:
		return nil, ErrAbsent
	}
}
