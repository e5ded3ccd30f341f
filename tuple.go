package schematree

// Tuple2/Tuple3/Tuple4 are the translation of impls/internal.rs's
// `impl_tuple!` macro: a heterogeneous, positionally-addressed
// (Numbered) fixed-size group of tree nodes. The macro there is
// instantiated for arities 1 through 8; this port carries the arities
// actually exercised by the configuration trees built on top of it
// (see DESIGN.md) and follows the identical pattern, which generalizes
// mechanically to the unported arities if a future component needs them.
type Tuple2[T0, T1 treeLeafValue] struct {
	F0 T0
	F1 T1
}

func numberedSchema(children ...*Schema) *Schema {
	entries := make([]Numbered, len(children))
	for i, c := range children {
		entries[i] = Numbered{Schema: c}
	}
	return &Schema{Internal: NewNumbered(entries...)}
}

func (t Tuple2[T0, T1]) Schema() *Schema {
	return numberedSchema(t.F0.Schema(), t.F1.Schema())
}

func (t Tuple2[T0, T1]) SerializeByKey(keys Keys, enc Serializer) error {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return t.F0.SerializeByKey(keys, enc)
	default:
		return t.F1.SerializeByKey(keys, enc)
	}
}

func (t *Tuple2[T0, T1]) DeserializeByKey(keys Keys, dec Deserializer) error {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return t.F0.DeserializeByKey(keys, dec)
	default:
		return t.F1.DeserializeByKey(keys, dec)
	}
}

func (t Tuple2[T0, T1]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.F0.RefAnyByKey(keys)
	default:
		return t.F1.RefAnyByKey(keys)
	}
}

func (t *Tuple2[T0, T1]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.F0.MutAnyByKey(keys)
	default:
		return t.F1.MutAnyByKey(keys)
	}
}

// Tuple3 is Tuple2 generalized to three positional fields.
type Tuple3[T0, T1, T2 treeLeafValue] struct {
	F0 T0
	F1 T1
	F2 T2
}

func (t Tuple3[T0, T1, T2]) Schema() *Schema {
	return numberedSchema(t.F0.Schema(), t.F1.Schema(), t.F2.Schema())
}

func (t Tuple3[T0, T1, T2]) SerializeByKey(keys Keys, enc Serializer) error {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return t.F0.SerializeByKey(keys, enc)
	case 1:
		return t.F1.SerializeByKey(keys, enc)
	default:
		return t.F2.SerializeByKey(keys, enc)
	}
}

func (t *Tuple3[T0, T1, T2]) DeserializeByKey(keys Keys, dec Deserializer) error {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return t.F0.DeserializeByKey(keys, dec)
	case 1:
		return t.F1.DeserializeByKey(keys, dec)
	default:
		return t.F2.DeserializeByKey(keys, dec)
	}
}

func (t Tuple3[T0, T1, T2]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.F0.RefAnyByKey(keys)
	case 1:
		return t.F1.RefAnyByKey(keys)
	default:
		return t.F2.RefAnyByKey(keys)
	}
}

func (t *Tuple3[T0, T1, T2]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.F0.MutAnyByKey(keys)
	case 1:
		return t.F1.MutAnyByKey(keys)
	default:
		return t.F2.MutAnyByKey(keys)
	}
}

// Tuple4 is Tuple2 generalized to four positional fields.
type Tuple4[T0, T1, T2, T3 treeLeafValue] struct {
	F0 T0
	F1 T1
	F2 T2
	F3 T3
}

func (t Tuple4[T0, T1, T2, T3]) Schema() *Schema {
	return numberedSchema(t.F0.Schema(), t.F1.Schema(), t.F2.Schema(), t.F3.Schema())
}

func (t Tuple4[T0, T1, T2, T3]) SerializeByKey(keys Keys, enc Serializer) error {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return t.F0.SerializeByKey(keys, enc)
	case 1:
		return t.F1.SerializeByKey(keys, enc)
	case 2:
		return t.F2.SerializeByKey(keys, enc)
	default:
		return t.F3.SerializeByKey(keys, enc)
	}
}

func (t *Tuple4[T0, T1, T2, T3]) DeserializeByKey(keys Keys, dec Deserializer) error {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return t.F0.DeserializeByKey(keys, dec)
	case 1:
		return t.F1.DeserializeByKey(keys, dec)
	case 2:
		return t.F2.DeserializeByKey(keys, dec)
	default:
		return t.F3.DeserializeByKey(keys, dec)
	}
}

func (t Tuple4[T0, T1, T2, T3]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.F0.RefAnyByKey(keys)
	case 1:
		return t.F1.RefAnyByKey(keys)
	case 2:
		return t.F2.RefAnyByKey(keys)
	default:
		return t.F3.RefAnyByKey(keys)
	}
}

func (t *Tuple4[T0, T1, T2, T3]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.F0.MutAnyByKey(keys)
	case 1:
		return t.F1.MutAnyByKey(keys)
	case 2:
		return t.F2.MutAnyByKey(keys)
	default:
		return t.F3.MutAnyByKey(keys)
	}
}
