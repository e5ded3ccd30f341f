package schematree

// testTree is a small hand-composed tree shared across this package's
// tests: two scalar leaves ("a", "b") and one two-element homogeneous
// array of leaves ("c"), giving every test a schema with Named,
// Homogeneous, and multiple depths to exercise without re-deriving one
// per file.
type testTree struct {
	A Leaf[int]
	B Leaf[string]
	C Array[*Leaf[int]]
}

func newTestTree() *testTree {
	return &testTree{
		C: *NewArray([]*Leaf[int]{NewLeaf(0), NewLeaf(0)}),
	}
}

func testTreeSchema() *Schema {
	leafSchema := (&Leaf[int]{}).Schema()
	cSchema := &Schema{Internal: NewHomogeneous(2, leafSchema, nil)}
	return &Schema{Internal: NewNamed(
		Named{Name: "a", Schema: (&Leaf[int]{}).Schema()},
		Named{Name: "b", Schema: (&Leaf[string]{}).Schema()},
		Named{Name: "c", Schema: cSchema},
	)}
}

func (t *testTree) Schema() *Schema { return testTreeSchema() }

func (t *testTree) SerializeByKey(keys Keys, enc Serializer) error {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return t.A.SerializeByKey(keys, enc)
	case 1:
		return t.B.SerializeByKey(keys, enc)
	default:
		return t.C.SerializeByKey(keys, enc)
	}
}

func (t *testTree) DeserializeByKey(keys Keys, dec Deserializer) error {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return t.A.DeserializeByKey(keys, dec)
	case 1:
		return t.B.DeserializeByKey(keys, dec)
	default:
		return t.C.DeserializeByKey(keys, dec)
	}
}

func (t *testTree) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.A.RefAnyByKey(keys)
	case 1:
		return t.B.RefAnyByKey(keys)
	default:
		return t.C.RefAnyByKey(keys)
	}
}

func (t *testTree) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	idx, err := t.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return t.A.MutAnyByKey(keys)
	case 1:
		return t.B.MutAnyByKey(keys)
	default:
		return t.C.MutAnyByKey(keys)
	}
}

// simpleEncoder/simpleDecoder are a minimal in-memory Serializer/
// Deserializer pair for tests that don't want jsonser's import (kept
// inside the core package to avoid a test-only dependency cycle).
type simpleEncoder struct {
	value any
}

func (e *simpleEncoder) Encode(v any) error {
	e.value = v
	return nil
}

type simpleDecoder struct {
	value any
}

func (d *simpleDecoder) Decode(v any) error {
	switch p := v.(type) {
	case *int:
		*p = d.value.(int)
	case *string:
		*p = d.value.(string)
	default:
		panic("simpleDecoder: unsupported type")
	}
	return nil
}
