package schematree

import "testing"

func TestSchemaLenAndIsLeaf(t *testing.T) {
	schema := testTreeSchema()
	if schema.IsLeaf() {
		t.Error("root IsLeaf() = true, want false")
	}
	if got, want := schema.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	leaf := (&Leaf[int]{}).Schema()
	if !leaf.IsLeaf() {
		t.Error("leaf schema IsLeaf() = false, want true")
	}
	if got := leaf.Len(); got != 0 {
		t.Errorf("leaf Len() = %d, want 0", got)
	}
}

func TestSchemaNextPanicsOnLeaf(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic calling Next on a leaf Schema")
		}
	}()
	leaf := (&Leaf[int]{}).Schema()
	leaf.Next(&sliceKeys{})
}

func TestSchemaGetResolvesLeafSchema(t *testing.T) {
	schema := testTreeSchema()
	got, err := schema.Get(Names{"c", "0"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.IsLeaf() {
		t.Error("Get(c/0) should resolve to a leaf schema")
	}
}

func TestSchemaGetPropagatesStructuralError(t *testing.T) {
	schema := testTreeSchema()
	_, err := schema.Get(Names{"nope"})
	var ke *KeyError
	if !asKeyError(err, &ke) || ke.Kind != KeyNotFound {
		t.Fatalf("err = %v, want KeyError{KeyNotFound}", err)
	}
}

func TestSchemaGetMetaUnsetIsNil(t *testing.T) {
	schema := testTreeSchema()
	outer, inner, err := schema.GetMeta(Names{"a"})
	if err != nil {
		t.Fatalf("GetMeta: %v", err)
	}
	if outer != nil {
		t.Errorf("outer meta = %v, want nil (testTreeSchema sets none)", outer)
	}
	if inner != nil {
		t.Errorf("inner meta = %v, want nil", inner)
	}
}

func TestSchemaIndexOfNamedVsHomogeneous(t *testing.T) {
	schema := testTreeSchema()
	idx, ok := schema.Internal.IndexOf("b")
	if !ok || idx != 1 {
		t.Fatalf("IndexOf(b) = %d, %v, want 1, true", idx, ok)
	}
	cSchema := schema.Internal.ChildSchema(2)
	idx, ok = cSchema.Internal.IndexOf("1")
	if !ok || idx != 1 {
		t.Fatalf("c.IndexOf(1) = %d, %v, want 1, true", idx, ok)
	}
	if _, ok := cSchema.Internal.IndexOf("notanumber"); ok {
		t.Error("IndexOf(notanumber) against homogeneous should fail")
	}
}

func TestSchemaDescendVisitsEveryHopInOrder(t *testing.T) {
	schema := testTreeSchema()
	var indices []int
	err := schema.Descend(Names{"c", "1"}.ToKeys(), func(_ *Schema, step *Step) error {
		if step != nil {
			indices = append(indices, step.Index)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Descend: %v", err)
	}
	want := []int{2, 1}
	if len(indices) != len(want) {
		t.Fatalf("indices = %v, want %v", indices, want)
	}
	for i, v := range want {
		if indices[i] != v {
			t.Errorf("indices[%d] = %d, want %d", i, indices[i], v)
		}
	}
}
