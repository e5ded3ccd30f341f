package schematree

import "testing"

func TestRangeSchemaHasStartAndEnd(t *testing.T) {
	r := Range[*Leaf[int]]{Start: NewLeaf(0), End: NewLeaf(10)}
	schema := r.Schema()
	if name, ok := schema.Internal.Name(0); !ok || name != "start" {
		t.Errorf("Name(0) = %q, %v, want start, true", name, ok)
	}
	if name, ok := schema.Internal.Name(1); !ok || name != "end" {
		t.Errorf("Name(1) = %q, %v, want end, true", name, ok)
	}
}

func TestRangeBothEndsAlwaysPresent(t *testing.T) {
	r := Range[*Leaf[int]]{Start: NewLeaf(3), End: NewLeaf(9)}
	var enc simpleEncoder
	if err := r.SerializeByKey(&sliceKeys{items: []Key{NameKey("start")}}, &enc); err != nil {
		t.Fatalf("start: %v", err)
	}
	if enc.value != 3 {
		t.Errorf("start = %v, want 3", enc.value)
	}
	if err := r.SerializeByKey(&sliceKeys{items: []Key{NameKey("end")}}, &enc); err != nil {
		t.Fatalf("end: %v", err)
	}
	if enc.value != 9 {
		t.Errorf("end = %v, want 9", enc.value)
	}
}

func TestRangeFromHasOnlyStart(t *testing.T) {
	r := RangeFrom[*Leaf[int]]{Start: NewLeaf(5)}
	schema := r.Schema()
	if got, want := schema.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if name, ok := schema.Internal.Name(0); !ok || name != "start" {
		t.Errorf("Name(0) = %q, %v, want start, true", name, ok)
	}
}

func TestRangeToHasOnlyEnd(t *testing.T) {
	r := RangeTo[*Leaf[int]]{End: NewLeaf(5)}
	schema := r.Schema()
	if got, want := schema.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if name, ok := schema.Internal.Name(0); !ok || name != "end" {
		t.Errorf("Name(0) = %q, %v, want end, true", name, ok)
	}
}

func TestRangeInclusiveSharesRangeSchema(t *testing.T) {
	ri := NewRangeInclusive[*Leaf[int]](NewLeaf(1), NewLeaf(2))
	r := Range[*Leaf[int]]{Start: NewLeaf(1), End: NewLeaf(2)}
	if ri.Schema().Internal.Kind != r.Schema().Internal.Kind {
		t.Error("RangeInclusive schema kind should match Range")
	}
	if ri.Schema().Len() != r.Schema().Len() {
		t.Error("RangeInclusive schema length should match Range")
	}
}
