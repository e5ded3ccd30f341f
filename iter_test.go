package schematree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeIteratorEnumeratesAllLeavesDepthFirst(t *testing.T) {
	schema := testTreeSchema()
	total := schema.Shape().Count
	it := NewNodeIterator(schema, schema.Shape().MaxDepth, func() *Track[*Path] {
		return NewTrack[*Path](NewPath('/'))
	})
	if got := it.Remaining(); got != total {
		t.Fatalf("initial Remaining() = %d, want %d", got, total)
	}

	var got []string
	for {
		tracked, _, overflow, ok := it.Next()
		if !ok {
			break
		}
		if overflow {
			t.Fatalf("unexpected overflow for a tree with no overflowing nodes")
		}
		got = append(got, tracked.Inner.String())
	}

	want := []string{"/a", "/b", "/c/0", "/c/1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("enumerated paths mismatch (-want +got):\n%s", diff)
	}

	if got := it.Remaining(); got != 0 {
		t.Errorf("final Remaining() = %d, want 0", got)
	}

	// Iteration is exhausted: further calls keep returning ok=false.
	if _, _, _, ok := it.Next(); ok {
		t.Error("expected ok=false after exhaustion")
	}
}

func TestNodeIteratorCountMatchesShape(t *testing.T) {
	schema := testTreeSchema()
	it := NewNodeIterator(schema, schema.Shape().MaxDepth, func() *Path {
		return NewPath('/')
	})
	count := 0
	for {
		_, _, _, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	if count != schema.Shape().Count {
		t.Errorf("enumerated %d leaves, want %d (Shape().Count)", count, schema.Shape().Count)
	}
}

func TestNodeIteratorRemainingDecrementsMonotonically(t *testing.T) {
	schema := testTreeSchema()
	it := NewNodeIterator(schema, schema.Shape().MaxDepth, func() *Path {
		return NewPath('/')
	})
	prev := it.Remaining()
	for {
		_, _, _, ok := it.Next()
		if !ok {
			break
		}
		if it.Remaining() != prev-1 {
			t.Fatalf("Remaining() = %d, want %d", it.Remaining(), prev-1)
		}
		prev = it.Remaining()
	}
}
