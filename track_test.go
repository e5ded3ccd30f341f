package schematree

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestTrackRecordsDepthAndLeaf(t *testing.T) {
	schema := testTreeSchema()
	tr := NewTrack[*Path](NewPath('/'))
	if err := tr.Transcode(schema, Names{"a"}); err != nil {
		t.Fatalf("transcode: %v", err)
	}
	if !tr.Leaf {
		t.Error("Leaf = false, want true")
	}
	if tr.Depth != 1 {
		t.Errorf("Depth = %d, want 1", tr.Depth)
	}
	if got, want := tr.Inner.String(), "/a"; got != want {
		t.Errorf("Inner = %q, want %q", got, want)
	}
}

func TestTrackDeeperLeaf(t *testing.T) {
	schema := testTreeSchema()
	tr := NewTrack[*Path](NewPath('/'))
	if err := tr.Transcode(schema, Names{"c", "1"}); err != nil {
		t.Fatalf("transcode: %v", err)
	}
	if tr.Depth != 2 {
		t.Errorf("Depth = %d, want 2", tr.Depth)
	}
	if got, want := tr.Inner.String(), "/c/1"; got != want {
		t.Errorf("Inner = %q, want %q", got, want)
	}
}

func TestTrackReusableAcrossCalls(t *testing.T) {
	schema := testTreeSchema()
	tr := NewTrack[*Path](NewPath('/'))
	if err := tr.Transcode(schema, Names{"c", "1"}); err != nil {
		t.Fatalf("first transcode: %v", err)
	}
	if err := tr.Transcode(schema, Names{"b"}); err != nil {
		t.Fatalf("second transcode: %v", err)
	}
	if tr.Depth != 1 || tr.Inner.String() != "/b" {
		t.Errorf("after reuse: Depth=%d Inner=%q, want 1 /b", tr.Depth, tr.Inner.String())
	}
}

func TestShortSuppressesTooShort(t *testing.T) {
	schema := testTreeSchema()
	short := NewShort[*Indices[int]](NewIndices(make([]int, 4)))
	if err := short.Transcode(schema, Names{"c"}); err != nil {
		t.Fatalf("Short should absorb TooShort, got: %v", err)
	}
	if want := []int{2}; short.Inner.Len != 1 || short.Inner.AsRef()[0] != 2 {
		t.Errorf("partial state = %s, want %s", pretty.Sprint(short.Inner.AsRef()), pretty.Sprint(want))
	}
}

func TestShortPropagatesOtherErrors(t *testing.T) {
	schema := testTreeSchema()
	short := NewShort[*Indices[int]](NewIndices(make([]int, 4)))
	err := short.Transcode(schema, Names{"nope"})
	var ke *KeyError
	if !asKeyError(err, &ke) || ke.Kind != KeyNotFound {
		t.Fatalf("err = %v, want KeyError{KeyNotFound}", err)
	}
}
