package schematree

import "testing"

func TestKeysOfResolvesIndexAndName(t *testing.T) {
	schema := testTreeSchema()
	var p Path
	p.Separator = '/'
	if err := p.Transcode(schema, KeysOf(NameKey("c"), IndexKey(1))); err != nil {
		t.Fatalf("transcode: %v", err)
	}
	if got, want := p.String(), "/c/1"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestChainKeysFallsThroughOnExhaustion(t *testing.T) {
	schema := testTreeSchema()
	chained := ChainKeys(Names{"c"}, Names{"0"})
	var p Path
	p.Separator = '/'
	if err := p.Transcode(schema, chained); err != nil {
		t.Fatalf("transcode: %v", err)
	}
	if got, want := p.String(), "/c/0"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestChainKeysPropagatesNonTooShortFromFirst(t *testing.T) {
	schema := testTreeSchema()
	chained := ChainKeys(Names{"nope"}, Names{"0"})
	var p Path
	err := p.Transcode(schema, chained)
	var ke *KeyError
	if !asKeyError(err, &ke) || ke.Kind != KeyNotFound {
		t.Fatalf("err = %v, want KeyError{KeyNotFound}", err)
	}
}

func TestNamesTranscode(t *testing.T) {
	schema := testTreeSchema()
	var idx Indices[int]
	idx.Data = make([]int, 4)
	if err := idx.Transcode(schema, Names{"b"}); err != nil {
		t.Fatalf("transcode: %v", err)
	}
	if idx.Len != 1 || idx.AsRef()[0] != 1 {
		t.Errorf("idx = %v, want [1]", idx.AsRef())
	}
}
