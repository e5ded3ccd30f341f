package schematree

import "testing"

func TestEitherSchemaHasOkAndErr(t *testing.T) {
	e := Either[*Leaf[int], *Leaf[string]]{Ok: NewLeaf(0), Err: NewLeaf(""), IsOk: true}
	schema := e.Schema()
	if got, want := schema.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if name, ok := schema.Internal.Name(0); !ok || name != "Ok" {
		t.Errorf("Name(0) = %q, %v, want Ok, true", name, ok)
	}
	if name, ok := schema.Internal.Name(1); !ok || name != "Err" {
		t.Errorf("Name(1) = %q, %v, want Err, true", name, ok)
	}
}

func TestEitherSerializesPopulatedBranch(t *testing.T) {
	e := Either[*Leaf[int], *Leaf[string]]{Ok: NewLeaf(7), Err: NewLeaf(""), IsOk: true}
	var enc simpleEncoder
	if err := e.SerializeByKey(&sliceKeys{items: []Key{NameKey("Ok")}}, &enc); err != nil {
		t.Fatalf("SerializeByKey: %v", err)
	}
	if enc.value != 7 {
		t.Errorf("encoded %v, want 7", enc.value)
	}
}

func TestEitherUnpopulatedBranchIsAbsent(t *testing.T) {
	e := Either[*Leaf[int], *Leaf[string]]{Ok: NewLeaf(7), Err: NewLeaf(""), IsOk: true}
	var enc simpleEncoder
	err := e.SerializeByKey(&sliceKeys{items: []Key{NameKey("Err")}}, &enc)
	if err != ErrAbsent {
		t.Fatalf("err = %v, want ErrAbsent", err)
	}
}
