package jsonser

import "testing"

func TestEncoderEncodesScalar(t *testing.T) {
	var e Encoder
	if err := e.Encode(42); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := e.Buf.String(), "42"; got != want {
		t.Errorf("Buf = %q, want %q", got, want)
	}
}

func TestEncoderEncodesString(t *testing.T) {
	var e Encoder
	if err := e.Encode("hello"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := e.Buf.String(), `"hello"`; got != want {
		t.Errorf("Buf = %q, want %q", got, want)
	}
}

func TestDecoderDecodesScalar(t *testing.T) {
	d := NewDecoder([]byte("99"))
	var n int
	if err := d.Decode(&n); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 99 {
		t.Errorf("n = %d, want 99", n)
	}
}

func TestDecoderRejectsMalformedJSON(t *testing.T) {
	d := NewDecoder([]byte("not json"))
	var n int
	if err := d.Decode(&n); err == nil {
		t.Error("expected an error decoding malformed JSON")
	}
}

func TestRoundTrip(t *testing.T) {
	var e Encoder
	if err := e.Encode([]int{1, 2, 3}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out []int
	d := NewDecoder(e.Buf.Bytes())
	if err := d.Decode(&out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out) != 3 || out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("out = %v, want [1 2 3]", out)
	}
}
