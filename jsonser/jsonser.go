// Package jsonser is the plainest schematree.Serializer/Deserializer
// pair: stdlib encoding/json applied to one leaf value at a time, the
// Go equivalent of miniconf's own serde_json backend and, in the
// teacher, the same default choice ygot/ygot/render.go makes for JSON
// rendering.
package jsonser

import (
	"bytes"
	"encoding/json"
)

// Encoder writes one leaf value's JSON encoding to Buf. A fresh Encoder
// (or a reset one) should back each SerializeByKey call.
type Encoder struct {
	Buf bytes.Buffer
}

// Encode implements schematree.Serializer.
func (e *Encoder) Encode(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e.Buf.Write(b)
	return nil
}

// Decoder reads one leaf value's JSON encoding from the bytes it was
// built with.
type Decoder struct {
	Data []byte
}

// NewDecoder wraps data as a Decoder.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{Data: data}
}

// Decode implements schematree.Deserializer.
func (d *Decoder) Decode(v any) error {
	return json.Unmarshal(d.Data, v)
}
