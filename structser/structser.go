// Package structser is a schematree.Serializer/Deserializer pair backed
// by protobuf's well-known value types, for callers that want a leaf's
// value as a proto.Message rather than a JSON byte string -- e.g. to
// embed directly in a gNMI TypedValue alongside gnmipath's structured
// paths. Common scalar leaves round-trip through the matching
// google.golang.org/protobuf/types/known/wrapperspb message; anything
// else falls back to structpb.Value, the dynamic-JSON-like protobuf
// representation.
package structser

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Encoder captures one leaf value as a proto.Message: a wrapperspb
// scalar wrapper when v is one of the common scalar Go types, or a
// structpb.Value otherwise.
type Encoder struct {
	Message proto.Message
}

// Encode implements schematree.Serializer.
func (e *Encoder) Encode(v any) error {
	switch t := v.(type) {
	case bool:
		e.Message = wrapperspb.Bool(t)
	case string:
		e.Message = wrapperspb.String(t)
	case int:
		e.Message = wrapperspb.Int64(int64(t))
	case int32:
		e.Message = wrapperspb.Int32(t)
	case int64:
		e.Message = wrapperspb.Int64(t)
	case uint:
		e.Message = wrapperspb.UInt64(uint64(t))
	case uint32:
		e.Message = wrapperspb.UInt32(t)
	case uint64:
		e.Message = wrapperspb.UInt64(t)
	case float32:
		e.Message = wrapperspb.Float(t)
	case float64:
		e.Message = wrapperspb.Double(t)
	case []byte:
		e.Message = wrapperspb.Bytes(t)
	default:
		val, err := toStructValue(v)
		if err != nil {
			return err
		}
		e.Message = val
	}
	return nil
}

// toStructValue converts an arbitrary Go value to a structpb.Value by
// round-tripping it through encoding/json: structpb.NewValue itself only
// accepts bool/numeric/string/[]byte/map/slice/nil, too narrow for an
// arbitrary leaf struct.
func toStructValue(v any) (*structpb.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err
	}
	return structpb.NewValue(generic)
}

// Decoder replays a previously captured proto.Message into a leaf.
type Decoder struct {
	Message proto.Message
}

// NewDecoder wraps message as a Decoder.
func NewDecoder(message proto.Message) *Decoder {
	return &Decoder{Message: message}
}

// Decode implements schematree.Deserializer.
func (d *Decoder) Decode(v any) error {
	switch m := d.Message.(type) {
	case nil:
		return fmt.Errorf("structser: no value to decode")
	case *wrapperspb.BoolValue:
		p, ok := v.(*bool)
		if !ok {
			return fmt.Errorf("structser: can't decode bool into %T", v)
		}
		*p = m.Value
		return nil
	case *wrapperspb.StringValue:
		p, ok := v.(*string)
		if !ok {
			return fmt.Errorf("structser: can't decode string into %T", v)
		}
		*p = m.Value
		return nil
	case *wrapperspb.Int32Value:
		return decodeInt64(int64(m.Value), v)
	case *wrapperspb.Int64Value:
		return decodeInt64(m.Value, v)
	case *wrapperspb.UInt32Value:
		return decodeUint64(uint64(m.Value), v)
	case *wrapperspb.UInt64Value:
		return decodeUint64(m.Value, v)
	case *wrapperspb.FloatValue:
		return decodeFloat64(float64(m.Value), v)
	case *wrapperspb.DoubleValue:
		return decodeFloat64(m.Value, v)
	case *wrapperspb.BytesValue:
		p, ok := v.(*[]byte)
		if !ok {
			return fmt.Errorf("structser: can't decode bytes into %T", v)
		}
		*p = m.Value
		return nil
	case *structpb.Value:
		b, err := m.MarshalJSON()
		if err != nil {
			return err
		}
		return json.Unmarshal(b, v)
	default:
		return fmt.Errorf("structser: unsupported message type %T", d.Message)
	}
}

func decodeInt64(value int64, v any) error {
	switch p := v.(type) {
	case *int:
		*p = int(value)
	case *int32:
		*p = int32(value)
	case *int64:
		*p = value
	default:
		return fmt.Errorf("structser: can't decode int64 into %T", v)
	}
	return nil
}

func decodeUint64(value uint64, v any) error {
	switch p := v.(type) {
	case *uint:
		*p = uint(value)
	case *uint32:
		*p = uint32(value)
	case *uint64:
		*p = value
	default:
		return fmt.Errorf("structser: can't decode uint64 into %T", v)
	}
	return nil
}

func decodeFloat64(value float64, v any) error {
	switch p := v.(type) {
	case *float32:
		*p = float32(value)
	case *float64:
		*p = value
	default:
		return fmt.Errorf("structser: can't decode float64 into %T", v)
	}
	return nil
}
