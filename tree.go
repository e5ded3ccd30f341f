package schematree

// Serializer is the minimal backend contract TreeSerialize descends
// into at a leaf. It mirrors the shape of encoding/json's *Encoder and
// is deliberately that narrow: the core is parametric over any such
// pair, see jsonser and structser for two concrete implementations.
type Serializer interface {
	Encode(v any) error
}

// Deserializer is the minimal backend contract TreeDeserialize and
// ProbeByKey descend into at a leaf.
type Deserializer interface {
	Decode(v any) error
}

// TreeSchema is implemented by every type that exposes itself as a
// configuration-tree node. Schema returns the single static description
// of that node's shape; in idiomatic Rust this would be an associated
// const, but Go has no per-type consts, so it is a method instead,
// typically backed by a package-level singleton computed once.
type TreeSchema interface {
	Schema() *Schema
}

// TreeSerialize is read-only tree traversal: it borrows the receiver for
// the duration of the descent and never mutates it.
type TreeSerialize interface {
	TreeSchema
	// SerializeByKey descends toward the leaf identified by keys and
	// serializes its value with enc. A structural failure is returned as
	// a *KeyError; a runtime-absent subtree as a *ValueError; a backend
	// failure wrapped in *InnerError.
	SerializeByKey(keys Keys, enc Serializer) error
}

// TreeDeserialize is tree traversal requiring exclusive access: it
// mutates the leaf addressed by keys.
type TreeDeserialize interface {
	TreeSchema
	// DeserializeByKey descends toward the leaf identified by keys and
	// assigns it the value decoded from dec.
	DeserializeByKey(keys Keys, dec Deserializer) error
}

// TreeAny produces type-erased handles to leaf values, for callers that
// need raw access rather than (de)serialization.
type TreeAny interface {
	TreeSchema
	// RefAnyByKey returns a read-only erased handle to the leaf at keys.
	RefAnyByKey(keys Keys) (*ErasedValue, error)
	// MutAnyByKey returns a mutable erased handle to the leaf at keys.
	MutAnyByKey(keys Keys) (*ErasedValue, error)
}

// Transcoder is implemented by every Transcode target (Path, Indices,
// Packed, JSONPath, Track, Short, ...): a type that can be populated by
// descending through a Schema driven by a source Keys.
type Transcoder interface {
	// Transcode resets and populates the receiver by descending schema
	// under keys. It reports a structural *KeyError/*ValueError directly,
	// or the implementor's own error (e.g. a path buffer overflow)
	// wrapped in *InnerError.
	Transcode(schema *Schema, keys IntoKeys) error
}

// ptrTreeDeserialize is the pointer-method constraint trick that lets
// ProbeByKey construct a throwaway zero value of T without a live
// instance, the Go analogue of Rust's T::probe_by_key static dispatch.
type ptrTreeDeserialize[T any] interface {
	*T
	TreeDeserialize
}

// ProbeByKey blind-consumes a value of the type that would occupy the
// leaf identified by keys, without writing anywhere. Since Go has no
// static (receiverless) trait dispatch, this is expressed as decoding
// into a throwaway zero value of T and discarding it; T is inferred or
// supplied explicitly at the call site (schematree.ProbeByKey[MyTree]).
func ProbeByKey[T any, PT ptrTreeDeserialize[T]](keys Keys, dec Deserializer) error {
	var zero T
	return PT(&zero).DeserializeByKey(keys, dec)
}
