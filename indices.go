package schematree

import (
	"golang.org/x/exp/constraints"
)

// Indices is a fixed-capacity slice of child indices identifying a node
// in a Schema, the Go translation of key_impls.rs's `Indices<T>`. Data
// is generic over any integer type (matching the source's blanket
// Indices<T: AsMut<[usize]>>, generalized here via
// golang.org/x/exp/constraints.Integer so narrower index storage, e.g.
// []uint8, is usable too) and backed by a fixed-capacity array supplied
// by the caller; Len tracks how many leading entries are in use.
type Indices[T constraints.Integer] struct {
	Data []T
	Len  int
}

// NewIndices wraps data (used as fixed backing storage; its capacity
// bounds the maximum depth this Indices can transcode) as an empty
// Indices.
func NewIndices[T constraints.Integer](data []T) *Indices[T] {
	return &Indices[T]{Data: data}
}

// AsRef returns the in-use prefix of Data.
func (ix *Indices[T]) AsRef() []T {
	return ix.Data[:ix.Len]
}

// ToKeys lets an already-populated Indices be used as fresh key input,
// e.g. to re-traverse the path it was transcoded from.
func (ix *Indices[T]) ToKeys() Keys {
	items := make([]Key, ix.Len)
	for i, v := range ix.AsRef() {
		items[i] = IndexKey(v)
	}
	return &sliceKeys{items: items}
}

// Transcode implements Transcoder: it resets Len to 0 and appends the
// index taken at each internal hop, failing if the descent is deeper
// than cap(Data).
func (ix *Indices[T]) Transcode(schema *Schema, keys IntoKeys) error {
	ix.Len = 0
	return schema.Descend(keys.ToKeys(), func(_ *Schema, step *Step) error {
		if step == nil {
			return nil
		}
		if ix.Len >= cap(ix.Data) {
			return errIndicesOverflow
		}
		if ix.Len >= len(ix.Data) {
			ix.Data = ix.Data[:ix.Len+1]
		}
		ix.Data[ix.Len] = T(step.Index)
		ix.Len++
		return nil
	})
}

type indicesOverflowError struct{}

func (indicesOverflowError) Error() string { return "schematree: Indices capacity exceeded" }

var errIndicesOverflow = indicesOverflowError{}
