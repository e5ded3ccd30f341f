package schematree

import "math/bits"

// wordBits is the number of bits in the uint word backing Packed, the Go
// stand-in for Rust's usize::BITS / NonZeroUsize::BITS.
const wordBits = bits.UintSize

// PackedCapacity is the number of bits Packed can store, one less than
// the word width: the remaining bit always carries the end-of-data
// marker described on Packed.
const PackedCapacity = wordBits - 1

// PackedEmpty is the representation of a Packed holding no indices: the
// marker sits at the word's MSB and no data bits are set.
const PackedEmpty Packed = 1 << PackedCapacity

// Packed is a bit-packed representation of a sequence of small
// non-negative indices, the direct translation of
// original_source/miniconf/src/packed.rs's `Packed(NonZeroUsize)`.
//
// The value consists of, from storage MSB to LSB:
//   - zero or more groups of variable bit length, concatenated, each
//     holding the index at one TreeSchema level (the deepest level last)
//   - a single set bit marking the end of the used bits
//   - zero or more cleared bits corresponding to unused index space
//
// PackedEmpty has the marker at the MSB. PushLSB inserts new values with
// their own MSB where the marker was and moves the marker toward the
// storage LSB. PopMSB removes values with their MSB aligned to the
// storage MSB and moves the marker back toward the storage MSB.
//
// The representation is MSB-aligned so that Packed's natural ordering
// matches depth-first tree traversal order, and is stable under adding
// new nodes to the tree as long as no new bits need to be allocated.
type Packed uint

// IsEmpty reports whether p holds no indices.
func (p Packed) IsEmpty() bool {
	return p == PackedEmpty
}

// Clear discards all bits stored in p.
func (p *Packed) Clear() {
	*p = PackedEmpty
}

// Len returns the number of bits currently stored in p.
func (p Packed) Len() uint32 {
	return uint32(PackedCapacity) - uint32(bits.TrailingZeros(uint(p)))
}

// IntoLSB returns p's representation aligned to the LSB, with the marker
// bit moved from its MSB-relative position to the word's MSB.
func (p Packed) IntoLSB() uint {
	tz := bits.TrailingZeros(uint(p))
	return ((uint(p) >> 1) | (1 << PackedCapacity)) >> uint(tz)
}

// FromLSB builds a Packed from an IntoLSB-style representation, moving
// the marker bit from the word's MSB back to its MSB-relative position.
func FromLSB(value uint) Packed {
	lz := bits.LeadingZeros(value)
	return Packed(((value << 1) | 1) << uint(lz))
}

// bitsFor returns the number of bits needed to represent num, with a
// floor of one bit (an Internal of length 1 still consumes a token).
// Ported from Packed::bits_for: (BITS - num.leading_zeros()).max(1).
func bitsFor(num int) uint32 {
	v := uint32(wordBits) - uint32(bits.LeadingZeros(uint(num)))
	if v < 1 {
		return 1
	}
	return v
}

// BitsFor returns the number of bits Packed needs to address one index
// into an Internal of length internalLen.
func BitsFor(internalLen int) uint32 {
	n := internalLen - 1
	if n < 0 {
		n = 0
	}
	return bitsFor(n)
}

// PopMSB removes and returns the oldest-pushed nbits-bit value stored in
// p (the group nearest the storage MSB). It reports false, leaving p
// unmodified, if p does not hold at least nbits bits.
func (p *Packed) PopMSB(nbits uint32) (int, bool) {
	s := uint(*p)
	shifted := s << nbits
	if shifted == 0 {
		return 0, false
	}
	*p = Packed(shifted)
	extracted := (s >> (PackedCapacity - nbits)) >> 1
	return int(extracted), true
}

// PushLSB appends the low nbits bits of value as the new LSB-most group,
// growing the used region toward the storage LSB. It reports false,
// leaving p unmodified, if there is not enough remaining capacity.
func (p *Packed) PushLSB(nbits uint32, value uint) bool {
	n := uint32(bits.TrailingZeros(uint(*p)))
	oldMarker := uint(1) << n
	newMarker := oldMarker >> nbits
	if newMarker == 0 {
		return false
	}
	n -= nbits
	*p = Packed((uint(*p) ^ oldMarker) | ((value << n) << 1) | newMarker)
	return true
}

// Next implements Keys for Packed directly (it is simultaneously a
// Transcode target and a usable key source): it pops
// bits_for(internal.len() - 1) bits and uses them as the child index.
func (p *Packed) Next(internal *Internal) (int, error) {
	nbits := BitsFor(internal.Len())
	idx, ok := p.PopMSB(nbits)
	if !ok {
		return 0, &KeyError{Kind: KeyTooShort}
	}
	if idx >= internal.Len() {
		return 0, &KeyError{Kind: KeyNotFound}
	}
	return idx, nil
}

// Finalize succeeds iff p has no data bits left, i.e. is empty.
func (p *Packed) Finalize() error {
	if !p.IsEmpty() {
		return &KeyError{Kind: KeyTooLong}
	}
	return nil
}

// ToKeys lets a Packed value be used directly as an IntoKeys: the cursor
// is a private copy, so the original value is untouched by descent.
func (p Packed) ToKeys() Keys {
	cp := p
	return &cp
}

// Transcode implements Transcoder for Packed: it resets p and pushes,
// for every internal hop made during the descent, bits_for(len-1) bits
// encoding the index taken at that hop. There is no dedicated Transcode
// impl for Packed in the key_impls.rs this was ported from (only Keys
// and IntoKeys); this method follows the same descend-and-accumulate
// shape as that file's Indices/slice Transcode impls, adapted from
// index-array writes to PushLSB calls.
func (p *Packed) Transcode(schema *Schema, keys IntoKeys) error {
	p.Clear()
	return schema.Descend(keys.ToKeys(), func(_ *Schema, step *Step) error {
		if step == nil {
			return nil
		}
		nbits := BitsFor(step.Internal.Len())
		if !p.PushLSB(nbits, uint(step.Index)) {
			return errPackedOverflow
		}
		return nil
	})
}

// errPackedOverflow reports that a Transcode into Packed ran out of bits.
type packedOverflowError struct{}

func (packedOverflowError) Error() string { return "schematree: Packed capacity exceeded" }

var errPackedOverflow = packedOverflowError{}

// Chain composes p as a fixed subtree root with other as fresh
// remaining input, mirroring miniconf_menu's
// `self.key.chain(&Path::from(path))`
// (original_source/miniconf_menu/src/lib.rs), which composes a stored
// menu-selection key with freshly typed user input the same way
// Rust's Iterator::chain composes two key sequences.
func (p Packed) Chain(other IntoKeys) IntoKeys {
	return ChainKeys(p, other)
}
