package schematree

// Shape is statically-derived metadata about a Schema subtree: sizes
// that can be computed once from the schema alone, without any runtime
// descent. Ported from original_source/miniconf/src/shape.rs's
// `Shape::new`.
type Shape struct {
	// MaxLength is the exact maximum length, in bytes, of the
	// concatenation of node names along any root-to-leaf path,
	// excluding separators. See (Shape).WithSeparator for the version
	// including separators.
	MaxLength int
	// MaxDepth is the exact maximum number of key tokens needed to
	// address any leaf.
	MaxDepth int
	// Count is the exact total number of leaf nodes.
	Count int
	// MaxBits is the maximum number of bits a Packed needs to address
	// any leaf.
	MaxBits uint32
}

// WithSeparator returns an upper bound on the maximum path length
// including separators, by adding MaxDepth*len(separator) to MaxLength.
func (sh Shape) WithSeparator(separator string) int {
	return sh.MaxLength + sh.MaxDepth*len(separator)
}

func assignMaxInt(a *int, b int) {
	if *a < b {
		*a = b
	}
}

func assignMaxU32(a *uint32, b uint32) {
	if *a < b {
		*a = b
	}
}

// decimalLen returns the number of decimal digits needed to print n
// (n >= 0), the Go equivalent of `1 + index.checked_ilog10()`.
func decimalLen(n int) int {
	if n < 10 {
		return 1
	}
	length := 0
	for n > 0 {
		length++
		n /= 10
	}
	return length
}

func newShape(schema *Schema) Shape {
	m := Shape{Count: 1}
	internal := schema.Internal
	if internal == nil {
		return m
	}
	switch internal.Kind {
	case KindNamed:
		bitsPerIndex := BitsFor(len(internal.Named))
		count := 0
		for _, named := range internal.Named {
			child := newShape(named.Schema)
			assignMaxInt(&m.MaxDepth, 1+child.MaxDepth)
			assignMaxInt(&m.MaxLength, len(named.Name)+child.MaxLength)
			assignMaxU32(&m.MaxBits, bitsPerIndex+child.MaxBits)
			count += child.Count
		}
		m.Count = count

	case KindNumbered:
		bitsPerIndex := BitsFor(len(internal.Numbered))
		count := 0
		for index, numbered := range internal.Numbered {
			child := newShape(numbered.Schema)
			assignMaxInt(&m.MaxDepth, 1+child.MaxDepth)
			assignMaxInt(&m.MaxLength, decimalLen(index)+child.MaxLength)
			assignMaxU32(&m.MaxBits, bitsPerIndex+child.MaxBits)
			count += child.Count
		}
		m.Count = count

	case KindHomogeneous:
		h := internal.Homogeneous
		child := newShape(h.Schema)
		m = child
		m.MaxDepth++
		m.MaxLength += decimalLen(h.Len - 1)
		m.MaxBits += BitsFor(h.Len)
		m.Count = child.Count * h.Len
	}
	return m
}
