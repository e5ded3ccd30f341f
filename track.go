package schematree

// Track wraps a Transcoder, forwarding every Transcode call to Inner
// while additionally recording the depth reached and whether the
// descent ended on a leaf. It is a pure Transcode decorator (spec's
// own collapsing of the source's overlapping iterator-depth-tracking
// variants into one composable wrapper, see DESIGN.md).
type Track[N Transcoder] struct {
	Inner N
	Depth int
	Leaf  bool
}

// NewTrack wraps inner as a Track.
func NewTrack[N Transcoder](inner N) *Track[N] {
	return &Track[N]{Inner: inner}
}

// Transcode delegates to Inner.Transcode, then records the depth and
// leaf/internal classification of the node reached.
func (t *Track[N]) Transcode(schema *Schema, keys IntoKeys) error {
	t.Depth = 0
	t.Leaf = false
	node, err := schema.Get(keys)
	if err != nil {
		return err
	}
	t.Leaf = node.IsLeaf()
	depth := 0
	countErr := schema.Descend(keys.ToKeys(), func(_ *Schema, step *Step) error {
		if step != nil {
			depth++
		}
		return nil
	})
	if countErr != nil {
		return countErr
	}
	t.Depth = depth
	return t.Inner.Transcode(schema, keys)
}

// Short wraps a Track (or any Transcoder), behaving exactly like
// Transcode except that a structural *KeyError of kind KeyTooShort is
// treated as success rather than an error: the wrapped Inner's partial
// state (reached as far as the available keys allowed) is kept as-is.
// This is what lets a caller probe "is this key at least this deep"
// without the whole key sequence resolving all the way to a leaf.
// NodeIterator does not use it; it bounds its own depth with a
// fixed-size index stack.
type Short[N Transcoder] struct {
	Inner N
}

// NewShort wraps inner as a Short.
func NewShort[N Transcoder](inner N) *Short[N] {
	return &Short[N]{Inner: inner}
}

func (s *Short[N]) Transcode(schema *Schema, keys IntoKeys) error {
	err := s.Inner.Transcode(schema, keys)
	if err == nil {
		return nil
	}
	var ke *KeyError
	if ok := asKeyError(err, &ke); ok && ke.Kind == KeyTooShort {
		return nil
	}
	return err
}
