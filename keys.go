package schematree

// Key is one atomic token of an address: either an integer index or a
// name, resolved against the Internal of the node currently being
// descended into.
type Key interface {
	// Resolve converts the token to a 0-based child index against
	// internal, or returns a *KeyError (KeyNotFound or KeyInvalid).
	Resolve(internal *Internal) (int, error)
}

// IndexKey is an integer Key, resolved by bounds-checking against
// Internal.Len().
type IndexKey int

func (k IndexKey) Resolve(internal *Internal) (int, error) {
	i := int(k)
	if i < 0 || i >= internal.Len() {
		return 0, &KeyError{Kind: KeyNotFound}
	}
	return i, nil
}

// NameKey is a string Key: exact name lookup against a Named internal,
// or decimal parse plus bounds check against Numbered/Homogeneous.
type NameKey string

func (k NameKey) Resolve(internal *Internal) (int, error) {
	i, ok := internal.IndexOf(string(k))
	if !ok {
		if internal.Kind != KindNamed {
			if _, err := parseDecimalIndex(string(k)); err != nil {
				return 0, &KeyError{Kind: KeyInvalid}
			}
		}
		return 0, &KeyError{Kind: KeyNotFound}
	}
	return i, nil
}

// Keys is a cursor over a key sequence (§3.3). next is passed the
// current Internal so that the same cursor type works for index-typed
// tokens (which ignore it) and name-typed tokens (which use it to
// resolve a name).
type Keys interface {
	// Next consumes one token and resolves it against internal, or
	// returns an error (*KeyError with KeyTooShort, KeyNotFound, or
	// KeyInvalid).
	Next(internal *Internal) (int, error)
	// Finalize succeeds iff all remaining tokens are exhausted;
	// otherwise it returns a *KeyError with KeyTooLong.
	Finalize() error
}

// IntoKeys converts an owned or borrowed value into a Keys, the same
// relationship an iterable bears to an iterator.
type IntoKeys interface {
	ToKeys() Keys
}

// sliceKeys is the blanket Keys implementation backing KeysOf: a cursor
// over a pre-built []Key, holding no state beyond its read position.
type sliceKeys struct {
	items []Key
	pos   int
}

func (s *sliceKeys) Next(internal *Internal) (int, error) {
	if s.pos >= len(s.items) {
		return 0, &KeyError{Kind: KeyTooShort}
	}
	idx, err := s.items[s.pos].Resolve(internal)
	s.pos++
	return idx, err
}

func (s *sliceKeys) Finalize() error {
	if s.pos < len(s.items) {
		return &KeyError{Kind: KeyTooLong}
	}
	return nil
}

// keysOf is an IntoKeys wrapping a fixed []Key slice.
type keysOf struct{ items []Key }

func (k keysOf) ToKeys() Keys { return &sliceKeys{items: k.items} }

// KeysOf builds an IntoKeys from an explicit list of Key tokens.
func KeysOf(items ...Key) IntoKeys {
	return keysOf{items: items}
}

// IndicesKeys is a plain []int IntoKeys: every element is an IndexKey.
type IndicesKeys []int

func (idx IndicesKeys) ToKeys() Keys {
	items := make([]Key, len(idx))
	for i, v := range idx {
		items[i] = IndexKey(v)
	}
	return &sliceKeys{items: items}
}

// Names is a plain []string IntoKeys: every element is a NameKey. Unlike
// Path, it does not parse a separator-joined string; each slice element
// is already one token.
type Names []string

func (n Names) ToKeys() Keys {
	items := make([]Key, len(n))
	for i, v := range n {
		items[i] = NameKey(v)
	}
	return &sliceKeys{items: items}
}

// chainedKeys drives a through to exhaustion, then falls through to b.
// It is the cursor backing ChainKeys, grounded on miniconf_menu's
// `self.key.chain(&path)` (original_source/miniconf_menu/src/lib.rs),
// which composes a fixed subtree root with fresh user input the same
// way Rust's Iterator::chain composes two key iterators.
type chainedKeys struct {
	a, b    Keys
	inFirst bool
}

func (c *chainedKeys) Next(internal *Internal) (int, error) {
	if c.inFirst {
		idx, err := c.a.Next(internal)
		if err == nil {
			return idx, nil
		}
		var ke *KeyError
		if ok := asKeyError(err, &ke); ok && ke.Kind == KeyTooShort {
			c.inFirst = false
			return c.b.Next(internal)
		}
		return 0, err
	}
	return c.b.Next(internal)
}

func (c *chainedKeys) Finalize() error {
	return c.b.Finalize()
}

func asKeyError(err error, target **KeyError) bool {
	ke, ok := err.(*KeyError)
	if ok {
		*target = ke
	}
	return ok
}

type chainKeysOf struct{ a, b IntoKeys }

func (c chainKeysOf) ToKeys() Keys {
	return &chainedKeys{a: c.a.ToKeys(), b: c.b.ToKeys(), inFirst: true}
}

// ChainKeys composes a (e.g. a fixed subtree root) with b (e.g. fresh
// user input) into a single IntoKeys: a is consumed first, and once it
// is exhausted (KeyTooShort) b takes over for the remaining tokens.
func ChainKeys(a, b IntoKeys) IntoKeys {
	return chainKeysOf{a: a, b: b}
}
