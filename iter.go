package schematree

import log "github.com/golang/glog"

// iterKeys drives a NodeIterator's probe: a fixed-capacity index stack
// read positionally, that never reports KeyTooLong regardless of how
// many entries remain unread. It is the Go stand-in for iter.rs's
// `Consume` wrapper, whose own `is_empty()` always answers true so a
// probe that reaches a leaf before exhausting the stack still finalizes
// cleanly.
type iterKeys struct {
	state []int
	pos   int
}

func (k *iterKeys) Next(internal *Internal) (int, error) {
	if k.pos >= len(k.state) {
		return 0, &KeyError{Kind: KeyTooShort}
	}
	idx := k.state[k.pos]
	k.pos++
	if idx < 0 || idx >= internal.Len() {
		return 0, &KeyError{Kind: KeyNotFound}
	}
	return idx, nil
}

func (k *iterKeys) Finalize() error { return nil }

// ToKeys resets pos and returns k itself: Transcode implementations
// that call ToKeys more than once per descent (e.g. Track, which
// re-walks the same path to count its depth) get a fresh, correctly
// positioned cursor each time rather than picking up where a prior
// descent left off.
func (k *iterKeys) ToKeys() Keys {
	k.pos = 0
	return k
}

// NodeIterator enumerates every leaf reachable from a Schema in
// depth-first, child-index order, producing one N per leaf. It is the
// translation of iter.rs's `NodeIter`: a fixed-capacity index stack
// stands in for `Indices<[usize; D]>`, and the reset-and-bump loop in
// Next below reproduces `NodeIter::next` hop for hop.
//
// N is rebuilt from scratch on every call via newN, mirroring the
// source's `N: Transcode + Default` bound (Go has no Default trait, so
// the zero-value constructor is supplied explicitly).
type NodeIterator[N Transcoder] struct {
	root  *Schema
	newN  func() N
	state []int
	depth int

	keys      iterKeys
	remaining int
	done      bool
}

// NewNodeIterator builds a NodeIterator over every leaf of root. maxDepth
// bounds the index stack and should be sized from root.Shape().MaxDepth;
// a schema deeper than maxDepth reports KeyTooShort at the offending
// level, which NodeIterator treats as exhaustion rather than looping
// forever.
func NewNodeIterator[N Transcoder](root *Schema, maxDepth int, newN func() N) *NodeIterator[N] {
	return &NodeIterator[N]{
		root:      root,
		newN:      newN,
		state:     make([]int, maxDepth),
		depth:     maxDepth + 1, // sentinel: suppresses the bump on the very first Next
		remaining: root.Shape().Count,
	}
}

// Remaining returns the trusted exact count of leaves not yet visited,
// the Go equivalent of the source's size_hint: it starts at
// Shape.Count and is decremented once per item Next returns, success or
// overflow alike.
func (it *NodeIterator[N]) Remaining() int {
	return it.remaining
}

// Next advances the iterator. ok is false once iteration is exhausted,
// and stays false on every subsequent call (fused). When ok is true and
// overflow is false, value holds the freshly transcoded leaf and depth
// its distance from the root. When ok is true and overflow is true, N
// could not hold the keys reached at depth and value is the N whose
// Transcode failed, holding whatever it wrote before running out of
// room; the caller decides whether to abort.
func (it *NodeIterator[N]) Next() (value N, depth int, overflow bool, ok bool) {
	if it.done {
		return value, 0, false, false
	}
	for {
		if it.depth == 0 {
			it.done = true
			return value, 0, false, false
		}
		if it.depth <= len(it.state) {
			it.state[it.depth-1]++
		}
		it.keys = iterKeys{state: it.state}
		n := it.newN()
		err := n.Transcode(it.root, &it.keys)
		switch e := err.(type) {
		case nil:
			it.depth = it.keys.pos
			it.decrementRemaining()
			return n, it.keys.pos, false, true
		case *InnerError:
			_ = e
			it.decrementRemaining()
			return n, it.keys.pos, true, true
		case *KeyError:
			if e.Kind == KeyNotFound || e.Kind == KeyInvalid || e.Kind == KeyTooShort {
				d := it.keys.pos
				if d == 0 {
					d = 1
				}
				if log.V(2) {
					log.V(2).Infof("schematree: iterator reset depth=%d bump-to=%d", d, d-1)
				}
				it.state[d-1] = 0
				it.depth = d - 1
				continue
			}
			// KeyTooLong: unreachable, iterKeys.Finalize never reports it.
			it.done = true
			return value, 0, false, false
		default:
			it.done = true
			return value, 0, false, false
		}
	}
}

func (it *NodeIterator[N]) decrementRemaining() {
	if it.remaining > 0 {
		it.remaining--
	}
}
