// Package schematree exposes a strongly-typed, heterogeneous,
// hierarchical configuration tree as an addressable namespace of leaf
// values, translated from quartiq/miniconf's TreeKey/TreeSchema design.
package schematree

import (
	"sync"

	log "github.com/golang/glog"

	"github.com/openconfig/schematree/internal/nameindex"
)

// Meta is key/value metadata attached to a node, either "inner" (the
// node's own documentation/constraints) or "outer" (attached to the edge
// leading to a child from its parent's Internal entry).
type Meta map[string]string

// InternalKind discriminates the three internal-node shapes a Schema can
// carry, standing in for the Rust source's `enum Internal`.
type InternalKind int

const (
	// KindNamed is a non-empty ordered list of named children.
	KindNamed InternalKind = iota
	// KindNumbered is a non-empty ordered list of heterogeneous children
	// addressed positionally (tuples).
	KindNumbered
	// KindHomogeneous is a fixed-length run of children sharing one
	// schema (arrays).
	KindHomogeneous
)

// Named is one child entry of a KindNamed Internal.
type Named struct {
	Name   string
	Schema *Schema
	Meta   Meta
}

// Numbered is one child entry of a KindNumbered Internal.
type Numbered struct {
	Schema *Schema
	Meta   Meta
}

// Homogeneous describes the single shared child schema and length of a
// KindHomogeneous Internal.
type Homogeneous struct {
	Len    int
	Schema *Schema
	Meta   Meta
}

// Internal describes the children of an internal (non-leaf) Schema node.
// Exactly one of the Named/Numbered/Homogeneous fields is meaningful,
// selected by Kind. An Internal always has at least one child; empty
// internal nodes are forbidden by NewNamed/NewNumbered/NewHomogeneous.
type Internal struct {
	Kind        InternalKind
	Named       []Named
	Numbered    []Numbered
	Homogeneous Homogeneous

	names *nameindex.Index // lazily built, KindNamed only
	once  sync.Once
}

// NewNamed builds a KindNamed Internal. It panics if entries is empty,
// mirroring the source's invariant that internal nodes are never empty.
func NewNamed(entries ...Named) *Internal {
	if len(entries) == 0 {
		panic("schematree: Named internal must have at least one child")
	}
	return &Internal{Kind: KindNamed, Named: entries}
}

// NewNumbered builds a KindNumbered Internal. It panics if entries is
// empty.
func NewNumbered(entries ...Numbered) *Internal {
	if len(entries) == 0 {
		panic("schematree: Numbered internal must have at least one child")
	}
	return &Internal{Kind: KindNumbered, Numbered: entries}
}

// NewHomogeneous builds a KindHomogeneous Internal. It panics if len <= 0.
func NewHomogeneous(length int, schema *Schema, meta Meta) *Internal {
	if length <= 0 {
		panic("schematree: Homogeneous internal must have a positive length")
	}
	return &Internal{Kind: KindHomogeneous, Homogeneous: Homogeneous{Len: length, Schema: schema, Meta: meta}}
}

// Len returns the number of direct child nodes.
func (in *Internal) Len() int {
	switch in.Kind {
	case KindNamed:
		return len(in.Named)
	case KindNumbered:
		return len(in.Numbered)
	case KindHomogeneous:
		return in.Homogeneous.Len
	default:
		return 0
	}
}

// ChildSchema returns the schema of the child at idx. It panics if idx is
// out of bounds.
func (in *Internal) ChildSchema(idx int) *Schema {
	switch in.Kind {
	case KindNamed:
		return in.Named[idx].Schema
	case KindNumbered:
		return in.Numbered[idx].Schema
	case KindHomogeneous:
		return in.Homogeneous.Schema
	default:
		panic("schematree: empty Internal")
	}
}

// ChildMeta returns the outer metadata for the child at idx.
func (in *Internal) ChildMeta(idx int) Meta {
	switch in.Kind {
	case KindNamed:
		return in.Named[idx].Meta
	case KindNumbered:
		return in.Numbered[idx].Meta
	case KindHomogeneous:
		return in.Homogeneous.Meta
	default:
		return nil
	}
}

// Name returns the name of the child at idx, and whether this Internal
// carries names at all (only KindNamed does; Numbered/Homogeneous
// children are identified by their decimal index, not a name).
func (in *Internal) Name(idx int) (string, bool) {
	if in.Kind != KindNamed {
		return "", false
	}
	return in.Named[idx].Name, true
}

// IndexOf resolves a name to a child index: exact lookup for KindNamed,
// decimal parse plus bounds check for KindNumbered/KindHomogeneous.
func (in *Internal) IndexOf(name string) (int, bool) {
	switch in.Kind {
	case KindNamed:
		in.once.Do(func() {
			names := make([]string, len(in.Named))
			for i, n := range in.Named {
				names[i] = n.Name
			}
			in.names = nameindex.New(names)
		})
		return in.names.Lookup(name)
	case KindNumbered, KindHomogeneous:
		i, err := parseDecimalIndex(name)
		if err != nil || i < 0 || i >= in.Len() {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func parseDecimalIndex(s string) (int, error) {
	if s == "" {
		return 0, &KeyError{Kind: KeyInvalid}
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &KeyError{Kind: KeyInvalid}
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// Schema describes exactly one node of a configuration tree: its own
// (inner) metadata, and, unless it is a leaf, the Internal describing its
// children.
type Schema struct {
	Meta     Meta
	Internal *Internal // nil for a leaf
}

// LeafSchema is a Schema with no children.
func LeafSchema(meta Meta) *Schema {
	return &Schema{Meta: meta}
}

// IsLeaf reports whether s has no children.
func (s *Schema) IsLeaf() bool {
	return s.Internal == nil
}

// Len returns the number of direct children, 0 for a leaf.
func (s *Schema) Len() int {
	if s.Internal == nil {
		return 0
	}
	return s.Internal.Len()
}

// Next consumes one token from keys and resolves it against s's
// Internal. It panics if s is a leaf, mirroring the source's
// documented panic-on-leaf contract for Schema::next.
func (s *Schema) Next(keys Keys) (int, error) {
	if s.Internal == nil {
		panic("schematree: Next called on a leaf Schema")
	}
	return keys.Next(s.Internal)
}

// Step describes one internal hop made during a Descend call.
type Step struct {
	Index    int
	Internal *Internal
}

// Descend walks from s toward a leaf, consuming keys at each internal
// node and invoking visit once per node on the path (internal nodes with
// a non-nil Step, the terminal leaf with a nil Step). Returning a non-nil
// error from visit aborts the descent and is propagated wrapped in
// *InnerError; a structural failure resolving keys is returned directly
// as a *KeyError.
func (s *Schema) Descend(keys Keys, visit func(schema *Schema, step *Step) error) error {
	cur := s
	for cur.Internal != nil {
		idx, err := keys.Next(cur.Internal)
		if err != nil {
			return err
		}
		step := &Step{Index: idx, Internal: cur.Internal}
		if log.V(2) {
			log.V(2).Infof("schematree: descend index=%d len=%d", idx, cur.Internal.Len())
		}
		if err := visit(cur, step); err != nil {
			return &InnerError{Err: err}
		}
		cur = cur.Internal.ChildSchema(idx)
	}
	if err := keys.Finalize(); err != nil {
		return err
	}
	if err := visit(cur, nil); err != nil {
		return &InnerError{Err: err}
	}
	return nil
}

// Get returns the Schema of the node identified by keys.
func (s *Schema) Get(keys IntoKeys) (*Schema, error) {
	var found *Schema
	err := s.Descend(keys.ToKeys(), func(schema *Schema, _ *Step) error {
		found = schema
		return nil
	})
	if err != nil {
		return nil, unwrapInner(err)
	}
	return found, nil
}

// GetMeta returns the outer (edge) and inner (node) metadata of the node
// identified by keys. outer is nil when keys identifies the root.
func (s *Schema) GetMeta(keys IntoKeys) (outer Meta, inner Meta, err error) {
	err = s.Descend(keys.ToKeys(), func(schema *Schema, step *Step) error {
		if step != nil {
			outer = step.Internal.ChildMeta(step.Index)
		}
		inner = schema.Meta
		return nil
	})
	if err != nil {
		return nil, nil, unwrapInner(err)
	}
	return outer, inner, nil
}

// Transcode builds a new N by descending s driven by keys. It is a
// convenience wrapper around (*N).Transcode for callers that don't
// already hold a live N value.
func Transcode[N Transcoder](schema *Schema, keys IntoKeys, newN func() N) (N, error) {
	n := newN()
	err := n.Transcode(schema, keys)
	return n, err
}

// Shape returns the statically derivable metadata (counts, depths,
// widths) of the subtree rooted at s.
func (s *Schema) Shape() Shape {
	return newShape(s)
}

// unwrapInner strips the *InnerError wrapper Descend adds around visit
// failures, returning the original error it wrapped (here always nil
// since Get/GetMeta's visit functions never fail) or the structural
// KeyError/ValueError untouched.
func unwrapInner(err error) error {
	if ie, ok := err.(*InnerError); ok {
		return ie.Err
	}
	return err
}
