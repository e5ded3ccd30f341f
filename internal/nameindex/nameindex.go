// Package nameindex resolves the name tokens of a Named schema internal
// node to child indices.
//
// A linear scan over a handful of field names is fine, but schematree
// also wants abbreviated/partial name matching the way miniconf's scpi
// example describes for its own Keys implementations. A trie gives us
// both exact lookup and prefix queries for the same cost, so it replaces
// the source's linear []Named scan.
package nameindex

import (
	"github.com/derekparker/trie"
)

// Index maps field names to child indices for one Named internal node.
type Index struct {
	t *trie.Trie
}

// New builds an Index from an ordered list of names. Names must be
// pairwise distinct; the first registration for a given name wins, the
// same precedence rule the linear scan it replaces uses.
func New(names []string) *Index {
	t := trie.New()
	for i, name := range names {
		if _, ok := t.Find(name); ok {
			continue
		}
		t.Add(name, i)
	}
	return &Index{t: t}
}

// Lookup resolves an exact name to its child index.
func (idx *Index) Lookup(name string) (int, bool) {
	node, ok := idx.t.Find(name)
	if !ok {
		return 0, false
	}
	i, ok := node.Meta().(int)
	return i, ok
}

// HasPrefix reports whether any registered name starts with prefix, the
// primitive an abbreviated-match Keys implementation builds on.
func (idx *Index) HasPrefix(prefix string) bool {
	return idx.t.HasKeysWithPrefix(prefix)
}
