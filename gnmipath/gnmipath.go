// Package gnmipath gives a configuration tree a wire-native key
// representation: a *gnmi.Path the way a gNMI target or collector
// already speaks it, alongside the string/index/packed forms the core
// package defines directly. Its string-to-structured-path handling
// follows util.stringToStructuredPath/extractKV in the teacher
// (openconfig-ygot/util/pathstrings.go), adapted from a one-shot parser
// into the token-at-a-time shape schematree.Keys needs.
package gnmipath

import (
	"strconv"

	gnmipb "github.com/openconfig/gnmi/proto/gnmi"

	schematree "github.com/openconfig/schematree"
)

// GNMIPath is an IntoKeys wrapping an existing *gnmi.Path: each PathElem
// addresses one level, by its Name field. PathElem.Key predicates are a
// YANG list-key concept with no counterpart in a schematree.Schema, and
// are preserved on the structured path but otherwise ignored during
// traversal.
type GNMIPath struct {
	Path *gnmipb.Path
}

type gnmiPathKeys struct {
	elem []*gnmipb.PathElem
	pos  int
}

func (k *gnmiPathKeys) Next(internal *schematree.Internal) (int, error) {
	if k.pos >= len(k.elem) {
		return 0, &schematree.KeyError{Kind: schematree.KeyTooShort}
	}
	name := k.elem[k.pos].GetName()
	k.pos++
	return schematree.NameKey(name).Resolve(internal)
}

func (k *gnmiPathKeys) Finalize() error {
	if k.pos < len(k.elem) {
		return &schematree.KeyError{Kind: schematree.KeyTooLong}
	}
	return nil
}

// ToKeys implements schematree.IntoKeys.
func (g GNMIPath) ToKeys() schematree.Keys {
	var elem []*gnmipb.PathElem
	if g.Path != nil {
		elem = g.Path.GetElem()
	}
	return &gnmiPathKeys{elem: elem}
}

// StructuredPath is a Transcoder target building a fresh *gnmi.Path: one
// PathElem per internal hop, named after the child's schema name or, for
// Numbered/Homogeneous internals, its decimal index -- the same
// name-or-index rule schematree.Path's transcoder uses.
type StructuredPath struct {
	Path *gnmipb.Path
}

// NewStructuredPath returns an empty StructuredPath.
func NewStructuredPath() *StructuredPath {
	return &StructuredPath{Path: &gnmipb.Path{}}
}

// Transcode implements schematree.Transcoder.
func (sp *StructuredPath) Transcode(schema *schematree.Schema, keys schematree.IntoKeys) error {
	sp.Path = &gnmipb.Path{}
	return schema.Descend(keys.ToKeys(), func(_ *schematree.Schema, step *schematree.Step) error {
		if step == nil {
			return nil
		}
		name, ok := step.Internal.Name(step.Index)
		if !ok {
			name = strconv.Itoa(step.Index)
		}
		sp.Path.Elem = append(sp.Path.Elem, &gnmipb.PathElem{Name: name})
		return nil
	})
}
