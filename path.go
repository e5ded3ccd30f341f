package schematree

import "strconv"

// Path is a separator-joined string representation of a key sequence,
// e.g. "/bar/4". Ported from
// original_source/miniconf/src/key_impls.rs's `Path<T, S>` (the `S`
// const-generic separator becomes an instance field, since Go has no
// const generics over a rune/byte).
//
// A Path is either empty or starts with its separator: everything
// before the first separator is ignored on parse, so paths can always
// be concatenated without the caller worrying about leading/trailing
// separators.
type Path struct {
	Separator byte
	buf        []byte
}

// NewPath returns an empty Path using separator as its hierarchy
// separator.
func NewPath(separator byte) *Path {
	return &Path{Separator: separator}
}

// String returns the accumulated path.
func (p *Path) String() string {
	return string(p.buf)
}

// Reset clears the accumulated path without changing the separator.
func (p *Path) Reset() {
	p.buf = p.buf[:0]
}

// Transcode implements Transcoder: it resets p and, for every internal
// hop made during the descent, appends the separator followed by the
// child's name (or its decimal index, if the Internal carries no
// names).
func (p *Path) Transcode(schema *Schema, keys IntoKeys) error {
	p.Reset()
	return schema.Descend(keys.ToKeys(), func(_ *Schema, step *Step) error {
		if step == nil {
			return nil
		}
		p.buf = append(p.buf, p.Separator)
		if name, ok := step.Internal.Name(step.Index); ok {
			p.buf = append(p.buf, name...)
		} else {
			p.buf = strconv.AppendInt(p.buf, int64(step.Index), 10)
		}
		return nil
	})
}

// pathIter is the Keys cursor splitting a Path string on its separator,
// the Go equivalent of key_impls.rs's `PathIter`. It skips everything up
// to and including the first separator, matching PathIter::root, so
// that a one-token Keys (e.g. `"/"`) and a zero-token Keys (e.g. `""`)
// remain distinguishable.
type pathIter struct {
	rest    string
	sep     byte
	started bool
	done    bool
}

func (it *pathIter) advance() (string, bool) {
	if !it.started {
		it.started = true
		if i := indexByte(it.rest, it.sep); i >= 0 {
			it.rest = it.rest[i+1:]
		} else {
			// No separator at all: nothing to yield, consistent with
			// PathIter::root calling next() once to discard everything
			// before (and including) the first separator.
			it.rest = ""
			it.done = true
			return "", false
		}
	}
	if it.done {
		return "", false
	}
	i := indexByte(it.rest, it.sep)
	if i < 0 {
		seg := it.rest
		it.rest = ""
		it.done = true
		return seg, true
	}
	seg := it.rest[:i]
	it.rest = it.rest[i+1:]
	return seg, true
}

func (it *pathIter) Next(internal *Internal) (int, error) {
	seg, ok := it.advance()
	if !ok {
		return 0, &KeyError{Kind: KeyTooShort}
	}
	return NameKey(seg).Resolve(internal)
}

func (it *pathIter) Finalize() error {
	if _, ok := it.advance(); ok {
		return &KeyError{Kind: KeyTooLong}
	}
	return nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// PathString is an IntoKeys wrapping a separator-joined path string
// (e.g. "/bar/4") together with the separator it was encoded with.
type PathString struct {
	Value     string
	Separator byte
}

func (ps PathString) ToKeys() Keys {
	return &pathIter{rest: ps.Value, sep: ps.Separator}
}
