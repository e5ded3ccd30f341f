package schematree

import (
	"strconv"
	"strings"
)

// JSONPath is a JSON-notation-styled path string, e.g. ".bar[4]" or
// "['bar'][4]". It is only styled after JSON property-access notation,
// not a conformant implementation of it: no escaping is supported and
// no conformance validation is attempted, matching
// original_source/miniconf/src/jsonpath.rs's own documented
// limitations.
//
// Supported key forms, freely mixable: ".name", "['name']", "[index]",
// ".'name'" (a quoted name following a bare dot), and a bare decimal
// token is accepted wherever a name is (".4" parses the same as
// "[4]").
type JSONPath struct {
	buf strings.Builder
}

// NewJSONPath returns an empty JSONPath.
func NewJSONPath() *JSONPath {
	return &JSONPath{}
}

// String returns the accumulated path.
func (jp *JSONPath) String() string {
	return jp.buf.String()
}

// Reset clears the accumulated path.
func (jp *JSONPath) Reset() {
	jp.buf.Reset()
}

// Transcode implements Transcoder: it resets jp and, for every internal
// hop made during the descent, appends ".name" if the child has a name,
// or "[index]" otherwise.
func (jp *JSONPath) Transcode(schema *Schema, keys IntoKeys) error {
	jp.Reset()
	return schema.Descend(keys.ToKeys(), func(_ *Schema, step *Step) error {
		if step == nil {
			return nil
		}
		if name, ok := step.Internal.Name(step.Index); ok {
			jp.buf.WriteByte('.')
			jp.buf.WriteString(name)
		} else {
			jp.buf.WriteByte('[')
			jp.buf.WriteString(strconv.Itoa(step.Index))
			jp.buf.WriteByte(']')
		}
		return nil
	})
}

// jsonPathIter is the Keys cursor parsing a JSONPath string token by
// token, the Go translation of jsonpath.rs's `Iterator for JsonPath`.
type jsonPathIter struct {
	rest string
}

// jsonPathPrefixes lists, in priority order, the (open, close) pairs
// jsonPathIter tries against the remaining input. close == "" means the
// token ends at the next '.' or '[' (or end of string), exclusive;
// otherwise the token ends at the first occurrence of close, which is
// then itself consumed.
var jsonPathPrefixes = []struct {
	open, close string
}{
	{".'", "'"},
	{".", ""},
	{"['", "']"},
	{"[", "]"},
}

func (it *jsonPathIter) advance() (string, bool) {
	for _, p := range jsonPathPrefixes {
		rest, ok := strings.CutPrefix(it.rest, p.open)
		if !ok {
			continue
		}
		if p.close == "" {
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			token := rest[:end]
			it.rest = rest[end:]
			return token, true
		}
		end := strings.Index(rest, p.close)
		if end < 0 {
			return "", false
		}
		token := rest[:end]
		it.rest = rest[end+len(p.close):]
		return token, true
	}
	return "", false
}

func (it *jsonPathIter) Next(internal *Internal) (int, error) {
	tok, ok := it.advance()
	if !ok {
		return 0, &KeyError{Kind: KeyTooShort}
	}
	return NameKey(tok).Resolve(internal)
}

func (it *jsonPathIter) Finalize() error {
	if _, ok := it.advance(); ok {
		return &KeyError{Kind: KeyTooLong}
	}
	return nil
}

// JSONPathString is an IntoKeys wrapping a raw JSON-notation path
// string for parsing, e.g. JSONPathString(".bar[4]").
type JSONPathString string

func (jp JSONPathString) ToKeys() Keys {
	return &jsonPathIter{rest: string(jp)}
}
