package schematree

import "fmt"

// KeyErrorKind identifies the structural reason a key could not be
// resolved against a Schema.
type KeyErrorKind int

const (
	// KeyTooShort means the key stream was exhausted before a leaf was
	// reached.
	KeyTooShort KeyErrorKind = iota
	// KeyTooLong means the key stream still had tokens left after a leaf
	// was reached.
	KeyTooLong
	// KeyNotFound means a name or index token did not resolve against the
	// current Internal (name absent, index out of range).
	KeyNotFound
	// KeyInvalid means a token was malformed for the current Internal,
	// e.g. a non-decimal string against a Numbered or Homogeneous node.
	KeyInvalid
)

func (k KeyErrorKind) String() string {
	switch k {
	case KeyTooShort:
		return "too short"
	case KeyTooLong:
		return "too long"
	case KeyNotFound:
		return "not found"
	case KeyInvalid:
		return "invalid"
	default:
		return "unknown key error"
	}
}

// KeyError reports a structural failure resolving a key sequence against
// a Schema. Unlike the depth-carrying Traversal enum of the source this
// was ported from, KeyError carries no depth: callers that need depth
// (NodeIterator) reconstruct it from how far their own descent advanced.
type KeyError struct {
	Kind KeyErrorKind
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key error: %s", e.Kind)
}

// ValueErrorKind identifies why a well-formed key could not be used to
// read or write a runtime value.
type ValueErrorKind int

const (
	// ValueAbsent means the key is well-formed but the addressed subtree
	// is not present at runtime (an empty Option, see §3.5).
	ValueAbsent ValueErrorKind = iota
	// ValueAccess means the value exists but the implementation refuses
	// the operation (locked, poisoned, denied, out of range, wrong type).
	ValueAccess
)

func (k ValueErrorKind) String() string {
	switch k {
	case ValueAbsent:
		return "absent"
	case ValueAccess:
		return "access denied"
	default:
		return "unknown value error"
	}
}

// ValueError reports a failure to observe or mutate a runtime value at an
// otherwise well-formed key.
type ValueError struct {
	Kind   ValueErrorKind
	Reason string
}

func (e *ValueError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("value error: %s", e.Kind)
	}
	return fmt.Sprintf("value error: %s: %s", e.Kind, e.Reason)
}

// NewAccessError builds a ValueError of kind ValueAccess with the given
// static reason, the Go equivalent of Traversal::Access(reason).
func NewAccessError(reason string) *ValueError {
	return &ValueError{Kind: ValueAccess, Reason: reason}
}

// ErrAbsent is a convenience ValueError of kind ValueAbsent with no
// specific reason attached.
var ErrAbsent = &ValueError{Kind: ValueAbsent}

// InnerError wraps a failure from the user-supplied Serializer or
// Deserializer encountered while descending toward a leaf. It is the Go
// stand-in for SerdeError::Inner(E).
type InnerError struct {
	Err error
}

func (e *InnerError) Error() string {
	return fmt.Sprintf("(de)serialization error: %s", e.Err)
}

func (e *InnerError) Unwrap() error {
	return e.Err
}

// FinalizationError wraps a failure the Serializer/Deserializer reports
// only after the leaf value itself was already successfully handled --
// e.g. a checksum mismatch discovered after a successful decode. It is
// the Go stand-in for SerdeError::Finalization(E).
type FinalizationError struct {
	Err error
}

func (e *FinalizationError) Error() string {
	return fmt.Sprintf("finalization error: %s", e.Err)
}

func (e *FinalizationError) Unwrap() error {
	return e.Err
}
