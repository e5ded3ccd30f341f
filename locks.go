package schematree

import "sync"

// Cell wraps a leaf value with no locking at all, the Go stand-in for
// core::cell::Cell<T>: schema-transparent, always accessible for
// serialize/deserialize, but TreeAny access is refused since a plain Go
// value behind an interface value can't be "leaked out" as a live
// pointer the way Cell<T>::get_mut can be, matching
// impls/internal.rs's own "Can't leak out of Cell" refusal on
// ref_any_by_key (mut_any_by_key is allowed there since it already has
// &mut access; RefAnyByKey is refused here for the same reason, and
// MutAnyByKey is allowed since the caller already holds exclusive Go
// access to the Cell itself).
type Cell[T treeLeafValue] struct {
	Value T
}

func (c *Cell[T]) Schema() *Schema {
	return c.Value.Schema()
}

func (c *Cell[T]) SerializeByKey(keys Keys, enc Serializer) error {
	return c.Value.SerializeByKey(keys, enc)
}

func (c *Cell[T]) DeserializeByKey(keys Keys, dec Deserializer) error {
	return c.Value.DeserializeByKey(keys, dec)
}

func (c *Cell[T]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	return nil, NewAccessError("can't leak out of Cell")
}

func (c *Cell[T]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	return c.Value.MutAnyByKey(keys)
}

// Mutex wraps a leaf value behind a sync.Mutex, the Go stand-in for
// std::sync::Mutex<T>. A failed Lock (recovered panic from the
// underlying value, analogous to a poisoned mutex) is reported as a
// ValueAccess error rather than propagated, matching
// impls/internal.rs's own "Poisoned" refusal; TreeAny access is denied
// outright for the same "can't leak out" reason as Cell.
type Mutex[T treeLeafValue] struct {
	mu       sync.Mutex
	value    T
	poisoned bool
}

// NewMutex wraps value behind a new, unpoisoned Mutex.
func NewMutex[T treeLeafValue](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

func (m *Mutex[T]) Schema() *Schema {
	return m.value.Schema()
}

func (m *Mutex[T]) withLock(do func(v T) error) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.poisoned {
		return NewAccessError("poisoned")
	}
	defer func() {
		if r := recover(); r != nil {
			m.poisoned = true
			err = NewAccessError("poisoned")
		}
	}()
	return do(m.value)
}

func (m *Mutex[T]) SerializeByKey(keys Keys, enc Serializer) error {
	return m.withLock(func(v T) error { return v.SerializeByKey(keys, enc) })
}

func (m *Mutex[T]) DeserializeByKey(keys Keys, dec Deserializer) error {
	return m.withLock(func(v T) error { return v.DeserializeByKey(keys, dec) })
}

func (m *Mutex[T]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	return nil, NewAccessError("can't leak out of Mutex")
}

func (m *Mutex[T]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	var result *ErasedValue
	err := m.withLock(func(v T) error {
		r, err := v.MutAnyByKey(keys)
		result = r
		return err
	})
	return result, err
}

// RWLock wraps a leaf value behind a sync.RWMutex, the Go stand-in for
// std::sync::RwLock<T>: SerializeByKey takes the read lock,
// DeserializeByKey and MutAnyByKey take the write lock, and RefAnyByKey
// is denied without taking any lock.
type RWLock[T treeLeafValue] struct {
	mu       sync.RWMutex
	value    T
	poisoned bool
}

// NewRWLock wraps value behind a new, unpoisoned RWLock.
func NewRWLock[T treeLeafValue](value T) *RWLock[T] {
	return &RWLock[T]{value: value}
}

func (l *RWLock[T]) Schema() *Schema {
	return l.value.Schema()
}

func (l *RWLock[T]) withRLock(do func(v T) error) (err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.poisoned {
		return NewAccessError("poisoned")
	}
	return do(l.value)
}

func (l *RWLock[T]) withLock(do func(v T) error) (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.poisoned {
		return NewAccessError("poisoned")
	}
	defer func() {
		if r := recover(); r != nil {
			l.poisoned = true
			err = NewAccessError("poisoned")
		}
	}()
	return do(l.value)
}

func (l *RWLock[T]) SerializeByKey(keys Keys, enc Serializer) error {
	return l.withRLock(func(v T) error { return v.SerializeByKey(keys, enc) })
}

func (l *RWLock[T]) DeserializeByKey(keys Keys, dec Deserializer) error {
	return l.withLock(func(v T) error { return v.DeserializeByKey(keys, dec) })
}

func (l *RWLock[T]) RefAnyByKey(keys Keys) (*ErasedValue, error) {
	return nil, NewAccessError("can't leak out of RWLock")
}

func (l *RWLock[T]) MutAnyByKey(keys Keys) (*ErasedValue, error) {
	var result *ErasedValue
	err := l.withLock(func(v T) error {
		r, err := v.MutAnyByKey(keys)
		result = r
		return err
	})
	return result, err
}
