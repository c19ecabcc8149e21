// Package defaulthashmap provides a generic hash map that resolves missing
// keys to a default value instead of reporting absence. Plain reads degrade
// to the default without touching the map; mutable access materializes the
// default as a real entry, mirroring a Python defaultdict.
package defaulthashmap

import (
	"iter"
	"maps"
	"slices"
)

// DefaultHashMap is a hash map whose lookups never fail: a missing key
// yields a default value produced by the map's default factory. Keys must
// be comparable; values may be any type.
//
// Read-only accessors (Get, GetKeyValue, Range, All) never modify the map.
// GetMut is the single auto-materializing accessor: on a missing key it
// inserts the default and returns a pointer to the new slot.
//
// DefaultHashMap is not safe for concurrent use; callers needing shared
// access must synchronize externally, exactly as with a plain map.
type DefaultHashMap[K comparable, V any] struct {
	inner     map[K]*V
	defaultFn func() V
}

// NewDefaultHashMap returns a new empty DefaultHashMap whose default value
// is the zero value of V.
//
// Returns:
//   - A pointer to a new DefaultHashMap[K, V]
func NewDefaultHashMap[K comparable, V any]() *DefaultHashMap[K, V] {
	return &DefaultHashMap[K, V]{inner: make(map[K]*V)}
}

// NewWithDefault returns a new empty DefaultHashMap whose default values
// are produced by defaultFn. The factory is invoked once per miss, so
// reference-typed defaults (slices, maps) are never shared between keys.
//
// Parameters:
//   - defaultFn: Factory producing the default value for missing keys
//
// Returns:
//   - A pointer to a new DefaultHashMap[K, V]
func NewWithDefault[K comparable, V any](defaultFn func() V) *DefaultHashMap[K, V] {
	return &DefaultHashMap[K, V]{inner: make(map[K]*V), defaultFn: defaultFn}
}

// FromMap returns a new DefaultHashMap holding a copy of the entries of
// src. The default value is the zero value of V regardless of src.
//
// Parameters:
//   - src: The plain map whose entries seed the new map
//
// Returns:
//   - A pointer to a new DefaultHashMap[K, V] with src's entries
func FromMap[K comparable, V any](src map[K]V) *DefaultHashMap[K, V] {
	m := NewDefaultHashMap[K, V]()
	for k, v := range src {
		m.Insert(k, v)
	}
	return m
}

// FromKeys returns a new DefaultHashMap with every given key materialized
// to the zero value of V. Duplicate keys collapse to one entry.
//
// Parameters:
//   - keys: The keys to materialize with the default value
//
// Returns:
//   - A pointer to a new DefaultHashMap[K, V]
func FromKeys[K comparable, V any](keys ...K) *DefaultHashMap[K, V] {
	m := NewDefaultHashMap[K, V]()
	for _, k := range keys {
		m.GetMut(k)
	}
	return m
}

func (m *DefaultHashMap[K, V]) defaultValue() V {
	if m.defaultFn != nil {
		return m.defaultFn()
	}
	var zero V
	return zero
}

// Insert sets the value for key k, overwriting any existing entry.
//
// Parameters:
//   - k: The key to insert
//   - v: The value to associate with k
//
// Returns:
//   - The previous value for k, or the zero value of V if none existed
//   - true if an existing entry was replaced, false otherwise
func (m *DefaultHashMap[K, V]) Insert(k K, v V) (V, bool) {
	var prev V
	p, replaced := m.inner[k]
	if replaced {
		prev = *p
	}
	m.inner[k] = &v
	return prev, replaced
}

// Get returns the value for key k, or a freshly produced default value if
// k is not present. Get never modifies the map: looking up a missing key
// leaves Len unchanged and Has(k) false.
//
// Parameters:
//   - k: The key to look up
//
// Returns:
//   - The value associated with k, or the default value if not found
func (m *DefaultHashMap[K, V]) Get(k K) V {
	if p, ok := m.inner[k]; ok {
		return *p
	}
	return m.defaultValue()
}

// GetMut returns a pointer to the value stored for key k. If k is not
// present, the default value is first inserted under k and a pointer to
// that new slot is returned. This is the one accessor with a write side
// effect on absence: afterwards Has(k) is true and Len has grown by one.
//
// The pointer remains valid until the entry is overwritten by Insert or
// removed.
//
// Parameters:
//   - k: The key to look up or materialize
//
// Returns:
//   - A pointer to the stored value for k
func (m *DefaultHashMap[K, V]) GetMut(k K) *V {
	if p, ok := m.inner[k]; ok {
		return p
	}
	v := m.defaultValue()
	m.inner[k] = &v
	return &v
}

// GetKeyValue returns the key/value pair for key k. If k is not present it
// returns the queried key paired with a fresh default value, without
// inserting anything.
//
// Parameters:
//   - k: The key to look up
//
// Returns:
//   - The key k
//   - The value associated with k, or the default value if not found
func (m *DefaultHashMap[K, V]) GetKeyValue(k K) (K, V) {
	if p, ok := m.inner[k]; ok {
		return k, *p
	}
	return k, m.defaultValue()
}

// Remove deletes the entry for key k and returns its value. If k is not
// present the map is left unchanged and a fresh default value is returned.
//
// Parameters:
//   - k: The key to remove
//
// Returns:
//   - The removed value, or the default value if k was not present
func (m *DefaultHashMap[K, V]) Remove(k K) V {
	if p, ok := m.inner[k]; ok {
		delete(m.inner, k)
		return *p
	}
	return m.defaultValue()
}

// RemoveEntry deletes the entry for key k and returns the key/value pair.
// If k is not present the map is left unchanged and the queried key is
// returned paired with a fresh default value.
//
// Parameters:
//   - k: The key to remove
//
// Returns:
//   - The key k
//   - The removed value, or the default value if k was not present
func (m *DefaultHashMap[K, V]) RemoveEntry(k K) (K, V) {
	return k, m.Remove(k)
}

// Has reports whether key k is present in the map. Keys only become
// present through Insert, GetMut, Entry insertion, or construction
// helpers; plain reads never create entries.
//
// Parameters:
//   - k: The key to check
//
// Returns:
//   - true if the key is in the map, false otherwise
func (m *DefaultHashMap[K, V]) Has(k K) bool {
	_, ok := m.inner[k]
	return ok
}

// Len returns the number of entries in the map.
//
// Returns:
//   - The number of key-value pairs in the map
func (m *DefaultHashMap[K, V]) Len() int {
	return len(m.inner)
}

// IsEmpty reports whether the map contains no entries.
//
// Returns:
//   - true if the map has no entries, false otherwise
func (m *DefaultHashMap[K, V]) IsEmpty() bool {
	return len(m.inner) == 0
}

// Clear removes all entries from the map. The default factory is kept.
func (m *DefaultHashMap[K, V]) Clear() {
	clear(m.inner)
}

// Keys returns the keys of the map as a slice in arbitrary order.
//
// Returns:
//   - A slice of all keys in the map
func (m *DefaultHashMap[K, V]) Keys() []K {
	return slices.Collect(maps.Keys(m.inner))
}

// Values returns the values of the map as a slice in arbitrary order.
//
// Returns:
//   - A slice of copies of all values in the map
func (m *DefaultHashMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.inner))
	for _, p := range m.inner {
		values = append(values, *p)
	}
	return values
}

// ValuesMut returns pointers to the stored values in arbitrary order, for
// in-place mutation.
//
// Returns:
//   - A slice of pointers to all stored values
func (m *DefaultHashMap[K, V]) ValuesMut() []*V {
	values := make([]*V, 0, len(m.inner))
	for _, p := range m.inner {
		values = append(values, p)
	}
	return values
}

// Retain keeps only the entries for which f returns true, removing the
// rest. Entries are visited in arbitrary order. The predicate receives a
// pointer to the stored value and may mutate it in place before deciding.
//
// Parameters:
//   - f: Predicate called per entry; return false to remove the entry
func (m *DefaultHashMap[K, V]) Retain(f func(k K, v *V) bool) {
	for k, p := range m.inner {
		if !f(k, p) {
			delete(m.inner, k)
		}
	}
}

// Range calls f sequentially for each key and value in the map, in
// arbitrary order. If f returns false, Range stops the iteration. The
// behavior is undefined if f modifies the map.
//
// Parameters:
//   - f: Function called for each entry; return false to stop iteration
func (m *DefaultHashMap[K, V]) Range(f func(k K, v V) bool) {
	for k, p := range m.inner {
		if !f(k, *p) {
			break
		}
	}
}

// RangeMut calls f sequentially for each key and a pointer to its stored
// value, in arbitrary order, allowing in-place mutation. If f returns
// false, RangeMut stops the iteration.
//
// Parameters:
//   - f: Function called for each entry; return false to stop iteration
func (m *DefaultHashMap[K, V]) RangeMut(f func(k K, v *V) bool) {
	for k, p := range m.inner {
		if !f(k, p) {
			break
		}
	}
}

// All returns an iterator over the entries physically stored in the map,
// in arbitrary order. Defaults for keys that were never inserted are not
// synthesized into the sequence.
//
// Returns:
//   - An iterator over key-value pairs
func (m *DefaultHashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, p := range m.inner {
			if !yield(k, *p) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator: each yielded entry is removed from
// the map before it is produced. Iterating to completion leaves the map
// empty; stopping early leaves the remaining entries in place. Order is
// arbitrary, and the sequence is single-use.
//
// Returns:
//   - An iterator that removes and yields every entry
func (m *DefaultHashMap[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.Keys() {
			p, ok := m.inner[k]
			if !ok {
				continue
			}
			delete(m.inner, k)
			if !yield(k, *p) {
				return
			}
		}
	}
}

// ToMap returns the entries as a plain map. The default factory is not
// part of the result. Mutating the returned map does not affect the
// DefaultHashMap.
//
// Returns:
//   - A plain map holding copies of all entries
func (m *DefaultHashMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.inner))
	for k, p := range m.inner {
		out[k] = *p
	}
	return out
}

// EqualFunc reports whether m and other hold the same entries, comparing
// values with eq. The default factories are not compared.
//
// Parameters:
//   - other: The map to compare against
//   - eq: Value equality function
//
// Returns:
//   - true if both maps hold equal entries, false otherwise
func (m *DefaultHashMap[K, V]) EqualFunc(other *DefaultHashMap[K, V], eq func(a, b V) bool) bool {
	if len(m.inner) != len(other.inner) {
		return false
	}
	for k, p := range m.inner {
		q, ok := other.inner[k]
		if !ok || !eq(*p, *q) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same entries. The default
// factories are not compared.
//
// Parameters:
//   - a: The first map
//   - b: The second map
//
// Returns:
//   - true if both maps hold equal entries, false otherwise
func Equal[K, V comparable](a, b *DefaultHashMap[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}
