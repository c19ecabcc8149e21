// Package defaultsortedmap provides a generic ordered map that resolves
// missing keys to a default value instead of reporting absence. It is the
// key-ordered counterpart of package defaulthashmap: the same lookup and
// materialization policy on top of a B-tree, so iteration visits keys in
// ascending order and range queries are supported.
package defaultsortedmap

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"
)

// DefaultSortedMap is an ordered map whose lookups never fail: a missing
// key yields a default value produced by the map's default factory. Keys
// must be ordered; values may be any type. Iteration visits keys in
// ascending order.
//
// Read-only accessors (Get, GetKeyValue, Scan, All, Range) never modify
// the map; GetMut materializes the default as a real entry on a miss.
//
// DefaultSortedMap is not safe for concurrent use; callers needing shared
// access must synchronize externally.
type DefaultSortedMap[K cmp.Ordered, V any] struct {
	inner     btree.Map[K, *V]
	defaultFn func() V
}

// NewDefaultSortedMap returns a new empty DefaultSortedMap whose default
// value is the zero value of V.
func NewDefaultSortedMap[K cmp.Ordered, V any]() *DefaultSortedMap[K, V] {
	return &DefaultSortedMap[K, V]{}
}

// NewWithDefault returns a new empty DefaultSortedMap whose default values
// are produced by defaultFn, invoked once per miss.
func NewWithDefault[K cmp.Ordered, V any](defaultFn func() V) *DefaultSortedMap[K, V] {
	return &DefaultSortedMap[K, V]{defaultFn: defaultFn}
}

// FromMap returns a new DefaultSortedMap holding a copy of the entries of
// src. The default value is the zero value of V regardless of src.
func FromMap[K cmp.Ordered, V any](src map[K]V) *DefaultSortedMap[K, V] {
	m := NewDefaultSortedMap[K, V]()
	for k, v := range src {
		m.Insert(k, v)
	}
	return m
}

// FromKeys returns a new DefaultSortedMap with every given key
// materialized to the zero value of V. Duplicate keys collapse to one
// entry.
func FromKeys[K cmp.Ordered, V any](keys ...K) *DefaultSortedMap[K, V] {
	m := NewDefaultSortedMap[K, V]()
	for _, k := range keys {
		m.GetMut(k)
	}
	return m
}

func (m *DefaultSortedMap[K, V]) defaultValue() V {
	if m.defaultFn != nil {
		return m.defaultFn()
	}
	var zero V
	return zero
}

// Insert sets the value for key k, overwriting any existing entry. It
// returns the previous value and whether one was replaced.
func (m *DefaultSortedMap[K, V]) Insert(k K, v V) (V, bool) {
	prev, replaced := m.inner.Set(k, &v)
	if replaced {
		return *prev, true
	}
	var zero V
	return zero, false
}

// Get returns the value for key k, or a freshly produced default value if
// k is not present. Get never modifies the map.
func (m *DefaultSortedMap[K, V]) Get(k K) V {
	if p, ok := m.inner.Get(k); ok {
		return *p
	}
	return m.defaultValue()
}

// GetMut returns a pointer to the value stored for key k, first inserting
// the default under k if the key is absent. Afterwards Has(k) is true.
// The pointer remains valid until the entry is overwritten or removed.
func (m *DefaultSortedMap[K, V]) GetMut(k K) *V {
	if p, ok := m.inner.Get(k); ok {
		return p
	}
	v := m.defaultValue()
	p := &v
	m.inner.Set(k, p)
	return p
}

// GetKeyValue returns the key/value pair for key k, or the queried key
// paired with a fresh default if absent. No insertion takes place.
func (m *DefaultSortedMap[K, V]) GetKeyValue(k K) (K, V) {
	if p, ok := m.inner.Get(k); ok {
		return k, *p
	}
	return k, m.defaultValue()
}

// Remove deletes the entry for key k and returns its value, or a fresh
// default if k was not present (the map is left unchanged in that case).
func (m *DefaultSortedMap[K, V]) Remove(k K) V {
	if p, ok := m.inner.Delete(k); ok {
		return *p
	}
	return m.defaultValue()
}

// RemoveEntry deletes the entry for key k and returns the key/value pair,
// or the queried key paired with a fresh default if k was not present.
func (m *DefaultSortedMap[K, V]) RemoveEntry(k K) (K, V) {
	return k, m.Remove(k)
}

// Has reports whether key k is present in the map.
func (m *DefaultSortedMap[K, V]) Has(k K) bool {
	_, ok := m.inner.Get(k)
	return ok
}

// Len returns the number of entries in the map.
func (m *DefaultSortedMap[K, V]) Len() int {
	return m.inner.Len()
}

// IsEmpty reports whether the map contains no entries.
func (m *DefaultSortedMap[K, V]) IsEmpty() bool {
	return m.inner.Len() == 0
}

// Clear removes all entries from the map. The default factory is kept.
func (m *DefaultSortedMap[K, V]) Clear() {
	m.inner.Clear()
}

// Keys returns all keys in ascending order.
func (m *DefaultSortedMap[K, V]) Keys() []K {
	return m.inner.Keys()
}

// Values returns copies of all values, ordered by ascending key.
func (m *DefaultSortedMap[K, V]) Values() []V {
	values := make([]V, 0, m.inner.Len())
	m.inner.Scan(func(_ K, p *V) bool {
		values = append(values, *p)
		return true
	})
	return values
}

// ValuesMut returns pointers to the stored values, ordered by ascending
// key, for in-place mutation.
func (m *DefaultSortedMap[K, V]) ValuesMut() []*V {
	values := make([]*V, 0, m.inner.Len())
	m.inner.Scan(func(_ K, p *V) bool {
		values = append(values, p)
		return true
	})
	return values
}

// Retain keeps only the entries for which f returns true, removing the
// rest. The predicate receives a pointer to the stored value and may
// mutate it in place before deciding.
func (m *DefaultSortedMap[K, V]) Retain(f func(k K, v *V) bool) {
	var drop []K
	m.inner.Scan(func(k K, p *V) bool {
		if !f(k, p) {
			drop = append(drop, k)
		}
		return true
	})
	for _, k := range drop {
		m.inner.Delete(k)
	}
}

// Scan calls f for each entry in ascending key order. If f returns false,
// Scan stops the iteration. The behavior is undefined if f modifies the
// map.
func (m *DefaultSortedMap[K, V]) Scan(f func(k K, v V) bool) {
	m.inner.Scan(func(k K, p *V) bool {
		return f(k, *p)
	})
}

// Reverse calls f for each entry in descending key order. If f returns
// false, Reverse stops the iteration.
func (m *DefaultSortedMap[K, V]) Reverse(f func(k K, v V) bool) {
	m.inner.Reverse(func(k K, p *V) bool {
		return f(k, *p)
	})
}

// All returns an iterator over the stored entries in ascending key order.
// Defaults for keys that were never inserted are not synthesized into the
// sequence.
func (m *DefaultSortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.inner.Scan(func(k K, p *V) bool {
			return yield(k, *p)
		})
	}
}

// Range returns an iterator over the entries whose keys fall in the
// half-open interval [from, to), in ascending order. An empty interval
// (from == to) yields nothing.
//
// Range panics if from is greater than to.
func (m *DefaultSortedMap[K, V]) Range(from, to K) iter.Seq2[K, V] {
	if from > to {
		panic("defaultsortedmap: invalid range: start is greater than end")
	}
	return func(yield func(K, V) bool) {
		m.inner.Ascend(from, func(k K, p *V) bool {
			if k >= to {
				return false
			}
			return yield(k, *p)
		})
	}
}

// RangeMut is Range with pointers to the stored values, for in-place
// mutation of a sub-range. It panics if from is greater than to.
func (m *DefaultSortedMap[K, V]) RangeMut(from, to K) iter.Seq2[K, *V] {
	if from > to {
		panic("defaultsortedmap: invalid range: start is greater than end")
	}
	return func(yield func(K, *V) bool) {
		m.inner.Ascend(from, func(k K, p *V) bool {
			if k >= to {
				return false
			}
			return yield(k, p)
		})
	}
}

// First returns the entry with the minimum key, or ok == false if the map
// is empty.
func (m *DefaultSortedMap[K, V]) First() (K, V, bool) {
	k, p, ok := m.inner.Min()
	if !ok {
		var zero V
		return k, zero, false
	}
	return k, *p, true
}

// Last returns the entry with the maximum key, or ok == false if the map
// is empty.
func (m *DefaultSortedMap[K, V]) Last() (K, V, bool) {
	k, p, ok := m.inner.Max()
	if !ok {
		var zero V
		return k, zero, false
	}
	return k, *p, true
}

// PopFirst removes and returns the entry with the minimum key, or
// ok == false if the map is empty.
func (m *DefaultSortedMap[K, V]) PopFirst() (K, V, bool) {
	k, p, ok := m.inner.PopMin()
	if !ok {
		var zero V
		return k, zero, false
	}
	return k, *p, true
}

// PopLast removes and returns the entry with the maximum key, or
// ok == false if the map is empty.
func (m *DefaultSortedMap[K, V]) PopLast() (K, V, bool) {
	k, p, ok := m.inner.PopMax()
	if !ok {
		var zero V
		return k, zero, false
	}
	return k, *p, true
}

// FirstEntry returns an Entry handle for the minimum key, or nil if the
// map is empty.
func (m *DefaultSortedMap[K, V]) FirstEntry() *Entry[K, V] {
	k, _, ok := m.inner.Min()
	if !ok {
		return nil
	}
	return m.Entry(k)
}

// LastEntry returns an Entry handle for the maximum key, or nil if the
// map is empty.
func (m *DefaultSortedMap[K, V]) LastEntry() *Entry[K, V] {
	k, _, ok := m.inner.Max()
	if !ok {
		return nil
	}
	return m.Entry(k)
}

// SplitOff removes every entry with key >= at from the map and returns a
// new map holding them. The new map shares the receiver's default
// factory. Entries keep their identity, so pointers previously obtained
// from GetMut stay valid against whichever map now holds the entry.
func (m *DefaultSortedMap[K, V]) SplitOff(at K) *DefaultSortedMap[K, V] {
	out := &DefaultSortedMap[K, V]{defaultFn: m.defaultFn}
	var keys []K
	var ptrs []*V
	m.inner.Ascend(at, func(k K, p *V) bool {
		keys = append(keys, k)
		ptrs = append(ptrs, p)
		return true
	})
	for i, k := range keys {
		m.inner.Delete(k)
		out.inner.Set(k, ptrs[i])
	}
	return out
}

// Append moves every entry of other into the map, overwriting the value
// on key collision, and leaves other empty. The default factories of both
// maps are unchanged.
func (m *DefaultSortedMap[K, V]) Append(other *DefaultSortedMap[K, V]) {
	if m == other {
		return
	}
	other.inner.Scan(func(k K, p *V) bool {
		m.inner.Set(k, p)
		return true
	})
	other.inner.Clear()
}

// Drain returns a consuming iterator that repeatedly removes and yields
// the minimum-key entry. Iterating to completion leaves the map empty;
// stopping early leaves the remaining entries in place.
func (m *DefaultSortedMap[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, p, ok := m.inner.PopMin()
			if !ok {
				return
			}
			if !yield(k, *p) {
				return
			}
		}
	}
}

// ToMap returns the entries as a plain map. The default factory is not
// part of the result.
func (m *DefaultSortedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.inner.Len())
	m.inner.Scan(func(k K, p *V) bool {
		out[k] = *p
		return true
	})
	return out
}

// EqualFunc reports whether m and other hold the same entries, comparing
// values with eq. The default factories are not compared.
func (m *DefaultSortedMap[K, V]) EqualFunc(other *DefaultSortedMap[K, V], eq func(a, b V) bool) bool {
	if m.inner.Len() != other.inner.Len() {
		return false
	}
	equal := true
	m.inner.Scan(func(k K, p *V) bool {
		q, ok := other.inner.Get(k)
		if !ok || !eq(*p, *q) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Equal reports whether a and b hold the same entries. The default
// factories are not compared.
func Equal[K cmp.Ordered, V comparable](a, b *DefaultSortedMap[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}
