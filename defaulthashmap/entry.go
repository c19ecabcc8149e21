package defaulthashmap

// Entry is a view into a single slot of a DefaultHashMap, occupied or
// vacant. Unlike Get and GetMut, an Entry performs no default-value
// substitution: the caller decides what happens on vacancy. An Entry reads
// through to the map on every call, so it observes later modifications.
type Entry[K comparable, V any] struct {
	m   *DefaultHashMap[K, V]
	key K
}

// Entry returns a handle for the slot of key k, whether or not the key is
// present. No entry is created until an inserting method is called on the
// handle.
//
// Parameters:
//   - k: The key the handle refers to
//
// Returns:
//   - A pointer to an Entry for k
func (m *DefaultHashMap[K, V]) Entry(k K) *Entry[K, V] {
	return &Entry[K, V]{m: m, key: k}
}

// Key returns the key this handle refers to.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// Occupied reports whether the slot currently holds an entry.
func (e *Entry[K, V]) Occupied() bool {
	return e.m.Has(e.key)
}

// Value returns the current value and whether the slot is occupied. No
// default is substituted for a vacant slot.
//
// Returns:
//   - The stored value, or the zero value of V if vacant
//   - true if the slot is occupied, false otherwise
func (e *Entry[K, V]) Value() (V, bool) {
	if p, ok := e.m.inner[e.key]; ok {
		return *p, true
	}
	var zero V
	return zero, false
}

// OrInsert inserts v if the slot is vacant, then returns a pointer to the
// stored value.
//
// Parameters:
//   - v: The value to insert when vacant
//
// Returns:
//   - A pointer to the stored value
func (e *Entry[K, V]) OrInsert(v V) *V {
	if p, ok := e.m.inner[e.key]; ok {
		return p
	}
	e.m.inner[e.key] = &v
	return &v
}

// OrInsertWith inserts the value produced by fn if the slot is vacant,
// then returns a pointer to the stored value. fn is not called when the
// slot is occupied.
//
// Parameters:
//   - fn: Factory producing the value to insert when vacant
//
// Returns:
//   - A pointer to the stored value
func (e *Entry[K, V]) OrInsertWith(fn func() V) *V {
	if p, ok := e.m.inner[e.key]; ok {
		return p
	}
	v := fn()
	e.m.inner[e.key] = &v
	return &v
}

// AndModify calls fn with a pointer to the stored value if the slot is
// occupied, and does nothing otherwise. It returns the handle for
// chaining.
//
// Parameters:
//   - fn: Mutator applied to the stored value when occupied
//
// Returns:
//   - The same Entry handle
func (e *Entry[K, V]) AndModify(fn func(v *V)) *Entry[K, V] {
	if p, ok := e.m.inner[e.key]; ok {
		fn(p)
	}
	return e
}
