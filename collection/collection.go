package collection

// Map is a dense-keyed, insertion-ordered collection of entities. Keys are
// 1-based integers assigned at insert as size+1 — the collection key of the
// aggregate, distinct from whatever id field the entity itself carries.
// Deleting leaves a hole; keys are never re-densified and removal never
// cascades to entities that reference the removed key.
type Map[T any] struct {
	entries map[int]T
	order   []int
}

// New returns an empty collection.
func New[T any]() *Map[T] {
	return &Map[T]{entries: make(map[int]T)}
}

// Add inserts v at key size+1 and returns the assigned key.
func (m *Map[T]) Add(v T) int {
	key := len(m.entries) + 1
	if _, exists := m.entries[key]; !exists {
		m.order = append(m.order, key)
	}
	m.entries[key] = v
	return key
}

// Get returns the entry at key.
func (m *Map[T]) Get(key int) (T, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Delete removes the entry at key. Deleting a missing key is a no-op.
func (m *Map[T]) Delete(key int) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map[T]) Len() int { return len(m.entries) }

// Keys returns the keys in insertion order.
func (m *Map[T]) Keys() []int {
	keys := make([]int, len(m.order))
	copy(keys, m.order)
	return keys
}

// Each calls fn for every entry in insertion order.
func (m *Map[T]) Each(fn func(key int, v T)) {
	for _, k := range m.order {
		fn(k, m.entries[k])
	}
}

// Snapshot returns a key→value map built by applying fn to every entry.
func Snapshot[T, U any](m *Map[T], fn func(T) U) map[int]U {
	out := make(map[int]U, len(m.entries))
	for k, v := range m.entries {
		out[k] = fn(v)
	}
	return out
}
