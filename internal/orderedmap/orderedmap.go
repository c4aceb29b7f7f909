// Package orderedmap provides a map that preserves insertion order of
// its keys.
package orderedmap

import "iter"

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Set inserts or replaces the value for key. A replaced key keeps the
// position it was first inserted at.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.keys[key]; !exists {
		m.entries = append(m.entries, key)
	}
	m.keys[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Range iterates over the entries in insertion order.
func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
