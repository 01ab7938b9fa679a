// Package orderedmap provides a map that remembers insertion order.
// Generated bindings must be byte-identical across runs, so every registry
// the translator iterates over is backed by one of these instead of a plain
// map.
package orderedmap

type Map[K comparable, V any] struct {
	values map[K]V
	order  []K
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]V),
	}
}

// Set stores value under key. A key keeps its original position when set
// again.
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is owned by
// the map and must not be modified.
func (m *Map[K, V]) Keys() []K {
	return m.order
}

func (m *Map[K, V]) Len() int {
	return len(m.order)
}
