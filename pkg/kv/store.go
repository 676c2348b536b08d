// Package kv provides a generic thread-safe key-value store.
package kv

import "sync"

// Store is a thread-safe generic key-value store. A store created with
// NewBounded evicts its oldest key once it holds more than its capacity.
type Store[K comparable, V any] struct {
	mu    sync.RWMutex
	data  map[K]V
	order []K // insertion order, only tracked when bounded
	limit int
}

// New creates an unbounded key-value store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
	}
}

// NewBounded creates a store holding at most limit keys. limit <= 0 means
// unbounded.
func NewBounded[K comparable, V any](limit int) *Store[K, V] {
	s := New[K, V]()
	if limit > 0 {
		s.limit = limit
	}
	return s
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Set stores a value by key. Overwriting a key keeps its original age.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, value)
}

func (s *Store[K, V]) set(key K, value V) {
	_, exists := s.data[key]
	s.data[key] = value

	if s.limit == 0 || exists {
		return
	}

	s.order = append(s.order, key)
	for len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.data, oldest)
	}
}

// GetOrSet returns the value for key, computing and storing it with fn when
// absent. fn runs under the write lock and must not call back into s.
func (s *Store[K, V]) GetOrSet(key K, fn func() V) V {
	if v, ok := s.Get(key); ok {
		return v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.data[key]; ok {
		return v
	}
	v := fn()
	s.set(key, v)
	return v
}

// Delete removes a key from the store.
func (s *Store[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	if s.limit == 0 {
		return
	}
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear removes all entries from the store.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[K]V)
	s.order = nil
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Keys returns all keys in the store.
func (s *Store[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]K, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}
